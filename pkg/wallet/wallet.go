// Package wallet derives a single secp256k1 signing key from a BIP39 mnemonic
// and exposes the bech32 account address for a configurable prefix.
package wallet

import (
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
)

// AccountData describes one account held by a wallet.
type AccountData struct {
	Address string
	Algo    string
	PubKey  []byte
}

// Wallet holds the private key of account 0, index 0 along the Cosmos
// derivation path (coin type 118) together with the address prefix.
type Wallet struct {
	prefix  string
	hdPath  string
	privKey cryptotypes.PrivKey
	address string
}

// FromMnemonic derives a Wallet from mnemonic. The same mnemonic and prefix
// always yield the same address.
func FromMnemonic(mnemonic string, opts ...WalletOptionFn) (*Wallet, error) {
	w := &Wallet{
		prefix: juno.AccountAddressPrefix,
		hdPath: cosmostypes.FullFundraiserPath,
	}
	for _, opt := range opts {
		opt(w)
	}

	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return nil, ErrWalletInvalidMnemonic.Wrap("empty mnemonic")
	}

	derivedPriv, err := hd.Secp256k1.Derive()(mnemonic, "", w.hdPath)
	if err != nil {
		return nil, ErrWalletDerivation.Wrapf("path %q: %v", w.hdPath, err)
	}
	w.privKey = hd.Secp256k1.Generate()(derivedPriv)

	w.address, err = bech32.ConvertAndEncode(w.prefix, w.privKey.PubKey().Address())
	if err != nil {
		return nil, ErrWalletInvalidPrefix.Wrapf("%q: %v", w.prefix, err)
	}

	return w, nil
}

// Accounts returns the single account held by the wallet.
func (w *Wallet) Accounts() []AccountData {
	return []AccountData{{
		Address: w.address,
		Algo:    string(hd.Secp256k1Type),
		PubKey:  w.privKey.PubKey().Bytes(),
	}}
}

// Address returns the bech32 address of the first account.
func (w *Wallet) Address() string {
	return w.Accounts()[0].Address
}

// AccAddress returns the raw account address bytes.
func (w *Wallet) AccAddress() cosmostypes.AccAddress {
	return cosmostypes.AccAddress(w.privKey.PubKey().Address())
}

func (w *Wallet) Prefix() string {
	return w.prefix
}

func (w *Wallet) PubKey() cryptotypes.PubKey {
	return w.privKey.PubKey()
}

// Sign signs bz with the wallet's private key.
func (w *Wallet) Sign(bz []byte) ([]byte, error) {
	return w.privKey.Sign(bz)
}
