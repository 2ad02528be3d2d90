// Package sample provides deterministic and random fixtures for tests.
package sample

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
)

// Mnemonic is the well-known mnemonic of the uni testnet driver account.
// It MUST NOT hold funds on any production network.
const Mnemonic = "test peanut elevator motor proud globe obtain gasp sad balance nature ladder"

// AccAddressAndPubKey returns a random Juno account address and its public key.
func AccAddressAndPubKey() (string, cryptotypes.PubKey) {
	pk := secp256k1.GenPrivKey().PubKey()
	addr, err := bech32.ConvertAndEncode(juno.AccountAddressPrefix, pk.Address())
	if err != nil {
		panic(err)
	}
	return addr, pk
}

// AccAddress returns a random Juno account address.
func AccAddress() string {
	addr, _ := AccAddressAndPubKey()
	return addr
}

// ContractAddress returns a random 32 byte Juno contract address.
func ContractAddress() string {
	bz := secp256k1.GenPrivKey().Bytes()
	addr, err := bech32.ConvertAndEncode(juno.AccountAddressPrefix, bz)
	if err != nil {
		panic(err)
	}
	return addr
}

// WasmCode returns the smallest valid wasm module: the magic number followed
// by the version. It is accepted by the wasm helpers but not by a chain.
func WasmCode() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
}
