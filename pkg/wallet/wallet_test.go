package wallet_test

import (
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/wallet"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/testutil/sample"
)

func TestFromMnemonic_Deterministic(t *testing.T) {
	first, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	second, err := wallet.FromMnemonic(sample.Mnemonic, wallet.WithPrefix("juno"))
	require.NoError(t, err)

	require.Equal(t, first.Address(), second.Address())
	require.True(t, strings.HasPrefix(first.Address(), "juno1"))
	require.Equal(t, "juno", first.Prefix())
}

func TestFromMnemonic_WhitespaceInsensitive(t *testing.T) {
	w, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	padded, err := wallet.FromMnemonic("  " + strings.ReplaceAll(sample.Mnemonic, " ", "\n ") + "\t")
	require.NoError(t, err)

	require.Equal(t, w.Address(), padded.Address())
}

func TestFromMnemonic_PrefixOnlyChangesHRP(t *testing.T) {
	junoWallet, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	cosmosWallet, err := wallet.FromMnemonic(sample.Mnemonic, wallet.WithPrefix("cosmos"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(cosmosWallet.Address(), "cosmos1"))

	junoHRP, junoBz, err := bech32.DecodeAndConvert(junoWallet.Address())
	require.NoError(t, err)
	cosmosHRP, cosmosBz, err := bech32.DecodeAndConvert(cosmosWallet.Address())
	require.NoError(t, err)

	require.Equal(t, "juno", junoHRP)
	require.Equal(t, "cosmos", cosmosHRP)
	require.Equal(t, junoBz, cosmosBz)
	require.Equal(t, []byte(junoWallet.AccAddress()), junoBz)
}

func TestFromMnemonic_HDPath(t *testing.T) {
	w, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	other, err := wallet.FromMnemonic(sample.Mnemonic, wallet.WithHDPath("m/44'/118'/0'/0/1"))
	require.NoError(t, err)

	require.NotEqual(t, w.Address(), other.Address())
}

func TestFromMnemonic_Accounts(t *testing.T) {
	w, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	accounts := w.Accounts()
	require.Len(t, accounts, 1)
	require.Equal(t, w.Address(), accounts[0].Address)
	require.Equal(t, "secp256k1", accounts[0].Algo)
	// Compressed secp256k1 public key.
	require.Len(t, accounts[0].PubKey, 33)
	require.Equal(t, w.PubKey().Bytes(), accounts[0].PubKey)
}

func TestFromMnemonic_Sign(t *testing.T) {
	w, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	msg := []byte("add_message")
	sig, err := w.Sign(msg)
	require.NoError(t, err)
	require.True(t, w.PubKey().VerifySignature(msg, sig))
}

func TestFromMnemonic_Errors(t *testing.T) {
	tests := []struct {
		desc        string
		mnemonic    string
		opts        []wallet.WalletOptionFn
		expectedErr error
	}{
		{
			desc:        "empty mnemonic",
			mnemonic:    "   ",
			expectedErr: wallet.ErrWalletInvalidMnemonic,
		},
		{
			desc:        "bad checksum",
			mnemonic:    "test test test test test test test test test test test test",
			expectedErr: wallet.ErrWalletDerivation,
		},
		{
			desc:        "malformed hd path",
			mnemonic:    sample.Mnemonic,
			opts:        []wallet.WalletOptionFn{wallet.WithHDPath("not/a/path")},
			expectedErr: wallet.ErrWalletDerivation,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := wallet.FromMnemonic(test.mnemonic, test.opts...)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestResolveAddress(t *testing.T) {
	w, err := wallet.FromMnemonic(sample.Mnemonic)
	require.NoError(t, err)

	addr, err := wallet.ResolveAddress(sample.Mnemonic, "")
	require.NoError(t, err)
	require.Equal(t, w.Address(), addr)

	addr, err = wallet.ResolveAddress(sample.Mnemonic, "juno")
	require.NoError(t, err)
	require.Equal(t, w.Address(), addr)

	_, err = wallet.ResolveAddress("", "juno")
	require.ErrorIs(t, err, wallet.ErrWalletInvalidMnemonic)
}

func TestGenerate(t *testing.T) {
	for _, words := range []int{12, 15, 18, 21, 24} {
		mnemonic, err := wallet.Generate(words)
		require.NoError(t, err)
		require.Len(t, strings.Fields(mnemonic), words)
		require.True(t, bip39.IsMnemonicValid(mnemonic))
	}

	_, err := wallet.Generate(13)
	require.ErrorIs(t, err, wallet.ErrWalletInvalidWordCount)
}

func TestRandom(t *testing.T) {
	w, mnemonic, err := wallet.Random(wallet.DefaultWordCount)
	require.NoError(t, err)

	addr, err := wallet.ResolveAddress(mnemonic, "")
	require.NoError(t, err)
	require.Equal(t, w.Address(), addr)

	other, _, err := wallet.Random(wallet.DefaultWordCount)
	require.NoError(t, err)
	require.NotEqual(t, w.Address(), other.Address())
}
