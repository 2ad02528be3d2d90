package wallet

import (
	"github.com/tyler-smith/go-bip39"
)

// DefaultWordCount is the number of words of a generated mnemonic when none
// is requested.
const DefaultWordCount = 12

// entropyBitsByWordCount maps BIP39 mnemonic lengths to their entropy size.
var entropyBitsByWordCount = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// Generate returns a new random BIP39 mnemonic of the given number of words.
func Generate(words int) (string, error) {
	bitSize, ok := entropyBitsByWordCount[words]
	if !ok {
		return "", ErrWalletInvalidWordCount.Wrapf("got %d, expected one of 12, 15, 18, 21 or 24", words)
	}

	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", ErrWalletEntropy.Wrap(err.Error())
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", ErrWalletEntropy.Wrap(err.Error())
	}
	return mnemonic, nil
}

// Random returns a wallet derived from a freshly generated mnemonic along
// with that mnemonic.
func Random(words int, opts ...WalletOptionFn) (*Wallet, string, error) {
	mnemonic, err := Generate(words)
	if err != nil {
		return nil, "", err
	}

	w, err := FromMnemonic(mnemonic, opts...)
	if err != nil {
		return nil, "", err
	}
	return w, mnemonic, nil
}
