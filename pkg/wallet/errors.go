package wallet

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "wallet"

	ErrWalletInvalidMnemonic  = sdkerrors.Register(codespace, 1100, "invalid mnemonic")
	ErrWalletDerivation       = sdkerrors.Register(codespace, 1101, "unable to derive key from mnemonic")
	ErrWalletInvalidWordCount = sdkerrors.Register(codespace, 1102, "invalid mnemonic word count")
	ErrWalletInvalidPrefix    = sdkerrors.Register(codespace, 1103, "invalid address prefix")
	ErrWalletEntropy          = sdkerrors.Register(codespace, 1104, "unable to generate entropy")
)
