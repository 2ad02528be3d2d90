package faucet

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "faucet"

	ErrFaucetInvalidConfig    = sdkerrors.Register(codespace, 1500, "invalid faucet config")
	ErrFaucetInvalidRequest   = sdkerrors.Register(codespace, 1501, "invalid faucet credit request")
	ErrFaucetRequest          = sdkerrors.Register(codespace, 1502, "faucet request failed")
	ErrFaucetUnexpectedStatus = sdkerrors.Register(codespace, 1503, "faucet responded with an unexpected status")
)
