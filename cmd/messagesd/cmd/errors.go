package cmd

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "messagesd"

	ErrMessagesdConfig    = sdkerrors.Register(codespace, 1800, "unable to load driver config")
	ErrMessagesdRunFailed = sdkerrors.Register(codespace, 1801, "one or more scenarios failed")
)
