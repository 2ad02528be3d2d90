package flags

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "flags"

	ErrFlagNotRegistered = sdkerrors.Register(codespace, 1200, "flag not registered")
	ErrFlagInvalidValue  = sdkerrors.Register(codespace, 1201, "flag value is invalid")
)
