package messages

import sdkerrors "cosmossdk.io/errors"

var (
	codespace         = "messages"
	ErrMessagesDecode = sdkerrors.Register(codespace, 1600, "unable to decode contract response")
)
