package wasm

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "wasm_client"

	ErrWasmFileNotFound   = sdkerrors.Register(codespace, 1400, "wasm file not found")
	ErrWasmFileRead       = sdkerrors.Register(codespace, 1401, "unable to read wasm file")
	ErrWasmInvalidCode    = sdkerrors.Register(codespace, 1402, "not wasm bytecode")
	ErrWasmCompress       = sdkerrors.Register(codespace, 1403, "unable to gzip wasm bytecode")
	ErrWasmInvalidPayload = sdkerrors.Register(codespace, 1404, "invalid contract payload")
	ErrWasmEventNotFound  = sdkerrors.Register(codespace, 1405, "event attribute not found")
	ErrWasmInvalidCodeID  = sdkerrors.Register(codespace, 1406, "invalid code id")
)
