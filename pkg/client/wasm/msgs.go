// Package wasm builds wasmd messages from Go values, loads contract bytecode
// from disk and extracts results from the events of included txs.
package wasm

import (
	"encoding/json"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// MarshalPayload returns the JSON encoding of payload. Payloads which are
// already encoded ([]byte, json.RawMessage or wasmtypes.RawContractMessage)
// are passed through as long as they are valid JSON.
func MarshalPayload(payload any) ([]byte, error) {
	var bz []byte
	switch p := payload.(type) {
	case nil:
		return nil, ErrWasmInvalidPayload.Wrap("nil payload")
	case []byte:
		bz = p
	case json.RawMessage:
		bz = p
	case wasmtypes.RawContractMessage:
		bz = p
	default:
		var err error
		if bz, err = json.Marshal(payload); err != nil {
			return nil, ErrWasmInvalidPayload.Wrap(err.Error())
		}
	}

	if !json.Valid(bz) {
		return nil, ErrWasmInvalidPayload.Wrapf("not JSON: %q", bz)
	}
	return bz, nil
}

// NewStoreCodeMsg returns a MsgStoreCode carrying wasmCode, gzipped if it is
// raw wasm. Already gzipped code is used as is.
func NewStoreCodeMsg(sender string, wasmCode []byte) (*wasmtypes.MsgStoreCode, error) {
	var err error
	switch {
	case ioutils.IsWasm(wasmCode):
		if wasmCode, err = ioutils.GzipIt(wasmCode); err != nil {
			return nil, ErrWasmCompress.Wrap(err.Error())
		}
	case ioutils.IsGzip(wasmCode):
	default:
		return nil, ErrWasmInvalidCode.Wrapf("%d bytes are neither wasm nor gzip", len(wasmCode))
	}

	return &wasmtypes.MsgStoreCode{
		Sender:       sender,
		WASMByteCode: wasmCode,
	}, nil
}

// NewInstantiateMsg returns a MsgInstantiateContract for codeID with the
// JSON encoding of initMsg. An empty admin leaves the contract without admin.
func NewInstantiateMsg(
	sender, admin string,
	codeID uint64,
	label string,
	initMsg any,
	funds cosmostypes.Coins,
) (*wasmtypes.MsgInstantiateContract, error) {
	if codeID == 0 {
		return nil, ErrWasmInvalidCodeID.Wrap("code id must be positive")
	}

	msgBz, err := MarshalPayload(initMsg)
	if err != nil {
		return nil, err
	}

	return &wasmtypes.MsgInstantiateContract{
		Sender: sender,
		Admin:  admin,
		CodeID: codeID,
		Label:  label,
		Msg:    msgBz,
		Funds:  funds,
	}, nil
}

// NewExecuteMsg returns a MsgExecuteContract calling contract with the JSON
// encoding of msg.
func NewExecuteMsg(
	sender, contract string,
	msg any,
	funds cosmostypes.Coins,
) (*wasmtypes.MsgExecuteContract, error) {
	msgBz, err := MarshalPayload(msg)
	if err != nil {
		return nil, err
	}

	return &wasmtypes.MsgExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      msgBz,
		Funds:    funds,
	}, nil
}
