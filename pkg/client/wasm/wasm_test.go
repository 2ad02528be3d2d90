package wasm_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"
	abci "github.com/cometbft/cometbft/abci/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client/wasm"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/testutil/sample"
)

func TestLoadWasmFile(t *testing.T) {
	dir := t.TempDir()

	wasmPath := filepath.Join(dir, "messages.wasm")
	require.NoError(t, os.WriteFile(wasmPath, sample.WasmCode(), 0o600))

	gzipped, err := ioutils.GzipIt(sample.WasmCode())
	require.NoError(t, err)
	gzipPath := filepath.Join(dir, "messages.wasm.gz")
	require.NoError(t, os.WriteFile(gzipPath, gzipped, 0o600))

	textPath := filepath.Join(dir, "messages.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("not a contract"), 0o600))

	tests := []struct {
		desc        string
		path        string
		expectedErr error
	}{
		{desc: "raw wasm", path: wasmPath},
		{desc: "gzipped wasm", path: gzipPath},
		{desc: "missing file", path: filepath.Join(dir, "missing.wasm"), expectedErr: wasm.ErrWasmFileNotFound},
		{desc: "not wasm", path: textPath, expectedErr: wasm.ErrWasmInvalidCode},
		{desc: "directory", path: dir, expectedErr: wasm.ErrWasmFileRead},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			code, err := wasm.LoadWasmFile(test.path)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				require.Nil(t, code)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, code)
		})
	}
}

func TestNewStoreCodeMsg(t *testing.T) {
	sender := sample.AccAddress()

	msg, err := wasm.NewStoreCodeMsg(sender, sample.WasmCode())
	require.NoError(t, err)
	require.Equal(t, sender, msg.Sender)
	require.True(t, ioutils.IsGzip(msg.WASMByteCode))
	require.Nil(t, msg.InstantiatePermission)

	// Already compressed code is not compressed twice.
	gzipped, err := ioutils.GzipIt(sample.WasmCode())
	require.NoError(t, err)
	msg, err = wasm.NewStoreCodeMsg(sender, gzipped)
	require.NoError(t, err)
	require.Equal(t, gzipped, msg.WASMByteCode)

	_, err = wasm.NewStoreCodeMsg(sender, []byte("#!/bin/sh"))
	require.ErrorIs(t, err, wasm.ErrWasmInvalidCode)
}

func TestNewInstantiateMsg(t *testing.T) {
	sender := sample.AccAddress()

	msg, err := wasm.NewInstantiateMsg(sender, "", 2509, "messages", struct{}{}, nil)
	require.NoError(t, err)
	require.Equal(t, sender, msg.Sender)
	require.Empty(t, msg.Admin)
	require.Equal(t, uint64(2509), msg.CodeID)
	require.Equal(t, "messages", msg.Label)
	require.JSONEq(t, `{}`, string(msg.Msg))
	require.True(t, msg.Funds.Empty())

	_, err = wasm.NewInstantiateMsg(sender, "", 0, "messages", struct{}{}, nil)
	require.ErrorIs(t, err, wasm.ErrWasmInvalidCodeID)
}

func TestNewExecuteMsg(t *testing.T) {
	sender := sample.AccAddress()
	contract := sample.ContractAddress()
	funds := cosmostypes.NewCoins(cosmostypes.NewInt64Coin("ujunox", 10))

	msg, err := wasm.NewExecuteMsg(sender, contract, json.RawMessage(`{"add_message":{"message":"bla bla","topic":"topics"}}`), funds)
	require.NoError(t, err)
	require.Equal(t, sender, msg.Sender)
	require.Equal(t, contract, msg.Contract)
	require.JSONEq(t, `{"add_message":{"message":"bla bla","topic":"topics"}}`, string(msg.Msg))
	require.Equal(t, funds, msg.Funds)
}

func TestMarshalPayload(t *testing.T) {
	tests := []struct {
		desc         string
		payload      any
		expectedJSON string
		expectedErr  error
	}{
		{desc: "struct", payload: struct {
			Topic string `json:"topic"`
		}{Topic: "topics"}, expectedJSON: `{"topic":"topics"}`},
		{desc: "map", payload: map[string]any{"get_current_id": struct{}{}}, expectedJSON: `{"get_current_id":{}}`},
		{desc: "raw bytes", payload: []byte(`{"get_current_id":{}}`), expectedJSON: `{"get_current_id":{}}`},
		{desc: "raw message", payload: json.RawMessage(`{}`), expectedJSON: `{}`},
		{desc: "nil", payload: nil, expectedErr: wasm.ErrWasmInvalidPayload},
		{desc: "invalid raw bytes", payload: []byte(`{`), expectedErr: wasm.ErrWasmInvalidPayload},
		{desc: "unmarshalable", payload: make(chan int), expectedErr: wasm.ErrWasmInvalidPayload},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			bz, err := wasm.MarshalPayload(test.payload)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.JSONEq(t, test.expectedJSON, string(bz))
		})
	}
}

func TestParseStoreCodeEvents(t *testing.T) {
	events := []abci.Event{
		{Type: "message", Attributes: []abci.EventAttribute{{Key: "action", Value: "/cosmwasm.wasm.v1.MsgStoreCode"}}},
		{Type: "store_code", Attributes: []abci.EventAttribute{
			{Key: "code_checksum", Value: "deadbeef"},
			{Key: "code_id", Value: "2509"},
		}},
	}

	codeID, checksum, err := wasm.ParseStoreCodeEvents(events)
	require.NoError(t, err)
	require.Equal(t, uint64(2509), codeID)
	require.Equal(t, "deadbeef", checksum)

	_, _, err = wasm.ParseStoreCodeEvents(events[:1])
	require.ErrorIs(t, err, wasm.ErrWasmEventNotFound)

	_, _, err = wasm.ParseStoreCodeEvents([]abci.Event{
		{Type: "store_code", Attributes: []abci.EventAttribute{{Key: "code_id", Value: "two"}}},
	})
	require.ErrorIs(t, err, wasm.ErrWasmInvalidCodeID)
}

func TestParseInstantiateEvents(t *testing.T) {
	contract := sample.ContractAddress()
	events := []abci.Event{
		{Type: "instantiate", Attributes: []abci.EventAttribute{
			{Key: "_contract_address", Value: contract},
			{Key: "code_id", Value: "2509"},
		}},
	}

	addr, err := wasm.ParseInstantiateEvents(events)
	require.NoError(t, err)
	require.Equal(t, contract, addr)

	_, err = wasm.ParseInstantiateEvents(nil)
	require.ErrorIs(t, err, wasm.ErrWasmEventNotFound)
}
