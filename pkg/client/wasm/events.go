package wasm

import (
	"strconv"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"
)

// FindAttribute returns the value of the first attribute named attrKey of the
// first event of type eventType.
func FindAttribute(events []abci.Event, eventType, attrKey string) (string, bool) {
	for _, event := range events {
		if event.Type != eventType {
			continue
		}
		for _, attr := range event.Attributes {
			if attr.Key == attrKey {
				return attr.Value, true
			}
		}
	}
	return "", false
}

// ParseStoreCodeEvents extracts the code ID and checksum emitted by a
// MsgStoreCode.
func ParseStoreCodeEvents(events []abci.Event) (codeID uint64, checksum string, err error) {
	codeIDStr, ok := FindAttribute(events, wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyCodeID)
	if !ok {
		return 0, "", ErrWasmEventNotFound.Wrapf("%s.%s", wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyCodeID)
	}

	codeID, err = strconv.ParseUint(codeIDStr, 10, 64)
	if err != nil {
		return 0, "", ErrWasmInvalidCodeID.Wrapf("%q: %v", codeIDStr, err)
	}

	// The checksum is informational; older chains don't emit it.
	checksum, _ = FindAttribute(events, wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyChecksum)

	return codeID, checksum, nil
}

// ParseInstantiateEvents extracts the address of the contract created by a
// MsgInstantiateContract.
func ParseInstantiateEvents(events []abci.Event) (string, error) {
	contractAddr, ok := FindAttribute(events, wasmtypes.EventTypeInstantiate, wasmtypes.AttributeKeyContractAddr)
	if !ok {
		return "", ErrWasmEventNotFound.Wrapf("%s.%s", wasmtypes.EventTypeInstantiate, wasmtypes.AttributeKeyContractAddr)
	}
	return contractAddr, nil
}
