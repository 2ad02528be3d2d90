package wasm

import (
	"errors"
	"io/fs"
	"os"

	"github.com/CosmWasm/wasmd/x/wasm/ioutils"
)

// LoadWasmFile reads the contract bytecode at path. It fails if the file is
// missing, unreadable or neither raw nor gzipped wasm, so that callers can
// abort before any network activity.
func LoadWasmFile(path string) ([]byte, error) {
	wasmCode, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, ErrWasmFileNotFound.Wrapf("%q", path)
	case err != nil:
		return nil, ErrWasmFileRead.Wrapf("%q: %v", path, err)
	}

	if !ioutils.IsWasm(wasmCode) && !ioutils.IsGzip(wasmCode) {
		return nil, ErrWasmInvalidCode.Wrapf("%q (%d bytes)", path, len(wasmCode))
	}

	return wasmCode, nil
}
