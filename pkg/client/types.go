package client

import cosmostypes "github.com/cosmos/cosmos-sdk/types"

// UploadResult is the outcome of a successful code upload.
type UploadResult struct {
	// CodeID identifies the stored code on chain.
	CodeID uint64
	// Checksum is the hex encoded sha256 of the (unzipped) wasm bytecode.
	Checksum string
	// OriginalSize and CompressedSize are the byte lengths of the wasm before
	// and after gzip compression.
	OriginalSize   int
	CompressedSize int
	TxResponse     *cosmostypes.TxResponse
}

// InstantiateResult is the outcome of a successful contract instantiation.
type InstantiateResult struct {
	ContractAddress string
	TxResponse      *cosmostypes.TxResponse
}
