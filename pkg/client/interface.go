package client

import (
	"context"
	"encoding/json"

	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
)

// TxContext consolidates the network dependencies required by the sender side
// of the tx lifecycle: account lookup, simulation, broadcast and inclusion
// lookup, plus smart contract queries.
type TxContext interface {
	// TxConfig returns the tx config used to build, sign and encode txs.
	TxConfig() cosmosclient.TxConfig

	// ChainID returns the chain ID reported by the connected node.
	ChainID(ctx context.Context) (string, error)

	// GetAccount returns the account number and sequence of address.
	GetAccount(ctx context.Context, address string) (accountNumber, sequence uint64, err error)

	// SimulateTx simulates the encoded tx and returns the gas it used.
	SimulateTx(ctx context.Context, txBytes []byte) (gasUsed uint64, err error)

	// BroadcastTx broadcasts the encoded tx, blocking until the CheckTx ABCI
	// operation completes.
	BroadcastTx(ctx context.Context, txBytes []byte) (*cosmostypes.TxResponse, error)

	// QueryTx returns the result of an included tx by hash. It returns an
	// error while the tx is not (yet) included.
	QueryTx(ctx context.Context, txHash []byte) (*cosmostypes.TxResponse, error)

	// QueryContractSmart runs a smart query against contract and returns the
	// raw JSON response.
	QueryContractSmart(ctx context.Context, contract string, queryData []byte) ([]byte, error)

	// Close releases the underlying connection.
	Close() error
}

// ContractClient signs and broadcasts transactions on behalf of a single
// wallet and queries contract state. Every tx method blocks until the tx is
// included in a block or the context is done.
type ContractClient interface {
	// SignerAddress returns the bech32 address of the signing wallet.
	SignerAddress() string

	// SendTokens transfers amount from fromAddress to toAddress.
	SendTokens(
		ctx context.Context,
		fromAddress, toAddress string,
		amount cosmostypes.Coins,
	) (*cosmostypes.TxResponse, error)

	// Upload stores wasmCode on chain; raw bytecode is gzipped first.
	Upload(ctx context.Context, senderAddress string, wasmCode []byte) (*UploadResult, error)

	// Instantiate creates a new contract instance of codeID. initMsg is JSON
	// encoded. An empty admin means no admin.
	Instantiate(
		ctx context.Context,
		senderAddress string,
		codeID uint64,
		initMsg any,
		label, admin string,
	) (*InstantiateResult, error)

	// Execute calls contractAddress with the JSON encoding of msg.
	Execute(
		ctx context.Context,
		senderAddress, contractAddress string,
		msg any,
		funds cosmostypes.Coins,
	) (*cosmostypes.TxResponse, error)

	// QueryContractSmart runs the JSON encoding of query against
	// contractAddress and returns the raw response.
	QueryContractSmart(ctx context.Context, contractAddress string, query any) (json.RawMessage, error)

	// Close releases the underlying connection.
	Close() error
}

// ContractClientOption defines a function type that modifies the ContractClient.
type ContractClientOption func(ContractClient)
