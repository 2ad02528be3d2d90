package tx

import (
	"context"
	"encoding/hex"
	"strings"

	"cosmossdk.io/depinject"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"google.golang.org/grpc"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	clienttypes "github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client/tx/types"
)

// maxGRPCMsgSize is the maximum message size the gRPC client can send and
// receive. Wasm uploads easily exceed the default 4MB limit.
const maxGRPCMsgSize = 100 * 1024 * 1024 // 100MB

var _ client.TxContext = (*cosmosTxContext)(nil)

// cosmosTxContext implements client.TxContext over a cosmos-sdk client
// context. Queries are routed through ABCI (the client context implements
// gogoproto's grpc.ClientConn) and tx lookups go directly to CometBFT RPC.
type cosmosTxContext struct {
	clientCtx clienttypes.Context
}

// NewTxContext initializes a new cosmosTxContext with the given dependencies.
//
// Required dependencies:
//   - types.Context
func NewTxContext(deps depinject.Config) (client.TxContext, error) {
	txCtx := &cosmosTxContext{}

	if err := depinject.Inject(
		deps,
		&txCtx.clientCtx,
	); err != nil {
		return nil, err
	}

	if txCtx.clientCtx.Client == nil {
		return nil, ErrTxContextNoNode
	}
	if txCtx.clientCtx.TxConfig == nil {
		return nil, ErrTxContextNoTxConfig
	}

	return txCtx, nil
}

func (txCtx *cosmosTxContext) cosmosClientCtx() cosmosclient.Context {
	return cosmosclient.Context(txCtx.clientCtx)
}

// TxConfig returns the tx config of the client context.
func (txCtx *cosmosTxContext) TxConfig() cosmosclient.TxConfig {
	return txCtx.clientCtx.TxConfig
}

// ChainID returns the chain ID of the client context if set, otherwise the
// network reported by the node's status.
func (txCtx *cosmosTxContext) ChainID(ctx context.Context) (string, error) {
	if txCtx.clientCtx.ChainID != "" {
		return txCtx.clientCtx.ChainID, nil
	}

	status, err := txCtx.clientCtx.Client.Status(ctx)
	if err != nil {
		return "", ErrTxContextNodeStatus.Wrap(err.Error())
	}
	return status.NodeInfo.Network, nil
}

// GetAccount queries the auth module for address and returns its account
// number and sequence.
func (txCtx *cosmosTxContext) GetAccount(
	ctx context.Context,
	address string,
) (accountNumber, sequence uint64, err error) {
	clientCtx := txCtx.cosmosClientCtx()
	authQueryClient := authtypes.NewQueryClient(clientCtx)

	res, err := authQueryClient.Account(ctx, &authtypes.QueryAccountRequest{Address: address})
	if err != nil {
		return 0, 0, ErrTxContextAccountNotFound.Wrapf("address %q: %v", address, err)
	}

	var account cosmostypes.AccountI
	if err = clientCtx.InterfaceRegistry.UnpackAny(res.Account, &account); err != nil {
		return 0, 0, ErrTxContextAccountNotFound.Wrapf("unpacking account %q: %v", address, err)
	}

	return account.GetAccountNumber(), account.GetSequence(), nil
}

// SimulateTx calls the tx service's Simulate endpoint for txBytes.
func (txCtx *cosmosTxContext) SimulateTx(ctx context.Context, txBytes []byte) (uint64, error) {
	txSvcClient := txtypes.NewServiceClient(txCtx.cosmosClientCtx())

	simRes, err := txSvcClient.Simulate(ctx, &txtypes.SimulateRequest{TxBytes: txBytes}, gRPCCallOpts()...)
	if err != nil {
		return 0, ErrTxSimulate.Wrap(err.Error())
	}
	return simRes.GasInfo.GasUsed, nil
}

// BroadcastTx broadcasts txBytes in sync mode so that CheckTx errors are
// returned in the response.
func (txCtx *cosmosTxContext) BroadcastTx(_ context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
	return txCtx.cosmosClientCtx().BroadcastTxSync(txBytes)
}

// QueryTx looks up an included tx by hash via CometBFT RPC.
func (txCtx *cosmosTxContext) QueryTx(ctx context.Context, txHash []byte) (*cosmostypes.TxResponse, error) {
	resTx, err := txCtx.clientCtx.Client.Tx(ctx, txHash, false)
	if err != nil {
		return nil, err
	}
	return cosmostypes.NewResponseResultTx(resTx, nil, ""), nil
}

// QueryContractSmart runs a wasm smart query against contract.
func (txCtx *cosmosTxContext) QueryContractSmart(
	ctx context.Context,
	contract string,
	queryData []byte,
) ([]byte, error) {
	wasmQueryClient := wasmtypes.NewQueryClient(txCtx.cosmosClientCtx())

	res, err := wasmQueryClient.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contract,
		QueryData: queryData,
	}, gRPCCallOpts()...)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Close stops the CometBFT client if it was started (e.g. for websocket
// subscriptions). A plain HTTP client holds no resources.
func (txCtx *cosmosTxContext) Close() error {
	type stoppable interface {
		IsRunning() bool
		Stop() error
	}

	if svc, ok := txCtx.clientCtx.Client.(stoppable); ok && svc.IsRunning() {
		return svc.Stop()
	}
	return nil
}

func gRPCCallOpts() []grpc.CallOption {
	return []grpc.CallOption{
		grpc.MaxCallSendMsgSize(maxGRPCMsgSize),
		grpc.MaxCallRecvMsgSize(maxGRPCMsgSize),
	}
}

// parseTxHash decodes a hex tx hash as returned in a TxResponse.
func parseTxHash(txHash string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.ToLower(txHash), "0x"))
}
