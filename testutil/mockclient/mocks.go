// Package mockclient provides testify mocks of the client interfaces.
package mockclient

import (
	"context"
	"encoding/json"

	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/mock"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/faucet"
)

var (
	_ client.TxContext      = (*MockTxContext)(nil)
	_ client.ContractClient = (*MockContractClient)(nil)
)

// MockTxContext is a mock implementation of the client.TxContext interface.
// TxConfig is not mocked; it returns the config given at construction so
// that real txs can be built, signed and decoded.
type MockTxContext struct {
	mock.Mock
	txConfig cosmosclient.TxConfig
}

func NewMockTxContext(txConfig cosmosclient.TxConfig) *MockTxContext {
	return &MockTxContext{txConfig: txConfig}
}

func (m *MockTxContext) TxConfig() cosmosclient.TxConfig {
	return m.txConfig
}

func (m *MockTxContext) ChainID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTxContext) GetAccount(ctx context.Context, address string) (uint64, uint64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(uint64), args.Get(1).(uint64), args.Error(2)
}

func (m *MockTxContext) SimulateTx(ctx context.Context, txBytes []byte) (uint64, error) {
	args := m.Called(ctx, txBytes)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockTxContext) BroadcastTx(ctx context.Context, txBytes []byte) (*cosmostypes.TxResponse, error) {
	args := m.Called(ctx, txBytes)
	txRes, _ := args.Get(0).(*cosmostypes.TxResponse)
	return txRes, args.Error(1)
}

func (m *MockTxContext) QueryTx(ctx context.Context, txHash []byte) (*cosmostypes.TxResponse, error) {
	args := m.Called(ctx, txHash)
	txRes, _ := args.Get(0).(*cosmostypes.TxResponse)
	return txRes, args.Error(1)
}

func (m *MockTxContext) QueryContractSmart(ctx context.Context, contract string, queryData []byte) ([]byte, error) {
	args := m.Called(ctx, contract, queryData)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockTxContext) Close() error {
	return m.Called().Error(0)
}

// MockContractClient is a mock implementation of the client.ContractClient
// interface.
type MockContractClient struct {
	mock.Mock
}

func (m *MockContractClient) SignerAddress() string {
	return m.Called().String(0)
}

func (m *MockContractClient) SendTokens(
	ctx context.Context,
	fromAddress, toAddress string,
	amount cosmostypes.Coins,
) (*cosmostypes.TxResponse, error) {
	args := m.Called(ctx, fromAddress, toAddress, amount)
	txRes, _ := args.Get(0).(*cosmostypes.TxResponse)
	return txRes, args.Error(1)
}

func (m *MockContractClient) Upload(ctx context.Context, senderAddress string, wasmCode []byte) (*client.UploadResult, error) {
	args := m.Called(ctx, senderAddress, wasmCode)
	res, _ := args.Get(0).(*client.UploadResult)
	return res, args.Error(1)
}

func (m *MockContractClient) Instantiate(
	ctx context.Context,
	senderAddress string,
	codeID uint64,
	initMsg any,
	label, admin string,
) (*client.InstantiateResult, error) {
	args := m.Called(ctx, senderAddress, codeID, initMsg, label, admin)
	res, _ := args.Get(0).(*client.InstantiateResult)
	return res, args.Error(1)
}

func (m *MockContractClient) Execute(
	ctx context.Context,
	senderAddress, contractAddress string,
	msg any,
	funds cosmostypes.Coins,
) (*cosmostypes.TxResponse, error) {
	args := m.Called(ctx, senderAddress, contractAddress, msg, funds)
	txRes, _ := args.Get(0).(*cosmostypes.TxResponse)
	return txRes, args.Error(1)
}

func (m *MockContractClient) QueryContractSmart(
	ctx context.Context,
	contractAddress string,
	query any,
) (json.RawMessage, error) {
	args := m.Called(ctx, contractAddress, query)
	data, _ := args.Get(0).(json.RawMessage)
	return data, args.Error(1)
}

func (m *MockContractClient) Close() error {
	return m.Called().Error(0)
}

// MockFaucetClient is a mock faucet credit client.
type MockFaucetClient struct {
	mock.Mock
}

func (m *MockFaucetClient) Credit(ctx context.Context, denom, address string) (*faucet.CreditResponse, error) {
	args := m.Called(ctx, denom, address)
	res, _ := args.Get(0).(*faucet.CreditResponse)
	return res, args.Error(1)
}
