package driver_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	abci "github.com/cometbft/cometbft/abci/types"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/faucet"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/messages"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/testutil/mockclient"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/testutil/sample"
)

// runOnly runs the named scenario of the catalog and returns its result.
func runOnly(
	t *testing.T,
	config driver.Config,
	contractClient *mockclient.MockContractClient,
	faucetClient *mockclient.MockFaucetClient,
	name string,
) (driver.Result, int) {
	t.Helper()

	env, clientsCreated := newTestEnv(t, config, contractClient, faucetClient)
	runner, err := driver.NewRunner(env, driver.WithSelection(driver.Selection{Names: []string{name}}))
	require.NoError(t, err)

	report := runner.Run(context.Background())
	result, ok := report.Result(name)
	require.True(t, ok)

	for _, other := range report.Results {
		if other.Name != name {
			require.Equal(t, driver.StatusSkipped, other.Status, other.Name)
		}
	}
	return result, *clientsCreated
}

func senderAddress(t *testing.T) string {
	t.Helper()

	sender, err := driver.GetAddress(sample.Mnemonic, juno.AccountAddressPrefix)
	require.NoError(t, err)
	return sender
}

func TestCatalog(t *testing.T) {
	expected := []struct {
		name    string
		timeout time.Duration
	}{
		{driver.ScenarioGenerateWallet, 10 * time.Second},
		{driver.ScenarioGetTestnetTokens, 100 * time.Second},
		{driver.ScenarioSendTestnetTokens, 100 * time.Second},
		{driver.ScenarioUploadCode, 100 * time.Second},
		{driver.ScenarioInstantiateCode, 100 * time.Second},
		{driver.ScenarioAddMessage, 20 * time.Second},
		{driver.ScenarioQueryAllMessages, 50 * time.Second},
		{driver.ScenarioQueryMessagesByAddr, 100 * time.Second},
		{driver.ScenarioQueryCurrentID, 100 * time.Second},
		{driver.ScenarioQueryMessagesByTopic, 100 * time.Second},
		{driver.ScenarioQueryMessagesByID, 100 * time.Second},
	}

	catalog := driver.Catalog()
	require.Len(t, catalog, len(expected))
	for i, scenario := range catalog {
		require.Equal(t, expected[i].name, scenario.Name)
		require.Equal(t, expected[i].timeout, scenario.Timeout, scenario.Name)
		require.NotEmpty(t, scenario.Categories, scenario.Name)
		require.NotNil(t, scenario.Run, scenario.Name)
	}
}

func TestScenario_GenerateWallet(t *testing.T) {
	contractClient := new(mockclient.MockContractClient)

	result, clientsCreated := runOnly(t, newTestConfig(t), contractClient, new(mockclient.MockFaucetClient), driver.ScenarioGenerateWallet)
	require.Equal(t, driver.StatusPassed, result.Status)
	require.Zero(t, clientsCreated)
	contractClient.AssertExpectations(t)
}

func TestScenario_AddMessage(t *testing.T) {
	config := newTestConfig(t)

	contractClient := new(mockclient.MockContractClient)
	contractClient.On(
		"Execute",
		mock.Anything,
		senderAddress(t),
		config.ContractAddress,
		messages.NewAddMessage("bla bla", "topics"),
		cosmostypes.Coins(nil),
	).Return(&cosmostypes.TxResponse{TxHash: "ABCD", Height: 10}, nil).Once()
	contractClient.On("Close").Return(nil).Once()

	result, clientsCreated := runOnly(t, config, contractClient, new(mockclient.MockFaucetClient), driver.ScenarioAddMessage)
	require.Equal(t, driver.StatusPassed, result.Status)
	require.Equal(t, 1, clientsCreated)
	contractClient.AssertExpectations(t)

	// The execute message keeps the contract's wire shape.
	bz, err := json.Marshal(messages.NewAddMessage("bla bla", "topics"))
	require.NoError(t, err)
	require.JSONEq(t, `{"add_message":{"message":"bla bla","topic":"topics"}}`, string(bz))
}

func TestScenario_AddMessage_Fails(t *testing.T) {
	contractClient := new(mockclient.MockContractClient)
	contractClient.On("Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("account sequence mismatch")).Once()
	contractClient.On("Close").Return(nil).Once()

	result, _ := runOnly(t, newTestConfig(t), contractClient, new(mockclient.MockFaucetClient), driver.ScenarioAddMessage)
	require.Equal(t, driver.StatusFailed, result.Status)
	require.Contains(t, result.Error, "account sequence mismatch")
	contractClient.AssertExpectations(t)
}

func TestScenario_AddMessage_TimesOut(t *testing.T) {
	scenario := driver.Catalog()[5]
	require.Equal(t, driver.ScenarioAddMessage, scenario.Name)
	scenario.Timeout = 20 * time.Millisecond

	contractClient := new(mockclient.MockContractClient)
	contractClient.On("Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.DeadlineExceeded).Once()
	contractClient.On("Close").Return(nil).Once()

	env, _ := newTestEnv(t, newTestConfig(t), contractClient, new(mockclient.MockFaucetClient))
	runner, err := driver.NewRunner(env, driver.WithScenarios(scenario))
	require.NoError(t, err)

	report := runner.Run(context.Background())
	require.Equal(t, driver.StatusTimedOut, report.Results[0].Status)
}

func TestScenario_Queries(t *testing.T) {
	tests := []struct {
		name          string
		expectedQuery func(config driver.Config) messages.QueryMsg
		expectedJSON  func(config driver.Config) string
	}{
		{
			name:          driver.ScenarioQueryAllMessages,
			expectedQuery: func(driver.Config) messages.QueryMsg { return messages.NewGetAllMessage("", "") },
			expectedJSON:  func(driver.Config) string { return `{"get_all_message":{"message":"","topic":""}}` },
		},
		{
			name: driver.ScenarioQueryMessagesByAddr,
			expectedQuery: func(config driver.Config) messages.QueryMsg {
				return messages.NewGetMessagesByAddr(config.ContractAddress)
			},
			expectedJSON: func(config driver.Config) string {
				return `{"get_messages_by_addr":{"address":"` + config.ContractAddress + `"}}`
			},
		},
		{
			name:          driver.ScenarioQueryCurrentID,
			expectedQuery: func(driver.Config) messages.QueryMsg { return messages.NewGetCurrentID() },
			expectedJSON:  func(driver.Config) string { return `{"get_current_id":{}}` },
		},
		{
			name:          driver.ScenarioQueryMessagesByTopic,
			expectedQuery: func(driver.Config) messages.QueryMsg { return messages.NewGetMessagesByTopic("") },
			expectedJSON:  func(driver.Config) string { return `{"get_messages_by_topic":{"topic":""}}` },
		},
		{
			name:          driver.ScenarioQueryMessagesByID,
			expectedQuery: func(driver.Config) messages.QueryMsg { return messages.NewGetMessagesByID(1) },
			expectedJSON:  func(driver.Config) string { return `{"get_messages_by_id":{"id":"1"}}` },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := newTestConfig(t)
			query := test.expectedQuery(config)

			bz, err := json.Marshal(query)
			require.NoError(t, err)
			require.JSONEq(t, test.expectedJSON(config), string(bz))

			contractClient := new(mockclient.MockContractClient)
			// Queries are matched on their wire encoding.
			contractClient.On("QueryContractSmart", mock.Anything, config.ContractAddress, mock.MatchedBy(func(sent any) bool {
				sentBz, err := json.Marshal(sent)
				return err == nil && string(sentBz) == string(bz)
			})).
				Return(json.RawMessage(`{"messages":[]}`), nil).Once()
			contractClient.On("Close").Return(nil).Once()

			result, _ := runOnly(t, config, contractClient, new(mockclient.MockFaucetClient), test.name)
			require.Equal(t, driver.StatusPassed, result.Status)
			contractClient.AssertExpectations(t)
		})
	}
}

func TestScenario_GetTestnetTokens_SwallowsErrors(t *testing.T) {
	config := newTestConfig(t)

	faucetClient := new(mockclient.MockFaucetClient)
	faucetClient.On("Credit", mock.Anything, juno.UniTestNetDenom, senderAddress(t)).
		Return(nil, faucet.ErrFaucetUnexpectedStatus.Wrap("429 Too Many Requests")).Once()

	result, clientsCreated := runOnly(t, config, new(mockclient.MockContractClient), faucetClient, driver.ScenarioGetTestnetTokens)
	require.Equal(t, driver.StatusPassed, result.Status)
	require.Empty(t, result.Error)
	require.Zero(t, clientsCreated)
	faucetClient.AssertExpectations(t)
}

func TestScenario_GetTestnetTokens_NoResponse(t *testing.T) {
	faucetClient := new(mockclient.MockFaucetClient)
	faucetClient.On("Credit", mock.Anything, juno.UniTestNetDenom, senderAddress(t)).
		Return(nil, nil).Once()

	result, _ := runOnly(t, newTestConfig(t), new(mockclient.MockContractClient), faucetClient, driver.ScenarioGetTestnetTokens)
	require.Equal(t, driver.StatusPassed, result.Status)
	faucetClient.AssertExpectations(t)
}

func TestScenario_GetTestnetTokens_Succeeds(t *testing.T) {
	faucetClient := new(mockclient.MockFaucetClient)
	faucetClient.On("Credit", mock.Anything, juno.UniTestNetDenom, senderAddress(t)).
		Return(&faucet.CreditResponse{StatusCode: 200, Status: "200 OK", Body: []byte("ok")}, nil).Once()

	result, _ := runOnly(t, newTestConfig(t), new(mockclient.MockContractClient), faucetClient, driver.ScenarioGetTestnetTokens)
	require.Equal(t, driver.StatusPassed, result.Status)
	faucetClient.AssertExpectations(t)
}

func TestScenario_SendTestnetTokens(t *testing.T) {
	config := newTestConfig(t)
	config.SendReceiver = sample.AccAddress()

	contractClient := new(mockclient.MockContractClient)
	contractClient.On(
		"SendTokens",
		mock.Anything,
		senderAddress(t),
		config.SendReceiver,
		mock.MatchedBy(func(amount cosmostypes.Coins) bool {
			return amount.Equal(cosmostypes.NewCoins(cosmostypes.NewInt64Coin(juno.UniTestNetDenom, 1_000_000)))
		}),
	).Return(&cosmostypes.TxResponse{TxHash: "ABCD"}, nil).Once()
	contractClient.On("Close").Return(nil).Once()

	result, _ := runOnly(t, config, contractClient, new(mockclient.MockFaucetClient), driver.ScenarioSendTestnetTokens)
	require.Equal(t, driver.StatusPassed, result.Status)
	contractClient.AssertExpectations(t)
}

func TestScenario_UploadCode(t *testing.T) {
	contractClient := new(mockclient.MockContractClient)
	contractClient.On("Upload", mock.Anything, senderAddress(t), sample.WasmCode()).
		Return(&client.UploadResult{
			CodeID:   2510,
			Checksum: "c0ffee",
			TxResponse: &cosmostypes.TxResponse{
				TxHash: "ABCD",
				Events: []abci.Event{{
					Type:       "store_code",
					Attributes: []abci.EventAttribute{{Key: "code_id", Value: "2510"}},
				}},
			},
		}, nil).Once()
	contractClient.On("Close").Return(nil).Once()

	result, _ := runOnly(t, newTestConfig(t), contractClient, new(mockclient.MockFaucetClient), driver.ScenarioUploadCode)
	require.Equal(t, driver.StatusPassed, result.Status)
	contractClient.AssertExpectations(t)
}

func TestScenario_InstantiateCode(t *testing.T) {
	config := newTestConfig(t)

	contractClient := new(mockclient.MockContractClient)
	contractClient.On(
		"Instantiate",
		mock.Anything,
		senderAddress(t),
		config.CodeID,
		struct{}{},
		juno.MessagesContractLabel,
		"",
	).Return(&client.InstantiateResult{
		ContractAddress: sample.ContractAddress(),
		TxResponse:      &cosmostypes.TxResponse{TxHash: "ABCD"},
	}, nil).Once()
	contractClient.On("Close").Return(nil).Once()

	result, _ := runOnly(t, config, contractClient, new(mockclient.MockFaucetClient), driver.ScenarioInstantiateCode)
	require.Equal(t, driver.StatusPassed, result.Status)
	contractClient.AssertExpectations(t)
}

func TestScenario_ClientSetupError(t *testing.T) {
	env, err := driver.NewEnv(
		newTestConfig(t),
		driver.WithEnvLogger(newTestLogger()),
		driver.WithFaucetClient(new(mockclient.MockFaucetClient)),
		driver.WithClientFactory(func(context.Context, driver.Config) (client.ContractClient, error) {
			return nil, errors.New("connection refused")
		}),
	)
	require.NoError(t, err)

	runner, err := driver.NewRunner(env)
	require.NoError(t, err)

	report := runner.Run(context.Background())
	require.Equal(t, 5, report.Count(driver.StatusFailed))
	require.Equal(t, 5, report.Count(driver.StatusSkipped))
	require.True(t, report.Failed())
}
