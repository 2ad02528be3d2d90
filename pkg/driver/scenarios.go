package driver

import (
	"context"
	"encoding/json"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/messages"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/wallet"
)

// Scenario names, in catalog order.
const (
	ScenarioGenerateWallet       = "Generate Wallet"
	ScenarioGetTestnetTokens     = "Get Testnet Tokens"
	ScenarioSendTestnetTokens    = "Send Testnet Tokens"
	ScenarioUploadCode           = "Upload code to testnet"
	ScenarioInstantiateCode      = "Instantiate code on testnet"
	ScenarioAddMessage           = "Add Message on testnet"
	ScenarioQueryAllMessages     = "Query all messages on testnet"
	ScenarioQueryMessagesByAddr  = "Query get all messages by addr"
	ScenarioQueryCurrentID       = "Query get current id"
	ScenarioQueryMessagesByTopic = "Query get messages by topic"
	ScenarioQueryMessagesByID    = "Query get messages by id"
)

const (
	addMessageText  = "bla bla"
	addMessageTopic = "topics"

	// queryMessageID is held by any contract which stored two messages.
	queryMessageID = 1
)

// Catalog returns every scenario in declaration order.
func Catalog() []Scenario {
	return []Scenario{
		{
			Name:       ScenarioGenerateWallet,
			Categories: []Category{CategoryOffline},
			Timeout:    10 * time.Second,
			Run:        generateWallet,
		},
		{
			Name:       ScenarioGetTestnetTokens,
			Categories: []Category{CategoryFaucet},
			Timeout:    100 * time.Second,
			Run:        getTestnetTokens,
		},
		{
			Name:       ScenarioSendTestnetTokens,
			Categories: []Category{CategoryNeedsFunds, CategoryDestructive},
			Timeout:    100 * time.Second,
			Run:        sendTestnetTokens,
		},
		{
			Name:       ScenarioUploadCode,
			Categories: []Category{CategoryNeedsFunds, CategoryDestructive},
			Timeout:    100 * time.Second,
			Run:        uploadCode,
		},
		{
			Name:       ScenarioInstantiateCode,
			Categories: []Category{CategoryNeedsFunds, CategoryDestructive},
			Timeout:    100 * time.Second,
			Run:        instantiateCode,
		},
		{
			Name:       ScenarioAddMessage,
			Categories: []Category{CategoryStable, CategoryNeedsFunds},
			Timeout:    20 * time.Second,
			Run:        addMessage,
		},
		{
			Name:       ScenarioQueryAllMessages,
			Categories: []Category{CategoryStable},
			Timeout:    50 * time.Second,
			Run: queryScenario(func(*Env) messages.QueryMsg {
				return messages.NewGetAllMessage("", "")
			}),
		},
		{
			Name:       ScenarioQueryMessagesByAddr,
			Categories: []Category{CategoryStable},
			Timeout:    100 * time.Second,
			// The deployed suite has always queried by the contract's own
			// address.
			Run: queryScenario(func(env *Env) messages.QueryMsg {
				return messages.NewGetMessagesByAddr(env.Config.ContractAddress)
			}),
		},
		{
			Name:       ScenarioQueryCurrentID,
			Categories: []Category{CategoryStable},
			Timeout:    100 * time.Second,
			Run: queryScenario(func(*Env) messages.QueryMsg {
				return messages.NewGetCurrentID()
			}),
		},
		{
			Name:       ScenarioQueryMessagesByTopic,
			Categories: []Category{CategoryStable},
			Timeout:    100 * time.Second,
			Run: queryScenario(func(*Env) messages.QueryMsg {
				return messages.NewGetMessagesByTopic("")
			}),
		},
		{
			Name:       ScenarioQueryMessagesByID,
			Categories: []Category{CategoryStable},
			Timeout:    100 * time.Second,
			Run: queryScenario(func(*Env) messages.QueryMsg {
				return messages.NewGetMessagesByID(queryMessageID)
			}),
		},
	}
}

func generateWallet(_ context.Context, _ *Env, logger polylog.Logger) error {
	mnemonic, err := wallet.Generate(wallet.DefaultWordCount)
	if err != nil {
		return err
	}

	logger.Info().Str(logging.FieldMnemonic, mnemonic).Msg("generated wallet")
	return nil
}

// getTestnetTokens never fails: faucet errors are logged and swallowed.
func getTestnetTokens(ctx context.Context, env *Env, logger polylog.Logger) error {
	address, err := GetAddress(env.Config.Mnemonic, env.Config.AddressPrefix)
	if err != nil {
		logger.Error().Err(err).Msg("unable to derive faucet recipient")
		return nil
	}
	logger.Info().Str(logging.FieldAddress, address).Msg("requesting testnet tokens")

	res, err := env.faucet.Credit(ctx, env.Config.Denom, address)
	if err != nil {
		logger.Error().Err(err).Msg("faucet credit failed")
		return nil
	}
	if res == nil {
		logger.Warn().Msg("faucet returned no response")
		return nil
	}

	logger.Info().
		Int(logging.FieldHTTPStatus, res.StatusCode).
		Str(logging.FieldResponse, string(res.Body)).
		Dur(logging.FieldDuration, res.Duration).
		Msg("faucet credited")
	return nil
}

func sendTestnetTokens(ctx context.Context, env *Env, logger polylog.Logger) error {
	amount, err := cosmostypes.ParseCoinsNormalized(env.Config.SendAmount)
	if err != nil {
		return err
	}

	return withClient(ctx, env, logger, func(contractClient client.ContractClient, sender string) error {
		txRes, err := contractClient.SendTokens(ctx, sender, env.Config.SendReceiver, amount)
		if err != nil {
			return err
		}
		logTxResponse(logger.With(logging.FieldAmount, amount.String()), txRes, "sent tokens")
		return nil
	})
}

func uploadCode(ctx context.Context, env *Env, logger polylog.Logger) error {
	return withClient(ctx, env, logger, func(contractClient client.ContractClient, sender string) error {
		res, err := contractClient.Upload(ctx, sender, env.WasmCode)
		if err != nil {
			return err
		}

		eventsJSON := []byte("[]")
		if res.TxResponse != nil {
			if eventsJSON, err = json.Marshal(res.TxResponse.Events); err != nil {
				return err
			}
		}

		logger.Info().
			Uint64(logging.FieldCodeID, res.CodeID).
			Str(logging.FieldChecksum, res.Checksum).
			Int(logging.FieldSize, res.CompressedSize).
			RawJSON(logging.FieldEvents, eventsJSON).
			Msg("uploaded code")
		return nil
	})
}

func instantiateCode(ctx context.Context, env *Env, logger polylog.Logger) error {
	return withClient(ctx, env, logger, func(contractClient client.ContractClient, sender string) error {
		res, err := contractClient.Instantiate(
			ctx,
			sender,
			env.Config.CodeID,
			struct{}{},
			juno.MessagesContractLabel,
			"",
		)
		if err != nil {
			return err
		}

		logTxResponse(
			logger.With(logging.FieldContract, res.ContractAddress),
			res.TxResponse,
			"instantiated contract",
		)
		return nil
	})
}

func addMessage(ctx context.Context, env *Env, logger polylog.Logger) error {
	return withClient(ctx, env, logger, func(contractClient client.ContractClient, sender string) error {
		txRes, err := contractClient.Execute(
			ctx,
			sender,
			env.Config.ContractAddress,
			messages.NewAddMessage(addMessageText, addMessageTopic),
			nil,
		)
		if err != nil {
			return err
		}

		logTxResponse(logger, txRes, "added message")
		return nil
	})
}

// queryScenario returns a scenario which runs the query built by newQuery
// against the configured contract and logs the raw response.
func queryScenario(newQuery func(*Env) messages.QueryMsg) ScenarioFn {
	return func(ctx context.Context, env *Env, logger polylog.Logger) error {
		return withClient(ctx, env, logger, func(contractClient client.ContractClient, _ string) error {
			query := newQuery(env)
			res, err := contractClient.QueryContractSmart(ctx, env.Config.ContractAddress, query)
			if err != nil {
				return err
			}

			logger.Info().
				Str(logging.FieldContract, env.Config.ContractAddress).
				RawJSON(logging.FieldResult, res).
				Msg("queried contract")
			return nil
		})
	}
}
