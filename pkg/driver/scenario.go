package driver

import (
	"context"
	"slices"
	"time"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

// ScenarioFn runs a scenario. ctx carries the scenario's deadline and logger
// is already tagged with the scenario name.
type ScenarioFn func(ctx context.Context, env *Env, logger polylog.Logger) error

// Scenario is a named, independently timed integration check.
type Scenario struct {
	Name       string
	Categories []Category
	Timeout    time.Duration
	Run        ScenarioFn
}

// HasCategory reports whether the scenario is tagged with category.
func (s Scenario) HasCategory(category Category) bool {
	return slices.Contains(s.Categories, category)
}

// CategoryNames returns the categories as strings, for logs and reports.
func (s Scenario) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for _, category := range s.Categories {
		names = append(names, string(category))
	}
	return names
}

// withClient runs fn with a fresh contract client and the address derived
// from the configured mnemonic, then closes the client.
func withClient(
	ctx context.Context,
	env *Env,
	logger polylog.Logger,
	fn func(contractClient client.ContractClient, sender string) error,
) error {
	sender, err := GetAddress(env.Config.Mnemonic, env.Config.AddressPrefix)
	if err != nil {
		return err
	}

	contractClient, err := env.NewClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := contractClient.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("closing contract client")
		}
	}()

	return fn(contractClient, sender)
}

func logTxResponse(logger polylog.Logger, txRes *cosmostypes.TxResponse, msg string) {
	if txRes == nil {
		logger.Info().Msg(msg)
		return
	}

	logger.Info().
		Str(logging.FieldTxHash, txRes.TxHash).
		Int64(logging.FieldHeight, txRes.Height).
		Int64(logging.FieldGasWanted, txRes.GasWanted).
		Int64(logging.FieldGasUsed, txRes.GasUsed).
		Uint64(logging.FieldCode, uint64(txRes.Code)).
		Msg(msg)
}
