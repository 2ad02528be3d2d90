package driver

import (
	"context"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client/wasm"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/faucet"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog/polyzero"
)

// FaucetClient requests testnet tokens for an address.
type FaucetClient interface {
	Credit(ctx context.Context, denom, address string) (*faucet.CreditResponse, error)
}

// ClientFactory returns a new contract client for a scenario. The scenario
// closes the client when it is done.
type ClientFactory func(ctx context.Context, config Config) (client.ContractClient, error)

// Env is the state shared by every scenario of a run.
type Env struct {
	Config   Config
	WasmCode []byte

	logger    polylog.Logger
	newClient ClientFactory
	faucet    FaucetClient
}

// EnvOptionFn configures an Env.
type EnvOptionFn func(*Env)

// WithClientFactory replaces SetupClient as the source of contract clients.
func WithClientFactory(newClient ClientFactory) EnvOptionFn {
	return func(env *Env) {
		env.newClient = newClient
	}
}

// WithFaucetClient replaces the HTTP faucet client built from the config.
func WithFaucetClient(faucetClient FaucetClient) EnvOptionFn {
	return func(env *Env) {
		env.faucet = faucetClient
	}
}

// WithEnvLogger sets the logger which scenarios log to.
func WithEnvLogger(logger polylog.Logger) EnvOptionFn {
	return func(env *Env) {
		env.logger = logger
	}
}

// NewEnv validates config and loads the contract WASM file. A missing or
// invalid WASM file fails here, before any scenario can run.
func NewEnv(config Config, opts ...EnvOptionFn) (*Env, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	wasmCode, err := wasm.LoadWasmFile(config.WasmPath)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Config:   config,
		WasmCode: wasmCode,
	}
	for _, opt := range opts {
		opt(env)
	}

	if env.logger == nil {
		env.logger = polyzero.NewLogger(polyzero.WithLevel(polyzero.InfoLevel))
	}

	if env.newClient == nil {
		env.newClient = defaultClientFactory(env.logger)
	}

	if env.faucet == nil {
		faucetClient, err := faucet.NewClient(
			faucet.WithCreditURL(config.FaucetURL),
			faucet.WithLogger(env.logger),
		)
		if err != nil {
			return nil, err
		}
		env.faucet = faucetClient
	}

	env.logger.Debug().
		Str(logging.FieldPath, config.WasmPath).
		Int(logging.FieldSize, len(wasmCode)).
		Msg("loaded contract wasm")

	return env, nil
}

// Logger returns the logger of the env.
func (env *Env) Logger() polylog.Logger {
	return env.logger
}

// NewClient returns a new contract client signing with the configured
// mnemonic.
func (env *Env) NewClient(ctx context.Context) (client.ContractClient, error) {
	contractClient, err := env.newClient(ctx, env.Config)
	if err != nil {
		return nil, err
	}
	if contractClient == nil {
		return nil, ErrDriverNoClient
	}
	return contractClient, nil
}

func defaultClientFactory(logger polylog.Logger) ClientFactory {
	return func(ctx context.Context, config Config) (client.ContractClient, error) {
		signingClient, err := SetupClient(
			ctx,
			config.Mnemonic,
			config.RPCEndpoint,
			config.GasPricePtr(),
			WithAddressPrefix(config.AddressPrefix),
			WithChainID(config.ChainID),
			WithSetupLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return signingClient, nil
	}
}
