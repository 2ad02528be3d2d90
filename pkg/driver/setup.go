package driver

import (
	"context"

	"cosmossdk.io/depinject"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client/tx"
	txtypes "github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client/tx/types"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog/polyzero"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/wallet"
)

type setupConfig struct {
	prefix     string
	chainID    string
	logger     polylog.Logger
	clientOpts []client.ContractClientOption
}

// SetupOptionFn configures SetupClient.
type SetupOptionFn func(*setupConfig)

// WithAddressPrefix sets the bech32 prefix of the wallet. An empty prefix
// keeps the default "juno".
func WithAddressPrefix(prefix string) SetupOptionFn {
	return func(cfg *setupConfig) {
		if prefix != "" {
			cfg.prefix = prefix
		}
	}
}

// WithChainID skips the node status lookup for the chain ID. An empty chain
// ID keeps the lookup.
func WithChainID(chainID string) SetupOptionFn {
	return func(cfg *setupConfig) {
		cfg.chainID = chainID
	}
}

// WithSetupLogger sets the logger of the signing client. By default the
// logger of the context is used.
func WithSetupLogger(logger polylog.Logger) SetupOptionFn {
	return func(cfg *setupConfig) {
		cfg.logger = logger
	}
}

// WithClientOptions appends options to the signing client, after the gas
// price option derived from the gasPrice argument.
func WithClientOptions(opts ...client.ContractClientOption) SetupOptionFn {
	return func(cfg *setupConfig) {
		cfg.clientOpts = append(cfg.clientOpts, opts...)
	}
}

// SetupClient derives a wallet from mnemonic and connects a signing client to
// the CometBFT RPC endpoint at rpcURL.
//
// When gasPrice is nil, the client simulates gas and sends txs with an empty
// fee. Otherwise gasPrice is parsed as a decimal coin (e.g. "0.025ujunox") and
// the fee is the gas price times the adjusted gas limit, rounded up.
//
// Errors of the wallet derivation and of the transport are returned
// unchanged.
func SetupClient(
	ctx context.Context,
	mnemonic, rpcURL string,
	gasPrice *string,
	opts ...SetupOptionFn,
) (*tx.SigningClient, error) {
	cfg := &setupConfig{
		prefix: juno.AccountAddressPrefix,
		logger: polylog.Ctx(ctx),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = polyzero.NewLogger(polyzero.WithLevel(polyzero.InfoLevel))
	}

	signer, err := wallet.FromMnemonic(mnemonic, wallet.WithPrefix(cfg.prefix))
	if err != nil {
		return nil, err
	}

	var clientOpts []client.ContractClientOption
	if gasPrice != nil {
		decGasPrice, err := cosmostypes.ParseDecCoin(*gasPrice)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, tx.WithGasPrice(decGasPrice))
	}
	clientOpts = append(clientOpts, cfg.clientOpts...)

	encCfg, err := client.NewEncodingConfig(cfg.prefix)
	if err != nil {
		return nil, err
	}

	cometClient, err := cosmosclient.NewClientFromNode(rpcURL)
	if err != nil {
		return nil, err
	}

	clientCtx := cosmosclient.Context{}.
		WithClient(cometClient).
		WithNodeURI(rpcURL).
		WithChainID(cfg.chainID).
		WithCodec(encCfg.Codec).
		WithInterfaceRegistry(encCfg.InterfaceRegistry).
		WithTxConfig(encCfg.TxConfig).
		WithFromAddress(signer.AccAddress())

	txCtx, err := tx.NewTxContext(depinject.Supply(txtypes.Context(clientCtx)))
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Str(logging.FieldComponent, logging.ComponentSetup).
		Str(logging.FieldEndpoint, rpcURL).
		Str(logging.FieldAddress, signer.Address()).
		Bool("gas_price_set", gasPrice != nil).
		Msg("client ready")

	return tx.NewSigningClient(
		depinject.Supply(txCtx, signer, cfg.logger),
		clientOpts...,
	)
}

// GetAddress returns the address of the first account derived from
// mnemonic. An empty prefix means "juno".
func GetAddress(mnemonic, prefix string) (string, error) {
	return wallet.ResolveAddress(mnemonic, prefix)
}
