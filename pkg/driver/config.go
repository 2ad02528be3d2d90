package driver

import (
	"net/url"
	"strings"

	cosmostypes "github.com/cosmos/cosmos-sdk/types"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
)

// Config is the configuration shared by every scenario.
// Loaded via viper; uses mapstructure tags as keys.
type Config struct {
	// RPCEndpoint is the CometBFT RPC endpoint of the target network.
	RPCEndpoint string `mapstructure:"rpc_endpoint" yaml:"rpc_endpoint"`

	// ChainID is signed into every tx. When empty, it is read from the
	// node's status on first use.
	ChainID string `mapstructure:"chain_id" yaml:"chain_id"`

	// FaucetURL receives POST {"denom", "address"} credit requests.
	FaucetURL string `mapstructure:"faucet_url" yaml:"faucet_url"`

	// Mnemonic of the wallet which signs every tx.
	Mnemonic string `mapstructure:"mnemonic" yaml:"-"`

	// AddressPrefix is the bech32 prefix of the wallet addresses.
	AddressPrefix string `mapstructure:"address_prefix" yaml:"address_prefix"`

	// GasPrice is a decimal coin (e.g. 0.025ujunox). When empty, txs are
	// broadcast with simulated gas and an empty fee.
	GasPrice string `mapstructure:"gas_price" yaml:"gas_price"`

	// Denom is the denom requested from the faucet.
	Denom string `mapstructure:"denom" yaml:"denom"`

	CodeID          uint64 `mapstructure:"code_id" yaml:"code_id"`
	ContractAddress string `mapstructure:"contract_address" yaml:"contract_address"`
	WasmPath        string `mapstructure:"wasm_path" yaml:"wasm_path"`

	// SendReceiver and SendAmount configure the send scenario. An empty
	// receiver makes that scenario fail basic validation.
	SendReceiver string `mapstructure:"send_receiver" yaml:"send_receiver"`
	SendAmount   string `mapstructure:"send_amount" yaml:"send_amount"`
}

// DefaultConfig returns the configuration targeting the messages contract
// deployed on the uni testnet.
func DefaultConfig() Config {
	return Config{
		RPCEndpoint:     juno.UniTestNetRPCEndpoint,
		ChainID:         juno.UniTestNetChainID,
		FaucetURL:       juno.UniTestNetFaucetURL,
		Mnemonic:        juno.DriverTestMnemonic,
		AddressPrefix:   juno.AccountAddressPrefix,
		GasPrice:        juno.UniTestNetGasPrice,
		Denom:           juno.UniTestNetDenom,
		CodeID:          juno.MessagesCodeID,
		ContractAddress: juno.MessagesContractAddress,
		WasmPath:        juno.MessagesWasmPath,
		SendAmount:      juno.DriverSendAmount,
	}
}

// GasPricePtr returns nil when no gas price is configured.
func (config *Config) GasPricePtr() *string {
	if strings.TrimSpace(config.GasPrice) == "" {
		return nil
	}
	gasPrice := strings.TrimSpace(config.GasPrice)
	return &gasPrice
}

// Validate checks the values which would otherwise only fail once a scenario
// reaches the network.
func (config *Config) Validate() error {
	rpcURL, err := url.Parse(config.RPCEndpoint)
	if err != nil || rpcURL.Scheme == "" || rpcURL.Host == "" {
		return ErrDriverInvalidConfig.Wrapf("invalid rpc endpoint %q", config.RPCEndpoint)
	}

	if strings.TrimSpace(config.Mnemonic) == "" {
		return ErrDriverInvalidConfig.Wrap("empty mnemonic")
	}

	if gasPrice := config.GasPricePtr(); gasPrice != nil {
		if _, err = cosmostypes.ParseDecCoin(*gasPrice); err != nil {
			return ErrDriverInvalidConfig.Wrapf("invalid gas price %q: %v", config.GasPrice, err)
		}
	}

	if err = cosmostypes.ValidateDenom(config.Denom); err != nil {
		return ErrDriverInvalidConfig.Wrapf("invalid denom %q: %v", config.Denom, err)
	}

	if config.CodeID == 0 {
		return ErrDriverInvalidConfig.Wrap("code id MUST be positive")
	}

	if config.ContractAddress == "" {
		return ErrDriverInvalidConfig.Wrap("empty contract address")
	}

	if config.WasmPath == "" {
		return ErrDriverInvalidConfig.Wrap("empty wasm path")
	}

	if config.SendAmount != "" {
		if _, err = cosmostypes.ParseCoinsNormalized(config.SendAmount); err != nil {
			return ErrDriverInvalidConfig.Wrapf("invalid send amount %q: %v", config.SendAmount, err)
		}
	}

	return nil
}
