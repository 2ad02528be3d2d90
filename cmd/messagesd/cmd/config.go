package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
)

const (
	configName      = "messages_config"
	configType      = "yaml"
	configDirName   = ".messages"
	configEnvPrefix = "MESSAGES"

	configKeyRPCEndpoint     = "rpc_endpoint"
	configKeyChainID         = "chain_id"
	configKeyFaucetURL       = "faucet_url"
	configKeyMnemonic        = "mnemonic"
	configKeyAddressPrefix   = "address_prefix"
	configKeyGasPrice        = "gas_price"
	configKeyDenom           = "denom"
	configKeyCodeID          = "code_id"
	configKeyContractAddress = "contract_address"
	configKeyWasmPath        = "wasm_path"
	configKeySendReceiver    = "send_receiver"
	configKeySendAmount      = "send_amount"
)

// configPath is bound to the --config flag.
var configPath string

// setupViper layers the config sources: explicitly set flags, then
// MESSAGES_* env vars, then the config file, then the built-in defaults.
func setupViper() error {
	viper.SetEnvPrefix(configEnvPrefix)
	viper.AutomaticEnv()

	setViperDefaults(driver.DefaultConfig())

	return setViperConfig()
}

func setViperConfig() error {
	viper.SetConfigType(configType)

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName(configName)
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, configDirName))
		}
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine when it was not asked for explicitly.
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) && configPath == "" {
			return nil
		}
		return ErrMessagesdConfig.Wrapf("reading config file: %v", err)
	}
	return nil
}

func setViperDefaults(config driver.Config) {
	viper.SetDefault(configKeyRPCEndpoint, config.RPCEndpoint)
	viper.SetDefault(configKeyChainID, config.ChainID)
	viper.SetDefault(configKeyFaucetURL, config.FaucetURL)
	viper.SetDefault(configKeyMnemonic, config.Mnemonic)
	viper.SetDefault(configKeyAddressPrefix, config.AddressPrefix)
	viper.SetDefault(configKeyGasPrice, config.GasPrice)
	viper.SetDefault(configKeyDenom, config.Denom)
	viper.SetDefault(configKeyCodeID, config.CodeID)
	viper.SetDefault(configKeyContractAddress, config.ContractAddress)
	viper.SetDefault(configKeyWasmPath, config.WasmPath)
	viper.SetDefault(configKeySendReceiver, config.SendReceiver)
	viper.SetDefault(configKeySendAmount, config.SendAmount)
}

// loadConfig decodes the layered viper settings into a driver.Config.
func loadConfig() (driver.Config, error) {
	var config driver.Config
	if err := viper.Unmarshal(&config); err != nil {
		return driver.Config{}, ErrMessagesdConfig.Wrap(err.Error())
	}
	return config, nil
}
