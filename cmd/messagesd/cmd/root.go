package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/app/juno"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/flags"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/logger"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/signals"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
)

// NewRootCmd creates the messagesd root command. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	juno.InitSDKConfig()

	rootCmd := &cobra.Command{
		Use:   "messagesd",
		Short: "Integration driver for the messages CosmWasm contract",
		Long: `messagesd exercises the messages contract deployed on the Juno uni testnet.

It derives a wallet from a mnemonic, then uploads, instantiates, executes and
queries the contract, requests tokens from the faucet and sends tokens. Each
scenario carries categories (stable, needs-funds, destructive, faucet, offline)
which select what a run executes; by default only the stable scenarios run.

Configuration is read, in order of precedence, from flags, MESSAGES_* environment
variables and messages_config.yaml ($HOME/.messages or the working directory).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.PreRunESetup(cmd, args); err != nil {
				return err
			}

			// Registered once the configured logger exists.
			ctx, cancel := context.WithCancel(cmd.Context())
			cmd.SetContext(ctx)
			signals.GoOnExitSignal(ctx, logger.Logger, cancel)

			return setupViper()
		},
	}

	rootCmd.SetGlobalNormalizationFunc(flags.NormalizeConfigKeyNames)

	rootCmd.PersistentFlags().StringVar(&logger.LogLevel, flags.FlagLogLevel, flags.DefaultLogLevel, flags.FlagLogLevelUsage)
	rootCmd.PersistentFlags().StringVar(&logger.LogOutput, flags.FlagLogOutput, flags.DefaultLogOutput, flags.FlagLogOutputUsage)
	rootCmd.PersistentFlags().StringVar(&configPath, flags.FlagConfig, flags.DefaultConfig, flags.FlagConfigUsage)

	defaults := driver.DefaultConfig()
	if err := flags.BindFlags(viper.GetViper(), rootCmd.PersistentFlags(),
		flags.FlagDescriptor{FlagName: flags.FlagRPCEndpoint, ConfigKey: configKeyRPCEndpoint, Default: defaults.RPCEndpoint, Description: flags.FlagRPCEndpointUsage},
		flags.FlagDescriptor{FlagName: flags.FlagFaucetURL, ConfigKey: configKeyFaucetURL, Default: defaults.FaucetURL, Description: flags.FlagFaucetURLUsage},
		flags.FlagDescriptor{FlagName: flags.FlagGasPrice, ConfigKey: configKeyGasPrice, Default: defaults.GasPrice, Description: flags.FlagGasPriceUsage},
		flags.FlagDescriptor{FlagName: flags.FlagWasmPath, ConfigKey: configKeyWasmPath, Default: defaults.WasmPath, Description: flags.FlagWasmPathUsage},
	); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		RunCmd(),
		AddressCmd(),
		WalletCmd(),
		FaucetCmd(),
	)

	return rootCmd
}
