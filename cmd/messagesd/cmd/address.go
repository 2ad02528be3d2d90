package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/flags"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
)

var flagPrefix string

// AddressCmd returns the command which prints the address derived from the
// configured mnemonic.
func AddressCmd() *cobra.Command {
	addressCmd := &cobra.Command{
		Use:   "address",
		Short: "Print the account address derived from the configured mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			prefix := config.AddressPrefix
			if flagPrefix != "" {
				prefix = flagPrefix
			}

			address, err := driver.GetAddress(config.Mnemonic, prefix)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), address)
			return err
		},
	}

	addressCmd.Flags().StringVar(&flagPrefix, flags.FlagPrefix, "", flags.FlagPrefixUsage)

	return addressCmd
}
