package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/logger"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/faucet"
)

// FaucetCmd returns the faucet command group.
func FaucetCmd() *cobra.Command {
	faucetCmd := &cobra.Command{
		Use:   "faucet",
		Short: "Testnet faucet helpers",
	}

	creditCmd := &cobra.Command{
		Use:   "credit [address]",
		Short: "Request testnet tokens for an address",
		Long: `Request tokens of the configured denom from the faucet. The address defaults to
the one derived from the configured mnemonic.

Unlike the faucet scenario, a failed request makes the command fail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFaucetCredit,
	}

	faucetCmd.AddCommand(creditCmd)
	return faucetCmd
}

func runFaucetCredit(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	var address string
	if len(args) > 0 {
		address = args[0]
	} else if address, err = driver.GetAddress(config.Mnemonic, config.AddressPrefix); err != nil {
		return err
	}

	faucetClient, err := faucet.NewClient(
		faucet.WithCreditURL(config.FaucetURL),
		faucet.WithLogger(logger.Logger),
	)
	if err != nil {
		return err
	}

	creditRes, err := faucetClient.Credit(cmd.Context(), config.Denom, address)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", creditRes.Status, creditRes.Body)
	return err
}
