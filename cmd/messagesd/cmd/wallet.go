package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/flags"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/wallet"
)

var flagWords int

// generatedWallet is printed by the wallet generate command.
type generatedWallet struct {
	Mnemonic string `yaml:"mnemonic"`
	Address  string `yaml:"address"`
}

// WalletCmd returns the wallet command group.
func WalletCmd() *cobra.Command {
	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet helpers",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random mnemonic and print it with its account address",
		Long: `Generate a random BIP39 mnemonic and print it together with the address of
account 0 for the configured (or --prefix) address prefix.

The mnemonic is printed in clear text; it is meant for throwaway testnet wallets.`,
		Args: cobra.NoArgs,
		RunE: runWalletGenerate,
	}
	generateCmd.Flags().IntVar(&flagWords, flags.FlagWords, flags.DefaultWords, flags.FlagWordsUsage)
	generateCmd.Flags().StringVar(&flagPrefix, flags.FlagPrefix, "", flags.FlagPrefixUsage)

	walletCmd.AddCommand(generateCmd)
	return walletCmd
}

func runWalletGenerate(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	prefix := config.AddressPrefix
	if flagPrefix != "" {
		prefix = flagPrefix
	}

	w, mnemonic, err := wallet.Random(flagWords, wallet.WithPrefix(prefix))
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	defer encoder.Close()

	return encoder.Encode(generatedWallet{
		Mnemonic: mnemonic,
		Address:  w.Address(),
	})
}
