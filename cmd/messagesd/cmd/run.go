package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/flags"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/logger"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/driver"
)

var (
	flagCategories        []string
	flagExcludeCategories []string
	flagScenarios         []string
	flagReportPath        string
	flagMetricsAddr       string
)

// RunCmd returns the command which runs the selected scenarios in order.
func RunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the selected scenarios against the messages contract",
		Long: `Run the scenarios in catalog order. Each scenario runs under its own timeout;
a failed or timed out scenario does not stop the run.

Scenarios are selected by category unless --scenarios names them explicitly.
Excluded categories always win.`,
		Example: `  messagesd run
  messagesd run --categories stable,needs-funds --exclude-categories destructive
  messagesd run --scenarios "Add Message on testnet" --scenarios "Query get current id" --report report.yaml
  messagesd run --metrics-addr localhost:9090`,
		Args: cobra.NoArgs,
		RunE: runScenarios,
	}

	runCmd.Flags().StringSliceVar(&flagCategories, flags.FlagCategories, []string{string(driver.CategoryStable)}, flags.FlagCategoriesUsage)
	runCmd.Flags().StringSliceVar(&flagExcludeCategories, flags.FlagExcludeCategories, nil, flags.FlagExcludeCategoriesUsage)
	runCmd.Flags().StringArrayVar(&flagScenarios, flags.FlagScenarios, nil, flags.FlagScenariosUsage)
	runCmd.Flags().StringVar(&flagReportPath, flags.FlagReport, "", flags.FlagReportUsage)
	runCmd.Flags().StringVar(&flagMetricsAddr, flags.FlagMetricsAddr, "", flags.FlagMetricsAddrUsage)

	return runCmd
}

func runScenarios(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	categories, err := driver.ParseCategories(flagCategories...)
	if err != nil {
		return err
	}
	excluded, err := driver.ParseCategories(flagExcludeCategories...)
	if err != nil {
		return err
	}

	env, err := driver.NewEnv(config, driver.WithEnvLogger(logger.Logger))
	if err != nil {
		return err
	}

	if flagMetricsAddr != "" {
		if _, err = driver.ServeMetrics(ctx, flagMetricsAddr, logger.Logger); err != nil {
			return err
		}
	}

	runner, err := driver.NewRunner(env, driver.WithSelection(driver.Selection{
		Categories: categories,
		Exclude:    excluded,
		Names:      flagScenarios,
	}))
	if err != nil {
		return err
	}

	report := runner.Run(ctx)

	if flagReportPath != "" {
		if err = report.WriteYAMLFile(flagReportPath); err != nil {
			return err
		}
	}

	if report.Failed() {
		return ErrMessagesdRunFailed.Wrapf(
			"%d failed, %d timed out",
			report.Count(driver.StatusFailed),
			report.Count(driver.StatusTimedOut),
		)
	}
	return nil
}
