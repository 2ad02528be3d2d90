package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/logger"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/messagesd/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	rootCmd := cmd.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)

	cancel()
	if closeErr := logger.Close(); closeErr != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), closeErr)
	}

	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
