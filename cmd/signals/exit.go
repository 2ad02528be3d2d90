// Package signals cancels long running CLI commands on SIGINT/SIGTERM.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

// ShutdownTimeout bounds the time the process may keep running after onExit
// before it exits on its own.
const ShutdownTimeout = 10 * time.Second

// GoOnExitSignal starts a goroutine which calls onExit once the process
// receives an interrupt or terminate signal. A second signal, or the process
// still running ShutdownTimeout later, exits it immediately. The goroutine
// stops listening once ctx is done without a signal.
func GoOnExitSignal(ctx context.Context, logger polylog.Logger, onExit func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		waitForExitSignal(ctx, logger, sigCh, onExit, ShutdownTimeout, os.Exit)
	}()
}

func waitForExitSignal(
	ctx context.Context,
	logger polylog.Logger,
	sigCh <-chan os.Signal,
	onExit func(),
	timeout time.Duration,
	exit func(code int),
) {
	var sig os.Signal
	select {
	case <-ctx.Done():
		return
	case sig = <-sigCh:
	}

	logger.Info().Str("signal", sig.String()).Msg("stopping; the current scenario is cancelled and the rest are skipped")
	onExit()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case sig = <-sigCh:
		logger.Warn().Str("signal", sig.String()).Msg("second signal received, exiting")
		// 128 + SIGINT
		exit(130)
	case <-timer.C:
		logger.Warn().Dur("timeout", timeout).Msg("shutdown timed out, exiting")
		exit(1)
	}
}
