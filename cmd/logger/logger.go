// Package logger holds the CLI-wide logger and the flag values which
// configure it.
package logger

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/cmd/flags"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog/polyzero"
)

var (
	// Logger is the global logger used by CLI commands. It is assigned in
	// PreRunESetup.
	Logger polylog.Logger = polyzero.NewLogger(polyzero.WithLevel(polyzero.InfoLevel))

	// LogLevel is bound to the --log-level flag.
	LogLevel = flags.DefaultLogLevel

	// LogOutput is bound to the --log-output flag.
	LogOutput = flags.DefaultLogOutput

	// logFile is the file opened for LogOutput, if any.
	logFile *os.File
)

// PreRunESetup constructs Logger from the log level and output flags and
// attaches it to the command's context. It is intended to be used (or called
// from) a cobra PersistentPreRunE.
func PreRunESetup(cmd *cobra.Command, _ []string) error {
	level, err := polyzero.ParseLevel(LogLevel)
	if err != nil {
		return flags.ErrFlagInvalidValue.Wrapf("--%s %q: %v", flags.FlagLogLevel, LogLevel, err)
	}

	if err = Close(); err != nil {
		return err
	}

	output := os.Stdout
	if LogOutput != flags.DefaultLogOutput {
		output, err = os.OpenFile(LogOutput, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return flags.ErrFlagInvalidValue.Wrapf("--%s %q: %v", flags.FlagLogOutput, LogOutput, err)
		}
		logFile = output
	}

	Logger = polyzero.NewLogger(
		polyzero.WithLevel(level),
		polyzero.WithOutput(output),
		polyzero.WithTimestamp(),
	)
	cmd.SetContext(Logger.WithContext(cmd.Context()))

	return nil
}

// Close closes the file opened for --log-output, if any. Logger keeps
// writing to it until the next PreRunESetup, so Close is called once the
// command has returned.
func Close() error {
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil
	return err
}
