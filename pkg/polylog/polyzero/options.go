package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

// WithOutput sets the writer which log lines are written to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		zl := logger.(*zeroLogger)
		zl.Logger = zl.Logger.Output(output)
	}
}

// WithLevel sets the minimum level which is logged.
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		zl := logger.(*zeroLogger)
		zl.Logger = zl.Logger.Level(zerolog.Level(level.Int()))
	}
}

// WithTimestamp adds a "time" field to every event.
func WithTimestamp() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		zl := logger.(*zeroLogger)
		zl.Logger = zl.Logger.With().Timestamp().Logger()
	}
}

// WithSetupFn exposes the underlying zerolog logger for configuration which
// is not covered by the other options.
func WithSetupFn(fn func(logger *zerolog.Logger)) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		fn(&logger.(*zeroLogger).Logger)
	}
}
