// Package polyzero implements polylog.Logger on top of zerolog.
package polyzero

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
)

var _ polylog.Logger = (*zeroLogger)(nil)

func init() {
	polylog.DefaultContextLogger = NewLogger()
}

type zeroLogger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to os.Stderr at InfoLevel unless
// opts say otherwise.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	logger := &zeroLogger{
		Logger: zerolog.New(os.Stderr).Level(zerolog.InfoLevel),
	}
	for _, opt := range opts {
		opt(logger)
	}
	return logger
}

// Debug, Info, Warn and Error start an event at their level. Nothing is
// written until Msg, Msgf or Send is called on it.

func (zl *zeroLogger) Debug() polylog.Event { return newEvent(zl.Logger.Debug()) }

func (zl *zeroLogger) Info() polylog.Event { return newEvent(zl.Logger.Info()) }

func (zl *zeroLogger) Warn() polylog.Event { return newEvent(zl.Logger.Warn()) }

func (zl *zeroLogger) Error() polylog.Event { return newEvent(zl.Logger.Error()) }

func (zl *zeroLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(zl.Logger.WithLevel(zerolog.Level(level.Int())))
}

// With returns a child logger which adds keyVals to every event.
func (zl *zeroLogger) With(keyVals ...any) polylog.Logger {
	return &zeroLogger{Logger: zl.Logger.With().Fields(keyVals).Logger()}
}

// WithContext attaches the logger to ctx for both polylog.Ctx and zerolog.Ctx.
func (zl *zeroLogger) WithContext(ctx context.Context) context.Context {
	return zl.Logger.WithContext(context.WithValue(ctx, polylog.CtxKey, zl))
}

func (zl *zeroLogger) Write(p []byte) (int, error) {
	return zl.Logger.Write(p)
}
