// Package polylog defines a logger-implementation-agnostic logging interface
// which the rest of the module depends on. Implementations live in
// subpackages (e.g. polyzero) so that callers never import a concrete logging
// library directly.
package polylog

import (
	"context"
	"fmt"
	"time"
)

// Level is the interface which a logger implementation's level type MUST satisfy.
type Level interface {
	// String returns the human readable name of the level.
	String() string
	// Int returns the numeric value of the level; greater is more severe.
	Int() int
}

// Logger is the logging interface used throughout the module.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug() Event
	// Info starts a new message with info level.
	Info() Event
	// Warn starts a new message with warn level.
	Warn() Event
	// Error starts a new message with error level.
	Error() Event

	// With creates a child logger with the fields constructed from keyVals
	// added to its context. keyVals MUST alternate between string keys and
	// arbitrary values.
	With(keyVals ...any) Logger

	// WithLevel starts a new message with the given level.
	WithLevel(level Level) Event

	// WithContext returns a copy of ctx with the receiver logger attached.
	WithContext(ctx context.Context) context.Context

	// Write implements io.Writer.
	Write(p []byte) (n int, err error)
}

// Event represents a log event. It is finalized (written) by calling one of
// Msg, Msgf or Send. An event MUST NOT be reused after being finalized.
type Event interface {
	Str(key, value string) Event
	Strs(key string, values []string) Event

	// Stringer adds value.String() to the event, or null if value is nil.
	Stringer(key string, value fmt.Stringer) Event

	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Uint64(key string, value uint64) Event
	Dur(key string, value time.Duration) Event
	Err(err error) Event
	Timestamp() Event

	// RawJSON adds an already encoded JSON value to the event. value MUST be
	// valid JSON.
	RawJSON(key string, value []byte) Event

	// Fields is a helper function to use a map or slice to set fields using
	// type assertion. Only map[string]any and []any are accepted. []any MUST
	// alternate string keys and arbitrary values.
	Fields(fields any) Event

	// Func allows an anonymous func to run only if the event is enabled.
	Func(func(Event)) Event

	// Enabled returns false if the event is going to be filtered out by the
	// log level.
	Enabled() bool

	// Discard disables the event so Msg(f)/Send won't print it.
	Discard() Event

	Msg(msg string)
	Msgf(format string, args ...any)
	Send()
}

// LoggerOption is a function which receives a logger implementation and
// configures it.
type LoggerOption func(logger Logger)
