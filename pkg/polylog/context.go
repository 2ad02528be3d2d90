package polylog

import "context"

// CtxKey is the key used to store the polylog.Logger in a context.Context. It
// is independent of any implementation-specific context key which a logger
// implementation may use internally.
const CtxKey ctxKey = "polylog/context"

type ctxKey string

// DefaultContextLogger is the logger returned by Ctx when no logger is
// associated with a context. It is assigned by the implementation package's
// init() function to avoid import cycles.
var DefaultContextLogger Logger

// Ctx returns the Logger associated with the ctx. If no logger is associated,
// DefaultContextLogger is returned.
//
// To associate a logger with a context, call the respective logger's
// #WithContext() method.
func Ctx(ctx context.Context) Logger {
	logger, ok := ctx.Value(CtxKey).(Logger)
	if !ok {
		return DefaultContextLogger
	}
	return logger
}
