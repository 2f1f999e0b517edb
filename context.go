package ledger

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just the standard context.
// We use the alias so all extensions do not need to import the stdlib
// package in addition to this one.
type Context = context.Context

type contextKey int

const (
	contextKeyLogger contextKey = iota
)

// DefaultLogger is used for all contexts that have not
// set anything themselves.
var DefaultLogger = log.NewNopLogger()

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden below... no problem
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}
