package log

import (
	"context"
	"io"
)

const (
	loggerContextKey ctxKey = iota
)

type ctxKey byte

// ContextWithLogger returns a new context carrying the given Logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the Logger stored in ctx, or a Logger that discards everything if there is none.
func LoggerFromContext(ctx context.Context) Logger {
	if val := ctx.Value(loggerContextKey); val != nil {
		if val, ok := val.(Logger); ok && val != nil {
			return val
		}
	}

	return New(WithOutput(io.Discard))
}
