package telemetry

import (
	"context"
)

const (
	telemeterContextKey ctxKey = iota
)

type ctxKey byte

// ContextWithTelemeter returns a new context carrying the given Telemeter.
func ContextWithTelemeter(ctx context.Context, tlm *Telemeter) context.Context {
	return context.WithValue(ctx, telemeterContextKey, tlm)
}

// TelemeterFromContext returns the Telemeter stored in ctx, or a no-op Telemeter if there is none.
func TelemeterFromContext(ctx context.Context) *Telemeter {
	if val := ctx.Value(telemeterContextKey); val != nil {
		if val, ok := val.(*Telemeter); ok && val != nil {
			return val
		}
	}

	return new(Telemeter)
}
