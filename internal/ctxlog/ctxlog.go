// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the *slog.Logger in a context.Context.
var loggerKey = key{}

// nop is returned by FromContext when no logger was seeded into ctx.
var nop = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the *slog.Logger from a context. If no logger is
// found, it returns a discarding logger rather than panicking, since
// library code (the planner, the executor) is exercised directly from tests
// that do not always thread a configured logger through.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return nop
}
