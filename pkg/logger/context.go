package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "request_logger"

// With attaches fields to the context's logger, so downstream handlers and
// services log with the same trace attributes.
func With(ctx context.Context, fields ...any) context.Context {
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the context's logger, falling back to the process logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
