package observability

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey string

const (
	ctxKeyCallID ctxKey = "call_id"
)

// basic global logger, JSON to stdout.
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// WithCallID stores a call_id in the context.
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, ctxKeyCallID, callID)
}

// LoggerFromContext adds call_id if present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	callID, _ := ctx.Value(ctxKeyCallID).(string)
	if callID == "" {
		return logger
	}
	return logger.With("call_id", callID)
}
