package logger

import (
	"context"
)

// Logger is the logging interface the rest of the application depends on.
// Keeping it small lets tests swap in a no-op implementation.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
