package logger

import (
	"context"
	"log"
	"os"
)

// BootstrapLogger covers the window between process start and configuration
// load, before the real logger can be constructed.
type BootstrapLogger struct {
	logger *log.Logger
}

// NewBootstrapLogger creates a simple logger for the bootstrap phase.
func NewBootstrapLogger() *BootstrapLogger {
	return &BootstrapLogger{
		logger: log.New(os.Stdout, "[BOOTSTRAP] ", log.LstdFlags|log.Lshortfile),
	}
}

func (b *BootstrapLogger) Debug(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("DEBUG: %s %v", msg, args)
}

func (b *BootstrapLogger) Info(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("INFO: %s %v", msg, args)
}

func (b *BootstrapLogger) Warn(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("WARN: %s %v", msg, args)
}

func (b *BootstrapLogger) Error(ctx context.Context, msg string, args ...any) {
	b.logger.Printf("ERROR: %s %v", msg, args)
}

var _ Logger = (*BootstrapLogger)(nil)
