package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

// shutdownTimeout is how long in-flight requests get to finish on SIGTERM.
const shutdownTimeout = 10 * time.Second

type App struct {
	server *http.Server
	config Config
	logger logger.Logger
}

func NewApp(server *http.Server, config Config, log logger.Logger, _ Registrations) *App {
	return &App{
		server: server,
		config: config,
		logger: log,
	}
}

// Run starts the application and handles graceful shutdown
func (a *App) Run() error {
	ctx := context.Background()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server", "address", a.server.Addr, "environment", a.config.Environment)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		a.logger.Info(ctx, "shutting down", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	a.logger.Info(ctx, "server stopped")
	return nil
}
