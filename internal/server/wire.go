//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/auth"
	"github.com/ugnsma/laranuxt/backend/internal/adapters/postgres"
	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest"
	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest/middleware"
	likesapp "github.com/ugnsma/laranuxt/backend/internal/likes/application"
	"github.com/ugnsma/laranuxt/backend/internal/platform/eventbus"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	platformpg "github.com/ugnsma/laranuxt/backend/internal/platform/postgres"
	threadsapp "github.com/ugnsma/laranuxt/backend/internal/threads/application"
	usersapp "github.com/ugnsma/laranuxt/backend/internal/users/application"
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		// Bootstrap phase
		logger.NewBootstrapLogger,
		LoadConfig,

		// Logger configuration
		provideLoggerConfig,

		// Main logger
		logger.NewConfiguredLogger,
		wire.Bind(new(logger.Logger), new(*logger.SlogAdapter)),

		// Database
		ConnectDatabase,
		platformpg.NewTransactionManager,

		// Repository providers (includes interface binding)
		postgres.ProviderSet,

		// Platform services
		eventbus.ProviderSet,
		likeable.ProviderSet,

		// Token service
		provideTokenConfig,
		auth.ProviderSet,

		// Application services
		usersapp.ProviderSet,
		threadsapp.ProviderSet,
		likesapp.ProviderSet,

		// REST handlers
		rest.ProviderSet,
		provideVersion, // Provide version string for HealthHandler

		// Auth middleware
		middleware.ProviderSet,

		// HTTP Server
		NewHTTPServer,

		// Cross-context hooks
		RegisterHooks,

		// App
		NewApp,
	)

	return nil, nil, nil
}

// provideVersion provides the application version
func provideVersion() string {
	return "1.0.0"
}

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
	}
}

// provideTokenConfig creates token service config from server config
func provideTokenConfig(config Config) auth.Config {
	return auth.Config{
		Secret:   config.JWTSecret,
		Issuer:   config.JWTIssuer,
		TokenTTL: config.TokenTTL(),
	}
}
