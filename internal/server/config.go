package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

type Config struct {
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"` // Logging level (debug, info, warn, error)

	JWTSecret       string `mapstructure:"JWT_SECRET"` // HS256 signing secret for issued tokens
	JWTIssuer       string `mapstructure:"JWT_ISSUER"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`

	RunMigrations bool `mapstructure:"RUN_MIGRATIONS"` // Apply pending migrations at startup
	SeedDemoData  bool `mapstructure:"SEED_DEMO_DATA"` // Insert sample forum data after migrating
}

// TokenTTL returns the configured token lifetime as a duration
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// Load .env file if it exists (godotenv will find it automatically)
	// It's okay if the file doesn't exist - we'll use environment variables
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	v := viper.New()

	// Set default values
	v.SetDefault("DATABASE_URL", "postgresql://localhost:5432/laranuxt?sslmode=disable")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_ISSUER", "laranuxt")
	v.SetDefault("TOKEN_TTL_MINUTES", 24*60)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("SEED_DEMO_DATA", false)

	// Enable automatic environment variable reading
	// Viper will now see all environment variables, including those loaded by godotenv
	v.AutomaticEnv()

	// Replace dots with underscores in environment variable names
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		bootstrapLogger.Error(ctx, "failed to unmarshal configuration", "error", err)
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"server_address", config.ServerAddress,
	)

	// Validate required configuration
	if config.JWTSecret == "" {
		err := errors.New("JWT_SECRET is required")
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}
	if config.TokenTTLMinutes <= 0 {
		err := errors.New("TOKEN_TTL_MINUTES must be positive")
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration validated successfully")
	return config, nil
}
