package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ugnsma/laranuxt/backend/internal/db"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	"github.com/ugnsma/laranuxt/backend/internal/platform/seeder"
)

// ConnectDatabase creates a new database connection pool and returns it with a cleanup function
func ConnectDatabase(ctx context.Context, config Config, log logger.Logger) (*pgxpool.Pool, func(), error) {
	log.Info(ctx, "connecting to database")

	// Parse config from URL and set pool defaults
	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		log.Error(ctx, "failed to parse database URL", "error", err)
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Configure connection pool settings
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	log.Debug(ctx, "database pool configuration",
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns,
		"max_conn_lifetime", poolConfig.MaxConnLifetime,
		"max_conn_idle_time", poolConfig.MaxConnIdleTime,
	)

	// Create the connection pool
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error(ctx, "failed to create connection pool", "error", err)
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, "failed to ping database", "error", err)
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info(ctx, "database connection established successfully")

	if config.RunMigrations {
		if err := migrateDatabase(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	if config.SeedDemoData {
		orchestrator := seeder.NewOrchestrator(log, pool, []seeder.Seeder{NewDemoSeeder()})
		if err := orchestrator.RunAll(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	// Return the pool and a cleanup function
	cleanup := func() {
		log.Info(context.Background(), "closing database connection pool")
		pool.Close()
	}

	return pool, cleanup, nil
}

// migrateDatabase applies pending goose migrations from the embedded set
func migrateDatabase(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error {
	log.Info(ctx, "applying database migrations")

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn(ctx, "failed to close migration connection", "error", err)
		}
	}()

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		log.Error(ctx, "failed to apply migrations", "error", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info(ctx, "database migrations applied")
	return nil
}
