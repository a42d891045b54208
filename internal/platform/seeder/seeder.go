package seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

// Seeder populates the database with initial data. Implementations must be
// idempotent so running them on every startup is safe.
type Seeder interface {
	// Name identifies the seeder in logs
	Name() string

	// Seed runs the seeding logic
	Seed(ctx context.Context, db *pgxpool.Pool) error
}

// Orchestrator runs a set of seeders in order, stopping at the first failure.
type Orchestrator struct {
	seeders []Seeder
	logger  logger.Logger
	db      *pgxpool.Pool
}

// NewOrchestrator creates a seeder orchestrator
func NewOrchestrator(logger logger.Logger, db *pgxpool.Pool, seeders []Seeder) *Orchestrator {
	return &Orchestrator{
		seeders: seeders,
		logger:  logger,
		db:      db,
	}
}

// RunAll executes all registered seeders in order
func (o *Orchestrator) RunAll(ctx context.Context) error {
	o.logger.Info(ctx, "seeding data", "seeder_count", len(o.seeders))

	for _, seeder := range o.seeders {
		if err := seeder.Seed(ctx, o.db); err != nil {
			o.logger.Error(ctx, "seeder failed", "seeder", seeder.Name(), "error", err)
			return fmt.Errorf("seeder %s failed: %w", seeder.Name(), err)
		}
		o.logger.Info(ctx, "seeder completed", "seeder", seeder.Name())
	}

	return nil
}
