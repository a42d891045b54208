package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Fixed IDs keep the demo seeder idempotent across restarts.
var (
	demoUserID  = uuid.MustParse("0198a3a0-0000-7000-8000-000000000001")
	demoTopicID = uuid.MustParse("0198a3a0-0000-7000-8000-000000000002")
	demoPostID  = uuid.MustParse("0198a3a0-0000-7000-8000-000000000003")
)

// DemoSeeder populates a development database with a sample user, topic
// and post so the API is explorable right after startup. It is only run
// when SEED_DEMO_DATA is set.
type DemoSeeder struct{}

// NewDemoSeeder creates a new demo data seeder
func NewDemoSeeder() *DemoSeeder {
	return &DemoSeeder{}
}

// Name returns the name of this seeder
func (s *DemoSeeder) Name() string {
	return "DemoSeeder"
}

// Seed inserts the demo records inside a single transaction.
func (s *DemoSeeder) Seed(ctx context.Context, db *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, 'Demo User', 'demo@example.com', $2, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING
	`, demoUserID, string(hash))
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO topics (id, title, body, owner_id, created_at, updated_at)
		VALUES ($1, 'Welcome', 'Say hello and introduce yourself.', $2, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING
	`, demoTopicID, demoUserID)
	if err != nil {
		return fmt.Errorf("failed to seed demo topic: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO posts (id, topic_id, body, author_id, created_at, updated_at)
		VALUES ($1, $2, 'First post. Glad to be here.', $3, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING
	`, demoPostID, demoTopicID, demoUserID)
	if err != nil {
		return fmt.Errorf("failed to seed demo post: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
