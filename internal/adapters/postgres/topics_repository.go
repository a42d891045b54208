package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ugnsma/laranuxt/backend/internal/platform/postgres"
	"github.com/ugnsma/laranuxt/backend/internal/threads/domain"
	"github.com/ugnsma/laranuxt/backend/internal/threads/ports"
)

// TopicRepository implements the threads.TopicRepository interface using PostgreSQL
type TopicRepository struct {
	postgres.BaseRepository
}

// NewTopicRepository creates a new PostgreSQL topics repository
func NewTopicRepository(db *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// WithTx creates a new repository instance that uses the provided transaction
func (r *TopicRepository) WithTx(tx pgx.Tx) ports.TopicRepository {
	return &TopicRepository{
		BaseRepository: r.BaseRepository.WithTx(tx),
	}
}

// Create inserts a new topic into the database
func (r *TopicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	query, args, err := r.SB.
		Insert("topics").
		Columns("id", "title", "body", "owner_id", "created_at", "updated_at").
		Values(
			pgtype.UUID{Bytes: topic.ID, Valid: true},
			topic.Title,
			topic.Body,
			pgtype.UUID{Bytes: topic.OwnerID, Valid: true},
			pgtype.Timestamptz{Time: topic.CreatedAt, Valid: true},
			pgtype.Timestamptz{Time: topic.UpdatedAt, Valid: true},
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("TopicRepository.Create: build query: %w", err)
	}

	_, err = r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("TopicRepository.Create: %w", err)
	}

	return nil
}

// FindByID retrieves a topic by its ID
func (r *TopicRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query, args, err := r.SB.
		Select("id", "title", "body", "owner_id", "created_at", "updated_at").
		From("topics").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("TopicRepository.FindByID: build query: %w", err)
	}

	topic, err := scanTopic(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrTopicNotFound
		}
		return nil, fmt.Errorf("TopicRepository.FindByID: %w", err)
	}

	return topic, nil
}

// Update updates an existing topic in the database
func (r *TopicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	query, args, err := r.SB.
		Update("topics").
		Set("title", topic.Title).
		Set("body", topic.Body).
		Set("updated_at", pgtype.Timestamptz{Time: topic.UpdatedAt, Valid: true}).
		Where(sq.Eq{"id": pgtype.UUID{Bytes: topic.ID, Valid: true}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("TopicRepository.Update: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("TopicRepository.Update: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ports.ErrTopicNotFound
	}

	return nil
}

// Delete removes a topic from the database
func (r *TopicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.SB.
		Delete("topics").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("TopicRepository.Delete: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("TopicRepository.Delete: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ports.ErrTopicNotFound
	}

	return nil
}

// scanTopic scans a single topic from pgx.Row
func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var topic domain.Topic
	var idBytes, ownerIDBytes pgtype.UUID

	err := row.Scan(
		&idBytes,
		&topic.Title,
		&topic.Body,
		&ownerIDBytes,
		&topic.CreatedAt,
		&topic.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	topic.ID = uuid.UUID(idBytes.Bytes)
	topic.OwnerID = uuid.UUID(ownerIDBytes.Bytes)
	return &topic, nil
}

// Compile-time check to ensure TopicRepository implements ports.TopicRepository
var _ ports.TopicRepository = (*TopicRepository)(nil)
