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

// PostRepository implements the threads.PostRepository interface using PostgreSQL
type PostRepository struct {
	postgres.BaseRepository
}

// NewPostRepository creates a new PostgreSQL posts repository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// WithTx creates a new repository instance that uses the provided transaction
func (r *PostRepository) WithTx(tx pgx.Tx) ports.PostRepository {
	return &PostRepository{
		BaseRepository: r.BaseRepository.WithTx(tx),
	}
}

// Create inserts a new post into the database
func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Insert("posts").
		Columns("id", "topic_id", "body", "author_id", "created_at", "updated_at").
		Values(
			pgtype.UUID{Bytes: post.ID, Valid: true},
			pgtype.UUID{Bytes: post.TopicID, Valid: true},
			post.Body,
			pgtype.UUID{Bytes: post.AuthorID, Valid: true},
			pgtype.Timestamptz{Time: post.CreatedAt, Valid: true},
			pgtype.Timestamptz{Time: post.UpdatedAt, Valid: true},
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Create: build query: %w", err)
	}

	_, err = r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("PostRepository.Create: %w", err)
	}

	return nil
}

// FindByID retrieves a post by its ID
func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := r.SB.
		Select("id", "topic_id", "body", "author_id", "created_at", "updated_at").
		From("posts").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FindByID: build query: %w", err)
	}

	post, err := scanPost(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrPostNotFound
		}
		return nil, fmt.Errorf("PostRepository.FindByID: %w", err)
	}

	return post, nil
}

// Update updates an existing post in the database
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	query, args, err := r.SB.
		Update("posts").
		Set("body", post.Body).
		Set("updated_at", pgtype.Timestamptz{Time: post.UpdatedAt, Valid: true}).
		Where(sq.Eq{"id": pgtype.UUID{Bytes: post.ID, Valid: true}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Update: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("PostRepository.Update: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ports.ErrPostNotFound
	}

	return nil
}

// Delete removes a post from the database
func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.SB.
		Delete("posts").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PostRepository.Delete: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("PostRepository.Delete: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ports.ErrPostNotFound
	}

	return nil
}

// ListIDsByTopic returns the ids of all posts in a topic, in storage order
func (r *PostRepository) ListIDsByTopic(ctx context.Context, topicID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := r.SB.
		Select("id").
		From("posts").
		Where(sq.Eq{"topic_id": pgtype.UUID{Bytes: topicID, Valid: true}}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PostRepository.ListIDsByTopic: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("PostRepository.ListIDsByTopic: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var idBytes pgtype.UUID
		if err := rows.Scan(&idBytes); err != nil {
			return nil, fmt.Errorf("PostRepository.ListIDsByTopic: scan: %w", err)
		}
		ids = append(ids, uuid.UUID(idBytes.Bytes))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PostRepository.ListIDsByTopic: rows error: %w", err)
	}

	return ids, nil
}

// DeleteByTopic removes all posts of a topic, returning how many were removed
func (r *PostRepository) DeleteByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	query, args, err := r.SB.
		Delete("posts").
		Where(sq.Eq{"topic_id": pgtype.UUID{Bytes: topicID, Valid: true}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("PostRepository.DeleteByTopic: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("PostRepository.DeleteByTopic: %w", err)
	}

	return int(result.RowsAffected()), nil
}

// GetPostAuthor retrieves just the author ID for a post (for like policy checks)
func (r *PostRepository) GetPostAuthor(ctx context.Context, postID uuid.UUID) (uuid.UUID, error) {
	query, args, err := r.SB.
		Select("author_id").
		From("posts").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: postID, Valid: true}}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("PostRepository.GetPostAuthor: build query: %w", err)
	}

	var authorIDBytes pgtype.UUID
	err = r.DB.QueryRow(ctx, query, args...).Scan(&authorIDBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ports.ErrPostNotFound
		}
		return uuid.Nil, fmt.Errorf("PostRepository.GetPostAuthor: %w", err)
	}

	return uuid.UUID(authorIDBytes.Bytes), nil
}

// scanPost scans a single post from pgx.Row
func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	var idBytes, topicIDBytes, authorIDBytes pgtype.UUID

	err := row.Scan(
		&idBytes,
		&topicIDBytes,
		&post.Body,
		&authorIDBytes,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.ID = uuid.UUID(idBytes.Bytes)
	post.TopicID = uuid.UUID(topicIDBytes.Bytes)
	post.AuthorID = uuid.UUID(authorIDBytes.Bytes)
	return &post, nil
}

// Compile-time check to ensure PostRepository implements ports.PostRepository
var _ ports.PostRepository = (*PostRepository)(nil)
