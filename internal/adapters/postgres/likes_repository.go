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

	"github.com/ugnsma/laranuxt/backend/internal/likes/domain"
	"github.com/ugnsma/laranuxt/backend/internal/likes/ports"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
	"github.com/ugnsma/laranuxt/backend/internal/platform/postgres"
	threadsports "github.com/ugnsma/laranuxt/backend/internal/threads/ports"
)

// LikeRepository implements the likes.LikeRepository interface using
// PostgreSQL. It also implements the threads LikesPurger port so topic and
// post deletion can cascade to likes inside their transactions.
type LikeRepository struct {
	postgres.BaseRepository
}

// NewLikeRepository creates a new PostgreSQL likes repository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// WithTx creates a new repository instance that uses the provided transaction
func (r *LikeRepository) WithTx(tx pgx.Tx) ports.LikeRepository {
	return &LikeRepository{
		BaseRepository: r.BaseRepository.WithTx(tx),
	}
}

// Create inserts a new like. The unique index on (user_id, likeable_kind,
// likeable_id) is the authoritative duplicate guard; a violation surfaces as
// ErrDuplicateLike.
func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	query, args, err := r.SB.
		Insert("likes").
		Columns("id", "user_id", "likeable_kind", "likeable_id", "created_at", "updated_at").
		Values(
			pgtype.UUID{Bytes: like.ID, Valid: true},
			pgtype.UUID{Bytes: like.UserID, Valid: true},
			string(like.LikeableKind),
			pgtype.UUID{Bytes: like.LikeableID, Valid: true},
			pgtype.Timestamptz{Time: like.CreatedAt, Valid: true},
			pgtype.Timestamptz{Time: like.UpdatedAt, Valid: true},
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("LikeRepository.Create: build query: %w", err)
	}

	_, err = r.DB.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateLike
		}
		return fmt.Errorf("LikeRepository.Create: %w", err)
	}

	return nil
}

// FindByID retrieves a like by its ID
func (r *LikeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Like, error) {
	query, args, err := r.SB.
		Select("id", "user_id", "likeable_kind", "likeable_id", "created_at", "updated_at").
		From("likes").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("LikeRepository.FindByID: build query: %w", err)
	}

	like, err := scanLike(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrLikeNotFound
		}
		return nil, fmt.Errorf("LikeRepository.FindByID: %w", err)
	}

	return like, nil
}

// ListByTarget retrieves all likes on a target, oldest first
func (r *LikeRepository) ListByTarget(ctx context.Context, kind likeable.Kind, targetID uuid.UUID) ([]*domain.Like, error) {
	query, args, err := r.SB.
		Select("id", "user_id", "likeable_kind", "likeable_id", "created_at", "updated_at").
		From("likes").
		Where(sq.Eq{
			"likeable_kind": string(kind),
			"likeable_id":   pgtype.UUID{Bytes: targetID, Valid: true},
		}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("LikeRepository.ListByTarget: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("LikeRepository.ListByTarget: %w", err)
	}
	defer rows.Close()

	var likes []*domain.Like
	for rows.Next() {
		like, err := scanLike(rows)
		if err != nil {
			return nil, fmt.Errorf("LikeRepository.ListByTarget: scan: %w", err)
		}
		likes = append(likes, like)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LikeRepository.ListByTarget: rows error: %w", err)
	}

	return likes, nil
}

// Exists checks whether the user has already liked the target
func (r *LikeRepository) Exists(ctx context.Context, userID uuid.UUID, kind likeable.Kind, targetID uuid.UUID) (bool, error) {
	subQuery, subArgs, err := r.SB.
		Select("1").
		From("likes").
		Where(sq.Eq{
			"user_id":       pgtype.UUID{Bytes: userID, Valid: true},
			"likeable_kind": string(kind),
			"likeable_id":   pgtype.UUID{Bytes: targetID, Valid: true},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("LikeRepository.Exists: build query: %w", err)
	}

	query := fmt.Sprintf("SELECT EXISTS(%s)", subQuery)

	var exists bool
	if err := r.DB.QueryRow(ctx, query, subArgs...).Scan(&exists); err != nil {
		return false, fmt.Errorf("LikeRepository.Exists: %w", err)
	}

	return exists, nil
}

// scanLike scans a single like from pgx.Row
func scanLike(row pgx.Row) (*domain.Like, error) {
	var like domain.Like
	var idBytes, userIDBytes, targetIDBytes pgtype.UUID
	var kindStr string

	err := row.Scan(
		&idBytes,
		&userIDBytes,
		&kindStr,
		&targetIDBytes,
		&like.CreatedAt,
		&like.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	like.ID = uuid.UUID(idBytes.Bytes)
	like.UserID = uuid.UUID(userIDBytes.Bytes)
	like.LikeableID = uuid.UUID(targetIDBytes.Bytes)

	like.LikeableKind = likeable.Kind(kindStr)
	if !like.LikeableKind.IsValid() {
		return nil, fmt.Errorf("scanLike: invalid likeable kind %s", kindStr)
	}

	return &like, nil
}

// LikesPurger adapts the likes table for the threads context, which deletes
// likes when their posts go away. It is a separate type so the threads
// WithTx contract does not collide with the likes one.
type LikesPurger struct {
	postgres.BaseRepository
}

// NewLikesPurger creates a purger over the likes table
func NewLikesPurger(db *pgxpool.Pool) *LikesPurger {
	return &LikesPurger{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// WithTx creates a new purger instance that uses the provided transaction
func (p *LikesPurger) WithTx(tx pgx.Tx) threadsports.LikesPurger {
	return &LikesPurger{
		BaseRepository: p.BaseRepository.WithTx(tx),
	}
}

// DeleteForPosts removes all likes targeting the given posts
func (p *LikesPurger) DeleteForPosts(ctx context.Context, postIDs []uuid.UUID) (int, error) {
	if len(postIDs) == 0 {
		return 0, nil
	}

	targetIDs := make([]pgtype.UUID, len(postIDs))
	for i, id := range postIDs {
		targetIDs[i] = pgtype.UUID{Bytes: id, Valid: true}
	}

	query, args, err := p.SB.
		Delete("likes").
		Where(sq.Eq{
			"likeable_kind": string(likeable.KindPost),
			"likeable_id":   targetIDs,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("LikesPurger.DeleteForPosts: build query: %w", err)
	}

	result, err := p.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("LikesPurger.DeleteForPosts: %w", err)
	}

	return int(result.RowsAffected()), nil
}

// Compile-time checks
var (
	_ ports.LikeRepository     = (*LikeRepository)(nil)
	_ threadsports.LikesPurger = (*LikesPurger)(nil)
)
