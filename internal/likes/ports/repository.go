package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ugnsma/laranuxt/backend/internal/likes/domain"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
)

// Repository errors. ErrDuplicateLike is the translation of the unique
// constraint on (user_id, likeable_kind, likeable_id), which is the
// authoritative guard against double likes.
var (
	ErrLikeNotFound  = errors.New("like not found")
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines the interface for like persistence
type LikeRepository interface {
	// Transaction support
	WithTx(tx pgx.Tx) LikeRepository

	// Create saves a new like. Returns ErrDuplicateLike if the user already
	// liked the target.
	Create(ctx context.Context, like *domain.Like) error

	// FindByID retrieves a like by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Like, error)

	// ListByTarget returns all likes on a likeable entity, in storage order
	ListByTarget(ctx context.Context, kind likeable.Kind, targetID uuid.UUID) ([]*domain.Like, error)

	// Exists reports whether the user already liked the target
	Exists(ctx context.Context, userID uuid.UUID, kind likeable.Kind, targetID uuid.UUID) (bool, error)
}
