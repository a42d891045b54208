package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LikesPurger removes likes attached to posts when the posts are deleted.
// It is implemented by the likes persistence layer and injected here so the
// threads context can cascade deletions without importing the likes context.
type LikesPurger interface {
	// Transaction support
	WithTx(tx pgx.Tx) LikesPurger

	// DeleteForPosts removes all likes targeting the given posts, returning
	// how many rows were removed
	DeleteForPosts(ctx context.Context, postIDs []uuid.UUID) (int, error)
}
