package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ugnsma/laranuxt/backend/internal/threads/domain"
)

// Repository errors - canonical errors for the repository contract. The
// PostgreSQL implementation translates pgx.ErrNoRows to these.
var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrPostNotFound  = errors.New("post not found")
)

// TopicRepository defines the interface for topic persistence
type TopicRepository interface {
	// Transaction support
	WithTx(tx pgx.Tx) TopicRepository

	// Create saves a new topic
	Create(ctx context.Context, topic *domain.Topic) error

	// FindByID retrieves a topic by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	// Update modifies an existing topic
	Update(ctx context.Context, topic *domain.Topic) error

	// Delete removes the topic row only. Cascading to posts and likes is the
	// service's responsibility, inside a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostRepository defines the interface for post persistence
type PostRepository interface {
	// Transaction support
	WithTx(tx pgx.Tx) PostRepository

	// Create saves a new post
	Create(ctx context.Context, post *domain.Post) error

	// FindByID retrieves a post by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// Update modifies an existing post
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post
	Delete(ctx context.Context, id uuid.UUID) error

	// ListIDsByTopic returns the ids of all posts in a topic, in storage order
	ListIDsByTopic(ctx context.Context, topicID uuid.UUID) ([]uuid.UUID, error)

	// DeleteByTopic removes all posts of a topic, returning how many were removed
	DeleteByTopic(ctx context.Context, topicID uuid.UUID) (int, error)

	// GetPostAuthor retrieves just the author ID for a post (for like policy checks)
	GetPostAuthor(ctx context.Context, postID uuid.UUID) (uuid.UUID, error)
}
