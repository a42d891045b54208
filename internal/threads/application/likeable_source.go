package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	"github.com/ugnsma/laranuxt/backend/internal/threads/ports"
)

// PostsLikeableSource exposes posts as likeable entities. It depends
// directly on the repository, not the service, for cleaner architecture.
type PostsLikeableSource struct {
	repo   ports.PostRepository
	logger logger.Logger
}

// NewPostsLikeableSource creates a likeable source backed by the posts repository
func NewPostsLikeableSource(repo ports.PostRepository, logger logger.Logger) *PostsLikeableSource {
	return &PostsLikeableSource{
		repo:   repo,
		logger: logger,
	}
}

// ResolveAuthor returns the author of a post.
// Implements the likeable.Source interface.
func (p *PostsLikeableSource) ResolveAuthor(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	authorID, err := p.repo.GetPostAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return uuid.Nil, likeable.ErrTargetNotFound
		}
		p.logger.Error(ctx, "failed to get post author", "error", err, "postID", id)
		return uuid.Nil, err
	}

	return authorID, nil
}

// RegisterPostsLikeable registers the posts likeable source with the registry
func RegisterPostsLikeable(registry likeable.Registry, repo ports.PostRepository, logger logger.Logger) {
	registry.RegisterSource(likeable.KindPost, NewPostsLikeableSource(repo, logger))
}
