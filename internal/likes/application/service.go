package application

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ugnsma/laranuxt/backend/internal/likes/domain"
	"github.com/ugnsma/laranuxt/backend/internal/likes/ports"
	"github.com/ugnsma/laranuxt/backend/internal/platform/apperror"
	"github.com/ugnsma/laranuxt/backend/internal/platform/eventbus"
	"github.com/ugnsma/laranuxt/backend/internal/platform/events"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

// Error definitions for service operations. Liking your own post and liking
// twice are distinct failures with distinct status codes (403 vs 409).
var (
	ErrLikeNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeLikeNotFound,
		"like not found",
		http.StatusNotFound,
	)

	ErrTargetNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"likeable entity not found",
		http.StatusNotFound,
	)

	ErrCannotLikeOwn = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodeOwnPost,
		"cannot like your own post",
		http.StatusForbidden,
	)

	ErrAlreadyLiked = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeAlreadyLiked,
		"already liked",
		http.StatusConflict,
	)

	ErrInvalidLikeData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid like data",
		http.StatusUnprocessableEntity,
	)
)

// LikesService handles like business logic
type LikesService struct {
	repo     ports.LikeRepository
	registry likeable.Registry
	eventBus *eventbus.Bus
	logger   logger.Logger
}

// NewLikesService creates a new likes service
func NewLikesService(
	repo ports.LikeRepository,
	registry likeable.Registry,
	eventBus *eventbus.Bus,
	logger logger.Logger,
) *LikesService {
	return &LikesService{
		repo:     repo,
		registry: registry,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Like records that the acting user liked the target entity. The actor must
// not be the target's author, and must not have liked it before. The
// existence check is a fast path; the storage unique constraint settles
// concurrent duplicates.
func (s *LikesService) Like(ctx context.Context, actorID uuid.UUID, kind likeable.Kind, targetID uuid.UUID) (*domain.Like, error) {
	authorID, err := s.registry.ResolveAuthor(ctx, kind, targetID)
	if err != nil {
		if errors.Is(err, likeable.ErrTargetNotFound) {
			return nil, ErrTargetNotFound
		}
		s.logger.Error(ctx, "failed to resolve likeable author", "error", err, "kind", kind, "targetID", targetID)
		return nil, s.internal("failed to like")
	}

	if !domain.CanLike(actorID, authorID) {
		return nil, ErrCannotLikeOwn
	}

	exists, err := s.repo.Exists(ctx, actorID, kind, targetID)
	if err != nil {
		s.logger.Error(ctx, "failed to check existing like", "error", err, "kind", kind, "targetID", targetID)
		return nil, s.internal("failed to like")
	}
	if exists {
		return nil, ErrAlreadyLiked
	}

	like, err := domain.NewLike(actorID, kind, targetID)
	if err != nil {
		return nil, ErrInvalidLikeData.WithDetails(err.Error())
	}

	if err := s.repo.Create(ctx, like); err != nil {
		if errors.Is(err, ports.ErrDuplicateLike) {
			// Lost the race against a concurrent like from the same user
			return nil, ErrAlreadyLiked
		}
		s.logger.Error(ctx, "failed to create like", "error", err, "kind", kind, "targetID", targetID)
		return nil, s.internal("failed to like")
	}

	if kind == likeable.KindPost {
		s.eventBus.Publish(ctx, eventbus.Event{
			Topic: events.PostLikedTopic,
			Payload: events.PostLikedEvent{
				LikeID:     like.ID,
				PostID:     targetID,
				ActorID:    actorID,
				AuthorID:   authorID,
				OccurredAt: time.Now(),
			},
		})
	}

	return like, nil
}

// GetLike returns a like, verifying it targets the given entity. A like
// reached through the wrong parent path reads as not found.
func (s *LikesService) GetLike(ctx context.Context, kind likeable.Kind, targetID, likeID uuid.UUID) (*domain.Like, error) {
	like, err := s.repo.FindByID(ctx, likeID)
	if err != nil {
		if errors.Is(err, ports.ErrLikeNotFound) {
			return nil, ErrLikeNotFound
		}
		s.logger.Error(ctx, "failed to find like", "error", err, "likeID", likeID)
		return nil, s.internal("failed to retrieve like")
	}

	if !like.Targets(kind, targetID) {
		return nil, ErrLikeNotFound
	}

	return like, nil
}

// ListLikes returns all likes on a target, unfiltered and unpaginated.
func (s *LikesService) ListLikes(ctx context.Context, kind likeable.Kind, targetID uuid.UUID) ([]*domain.Like, error) {
	likes, err := s.repo.ListByTarget(ctx, kind, targetID)
	if err != nil {
		s.logger.Error(ctx, "failed to list likes", "error", err, "kind", kind, "targetID", targetID)
		return nil, s.internal("failed to list likes")
	}
	return likes, nil
}

func (s *LikesService) internal(msg string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		msg,
		http.StatusInternalServerError,
	)
}
