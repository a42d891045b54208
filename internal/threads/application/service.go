package application

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ugnsma/laranuxt/backend/internal/platform/apperror"
	"github.com/ugnsma/laranuxt/backend/internal/platform/eventbus"
	"github.com/ugnsma/laranuxt/backend/internal/platform/events"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	"github.com/ugnsma/laranuxt/backend/internal/platform/postgres"
	"github.com/ugnsma/laranuxt/backend/internal/threads/domain"
	"github.com/ugnsma/laranuxt/backend/internal/threads/ports"
)

// Error definitions for service operations
var (
	ErrTopicNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeTopicNotFound,
		"topic not found",
		http.StatusNotFound,
	)

	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)

	ErrNotTopicOwner = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodeNotOwner,
		"only the topic owner may modify it",
		http.StatusForbidden,
	)

	ErrNotPostAuthor = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodeNotOwner,
		"only the post author may modify it",
		http.StatusForbidden,
	)

	ErrInvalidTopicData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid topic data",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidPostData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid post data",
		http.StatusUnprocessableEntity,
	)
)

// ThreadsService handles topic and post business logic
type ThreadsService struct {
	topics    ports.TopicRepository
	posts     ports.PostRepository
	purger    ports.LikesPurger
	txManager postgres.TransactionManager
	eventBus  *eventbus.Bus
	logger    logger.Logger
	sanitizer *bluemonday.Policy
}

// NewThreadsService creates a new threads service
func NewThreadsService(
	topics ports.TopicRepository,
	posts ports.PostRepository,
	purger ports.LikesPurger,
	txManager postgres.TransactionManager,
	eventBus *eventbus.Bus,
	logger logger.Logger,
) *ThreadsService {
	return &ThreadsService{
		topics:    topics,
		posts:     posts,
		purger:    purger,
		txManager: txManager,
		eventBus:  eventBus,
		logger:    logger,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// CreateTopicParams contains parameters for opening a new topic
type CreateTopicParams struct {
	Title string
	Body  string
}

// CreateTopic opens a new topic owned by the acting user.
func (s *ThreadsService) CreateTopic(ctx context.Context, actorID uuid.UUID, params CreateTopicParams) (*domain.Topic, error) {
	body := s.sanitizer.Sanitize(params.Body)

	topic, err := domain.NewTopic(params.Title, body, actorID)
	if err != nil {
		return nil, ErrInvalidTopicData.WithDetails(err.Error())
	}

	if err := s.topics.Create(ctx, topic); err != nil {
		s.logger.Error(ctx, "failed to create topic", "error", err)
		return nil, s.internal("failed to create topic")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.TopicCreatedTopic,
		Payload: events.TopicCreatedEvent{
			TopicID:    topic.ID,
			ActorID:    actorID,
			Title:      topic.Title,
			OccurredAt: time.Now(),
		},
	})

	return topic, nil
}

// GetTopic returns a topic by id.
func (s *ThreadsService) GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return s.getTopicByID(ctx, id)
}

// UpdateTopicParams contains parameters for editing a topic
type UpdateTopicParams struct {
	Title string
	Body  string
}

// UpdateTopic edits a topic. Only the owner may do so.
func (s *ThreadsService) UpdateTopic(ctx context.Context, actorID uuid.UUID, id uuid.UUID, params UpdateTopicParams) (*domain.Topic, error) {
	topic, err := s.getTopicByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !topic.IsOwnedBy(actorID) {
		return nil, ErrNotTopicOwner
	}

	body := s.sanitizer.Sanitize(params.Body)
	if err := topic.UpdateContent(params.Title, body); err != nil {
		return nil, ErrInvalidTopicData.WithDetails(err.Error())
	}

	if err := s.topics.Update(ctx, topic); err != nil {
		if errors.Is(err, ports.ErrTopicNotFound) {
			return nil, ErrTopicNotFound
		}
		s.logger.Error(ctx, "failed to update topic", "error", err, "topicID", id)
		return nil, s.internal("failed to update topic")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.TopicUpdatedTopic,
		Payload: events.TopicUpdatedEvent{
			TopicID:    topic.ID,
			ActorID:    actorID,
			Title:      topic.Title,
			OccurredAt: time.Now(),
		},
	})

	return topic, nil
}

// DeleteTopic removes a topic along with its posts and their likes, in a
// single transaction. Only the owner may do so.
func (s *ThreadsService) DeleteTopic(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	topic, err := s.getTopicByID(ctx, id)
	if err != nil {
		return err
	}

	if !topic.IsOwnedBy(actorID) {
		return ErrNotTopicOwner
	}

	tx, err := s.txManager.BeginTx(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", "error", err, "topicID", id)
		return s.internal("failed to delete topic")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	txPosts := s.posts.WithTx(tx.Tx())
	txTopics := s.topics.WithTx(tx.Tx())
	txPurger := s.purger.WithTx(tx.Tx())

	postIDs, err := txPosts.ListIDsByTopic(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "failed to list topic posts", "error", err, "topicID", id)
		return s.internal("failed to delete topic")
	}

	if _, err := txPurger.DeleteForPosts(ctx, postIDs); err != nil {
		s.logger.Error(ctx, "failed to delete likes for topic posts", "error", err, "topicID", id)
		return s.internal("failed to delete topic")
	}

	postCount, err := txPosts.DeleteByTopic(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete topic posts", "error", err, "topicID", id)
		return s.internal("failed to delete topic")
	}

	if err := txTopics.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrTopicNotFound) {
			return ErrTopicNotFound
		}
		s.logger.Error(ctx, "failed to delete topic", "error", err, "topicID", id)
		return s.internal("failed to delete topic")
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error(ctx, "failed to commit topic deletion", "error", err, "topicID", id)
		return s.internal("failed to delete topic")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.TopicDeletedTopic,
		Payload: events.TopicDeletedEvent{
			TopicID:    id,
			ActorID:    actorID,
			PostCount:  postCount,
			OccurredAt: time.Now(),
		},
	})

	return nil
}

// CreatePostParams contains parameters for replying to a topic
type CreatePostParams struct {
	Body string
}

// CreatePost adds a reply to a topic, authored by the acting user.
func (s *ThreadsService) CreatePost(ctx context.Context, actorID uuid.UUID, topicID uuid.UUID, params CreatePostParams) (*domain.Post, error) {
	// The topic must exist before we attach a reply to it
	if _, err := s.getTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	body := s.sanitizer.Sanitize(params.Body)

	post, err := domain.NewPost(topicID, body, actorID)
	if err != nil {
		return nil, ErrInvalidPostData.WithDetails(err.Error())
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error(ctx, "failed to create post", "error", err, "topicID", topicID)
		return nil, s.internal("failed to create post")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostCreatedTopic,
		Payload: events.PostCreatedEvent{
			PostID:     post.ID,
			TopicID:    topicID,
			ActorID:    actorID,
			OccurredAt: time.Now(),
		},
	})

	return post, nil
}

// GetPostInTopic returns a post, verifying it belongs to the given topic.
// A mismatched topic in the path reads as not found.
func (s *ThreadsService) GetPostInTopic(ctx context.Context, topicID, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.getPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.TopicID != topicID {
		return nil, ErrPostNotFound
	}

	return post, nil
}

// UpdatePostParams contains parameters for editing a post
type UpdatePostParams struct {
	Body string
}

// UpdatePost edits a reply. Only the author may do so.
func (s *ThreadsService) UpdatePost(ctx context.Context, actorID uuid.UUID, topicID, postID uuid.UUID, params UpdatePostParams) (*domain.Post, error) {
	post, err := s.GetPostInTopic(ctx, topicID, postID)
	if err != nil {
		return nil, err
	}

	if !post.IsAuthoredBy(actorID) {
		return nil, ErrNotPostAuthor
	}

	body := s.sanitizer.Sanitize(params.Body)
	if err := post.UpdateBody(body); err != nil {
		return nil, ErrInvalidPostData.WithDetails(err.Error())
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to update post", "error", err, "postID", postID)
		return nil, s.internal("failed to update post")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostUpdatedTopic,
		Payload: events.PostUpdatedEvent{
			PostID:     post.ID,
			TopicID:    topicID,
			ActorID:    actorID,
			OccurredAt: time.Now(),
		},
	})

	return post, nil
}

// DeletePost removes a reply and its likes. Only the author may do so.
func (s *ThreadsService) DeletePost(ctx context.Context, actorID uuid.UUID, topicID, postID uuid.UUID) error {
	post, err := s.GetPostInTopic(ctx, topicID, postID)
	if err != nil {
		return err
	}

	if !post.IsAuthoredBy(actorID) {
		return ErrNotPostAuthor
	}

	tx, err := s.txManager.BeginTx(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", "error", err, "postID", postID)
		return s.internal("failed to delete post")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	txPosts := s.posts.WithTx(tx.Tx())
	txPurger := s.purger.WithTx(tx.Tx())

	if _, err := txPurger.DeleteForPosts(ctx, []uuid.UUID{postID}); err != nil {
		s.logger.Error(ctx, "failed to delete likes for post", "error", err, "postID", postID)
		return s.internal("failed to delete post")
	}

	if err := txPosts.Delete(ctx, postID); err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to delete post", "error", err, "postID", postID)
		return s.internal("failed to delete post")
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error(ctx, "failed to commit post deletion", "error", err, "postID", postID)
		return s.internal("failed to delete post")
	}

	s.eventBus.Publish(ctx, eventbus.Event{
		Topic: events.PostDeletedTopic,
		Payload: events.PostDeletedEvent{
			PostID:     postID,
			TopicID:    topicID,
			ActorID:    actorID,
			OccurredAt: time.Now(),
		},
	})

	return nil
}

// Helpers

func (s *ThreadsService) getTopicByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	topic, err := s.topics.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrTopicNotFound) {
			return nil, ErrTopicNotFound
		}
		s.logger.Error(ctx, "failed to find topic", "error", err, "topicID", id)
		return nil, s.internal("failed to retrieve topic")
	}
	return topic, nil
}

func (s *ThreadsService) getPostByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error(ctx, "failed to find post", "error", err, "postID", id)
		return nil, s.internal("failed to retrieve post")
	}
	return post, nil
}

func (s *ThreadsService) internal(msg string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		msg,
		http.StatusInternalServerError,
	)
}
