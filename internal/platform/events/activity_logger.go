package events

import (
	"context"

	"github.com/ugnsma/laranuxt/backend/internal/platform/eventbus"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

// ActivityLogger writes a structured log line for every forum activity
// event. It is the only subscriber wired by default; heavier consumers
// (notifications, feeds) would register alongside it.
type ActivityLogger struct {
	logger logger.Logger
}

// NewActivityLogger creates an activity logger.
func NewActivityLogger(logger logger.Logger) *ActivityLogger {
	return &ActivityLogger{logger: logger}
}

// Subscribe attaches the activity logger to all forum event topics.
func (a *ActivityLogger) Subscribe(bus *eventbus.Bus) {
	bus.Subscribe(TopicCreatedTopic, a.handle)
	bus.Subscribe(TopicUpdatedTopic, a.handle)
	bus.Subscribe(TopicDeletedTopic, a.handle)
	bus.Subscribe(PostCreatedTopic, a.handle)
	bus.Subscribe(PostUpdatedTopic, a.handle)
	bus.Subscribe(PostDeletedTopic, a.handle)
	bus.Subscribe(PostLikedTopic, a.handle)
}

func (a *ActivityLogger) handle(ctx context.Context, event eventbus.Event) error {
	switch payload := event.Payload.(type) {
	case TopicCreatedEvent:
		a.logger.Info(ctx, "topic created",
			"topic_id", payload.TopicID,
			"actor_id", payload.ActorID,
			"title", payload.Title)
	case TopicUpdatedEvent:
		a.logger.Info(ctx, "topic updated",
			"topic_id", payload.TopicID,
			"actor_id", payload.ActorID)
	case TopicDeletedEvent:
		a.logger.Info(ctx, "topic deleted",
			"topic_id", payload.TopicID,
			"actor_id", payload.ActorID,
			"posts_removed", payload.PostCount)
	case PostCreatedEvent:
		a.logger.Info(ctx, "post created",
			"post_id", payload.PostID,
			"topic_id", payload.TopicID,
			"actor_id", payload.ActorID)
	case PostUpdatedEvent:
		a.logger.Info(ctx, "post updated",
			"post_id", payload.PostID,
			"topic_id", payload.TopicID,
			"actor_id", payload.ActorID)
	case PostDeletedEvent:
		a.logger.Info(ctx, "post deleted",
			"post_id", payload.PostID,
			"topic_id", payload.TopicID,
			"actor_id", payload.ActorID)
	case PostLikedEvent:
		a.logger.Info(ctx, "post liked",
			"like_id", payload.LikeID,
			"post_id", payload.PostID,
			"actor_id", payload.ActorID,
			"author_id", payload.AuthorID)
	default:
		a.logger.Warn(ctx, "unhandled activity event", "topic", event.Topic)
	}
	return nil
}
