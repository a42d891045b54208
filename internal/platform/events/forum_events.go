package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/ugnsma/laranuxt/backend/internal/platform/eventbus"
)

// Event topics for forum activity
const (
	TopicCreatedTopic eventbus.Topic = "topics.created"
	TopicUpdatedTopic eventbus.Topic = "topics.updated"
	TopicDeletedTopic eventbus.Topic = "topics.deleted"
	PostCreatedTopic  eventbus.Topic = "posts.created"
	PostUpdatedTopic  eventbus.Topic = "posts.updated"
	PostDeletedTopic  eventbus.Topic = "posts.deleted"
	PostLikedTopic    eventbus.Topic = "posts.liked"
)

// TopicCreatedEvent is published when a new topic is opened
type TopicCreatedEvent struct {
	TopicID    uuid.UUID
	ActorID    uuid.UUID // Owner who opened the topic
	Title      string
	OccurredAt time.Time
}

// TopicUpdatedEvent is published when a topic is edited by its owner
type TopicUpdatedEvent struct {
	TopicID    uuid.UUID
	ActorID    uuid.UUID
	Title      string
	OccurredAt time.Time
}

// TopicDeletedEvent is published after a topic and its posts are removed
type TopicDeletedEvent struct {
	TopicID    uuid.UUID
	ActorID    uuid.UUID
	PostCount  int // Number of posts removed by the cascade
	OccurredAt time.Time
}

// PostCreatedEvent is published when a reply is added to a topic
type PostCreatedEvent struct {
	PostID     uuid.UUID
	TopicID    uuid.UUID
	ActorID    uuid.UUID // Author of the reply
	OccurredAt time.Time
}

// PostUpdatedEvent is published when a reply is edited by its author
type PostUpdatedEvent struct {
	PostID     uuid.UUID
	TopicID    uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// PostDeletedEvent is published when a reply is removed by its author
type PostDeletedEvent struct {
	PostID     uuid.UUID
	TopicID    uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

// PostLikedEvent is published when a user likes a post
type PostLikedEvent struct {
	LikeID     uuid.UUID
	PostID     uuid.UUID
	ActorID    uuid.UUID // User who liked the post
	AuthorID   uuid.UUID // Author of the liked post
	OccurredAt time.Time
}
