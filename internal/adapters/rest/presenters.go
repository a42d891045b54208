package rest

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	likesdomain "github.com/ugnsma/laranuxt/backend/internal/likes/domain"
	threadsdomain "github.com/ugnsma/laranuxt/backend/internal/threads/domain"
	usersdomain "github.com/ugnsma/laranuxt/backend/internal/users/domain"
)

// Response envelopes. Every success payload is wrapped in "data"; endpoints
// that carry extra information (the auth token) add "meta".

type DataResponse struct {
	Data any `json:"data"`
}

type AuthResponse struct {
	Data UserResource `json:"data"`
	Meta AuthMeta     `json:"meta"`
}

type AuthMeta struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResource is the public representation of a user. The password hash
// never leaves the service layer.
type UserResource struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func presentUser(user *usersdomain.User) UserResource {
	return UserResource{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// TopicResource is the public representation of a topic, with the owner
// embedded
type TopicResource struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	User      UserResource `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func presentTopic(topic *threadsdomain.Topic, owner *usersdomain.User) TopicResource {
	return TopicResource{
		ID:        topic.ID,
		Title:     topic.Title,
		Body:      topic.Body,
		User:      presentUser(owner),
		CreatedAt: topic.CreatedAt,
		UpdatedAt: topic.UpdatedAt,
	}
}

// PostResource is the public representation of a post, with the author
// embedded
type PostResource struct {
	ID        uuid.UUID    `json:"id"`
	TopicID   uuid.UUID    `json:"topic_id"`
	Body      string       `json:"body"`
	User      UserResource `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func presentPost(post *threadsdomain.Post, author *usersdomain.User) PostResource {
	return PostResource{
		ID:        post.ID,
		TopicID:   post.TopicID,
		Body:      post.Body,
		User:      presentUser(author),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// LikeResource is the public representation of a like. Timestamps are
// rendered human-relative ("3 minutes ago") and the liking user is embedded.
type LikeResource struct {
	ID           uuid.UUID    `json:"id"`
	LikeableID   uuid.UUID    `json:"likeable_id"`
	LikeableType string       `json:"likeable_type"`
	User         UserResource `json:"user"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

func presentLike(like *likesdomain.Like, user *usersdomain.User) LikeResource {
	return LikeResource{
		ID:           like.ID,
		LikeableID:   like.LikeableID,
		LikeableType: string(like.LikeableKind),
		User:         presentUser(user),
		CreatedAt:    humanize.Time(like.CreatedAt),
		UpdatedAt:    humanize.Time(like.UpdatedAt),
	}
}
