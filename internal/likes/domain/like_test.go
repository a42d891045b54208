package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugnsma/laranuxt/backend/internal/likes/domain"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
)

func TestNewLike(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	like, err := domain.NewLike(userID, likeable.KindPost, postID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, like.ID)
	assert.Equal(t, userID, like.UserID)
	assert.Equal(t, likeable.KindPost, like.LikeableKind)
	assert.Equal(t, postID, like.LikeableID)
	assert.NotZero(t, like.CreatedAt)
	assert.NotZero(t, like.UpdatedAt)
}

func TestNewLikeValidation(t *testing.T) {
	tests := []struct {
		name    string
		userID  uuid.UUID
		kind    likeable.Kind
		target  uuid.UUID
		wantErr error
	}{
		{
			name:    "nil user",
			userID:  uuid.Nil,
			kind:    likeable.KindPost,
			target:  uuid.New(),
			wantErr: domain.ErrInvalidUserID,
		},
		{
			name:    "unknown kind",
			userID:  uuid.New(),
			kind:    likeable.Kind("comment"),
			target:  uuid.New(),
			wantErr: domain.ErrInvalidKind,
		},
		{
			name:    "nil target",
			userID:  uuid.New(),
			kind:    likeable.KindPost,
			target:  uuid.Nil,
			wantErr: domain.ErrInvalidTargetID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewLike(tt.userID, tt.kind, tt.target)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLikeTargets(t *testing.T) {
	postID := uuid.New()
	like, err := domain.NewLike(uuid.New(), likeable.KindPost, postID)
	require.NoError(t, err)

	assert.True(t, like.Targets(likeable.KindPost, postID))
	assert.False(t, like.Targets(likeable.KindPost, uuid.New()))
	assert.False(t, like.Targets(likeable.Kind("comment"), postID))
}

func TestCanLike(t *testing.T) {
	actor := uuid.New()
	author := uuid.New()

	assert.True(t, domain.CanLike(actor, author))
	assert.False(t, domain.CanLike(actor, actor), "authors may not like their own work")
}
