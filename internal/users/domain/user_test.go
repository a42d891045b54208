package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugnsma/laranuxt/backend/internal/users/domain"
)

func TestNewUser(t *testing.T) {
	user, err := domain.NewUser("user", "user@user.com", "$2a$10$fakehash")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "user", user.Name)
	assert.Equal(t, "user@user.com", user.Email)
	assert.Equal(t, "$2a$10$fakehash", user.PasswordHash)
	assert.NotZero(t, user.CreatedAt)
	assert.NotZero(t, user.UpdatedAt)
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		hash     string
		wantErr  error
	}{
		{
			name:     "empty name",
			userName: "",
			email:    "user@user.com",
			hash:     "hash",
			wantErr:  domain.ErrEmptyName,
		},
		{
			name:     "name too long",
			userName: string(make([]byte, domain.MaxNameLength+1)),
			email:    "user@user.com",
			hash:     "hash",
			wantErr:  domain.ErrNameTooLong,
		},
		{
			name:     "email without domain",
			userName: "user",
			email:    "user",
			hash:     "hash",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email without tld",
			userName: "user",
			email:    "user@host",
			hash:     "hash",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "empty email",
			userName: "user",
			email:    "",
			hash:     "hash",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "missing hash",
			userName: "user",
			email:    "user@user.com",
			hash:     "",
			wantErr:  domain.ErrEmptyHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewUser(tt.userName, tt.email, tt.hash)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, domain.ValidateEmail("a@x.com"))
	assert.NoError(t, domain.ValidateEmail("first.last+tag@sub.example.org"))
	assert.Error(t, domain.ValidateEmail("not-an-email"))
	assert.Error(t, domain.ValidateEmail("@x.com"))
}
