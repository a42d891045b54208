package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ugnsma/laranuxt/backend/internal/users/domain"
)

// Repository errors. The PostgreSQL implementation translates pgx.ErrNoRows
// and unique violations to these.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create saves a new user. Returns ErrEmailTaken if the email is in use.
	Create(ctx context.Context, user *domain.User) error

	// FindByID retrieves a user by primary key
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// FindByEmail retrieves a user by email address
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail checks whether an email address is registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
