package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrNameTooLong  = errors.New("name must not exceed 100 characters")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyHash    = errors.New("password hash is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const MaxNameLength = 100

// User is a registered forum member. PasswordHash is the bcrypt digest of
// the password and never leaves the backend.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with validation. The caller hashes the password
// before construction.
func NewUser(name, email, passwordHash string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, ErrEmptyHash
	}

	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidateEmail checks the address against a pragmatic format check.
func ValidateEmail(email string) error {
	if email == "" || !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
