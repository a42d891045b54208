package ports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid authentication token")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	Value     string // Compact serialized JWT
	JTI       uuid.UUID
	ExpiresAt time.Time
}

// TokenClaims are the validated claims extracted from a presented token.
type TokenClaims struct {
	UserID    uuid.UUID // Subject
	JTI       uuid.UUID
	ExpiresAt time.Time
}

// TokenService signs and validates bearer tokens. The subject claim is the
// user's primary identifier; no custom claims are carried.
type TokenService interface {
	Issue(ctx context.Context, userID uuid.UUID) (IssuedToken, error)
	Parse(ctx context.Context, token string) (TokenClaims, error)
}

// TokenRevocations records tokens invalidated before their natural expiry,
// backing logout.
type TokenRevocations interface {
	// Revoke marks a token id as revoked until expiresAt
	Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error

	// IsRevoked reports whether a token id has been revoked
	IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error)
}
