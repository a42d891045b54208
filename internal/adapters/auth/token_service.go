package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

// Config holds the signing parameters for issued tokens.
type Config struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// TokenService issues and parses HS256-signed bearer tokens. Tokens are
// stateless except for revocation, which the application layer checks
// against the revoked token store.
type TokenService struct {
	key    jwk.Key
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a token service from the shared signing secret
func NewTokenService(cfg Config) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token service: signing secret is required")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("token service: import signing key: %w", err)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &TokenService{
		key:    key,
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token for the user. Each token carries a unique jti
// so it can be individually revoked at logout.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (ports.IssuedToken, error) {
	now := time.Now()
	jti := uuid.New()
	expiresAt := now.Add(s.ttl)

	token, err := jwt.NewBuilder().
		Subject(userID.String()).
		JwtID(jti.String()).
		Issuer(s.issuer).
		IssuedAt(now).
		Expiration(expiresAt).
		Build()
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("token service: build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.key))
	if err != nil {
		return ports.IssuedToken{}, fmt.Errorf("token service: sign token: %w", err)
	}

	return ports.IssuedToken{
		Value:     string(signed),
		JTI:       jti,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse validates a token string and extracts its claims. Signature, expiry
// and issuer are all checked here; revocation is not.
func (s *TokenService) Parse(ctx context.Context, tokenString string) (ports.TokenClaims, error) {
	token, err := jwt.ParseString(
		tokenString,
		jwt.WithKey(jwa.HS256(), s.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(s.issuer),
	)
	if err != nil {
		if strings.Contains(err.Error(), "exp not satisfied") || strings.Contains(err.Error(), "expired") {
			return ports.TokenClaims{}, ports.ErrTokenExpired
		}
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}

	var subject string
	if err := token.Get("sub", &subject); err != nil {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}

	var jtiStr string
	if err := token.Get("jti", &jtiStr); err != nil {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}
	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}

	expiresAt, ok := token.Expiration()
	if !ok {
		return ports.TokenClaims{}, ports.ErrTokenInvalid
	}

	return ports.TokenClaims{
		UserID:    userID,
		JTI:       jti,
		ExpiresAt: expiresAt,
	}, nil
}

// Compile-time check to ensure TokenService implements ports.TokenService
var _ ports.TokenService = (*TokenService)(nil)
