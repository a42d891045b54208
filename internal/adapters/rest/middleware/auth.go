package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	ClaimsKey contextKey = "token_claims"
)

// AuthMiddleware authenticates requests with a bearer token. It parses and
// validates the token, rejects revoked ones, and puts the caller's identity
// in the request context for handlers downstream.
type AuthMiddleware struct {
	tokens      ports.TokenService
	revocations ports.TokenRevocations
	logger      logger.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens ports.TokenService, revocations ports.TokenRevocations, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:      tokens,
		revocations: revocations,
		logger:      logger,
	}
}

// Middleware wraps a handler, requiring a valid bearer token
func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, ErrorCodeUnauthorized, "Missing authentication token", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, ErrorCodeUnauthorized, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}

		claims, err := m.tokens.Parse(ctx, tokenString)
		if err != nil {
			if errors.Is(err, ports.ErrTokenExpired) {
				WriteJSONError(w, ErrorCodeTokenExpired, "Token has expired", http.StatusUnauthorized)
				return
			}
			WriteJSONError(w, ErrorCodeInvalidToken, "Invalid authentication token", http.StatusUnauthorized)
			return
		}

		revoked, err := m.revocations.IsRevoked(ctx, claims.JTI)
		if err != nil {
			m.logger.Error(ctx, "failed to check token revocation", "error", err, "jti", claims.JTI)
			WriteJSONError(w, ErrorCodeInternalServerError, "Failed to verify token", http.StatusInternalServerError)
			return
		}
		if revoked {
			WriteJSONError(w, ErrorCodeInvalidToken, "Token has been revoked", http.StatusUnauthorized)
			return
		}

		ctx = SetUserID(ctx, claims.UserID)
		ctx = context.WithValue(ctx, ClaimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetUserID stores the authenticated user's ID in the context
func SetUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetClaims extracts the full token claims from the context
func GetClaims(ctx context.Context) (ports.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(ports.TokenClaims)
	return claims, ok
}
