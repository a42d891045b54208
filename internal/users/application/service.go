package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ugnsma/laranuxt/backend/internal/platform/apperror"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	"github.com/ugnsma/laranuxt/backend/internal/users/domain"
	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Error definitions for service operations
var (
	ErrInvalidUserData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid user data",
		http.StatusUnprocessableEntity,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		apperror.BusinessCodeEmailTaken,
		"email already registered",
		http.StatusConflict,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidCredentials,
		"invalid credentials",
		http.StatusUnprocessableEntity,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeUserNotFound,
		"user not found",
		http.StatusNotFound,
	)
)

// UserService handles registration, login and identity lookups
type UserService struct {
	repo        ports.UserRepository
	tokens      ports.TokenService
	revocations ports.TokenRevocations
	logger      logger.Logger
}

// NewUserService creates a new user service
func NewUserService(
	repo ports.UserRepository,
	tokens ports.TokenService,
	revocations ports.TokenRevocations,
	logger logger.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		tokens:      tokens,
		revocations: revocations,
		logger:      logger,
	}
}

// RegisterParams contains parameters for registering a new user
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user account and issues a bearer token for it.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*domain.User, ports.IssuedToken, error) {
	if len(params.Password) < MinPasswordLength {
		return nil, ports.IssuedToken{}, ErrInvalidUserData.WithDetails("password must be at least 8 characters")
	}

	if err := domain.ValidateEmail(params.Email); err != nil {
		return nil, ports.IssuedToken{}, ErrInvalidUserData.WithDetails(err.Error())
	}

	// Fast-path check; the unique index on email is the authoritative guard
	exists, err := s.repo.ExistsByEmail(ctx, params.Email)
	if err != nil {
		s.logger.Error(ctx, "failed to check email availability", "error", err)
		return nil, ports.IssuedToken{}, s.internal("failed to register user")
	}
	if exists {
		return nil, ports.IssuedToken{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(ctx, "failed to hash password", "error", err)
		return nil, ports.IssuedToken{}, s.internal("failed to register user")
	}

	user, err := domain.NewUser(params.Name, params.Email, string(hash))
	if err != nil {
		return nil, ports.IssuedToken{}, ErrInvalidUserData.WithDetails(err.Error())
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ports.ErrEmailTaken) {
			return nil, ports.IssuedToken{}, ErrEmailAlreadyRegistered
		}
		s.logger.Error(ctx, "failed to create user", "error", err)
		return nil, ports.IssuedToken{}, s.internal("failed to register user")
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to issue token", "error", err, "userID", user.ID)
		return nil, ports.IssuedToken{}, s.internal("failed to register user")
	}

	s.logger.Info(ctx, "user registered", "userID", user.ID)
	return user, token, nil
}

// Login verifies credentials and issues a bearer token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, ports.IssuedToken, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return nil, ports.IssuedToken{}, ErrInvalidCredentials
		}
		s.logger.Error(ctx, "failed to find user by email", "error", err)
		return nil, ports.IssuedToken{}, s.internal("failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ports.IssuedToken{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to issue token", "error", err, "userID", user.ID)
		return nil, ports.IssuedToken{}, s.internal("failed to log in")
	}

	return user, token, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *UserService) Logout(ctx context.Context, claims ports.TokenClaims) error {
	if err := s.revocations.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		s.logger.Error(ctx, "failed to revoke token", "error", err, "jti", claims.JTI)
		return s.internal("failed to log out")
	}
	return nil
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error(ctx, "failed to find user", "error", err, "userID", id)
		return nil, s.internal("failed to fetch user")
	}
	return user, nil
}

func (s *UserService) internal(msg string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		msg,
		http.StatusInternalServerError,
	)
}
