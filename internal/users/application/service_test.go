package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ugnsma/laranuxt/backend/internal/users/application"
	"github.com/ugnsma/laranuxt/backend/internal/users/domain"
	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {}

type mockUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
	created []*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uuid.UUID]*domain.User),
	}
}

func (m *mockUserRepo) add(user *domain.User) {
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return ports.ErrEmailTaken
	}
	m.add(user)
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, ports.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, ports.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockTokenService struct {
	issued int
}

func (m *mockTokenService) Issue(ctx context.Context, userID uuid.UUID) (ports.IssuedToken, error) {
	m.issued++
	return ports.IssuedToken{
		Value:     "token-" + userID.String(),
		JTI:       uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (m *mockTokenService) Parse(ctx context.Context, token string) (ports.TokenClaims, error) {
	return ports.TokenClaims{}, ports.ErrTokenInvalid
}

type mockRevocations struct {
	revoked map[uuid.UUID]time.Time
}

func newMockRevocations() *mockRevocations {
	return &mockRevocations{revoked: make(map[uuid.UUID]time.Time)}
}

func (m *mockRevocations) Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error {
	m.revoked[jti] = expiresAt
	return nil
}

func (m *mockRevocations) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	_, ok := m.revoked[jti]
	return ok, nil
}

func newService(repo *mockUserRepo) (*application.UserService, *mockTokenService, *mockRevocations) {
	tokens := &mockTokenService{}
	revocations := newMockRevocations()
	svc := application.NewUserService(repo, tokens, revocations, &mockLogger{})
	return svc, tokens, revocations
}

func existingUser(t *testing.T, repo *mockUserRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := domain.NewUser("user", email, string(hash))
	require.NoError(t, err)
	repo.add(user)
	return user
}

func TestRegister(t *testing.T) {
	repo := newMockUserRepo()
	svc, tokens, _ := newService(repo)

	user, token, err := svc.Register(context.Background(), application.RegisterParams{
		Name:     "user",
		Email:    "user@user.com",
		Password: "password",
	})
	require.NoError(t, err)

	assert.Equal(t, "user@user.com", user.Email)
	assert.NotEmpty(t, token.Value)
	assert.Equal(t, 1, tokens.issued)
	require.Len(t, repo.created, 1)

	// Stored hash verifies against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("password")))
}

func TestRegisterInvalidEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)

	_, _, err := svc.Register(context.Background(), application.RegisterParams{
		Name:     "user",
		Email:    "user",
		Password: "password",
	})
	assert.ErrorIs(t, err, application.ErrInvalidUserData)
	assert.Empty(t, repo.created)
}

func TestRegisterShortPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)

	_, _, err := svc.Register(context.Background(), application.RegisterParams{
		Name:     "user",
		Email:    "user@user.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, application.ErrInvalidUserData)
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)
	existingUser(t, repo, "user@user.com", "password")

	_, _, err := svc.Register(context.Background(), application.RegisterParams{
		Name:     "other",
		Email:    "user@user.com",
		Password: "password",
	})
	assert.ErrorIs(t, err, application.ErrEmailAlreadyRegistered)
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)
	want := existingUser(t, repo, "user@user.com", "password")

	user, token, err := svc.Login(context.Background(), "user@user.com", "password")
	require.NoError(t, err)
	assert.Equal(t, want.ID, user.ID)
	assert.NotEmpty(t, token.Value)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)
	existingUser(t, repo, "user@user.com", "password")

	_, _, err := svc.Login(context.Background(), "user@user.com", "bad password")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)

	_, _, err := svc.Login(context.Background(), "nobody@user.com", "password")
	assert.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, revocations := newService(repo)

	jti := uuid.New()
	err := svc.Logout(context.Background(), ports.TokenClaims{
		UserID:    uuid.New(),
		JTI:       jti,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	revoked, err := revocations.IsRevoked(context.Background(), jti)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestGetUser(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)
	want := existingUser(t, repo, "user@user.com", "password")

	user, err := svc.GetUser(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Email, user.Email)
}

func TestGetUserNotFound(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newService(repo)

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}
