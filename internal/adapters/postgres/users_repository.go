package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ugnsma/laranuxt/backend/internal/platform/postgres"
	"github.com/ugnsma/laranuxt/backend/internal/users/domain"
	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// UserRepository implements the users.UserRepository interface using PostgreSQL
type UserRepository struct {
	postgres.BaseRepository
}

// NewUserRepository creates a new PostgreSQL users repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// Create inserts a new user into the database
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query, args, err := r.SB.
		Insert("users").
		Columns("id", "name", "email", "password_hash", "created_at", "updated_at").
		Values(
			pgtype.UUID{Bytes: user.ID, Valid: true},
			user.Name,
			user.Email,
			user.PasswordHash,
			pgtype.Timestamptz{Time: user.CreatedAt, Valid: true},
			pgtype.Timestamptz{Time: user.UpdatedAt, Valid: true},
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepository.Create: build query: %w", err)
	}

	_, err = r.DB.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrEmailTaken
		}
		return fmt.Errorf("UserRepository.Create: %w", err)
	}

	return nil
}

// FindByID retrieves a user by primary key
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := r.SB.
		Select("id", "name", "email", "password_hash", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": pgtype.UUID{Bytes: id, Valid: true}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("UserRepository.FindByID: build query: %w", err)
	}

	user, err := scanUser(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrUserNotFound
		}
		return nil, fmt.Errorf("UserRepository.FindByID: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by email address
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := r.SB.
		Select("id", "name", "email", "password_hash", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("UserRepository.FindByEmail: build query: %w", err)
	}

	user, err := scanUser(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrUserNotFound
		}
		return nil, fmt.Errorf("UserRepository.FindByEmail: %w", err)
	}

	return user, nil
}

// ExistsByEmail checks whether an email address is already registered
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	subQuery, subArgs, err := r.SB.
		Select("1").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("UserRepository.ExistsByEmail: build query: %w", err)
	}

	query := fmt.Sprintf("SELECT EXISTS(%s)", subQuery)

	var exists bool
	if err := r.DB.QueryRow(ctx, query, subArgs...).Scan(&exists); err != nil {
		return false, fmt.Errorf("UserRepository.ExistsByEmail: %w", err)
	}

	return exists, nil
}

// scanUser scans a single user from pgx.Row
func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var idBytes pgtype.UUID

	err := row.Scan(
		&idBytes,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.ID = uuid.UUID(idBytes.Bytes)
	return &user, nil
}

// Compile-time check to ensure UserRepository implements ports.UserRepository
var _ ports.UserRepository = (*UserRepository)(nil)
