package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ugnsma/laranuxt/backend/internal/platform/postgres"
	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

// RevokedTokenRepository implements the users.TokenRevocations interface
// using PostgreSQL. Rows only need to live until the token they name would
// have expired anyway.
type RevokedTokenRepository struct {
	postgres.BaseRepository
}

// NewRevokedTokenRepository creates a new PostgreSQL revoked tokens repository
func NewRevokedTokenRepository(db *pgxpool.Pool) *RevokedTokenRepository {
	return &RevokedTokenRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// Revoke records a token id as revoked until its natural expiry. Revoking
// the same token twice is a no-op.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error {
	query, args, err := r.SB.
		Insert("revoked_tokens").
		Columns("jti", "expires_at", "revoked_at").
		Values(
			pgtype.UUID{Bytes: jti, Valid: true},
			pgtype.Timestamptz{Time: expiresAt, Valid: true},
			pgtype.Timestamptz{Time: time.Now(), Valid: true},
		).
		Suffix("ON CONFLICT (jti) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("RevokedTokenRepository.Revoke: build query: %w", err)
	}

	_, err = r.DB.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("RevokedTokenRepository.Revoke: %w", err)
	}

	return nil
}

// IsRevoked checks whether a token id has been revoked. Expired rows are
// ignored so the table can be pruned lazily.
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	subQuery, subArgs, err := r.SB.
		Select("1").
		From("revoked_tokens").
		Where(sq.Eq{"jti": pgtype.UUID{Bytes: jti, Valid: true}}).
		Where(sq.Gt{"expires_at": pgtype.Timestamptz{Time: time.Now(), Valid: true}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("RevokedTokenRepository.IsRevoked: build query: %w", err)
	}

	query := fmt.Sprintf("SELECT EXISTS(%s)", subQuery)

	var revoked bool
	if err := r.DB.QueryRow(ctx, query, subArgs...).Scan(&revoked); err != nil {
		return false, fmt.Errorf("RevokedTokenRepository.IsRevoked: %w", err)
	}

	return revoked, nil
}

// Compile-time check to ensure RevokedTokenRepository implements ports.TokenRevocations
var _ ports.TokenRevocations = (*RevokedTokenRepository)(nil)
