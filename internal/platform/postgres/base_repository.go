package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both pgxpool.Pool and pgx.Tx, so repositories can
// run the same queries inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository carries the database handle and SQL builder every
// repository needs.
type BaseRepository struct {
	DB Querier
	SB sq.StatementBuilderType
}

// NewBaseRepository creates a base repository backed by a connection pool.
func NewBaseRepository(db *pgxpool.Pool) BaseRepository {
	return BaseRepository{
		DB: db,
		SB: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), // PostgreSQL $1, $2 placeholders
	}
}

// WithTx returns a copy of the base repository bound to the given transaction.
func (b BaseRepository) WithTx(tx pgx.Tx) BaseRepository {
	return BaseRepository{
		DB: tx,
		SB: b.SB,
	}
}
