package news_db

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the repository uses; pgxmock
// implements it in tests.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var errNoConnection = errors.New("database connection not available")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type NewsDBRepository struct {
	pool PgxIface
}

func NewNewsDBRepository(pool PgxIface) *NewsDBRepository {
	return &NewsDBRepository{pool: pool}
}

func (r *NewsDBRepository) ready() error {
	if r == nil || r.pool == nil {
		return errNoConnection
	}
	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Ping checks that the database answers a trivial query.
func (r *NewsDBRepository) Ping(ctx context.Context) error {
	if err := r.ready(); err != nil {
		return err
	}
	var one int
	return r.pool.QueryRow(ctx, "SELECT 1").Scan(&one)
}
