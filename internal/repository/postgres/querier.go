package postgres

import (
	"context"
	"errors"
	"fmt"

	"stravigo-website-backend/internal/domain"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// Querier is the subset of pgxpool.Pool the repositories need. Keeping it
// narrow lets tests substitute a pgxmock pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds queries with Postgres-style $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// mapWriteError classifies an insert failure once, at the gateway boundary.
// A uniqueness violation becomes domain.ErrDuplicate; the pipeline decides
// per operation whether that is tolerable. Everything else stays a backend
// error with the store's message attached.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapReadError classifies a single-row lookup failure. Zero rows becomes
// domain.ErrNotFound; under the restricted role a policy-hidden row is
// indistinguishable from an absent one, which is deliberate.
func mapReadError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
