package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier subconjunto de pgxpool.Pool / pgx.Tx que usan los repositorios de lectura.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
