package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool builds a pgx connection pool from dsn. Connections are established
// lazily: the store may be unreachable at startup and the server still comes
// up, serving fallback pages until it recovers. Readiness probing is the
// /health/ready endpoint's job, not the constructor's.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, config)
}
