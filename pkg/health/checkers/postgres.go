package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// PostgresChecker pings the pool and confirms the generations table exists,
// which means migrations have run.
type PostgresChecker struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool, timeout: time.Second}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.pool.Ping(ctx); err != nil {
		return errors.Wrap(err, "ping")
	}
	var migrated bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('public.cv_generations') IS NOT NULL`).Scan(&migrated); err != nil {
		return errors.Wrap(err, "schema probe")
	}
	if !migrated {
		return errors.New("schema not migrated")
	}
	return nil
}
