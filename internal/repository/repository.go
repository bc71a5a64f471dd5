// Package repository is the Postgres persistence layer for student records.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the students store backed by a pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// New opens a connection pool against the students database and verifies
// it with a ping. Pool sizing comes from the caller so deployments can
// tune it through DB_MAX_CONNS and DB_MIN_CONNS.
func New(ctx context.Context, databaseURL string, maxConns, minConns int32) (*Repository, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// Ping reports whether the students database is reachable. The health
// endpoint calls this on every probe.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close releases the connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// Pool exposes the underlying pool for test helpers that need raw access,
// such as advisory locks and schema resets.
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}
