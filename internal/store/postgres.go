package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresDDL = `CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	payload JSONB NOT NULL
)`

// PostgresConfig holds the connection settings for OpenPostgres.
type PostgresConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// PostgresBackend keeps every collection as one JSONB row.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects a pool and ensures the collections table exists.
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*PostgresBackend, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = int32(cfg.MinConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	b, err := NewPostgresBackend(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return b, nil
}

// NewPostgresBackend uses an existing pool. Close closes the pool.
func NewPostgresBackend(ctx context.Context, pool *pgxpool.Pool) (*PostgresBackend, error) {
	if _, err := pool.Exec(ctx, postgresDDL); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &PostgresBackend{pool: pool}, nil
}

func (b *PostgresBackend) Load(ctx context.Context, name string) ([]byte, bool, error) {
	if name == "" {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	var payload []byte
	err := b.pool.QueryRow(ctx, `SELECT payload FROM collections WHERE name = $1`, name).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", name, err)
	}
	return payload, true, nil
}

func (b *PostgresBackend) Save(ctx context.Context, name string, payload []byte) error {
	if name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if _, err := b.pool.Exec(ctx,
		`INSERT INTO collections(name, payload) VALUES($1, $2) ON CONFLICT(name) DO UPDATE SET payload = EXCLUDED.payload`,
		name, payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return nil
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
