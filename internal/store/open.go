package store

import (
	"context"
	"fmt"
)

// Backend kinds accepted by Open.
const (
	KindFile     = "file"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// Options selects and configures a backend for Open.
type Options struct {
	Kind       string
	DataDir    string
	SQLitePath string
	Postgres   PostgresConfig
}

// Open creates a Store over the backend named by opts.Kind. An empty kind
// means KindFile.
func Open(ctx context.Context, opts Options) (*Store, error) {
	var (
		backend Backend
		err     error
	)

	switch opts.Kind {
	case "", KindFile:
		backend, err = NewFileBackend(opts.DataDir)
	case KindSQLite:
		backend, err = OpenSQLite(ctx, opts.SQLitePath)
	case KindPostgres:
		backend, err = OpenPostgres(ctx, opts.Postgres)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", opts.Kind, err)
	}

	return New(backend), nil
}
