// Package application wires configuration, the record store and the entity
// catalog into a core.Service. The HTTP server and the CLI share it.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonMunkholm/assettrack/internal/config"
	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/core/entities"
	"github.com/JonMunkholm/assettrack/internal/store"
)

// StoreOptions translates the store section of cfg for store.Open.
func StoreOptions(cfg *config.Config) store.Options {
	return store.Options{
		Kind:       strings.ToLower(cfg.Store.Backend),
		DataDir:    cfg.Store.DataDir,
		SQLitePath: cfg.Store.SQLitePath,
		Postgres: store.PostgresConfig{
			URL:      cfg.Store.DatabaseURL,
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		},
	}
}

// ServiceOptions translates the upload and import sections of cfg.
func ServiceOptions(cfg *config.Config) core.Options {
	return core.Options{
		MatchThreshold:       cfg.Import.MatchThreshold,
		MaxConcurrentImports: cfg.Upload.MaxConcurrent,
		MaxWaitTime:          cfg.Upload.MaxWaitTime,
		ImportTimeout:        cfg.Upload.Timeout,
	}
}

// Open opens the configured store and returns a service over the full
// entity catalog. Closing the service closes the store.
func Open(ctx context.Context, cfg *config.Config) (*core.Service, error) {
	st, err := store.Open(ctx, StoreOptions(cfg))
	if err != nil {
		return nil, err
	}

	reg := entities.Catalog()
	svc, err := core.NewService(reg, st, ServiceOptions(cfg))
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("create service: %w", err)
	}

	slog.Debug("entities registered", "count", reg.Len(), "groups", len(reg.Groups()))
	for _, group := range reg.Groups() {
		slog.Debug("entity group", "group", group, "entities", len(reg.ByGroup(group)))
	}

	return svc, nil
}
