package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/JonMunkholm/assettrack/internal/config"
	"github.com/JonMunkholm/assettrack/internal/store"
)

func TestStoreOptions(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Backend:     "SQLite",
		SQLitePath:  "/tmp/x.db",
		DatabaseURL: "postgres://db",
		MaxConns:    7,
		MinConns:    2,
	}}

	got := StoreOptions(cfg)
	if got.Kind != store.KindSQLite || got.SQLitePath != "/tmp/x.db" {
		t.Errorf("StoreOptions() = %+v", got)
	}
	if got.Postgres.URL != "postgres://db" || got.Postgres.MaxConns != 7 || got.Postgres.MinConns != 2 {
		t.Errorf("Postgres = %+v", got.Postgres)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name  string
		store config.StoreConfig
	}{
		{"file", config.StoreConfig{Backend: config.BackendFile, DataDir: t.TempDir()}},
		{"sqlite", config.StoreConfig{Backend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "a.db")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Store:  tt.store,
				Upload: config.UploadConfig{MaxConcurrent: 1, MaxWaitTime: time.Second, Timeout: time.Minute},
				Import: config.ImportConfig{MatchThreshold: 80},
			}

			svc, err := Open(context.Background(), cfg)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer svc.Close()

			if svc.EntityCount() == 0 {
				t.Error("catalog is empty")
			}
			records, err := svc.ListRecords(context.Background(), "vpn", "")
			if err != nil || len(records) != 0 {
				t.Errorf("ListRecords() = %v, %v", records, err)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: "mongo"}}
	if _, err := Open(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
