package store

import (
	"context"
	"os"
	"testing"
)

// TestPostgresBackend runs against a real server when TEST_DATABASE_URL is set.
func TestPostgresBackend(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	b, err := OpenPostgres(ctx, PostgresConfig{URL: url, MaxConns: 2})
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer b.Close()

	name := "test_" + t.Name()
	t.Cleanup(func() {
		_, _ = b.pool.Exec(context.Background(), `DELETE FROM collections WHERE name = $1`, name)
	})

	c := New(b).Collection(name)
	rec, err := c.Create(ctx, Record{"nome": "Ana"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, _ := rec.ID()

	got, found, err := c.Get(ctx, id)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if got["nome"] != "Ana" {
		t.Errorf("nome = %v, want Ana", got["nome"])
	}
}
