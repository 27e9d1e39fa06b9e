// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"maitri/internal/chat"
	"maitri/internal/counsel"
	"maitri/internal/db"
)

// TestStore returns a Postgres-backed store when TEST_DATABASE_URL is set and
// an in-memory one otherwise. The store is closed when the test ends.
func TestStore(t *testing.T) db.Store {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		store := db.NewMemoryStore()
		t.Cleanup(store.Close)
		return store
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		database.Pool.Exec(ctx, "DELETE FROM alerts")
		database.Pool.Exec(ctx, "DELETE FROM resolution_counts")
		database.Close()
	})

	return database
}

// FastChatOptions returns chat options with a short typing animation so
// handler tests do not wait on the default pacing.
func FastChatOptions() chat.Options {
	opts := chat.DefaultOptions()
	opts.FrameInterval = 0
	return opts
}

// TestRegistry builds a chat registry over the default catalog and rules with
// fast pacing and closes it when the test ends.
func TestRegistry(t *testing.T) *chat.Registry {
	t.Helper()
	reg := chat.NewRegistry(counsel.DefaultResolver(), counsel.DefaultCatalog(), FastChatOptions())
	t.Cleanup(reg.Close)
	return reg
}
