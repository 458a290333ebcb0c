package testutil

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nhle/gorev-takip/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore seeded with the fixture
// data. It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(zerolog.Nop())
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	err = s.Seed(context.Background(), store.FixtureTasks(), store.FixtureNotifications())
	if err != nil {
		t.Fatalf("seeding test store: %v", err)
	}

	return s
}

// NewMemoryStore creates a MemoryStore seeded with the fixture data.
func NewMemoryStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	return store.NewMemoryStore(zerolog.Nop(), store.FixtureTasks(), store.FixtureNotifications())
}

// Backends returns a constructor per Store implementation, keyed by
// name, for running the same test against each.
func Backends() map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"memory": func(t *testing.T) store.Store { return NewMemoryStore(t) },
		"sqlite": func(t *testing.T) store.Store { return NewTestStore(t) },
	}
}
