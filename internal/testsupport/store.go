package testsupport

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/roster"
)

// MustOpenRoster opens a roster.Store for tests and registers cleanup.
func MustOpenRoster(t testing.TB, cfg *config.Config, opts ...roster.Option) *roster.Store {
	t.Helper()

	store, err := roster.Open(cfg, opts...)
	if err != nil {
		t.Fatalf("roster.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddPerson stores a person for tests using the provided store.
func AddPerson(t testing.TB, store *roster.Store, person identity.Identity) *roster.Person {
	t.Helper()

	stored, err := store.Add(context.Background(), person)
	if err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return stored
}

// MustOpenSQLite opens a second raw connection to a database file so tests
// can reach past the store API.
func MustOpenSQLite(t testing.TB, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}
