package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/earenas/taskboard/internal/database"
)

// newTestDB opens an in-memory sqlite database with the production schema.
// The pool is capped at one connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}
