package database

import (
	"database/sql"
	"testing"

	"github.com/diegoclair/duty-roster/migrator/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to create test database")

	// every pooled connection to :memory: would get its own empty database
	sqlDB.SetMaxOpenConns(1)

	err = sqlite.Migrate(sqlDB)
	require.NoError(t, err, "Failed to run migrations on test database")

	db := &DB{conn: sqlDB}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
