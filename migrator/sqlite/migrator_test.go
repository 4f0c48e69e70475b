package sqlite

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"persons", "leave_requests", "roster_slots"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	applied, err := AppliedCount(db)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)

	t.Run("should be idempotent", func(t *testing.T) {
		require.NoError(t, Migrate(db))

		applied, err := AppliedCount(db)
		require.NoError(t, err)
		assert.Equal(t, 3, applied)
	})
}
