package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Migrate applies the embedded roster schema migrations that have not run yet.
func Migrate(db *sql.DB) error {
	if err := sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(schemaFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate roster schema: %w", err)
	}
	return nil
}

// AppliedCount returns how many migrations darwin has recorded as applied.
func AppliedCount(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM darwin_migrations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	return n, nil
}
