package db

import (
	"context"
	"database/sql"
	"fmt"

	"article-filter/internal/config"
)

// articlesTable is the schema the article stores read from. Tags are kept as
// a single whitespace-separated text column.
var articlesTable = map[string]string{
	config.DriverPostgres: `
CREATE TABLE IF NOT EXISTS articles (
    id          SERIAL PRIMARY KEY,
    title       TEXT    NOT NULL,
    description TEXT    NOT NULL DEFAULT '',
    views       INTEGER NOT NULL DEFAULT 0 CHECK (views >= 0),
    tags        TEXT
)`,
	config.DriverSQLite: `
CREATE TABLE IF NOT EXISTS articles (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT    NOT NULL,
    description TEXT    NOT NULL DEFAULT '',
    views       INTEGER NOT NULL DEFAULT 0 CHECK (views >= 0),
    tags        TEXT
)`,
}

// MigrateUp creates the articles table when it does not exist yet.
// It never touches existing rows.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	ddl, ok := articlesTable[driver]
	if !ok {
		return fmt.Errorf("MigrateUp: unsupported database driver %q", driver)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("MigrateUp: %w", err)
	}
	return nil
}
