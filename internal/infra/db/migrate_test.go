package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-filter/internal/config"
)

func TestMigrateUp_Postgres(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS articles")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, MigrateUp(context.Background(), database, config.DriverPostgres))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_SQLiteIsIdempotent(t *testing.T) {
	database, err := Open(context.Background(), sqliteConfig(t), nil)
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	ctx := context.Background()
	require.NoError(t, MigrateUp(ctx, database, config.DriverSQLite))
	require.NoError(t, MigrateUp(ctx, database, config.DriverSQLite))

	var count int
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestMigrateUp_UnknownDriver(t *testing.T) {
	database, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	assert.Error(t, MigrateUp(context.Background(), database, "mysql"))
}
