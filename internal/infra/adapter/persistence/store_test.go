package persistence_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-filter/internal/config"
	"article-filter/internal/infra/adapter/persistence"
	infradb "article-filter/internal/infra/db"
)

func TestNewStore_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "articles.db")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	db, err := infradb.Open(context.Background(), cfg.Database, logger)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	require.NoError(t, infradb.MigrateUp(context.Background(), db, cfg.Database.Driver))

	_, err = db.Exec(`INSERT INTO articles (title, description, views, tags) VALUES ('Hello', 'd', 4, 'a b')`)
	require.NoError(t, err)

	store, err := persistence.NewStore(db, cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, store.Breaker)

	got, err := store.Repo.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a", "b"}, got[0].Tags)
	assert.Contains(t, logs.String(), "backend=sqlite")
}

func TestNewStore_BreakerDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Store.CircuitBreaker = false

	store, err := persistence.NewStore(nil, cfg, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	assert.Nil(t, store.Breaker)
}

func TestNewStore_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "mysql"

	_, err := persistence.NewStore(nil, cfg, nil)
	assert.Error(t, err)
}
