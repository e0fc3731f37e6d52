// Package persistence assembles the configured article store: the driver
// specific repository wrapped in retries, a circuit breaker and metrics.
package persistence

import (
	"database/sql"
	"fmt"
	"log/slog"

	"article-filter/internal/config"
	pg "article-filter/internal/infra/adapter/persistence/postgres"
	"article-filter/internal/infra/adapter/persistence/resilient"
	lite "article-filter/internal/infra/adapter/persistence/sqlite"
	"article-filter/internal/repository"
	"article-filter/internal/resilience/circuitbreaker"
	"article-filter/internal/resilience/retry"
)

// Store is the assembled article store.
type Store struct {
	Repo repository.ArticleRepository
	// Breaker is nil when the circuit breaker is disabled.
	Breaker *circuitbreaker.CircuitBreaker
}

// NewStore builds the article store for cfg on top of an open pool.
func NewStore(db *sql.DB, cfg config.Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		inner     repository.ArticleRepository
		transient func(error) bool
		backend   string
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		inner = pg.NewArticleRepo(db,
			pg.WithLogger(logger),
			pg.WithQueryTimeout(cfg.Database.QueryTimeout))
		transient, backend = pg.IsTransient, pg.Backend
	case config.DriverSQLite:
		inner = lite.NewArticleRepo(db,
			lite.WithLogger(logger),
			lite.WithQueryTimeout(cfg.Database.QueryTimeout))
		transient, backend = lite.IsTransient, lite.Backend
	default:
		return nil, fmt.Errorf("persistence: unsupported database driver %q", cfg.Database.Driver)
	}

	retryCfg := retry.DBConfig()
	retryCfg.MaxAttempts = cfg.Store.RetryAttempts
	retryCfg.Retryable = transient

	var breaker *circuitbreaker.CircuitBreaker
	if cfg.Store.CircuitBreaker {
		breaker = circuitbreaker.New(resilient.BreakerConfig(backend))
	}

	logger.Info("article store configured",
		slog.String("backend", backend),
		slog.Int("retry_attempts", retryCfg.MaxAttempts),
		slog.Bool("circuit_breaker", breaker != nil),
		slog.Duration("query_timeout", cfg.Database.QueryTimeout))

	return &Store{
		Repo: resilient.NewStore(inner, backend,
			resilient.WithRetry(retryCfg),
			resilient.WithBreaker(breaker)),
		Breaker: breaker,
	}, nil
}
