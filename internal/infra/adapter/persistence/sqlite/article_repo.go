// Package sqlite provides the SQLite implementation of the article store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"article-filter/internal/domain/entity"
	"article-filter/internal/infra/adapter/persistence/rowscan"
	"article-filter/internal/repository"
)

// Backend is the label this store reports in logs and metrics.
const Backend = "sqlite"

// Querier is the subset of *sql.DB the store needs.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ArticleRepo reads articles from a SQLite database.
type ArticleRepo struct {
	db           Querier
	logger       *slog.Logger
	queryTimeout time.Duration
}

// Option customizes an ArticleRepo.
type Option func(*ArticleRepo)

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *ArticleRepo) { r.logger = logger }
}

// WithQueryTimeout bounds each FetchAll call. Zero means no bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *ArticleRepo) { r.queryTimeout = d }
}

// NewArticleRepo creates a SQLite-backed article store.
func NewArticleRepo(db Querier, opts ...Option) *ArticleRepo {
	repo := &ArticleRepo{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// FetchAll returns every article in the order the database yields them.
func (repo *ArticleRepo) FetchAll(ctx context.Context) ([]entity.Article, error) {
	if repo.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, repo.queryTimeout)
		defer cancel()
	}

	articles, err := repo.fetchAll(ctx)
	if err != nil {
		repo.logger.Error("failed to fetch articles from database",
			slog.String("backend", Backend),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: FetchAll: %w", repository.ErrStoreUnavailable, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) fetchAll(ctx context.Context) ([]entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, rowscan.Query)
	if err != nil {
		return nil, fmt.Errorf("QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return rowscan.Articles(rows)
}
