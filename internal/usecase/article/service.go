package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"article-filter/internal/domain/entity"
	"article-filter/internal/observability/logging"
	"article-filter/internal/observability/metrics"
	"article-filter/internal/observability/tracing"
	"article-filter/internal/repository"
)

// Service filters the articles held by the store.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	Repo   repository.ArticleRepository
	Logger *slog.Logger
}

// Result is the outcome of a successful Filter call.
type Result struct {
	// Articles holds the matches in store order. Never nil.
	Articles []entity.Article
	// Fetched is the number of articles the store returned.
	Fetched int
}

// Filter loads every article and keeps those with at least minViews views
// whose title or tags contain keyword. A store failure is returned as an
// error wrapping ErrStoreUnavailable, so callers can tell it apart from an
// empty match.
func (s *Service) Filter(ctx context.Context, minViews int, keyword string) (Result, error) {
	q := NewQuery(minViews, keyword)

	ctx, span := tracing.Tracer().Start(ctx, "article.Filter",
		trace.WithAttributes(
			attribute.Int("min_views", q.MinViews),
			attribute.Bool("keyword_set", q.Keyword != ""),
		))
	defer span.End()

	articles, err := s.Repo.FetchAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "article store unavailable")
		metrics.RecordFilter(metrics.OutcomeStoreError, 0)
		if !errors.Is(err, ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return Result{Articles: []entity.Article{}}, fmt.Errorf("filter articles: %w", err)
	}

	matched := q.Apply(articles)

	span.SetAttributes(
		attribute.Int("fetched", len(articles)),
		attribute.Int("matched", len(matched)),
	)
	outcome := metrics.OutcomeMatched
	if len(matched) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordFilter(outcome, len(matched))

	return Result{Articles: matched, Fetched: len(articles)}, nil
}

// GetFilteredArticles is Filter with store failures absorbed: it logs the
// failure once and returns an empty slice. The result is never nil.
func (s *Service) GetFilteredArticles(ctx context.Context, minViews int, keyword string) []entity.Article {
	res, err := s.Filter(ctx, minViews, keyword)
	if err != nil {
		s.logger(ctx).Error("failed to load articles from store",
			slog.Int("min_views", minViews),
			slog.Any("error", err))
		return []entity.Article{}
	}
	return res.Articles
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	logger := s.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	return logging.WithRequestID(ctx, logger)
}
