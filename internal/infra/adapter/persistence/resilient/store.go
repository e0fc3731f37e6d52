// Package resilient decorates an article store with retries, a circuit
// breaker and fetch metrics.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"article-filter/internal/domain/entity"
	"article-filter/internal/observability/metrics"
	"article-filter/internal/repository"
	"article-filter/internal/resilience/circuitbreaker"
	"article-filter/internal/resilience/retry"
)

// Store wraps another ArticleRepository.
type Store struct {
	next    repository.ArticleRepository
	backend string
	retry   retry.Config
	breaker *circuitbreaker.CircuitBreaker
}

// Option customizes a Store.
type Option func(*Store)

// WithRetry replaces the retry policy. MaxAttempts of 1 disables retries.
func WithRetry(cfg retry.Config) Option {
	return func(s *Store) { s.retry = cfg }
}

// WithBreaker replaces the circuit breaker. A nil breaker disables it.
func WithBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(s *Store) { s.breaker = cb }
}

// NewStore wraps next. backend labels metrics and names the default breaker.
func NewStore(next repository.ArticleRepository, backend string, opts ...Option) *Store {
	s := &Store{
		next:    next,
		backend: backend,
		retry:   retry.DBConfig(),
		breaker: circuitbreaker.New(BreakerConfig(backend)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BreakerConfig is circuitbreaker.DBConfig named after backend. Canceled
// requests and invalid rows do not count as failures.
func BreakerConfig(backend string) circuitbreaker.Config {
	cfg := circuitbreaker.DBConfig()
	cfg.Name = "store-" + backend
	cfg.IsFailure = func(err error) bool {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, entity.ErrValidationFailed)
	}
	return cfg
}

var _ repository.ArticleRepository = (*Store)(nil)

// FetchAll delegates to the wrapped store. Every error it returns wraps
// repository.ErrStoreUnavailable.
func (s *Store) FetchAll(ctx context.Context) ([]entity.Article, error) {
	start := time.Now()

	cfg := s.retry
	cfg.Retryable = s.retryable(cfg.Retryable)

	var articles []entity.Article
	err := retry.WithBackoff(ctx, cfg, func() error {
		got, err := s.attempt(ctx)
		if err != nil {
			return err
		}
		articles = got
		return nil
	})
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordStoreFetchError(s.backend, elapsed)
		if !errors.Is(err, repository.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
		}
		return nil, err
	}

	metrics.RecordStoreFetch(s.backend, elapsed, len(articles))
	return articles, nil
}

func (s *Store) attempt(ctx context.Context) ([]entity.Article, error) {
	if s.breaker == nil {
		return s.next.FetchAll(ctx)
	}

	result, err := s.breaker.Execute(func() (any, error) {
		return s.next.FetchAll(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s circuit %s: %w",
			repository.ErrStoreUnavailable, s.backend, s.breaker.State(), err)
	}
	if err != nil {
		return nil, err
	}
	return result.([]entity.Article), nil
}

// retryable never retries a rejection by the breaker.
func (s *Store) retryable(classify func(error) bool) func(error) bool {
	if classify == nil {
		classify = retry.IsRetryable
	}
	return func(err error) bool {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return false
		}
		return classify(err)
	}
}
