// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)
)

// Filter metrics track the article filter use case
var (
	// ArticleFilterRequestsTotal counts filter calls by outcome
	ArticleFilterRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_filter_requests_total",
			Help: "Total number of article filter requests",
		},
		[]string{"outcome"}, // outcome: matched, empty, store_error
	)

	// ArticleFilterResults measures how many articles each filter call returned
	ArticleFilterResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "article_filter_results",
			Help:    "Number of articles returned per filter request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// Store metrics track the article store
var (
	// StoreFetchDuration measures the duration of a full article fetch
	StoreFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_fetch_duration_seconds",
			Help:    "Article store fetch duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"backend", "status"},
	)

	// StoreFetchErrorsTotal counts failed article fetches
	StoreFetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_fetch_errors_total",
			Help: "Total number of failed article store fetches",
		},
		[]string{"backend"},
	)

	// StoreArticlesFetchedTotal counts articles returned by the store
	StoreArticlesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_articles_fetched_total",
			Help: "Total number of articles read from the article store",
		},
		[]string{"backend"},
	)
)

// Database metrics track the connection pool
var (
	// DBConnectionsActive tracks in-use database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
