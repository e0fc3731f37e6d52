package metrics

import "time"

// Filter outcomes used as the outcome label of ArticleFilterRequestsTotal.
const (
	OutcomeMatched    = "matched"
	OutcomeEmpty      = "empty"
	OutcomeStoreError = "store_error"
)

// RecordFilter records the outcome of one filter request and, unless the
// store failed, the number of articles it returned.
func RecordFilter(outcome string, results int) {
	ArticleFilterRequestsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeStoreError {
		ArticleFilterResults.Observe(float64(results))
	}
}

// RecordStoreFetch records a successful store fetch.
func RecordStoreFetch(backend string, duration time.Duration, count int) {
	StoreFetchDuration.WithLabelValues(backend, "success").Observe(duration.Seconds())
	StoreArticlesFetchedTotal.WithLabelValues(backend).Add(float64(count))
}

// RecordStoreFetchError records a failed store fetch.
func RecordStoreFetchError(backend string, duration time.Duration) {
	StoreFetchDuration.WithLabelValues(backend, "failure").Observe(duration.Seconds())
	StoreFetchErrorsTotal.WithLabelValues(backend).Inc()
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
