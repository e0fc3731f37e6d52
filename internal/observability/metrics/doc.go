// Package metrics provides the Prometheus collectors for the article filter.
//
// It covers:
//   - HTTP request metrics (count, duration)
//   - Filter outcomes and result sizes
//   - Article store fetch latency and failures
//   - Database connection pool statistics
//
// All collectors are registered with the Prometheus default registry and
// exposed via the /metrics endpoint of the API server.
package metrics
