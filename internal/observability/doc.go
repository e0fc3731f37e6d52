// Package observability groups the structured logging, Prometheus metrics and
// OpenTelemetry tracing used by the article filter.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus collectors and recorders
//   - tracing: OpenTelemetry tracer access and HTTP middleware
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Options{Level: "info"})
//	logger.Info("application started")
//
//	metrics.RecordFilter(metrics.OutcomeMatched, 3)
package observability
