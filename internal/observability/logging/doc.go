// Package logging provides structured logging utilities with context propagation.
//
// It wraps log/slog with the logger construction and request-scoped helpers
// used by the CLI and the API server.
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Options{Level: "debug", Format: "text"})
//	logger.Info("application started", slog.String("version", "1.0"))
//
//	func handle(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, logging.FromContext(ctx))
//	    logger.Info("processing request")
//	}
package logging
