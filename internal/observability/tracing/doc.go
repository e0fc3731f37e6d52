// Package tracing provides the OpenTelemetry integration.
//
// The API server installs a tracer provider at startup with NewProvider and
// wraps its mux with Middleware. Use cases open child spans with Tracer:
//
//	ctx, span := tracing.Tracer().Start(ctx, "article.Filter")
//	defer span.End()
package tracing
