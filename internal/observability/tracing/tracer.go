package tracing

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "article-filter"

// Tracer returns the application tracer from the currently installed global
// provider. It is resolved on every call so a provider installed later is
// picked up.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// NewProvider builds an SDK tracer provider sampling the given ratio of
// root spans, installs it globally together with the W3C propagator, and
// returns it so the caller can Shutdown on exit.
// A ratio outside (0, 1] samples everything.
func NewProvider(sampleRatio float64, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	sampler := sdktrace.AlwaysSample()
	if sampleRatio > 0 && sampleRatio < 1 {
		sampler = sdktrace.TraceIDRatioBased(sampleRatio)
	}

	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sampler)),
	}, opts...)
	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}

// NewOTLPExporter returns an OTLP/HTTP span exporter posting to the
// collector at endpoint. Plain http endpoints are sent without TLS.
func NewOTLPExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimRight(endpoint, "/")+"/v1/traces"),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return exp, nil
}

// WithServiceName tags every span with the service.name resource attribute.
func WithServiceName(name string) sdktrace.TracerProviderOption {
	return sdktrace.WithResource(resource.NewSchemaless(semconv.ServiceName(name)))
}
