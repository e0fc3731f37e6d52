package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_InstallsGlobal(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewProvider(1, sdktrace.WithSyncer(exporter), WithServiceName("article-filter-test"))
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })

	_, span := Tracer().Start(context.Background(), "probe")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "article-filter", spans[0].InstrumentationScope.Name)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "article-filter-test", service)
}

func TestNewProvider_ZeroRatioSamplesEverything(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewProvider(0, sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { otel.SetTracerProvider(sdktrace.NewTracerProvider()) })

	for range 5 {
		_, span := Tracer().Start(context.Background(), "probe")
		span.End()
	}
	require.NoError(t, tp.ForceFlush(context.Background()))
	assert.Len(t, exporter.GetSpans(), 5)
}

func TestNewOTLPExporter(t *testing.T) {
	exp, err := NewOTLPExporter(context.Background(), "http://localhost:4318/")
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.NoError(t, exp.Shutdown(context.Background()))
}
