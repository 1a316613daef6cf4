package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func TestClampRatio(t *testing.T) {
	require.Equal(t, 0.0, clampRatio(-0.5))
	require.Equal(t, 0.25, clampRatio(0.25))
	require.Equal(t, 1.0, clampRatio(3))
}

func TestTracer_NoopBeforeSetup(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "noop")
	defer span.End()
	require.False(t, span.SpanContext().IsSampled())
}

func TestSetupTracing_ReturnsShutdown(t *testing.T) {
	// экспортёр создаётся лениво: соединение с коллектором не требуется
	shutdown, err := SetupTracing(context.Background(), "oppify-test", "127.0.0.1:1", 1)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := Tracer().Start(context.Background(), "sampled")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestNewResource_ServiceAttributes(t *testing.T) {
	res := newResource("oppify-test")
	require.Equal(t, semconv.SchemaURL, res.SchemaURL())

	v, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	require.Equal(t, "oppify-test", v.AsString())

	// слияние с пустым ресурсом не даёт конфликта схем
	_, err := resource.Merge(resource.Empty(), res)
	require.NoError(t, err)
}
