package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/Gunvolt24/eventbus/pkg/telemetry"
)

func TestSetupTracing_DisabledInstallsPropagatorsOnly(t *testing.T) {
	shutdown, err := telemetry.SetupTracing(context.Background(), telemetry.Config{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	require.Contains(t, fields, "traceparent")
	require.Contains(t, fields, "baggage")
}

func TestSetupTracing_EnabledReturnsShutdown(t *testing.T) {
	// Экспортёр OTLP/HTTP не соединяется при создании, поэтому коллектор не нужен.
	shutdown, err := telemetry.SetupTracing(context.Background(), telemetry.Config{
		Enabled:     true,
		ServiceName: "eventbus-test",
		Endpoint:    "127.0.0.1:1",
		SampleRatio: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	_ = shutdown(context.Background())
}
