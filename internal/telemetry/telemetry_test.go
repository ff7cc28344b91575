package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	prev := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), "axle-client", "  ", nil)

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	assert.Equal(t, prev, otel.GetTracerProvider())
}

func TestSetup_InstallsPropagator(t *testing.T) {
	_, err := Setup(context.Background(), "axle-client", "", nil)
	require.NoError(t, err)

	carrier := propagation.MapCarrier{"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"}
	ctx := otel.GetTextMapPropagator().Extract(context.Background(), carrier)

	out := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, out)
	assert.Equal(t, carrier["traceparent"], out["traceparent"])
}

func TestSetup_EnabledWithUnreachableCollector(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "host port", endpoint: "192.0.2.1:4318"},
		{name: "url", endpoint: "http://192.0.2.1:4318"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), "axle-client", tt.endpoint, nil)
			require.NoError(t, err)
			assert.NotEqual(t, prev, otel.GetTracerProvider())

			// nothing was recorded, so shutdown has nothing to flush
			require.NoError(t, shutdown(context.Background()))
		})
	}
}
