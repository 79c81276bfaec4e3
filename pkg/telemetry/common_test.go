//go:build unit || !integration

package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
)

func TestSetup_Disabled(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Setup(ctx, config.TelemetryConfig{Enabled: false}))
	assert.NoError(t, Cleanup(ctx))
}

func TestSetup_UnsupportedProtocol(t *testing.T) {
	err := Setup(context.Background(), config.TelemetryConfig{Enabled: true, Protocol: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestGetClients(t *testing.T) {
	ctx := context.Background()
	for _, protocol := range []string{config.ProtocolHTTP, config.ProtocolGRPC} {
		t.Run(protocol, func(t *testing.T) {
			cfg := config.TelemetryConfig{
				Enabled:  true,
				Protocol: protocol,
				Endpoint: "localhost:4317",
				Insecure: true,
				Headers:  map[string]string{"x-api-key": "secret"},
			}
			traceClient, err := getTraceClient(cfg)
			require.NoError(t, err)
			assert.NotNil(t, traceClient)

			metricClient, err := getMetricsClient(ctx, cfg)
			require.NoError(t, err)
			assert.NoError(t, metricClient.Shutdown(ctx))
		})
	}
}

func TestSetupAndCleanup_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := context.Background()
	err := Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Protocol:    config.ProtocolHTTP,
		Endpoint:    strings.TrimPrefix(server.URL, "http://"),
		Insecure:    true,
		ServiceName: "telemetry-test",
	})
	require.NoError(t, err)
	require.NoError(t, Cleanup(ctx))

	// providers are released, a second cleanup has nothing left to do
	assert.NoError(t, Cleanup(ctx))
}
