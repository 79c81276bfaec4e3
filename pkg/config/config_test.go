//go:build unit || !integration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Cleanup viper settings after each test
	defer Reset()

	t.Run("Defaults", func(t *testing.T) {
		defer Reset()
		cfg, err := Load(t.TempDir(), WithDotEnvFile(""))
		require.NoError(t, err)
		assert.Equal(t, Default, cfg)
	})

	t.Run("KeyAsEnvVar", func(t *testing.T) {
		assert.Equal(t, "AIP_OTEL_EXPORTER_MAXBATCHSIZE", KeyAsEnvVar(ExporterMaxBatchSize))
		assert.Equal(t, "AIP_OTEL_TELEMETRY_ENDPOINT", KeyAsEnvVar(TelemetryEndpoint))
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		defer Reset()
		t.Setenv(KeyAsEnvVar(ExporterEndpoint), "http://collector:4318/v1/traces")
		t.Setenv(KeyAsEnvVar(ExporterMaxBatchSize), "7")
		t.Setenv(KeyAsEnvVar(ExporterTimeout), "5s")
		t.Setenv(KeyAsEnvVar(ExporterHeaders), "x-tenant=acme, x-team = blue")
		t.Setenv(KeyAsEnvVar(TelemetryEnabled), "true")
		t.Setenv(KeyAsEnvVar(TelemetryProtocol), ProtocolGRPC)

		cfg, err := Load(t.TempDir(), WithDotEnvFile(""))
		require.NoError(t, err)

		assert.Equal(t, "http://collector:4318/v1/traces", cfg.Exporter.Endpoint)
		assert.Equal(t, 7, cfg.Exporter.MaxBatchSize)
		assert.Equal(t, 5*time.Second, cfg.Exporter.Timeout)
		assert.Equal(t, map[string]string{"x-tenant": "acme", "x-team": "blue"}, cfg.Exporter.Headers)
		assert.Equal(t, DefaultServiceName, cfg.Exporter.ServiceName)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, ProtocolGRPC, cfg.Telemetry.Protocol)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		defer Reset()
		configPath := t.TempDir()
		content := `
Exporter:
  Endpoint: http://file:4318/v1/traces
  ServiceName: from-file
  Timeout: 10s
  Headers:
    x-api-key: secret
`
		require.NoError(t, os.WriteFile(filepath.Join(configPath, "config.yaml"), []byte(content), 0o600))

		cfg, err := Load(configPath, WithDotEnvFile(""))
		require.NoError(t, err)

		assert.Equal(t, "http://file:4318/v1/traces", cfg.Exporter.Endpoint)
		assert.Equal(t, "from-file", cfg.Exporter.ServiceName)
		assert.Equal(t, 10*time.Second, cfg.Exporter.Timeout)
		assert.Equal(t, map[string]string{"x-api-key": "secret"}, cfg.Exporter.Headers)
		assert.Equal(t, DefaultMaxBatchSize, cfg.Exporter.MaxBatchSize)
	})

	t.Run("DotEnv", func(t *testing.T) {
		defer Reset()
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("AIP_OTEL_EXPORTER_SERVICENAME=from-dotenv\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("AIP_OTEL_EXPORTER_SERVICENAME") })

		cfg, err := Load(dir, WithDotEnvFile(envFile))
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.Exporter.ServiceName)
	})

	t.Run("InitThenLoad", func(t *testing.T) {
		defer Reset()
		configPath := filepath.Join(t.TempDir(), "nested")
		expected := Default
		expected.Exporter.Endpoint = "http://init:4318/v1/traces"

		_, err := Init(configPath, WithDefaultConfig(expected), WithDotEnvFile(""))
		require.NoError(t, err)
		require.FileExists(t, filepath.Join(configPath, "config.yaml"))
		Reset()

		loaded, err := Load(configPath, WithDotEnvFile(""))
		require.NoError(t, err)
		assert.Equal(t, expected.Exporter.Endpoint, loaded.Exporter.Endpoint)
		assert.Equal(t, expected.Exporter.Timeout, loaded.Exporter.Timeout)
	})
}

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
		wantErr  bool
	}{
		{name: "empty", input: "", expected: map[string]string{}},
		{name: "single", input: "a=b", expected: map[string]string{"a": "b"}},
		{name: "value with equals", input: "auth=Bearer x=y", expected: map[string]string{"auth": "Bearer x=y"}},
		{name: "trailing comma", input: "a=1,", expected: map[string]string{"a": "1"}},
		{name: "missing separator", input: "a", wantErr: true},
		{name: "missing key", input: "=b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := ParseKeyValuePairs(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
