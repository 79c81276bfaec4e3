package config

import "github.com/spf13/viper"

const (
	ExporterEndpoint      = "Exporter.Endpoint"
	ExporterAuthorization = "Exporter.Authorization"
	ExporterServiceName   = "Exporter.ServiceName"
	ExporterHeaders       = "Exporter.Headers"
	ExporterMaxBatchSize  = "Exporter.MaxBatchSize"
	ExporterTimeout       = "Exporter.Timeout"

	TelemetryEnabled     = "Telemetry.Enabled"
	TelemetryProtocol    = "Telemetry.Protocol"
	TelemetryEndpoint    = "Telemetry.Endpoint"
	TelemetryInsecure    = "Telemetry.Insecure"
	TelemetryHeaders     = "Telemetry.Headers"
	TelemetryServiceName = "Telemetry.ServiceName"
)

// SetDefault registers every key of cfg as a viper default and binds its environment variable,
// so nested keys resolve from the environment during Unmarshal.
func SetDefault(cfg Config) {
	defaults := map[string]interface{}{
		ExporterEndpoint:      cfg.Exporter.Endpoint,
		ExporterAuthorization: cfg.Exporter.Authorization,
		ExporterServiceName:   cfg.Exporter.ServiceName,
		ExporterHeaders:       cfg.Exporter.Headers,
		ExporterMaxBatchSize:  cfg.Exporter.MaxBatchSize,
		ExporterTimeout:       cfg.Exporter.Timeout,

		TelemetryEnabled:     cfg.Telemetry.Enabled,
		TelemetryProtocol:    cfg.Telemetry.Protocol,
		TelemetryEndpoint:    cfg.Telemetry.Endpoint,
		TelemetryInsecure:    cfg.Telemetry.Insecure,
		TelemetryHeaders:     cfg.Telemetry.Headers,
		TelemetryServiceName: cfg.Telemetry.ServiceName,
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
		_ = viper.BindEnv(key)
	}
}
