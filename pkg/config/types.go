package config

import "time"

type Config struct {
	Exporter  ExporterConfig  `yaml:"Exporter"`
	Telemetry TelemetryConfig `yaml:"Telemetry"`
}

// ExporterConfig configures the batching OTLP/HTTP JSON exporter.
type ExporterConfig struct {
	// Endpoint is the full traces URL, e.g. http://localhost:4318/v1/traces.
	Endpoint string `yaml:"Endpoint"`
	// Authorization is sent verbatim as the Authorization header when set.
	Authorization string `yaml:"Authorization,omitempty"`
	// ServiceName is the service.name resource attribute.
	ServiceName string `yaml:"ServiceName"`
	// Headers are added to every request after Authorization, so an Authorization entry here
	// replaces the one above. Content-Type is always application/json.
	Headers map[string]string `yaml:"Headers,omitempty"`
	// MaxBatchSize is the queue length that triggers a background flush.
	MaxBatchSize int           `yaml:"MaxBatchSize"`
	Timeout      time.Duration `yaml:"Timeout"`
}

// TelemetryConfig configures the OpenTelemetry SDK pipeline used by the ambient recorder.
type TelemetryConfig struct {
	Enabled bool `yaml:"Enabled"`
	// Protocol is one of http/protobuf, grpc.
	Protocol string `yaml:"Protocol"`
	// Endpoint is host:port of the collector. The exporters' OTEL_EXPORTER_OTLP_* defaults apply
	// when empty.
	Endpoint    string            `yaml:"Endpoint,omitempty"`
	Insecure    bool              `yaml:"Insecure"`
	Headers     map[string]string `yaml:"Headers,omitempty"`
	ServiceName string            `yaml:"ServiceName"`
}

const (
	ProtocolHTTP = "http/protobuf"
	ProtocolGRPC = "grpc"
)

const (
	DefaultServiceName  = "aip-otel-exporter"
	DefaultMaxBatchSize = 100
	DefaultTimeout      = 30 * time.Second
)

var Default = Config{
	Exporter: ExporterConfig{
		ServiceName:  DefaultServiceName,
		MaxBatchSize: DefaultMaxBatchSize,
		Timeout:      DefaultTimeout,
	},
	Telemetry: TelemetryConfig{
		Enabled:     false,
		Protocol:    ProtocolHTTP,
		ServiceName: DefaultServiceName,
	},
}
