package flags

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
)

// ExporterFlags registers flags overriding the exporter section of the configuration. Flags are
// bound to viper, so an unset flag leaves the file and environment values in place.
func ExporterFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("Exporter settings", pflag.ContinueOnError)
	flags.String("endpoint", config.Default.Exporter.Endpoint,
		`OTLP/HTTP traces endpoint, e.g. http://localhost:4318/v1/traces`)
	flags.String("service-name", config.Default.Exporter.ServiceName,
		`Value of the service.name resource attribute`)
	flags.Int("max-batch-size", config.Default.Exporter.MaxBatchSize,
		`Number of queued spans that triggers a background flush`)
	return flags
}

// BindExporterFlags binds the flags created by ExporterFlags to their configuration keys.
func BindExporterFlags(flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		config.ExporterEndpoint:     "endpoint",
		config.ExporterServiceName:  "service-name",
		config.ExporterMaxBatchSize: "max-batch-size",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
