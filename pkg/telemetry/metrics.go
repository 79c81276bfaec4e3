package telemetry

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
)

func newMeterProvider(
	ctx context.Context, cfg config.TelemetryConfig, res *resource.Resource,
) (*sdkmetric.MeterProvider, error) {
	exp, err := getMetricsClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
	), nil
}

func getMetricsClient(ctx context.Context, cfg config.TelemetryConfig) (sdkmetric.Exporter, error) {
	var (
		client sdkmetric.Exporter
		err    error
	)
	switch cfg.Protocol {
	case config.ProtocolHTTP, "":
		var opts []otlpmetrichttp.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlpmetrichttp.WithHeaders(cfg.Headers))
		}
		client, err = otlpmetrichttp.New(ctx, opts...)
	case config.ProtocolGRPC:
		var opts []otlpmetricgrpc.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlpmetricgrpc.WithInsecure())
		}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlpmetricgrpc.WithHeaders(cfg.Headers))
		}
		client, err = otlpmetricgrpc.New(ctx, opts...)
	default:
		return nil, errors.Errorf("unknown or unsupported OTLP protocol: %s", cfg.Protocol)
	}
	return client, errors.Wrap(err, "failed to initialize OTLP metric exporter")
}
