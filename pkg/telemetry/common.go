package telemetry

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/multierr"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/version"
)

var (
	providersMu sync.Mutex
	providers   []shutdowner
)

type shutdowner interface {
	ForceFlush(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Setup installs global tracer and meter providers exporting over OTLP as configured.
// It is a no-op when telemetry is disabled.
func Setup(ctx context.Context, cfg config.TelemetryConfig) error {
	if !cfg.Enabled {
		log.Ctx(ctx).Debug().Msg("OTLP telemetry is disabled. No traces or metrics will be exported")
		return nil
	}

	res := newResource(ctx, cfg.ServiceName)

	tp, err := newTraceProvider(ctx, cfg, res)
	if err != nil {
		return err
	}
	mp, err := newMeterProvider(ctx, cfg, res)
	if err != nil {
		return multierr.Append(err, tp.Shutdown(ctx))
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Err(err).Msg("Error occurred while exporting telemetry")
	}))

	providersMu.Lock()
	providers = append(providers, tp, mp)
	providersMu.Unlock()
	return nil
}

// Cleanup flushes the remaining traces and metrics in memory to the exporter and releases any telemetry resources.
func Cleanup(ctx context.Context) error {
	providersMu.Lock()
	toClose := providers
	providers = nil
	providersMu.Unlock()

	var err error
	for _, p := range toClose {
		err = multierr.Append(err, p.ForceFlush(ctx))
		err = multierr.Append(err, p.Shutdown(ctx))
	}
	return err
}

// newResource returns a resource describing this application.
func newResource(ctx context.Context, serviceName string) *resource.Resource {
	if serviceName == "" {
		serviceName = config.DefaultServiceName
	}
	res, err := resource.Merge(
		resource.Environment(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.GITVERSION),
		),
	)

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create otel resource. Falling back to default resource config")
		res = resource.Default()
	}
	return res
}
