package recorder

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/semconv"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/telemetry"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/version"
)

// RecordIntegrityCheck records signal as a span on tracer, parented by the span active in ctx.
func RecordIntegrityCheck(ctx context.Context, tracer trace.Tracer, signal *models.IntegritySignal) trace.Span {
	return emit(ctx, tracer, IntegrityCheck(signal))
}

func RecordVerification(ctx context.Context, tracer trace.Tracer, result *models.VerificationResult) trace.Span {
	return emit(ctx, tracer, Verification(result))
}

func RecordCoherence(ctx context.Context, tracer trace.Tracer, result *models.CoherenceResult) trace.Span {
	return emit(ctx, tracer, Coherence(result))
}

// RecordDrift records a drift detection run. tracesAnalyzed may be nil.
func RecordDrift(
	ctx context.Context, tracer trace.Tracer, alerts []models.DriftAlert, tracesAnalyzed *int64,
) trace.Span {
	return emit(ctx, tracer, Drift(alerts, tracesAnalyzed))
}

func emit(ctx context.Context, tracer trace.Tracer, spec SpanSpec) trace.Span {
	return telemetry.BuildSpan(ctx, tracer, spec.Name, spec.Attrs, spec.Events...)
}

// Recorder records results as spans on a single tracer and, when configured, as metrics.
type Recorder struct {
	tracer  trace.Tracer
	metrics *Metrics
}

type Option func(*Recorder)

// WithTracerProvider sets the provider the tracer is obtained from. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Recorder) {
		r.tracer = newTracer(tp)
	}
}

// WithMetrics also records every result on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Recorder) {
		r.metrics = m
	}
}

func New(opts ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = newTracer(otel.GetTracerProvider())
	}
	return r
}

func newTracer(tp trace.TracerProvider) trace.Tracer {
	return tp.Tracer(semconv.InstrumentationName, trace.WithInstrumentationVersion(version.Release()))
}

func (r *Recorder) RecordIntegrityCheck(ctx context.Context, signal *models.IntegritySignal) trace.Span {
	span := RecordIntegrityCheck(ctx, r.tracer, signal)
	if r.metrics != nil {
		r.metrics.RecordIntegrityCheck(ctx, signal)
	}
	return span
}

func (r *Recorder) RecordVerification(ctx context.Context, result *models.VerificationResult) trace.Span {
	span := RecordVerification(ctx, r.tracer, result)
	if r.metrics != nil {
		r.metrics.RecordVerification(ctx, result)
	}
	return span
}

func (r *Recorder) RecordCoherence(ctx context.Context, result *models.CoherenceResult) trace.Span {
	span := RecordCoherence(ctx, r.tracer, result)
	if r.metrics != nil {
		r.metrics.RecordCoherence(ctx, result)
	}
	return span
}

func (r *Recorder) RecordDrift(
	ctx context.Context, alerts []models.DriftAlert, tracesAnalyzed *int64,
) trace.Span {
	span := RecordDrift(ctx, r.tracer, alerts, tracesAnalyzed)
	if r.metrics != nil {
		r.metrics.RecordDrift(ctx, alerts)
	}
	return span
}
