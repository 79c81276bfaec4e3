// Package instrument decorates AIP and AAP client calls so that every successful result is
// recorded without changing the call sites that consume it.
package instrument

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/recorder"
)

// Instrumentation owns the recorder used by wrapped calls. Wrappers created from it record
// while it is installed and pass calls straight through after Uninstall.
type Instrumentation struct {
	recorder  *recorder.Recorder
	installed atomic.Bool
}

type Options struct {
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
	// MeterProvider enables metrics when set.
	MeterProvider metric.MeterProvider
}

func Install(opts Options) (*Instrumentation, error) {
	var recorderOpts []recorder.Option
	if opts.TracerProvider != nil {
		recorderOpts = append(recorderOpts, recorder.WithTracerProvider(opts.TracerProvider))
	}
	if opts.MeterProvider != nil {
		m, err := recorder.NewMetricsFromProvider(opts.MeterProvider)
		if err != nil {
			return nil, err
		}
		recorderOpts = append(recorderOpts, recorder.WithMetrics(m))
	}

	i := &Instrumentation{recorder: recorder.New(recorderOpts...)}
	i.installed.Store(true)
	return i, nil
}

// Uninstall turns every wrapper created from i into a pass-through. It is safe to call more
// than once.
func (i *Instrumentation) Uninstall() {
	i.installed.Store(false)
}

func (i *Instrumentation) Installed() bool {
	return i.installed.Load()
}

// CheckFunc performs an AIP integrity check.
type CheckFunc[Req any] func(ctx context.Context, req Req) (*models.IntegritySignal, error)

// VerifyFunc performs an AAP trace verification.
type VerifyFunc[Req any] func(ctx context.Context, req Req) (*models.VerificationResult, error)

// CoherenceFunc performs an AAP value coherence check.
type CoherenceFunc[Req any] func(ctx context.Context, req Req) (*models.CoherenceResult, error)

// WrapCheck records the signal of every successful call to fn.
func WrapCheck[Req any](i *Instrumentation, fn CheckFunc[Req]) CheckFunc[Req] {
	return wrap(i, fn, i.recorder.RecordIntegrityCheck)
}

// WrapVerify records the result of every successful call to fn.
func WrapVerify[Req any](i *Instrumentation, fn VerifyFunc[Req]) VerifyFunc[Req] {
	return wrap(i, fn, i.recorder.RecordVerification)
}

// WrapCoherence records the result of every successful call to fn.
func WrapCoherence[Req any](i *Instrumentation, fn CoherenceFunc[Req]) CoherenceFunc[Req] {
	return wrap(i, fn, i.recorder.RecordCoherence)
}

func wrap[Req any, Res any, F ~func(context.Context, Req) (*Res, error)](
	i *Instrumentation, fn F, record func(context.Context, *Res) trace.Span,
) F {
	return func(ctx context.Context, req Req) (*Res, error) {
		res, err := fn(ctx, req)
		if err == nil && res != nil && i.Installed() {
			safeRecord(ctx, func() { record(ctx, res) })
		}
		return res, err
	}
}

// safeRecord runs record, containing any panic so the wrapped call is never affected.
func safeRecord(ctx context.Context, record func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Ctx(ctx).Debug().Interface("panic", r).Msg("failed to record instrumented call")
		}
	}()
	record()
}
