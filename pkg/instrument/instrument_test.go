//go:build unit || !integration

package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/semconv"
)

type checkRequest struct {
	thinking string
}

type InstrumentationTestSuite struct {
	suite.Suite
	ctx   context.Context
	spans *tracetest.SpanRecorder
	inst  *Instrumentation
}

func TestInstrumentationTestSuite(t *testing.T) {
	suite.Run(t, new(InstrumentationTestSuite))
}

func (s *InstrumentationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.spans = tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))
	s.T().Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var err error
	s.inst, err = Install(Options{TracerProvider: tp})
	s.Require().NoError(err)
}

func (s *InstrumentationTestSuite) TestWrapCheck() {
	signal := &models.IntegritySignal{
		Checkpoint: &models.IntegrityCheckpoint{Verdict: models.Ptr(models.VerdictClear)},
	}
	var seen checkRequest
	check := WrapCheck(s.inst, func(_ context.Context, req checkRequest) (*models.IntegritySignal, error) {
		seen = req
		return signal, nil
	})

	actual, err := check(s.ctx, checkRequest{thinking: "hmm"})

	s.Require().NoError(err)
	s.Same(signal, actual)
	s.Equal("hmm", seen.thinking)
	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Equal(semconv.SpanIntegrityCheck, ended[0].Name())
}

func (s *InstrumentationTestSuite) TestWrapVerify() {
	verify := WrapVerify(s.inst, func(context.Context, string) (*models.VerificationResult, error) {
		return &models.VerificationResult{Verified: models.Ptr(true)}, nil
	})

	_, err := verify(s.ctx, "trace-1")

	s.Require().NoError(err)
	s.Require().Len(s.spans.Ended(), 1)
	s.Equal(semconv.SpanVerifyTrace, s.spans.Ended()[0].Name())
}

func (s *InstrumentationTestSuite) TestWrapCoherence() {
	coherence := WrapCoherence(s.inst, func(context.Context, int) (*models.CoherenceResult, error) {
		return &models.CoherenceResult{}, nil
	})

	_, err := coherence(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().Len(s.spans.Ended(), 1)
	s.Equal(semconv.SpanCheckCoherence, s.spans.Ended()[0].Name())
}

func (s *InstrumentationTestSuite) TestErrorsAndNilResultsAreNotRecorded() {
	callErr := errors.New("upstream unavailable")
	failing := WrapVerify(s.inst, func(context.Context, string) (*models.VerificationResult, error) {
		return nil, callErr
	})
	empty := WrapVerify(s.inst, func(context.Context, string) (*models.VerificationResult, error) {
		return nil, nil
	})

	res, err := failing(s.ctx, "x")
	s.Nil(res)
	s.Same(callErr, err)

	res, err = empty(s.ctx, "x")
	s.Nil(res)
	s.NoError(err)

	s.Empty(s.spans.Ended())
}

func (s *InstrumentationTestSuite) TestUninstall() {
	check := WrapCheck(s.inst, func(context.Context, struct{}) (*models.IntegritySignal, error) {
		return &models.IntegritySignal{}, nil
	})

	s.True(s.inst.Installed())
	s.inst.Uninstall()
	s.inst.Uninstall()
	s.False(s.inst.Installed())

	res, err := check(s.ctx, struct{}{})
	s.NoError(err)
	s.NotNil(res)
	s.Empty(s.spans.Ended())
}

type panickingTracerProvider struct {
	noop.TracerProvider
}

func (panickingTracerProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return panickingTracer{}
}

type panickingTracer struct {
	noop.Tracer
}

func (panickingTracer) Start(context.Context, string, ...trace.SpanStartOption) (context.Context, trace.Span) {
	panic("tracer exploded")
}

func TestRecordingPanicDoesNotAffectCall(t *testing.T) {
	inst, err := Install(Options{TracerProvider: panickingTracerProvider{}})
	require.NoError(t, err)

	expected := &models.VerificationResult{Verified: models.Ptr(false)}
	verify := WrapVerify(inst, func(context.Context, string) (*models.VerificationResult, error) {
		return expected, nil
	})

	var actual *models.VerificationResult
	assert.NotPanics(t, func() {
		actual, err = verify(context.Background(), "trace")
	})
	assert.NoError(t, err)
	assert.Same(t, expected, actual)
}

func TestInstallWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	inst, err := Install(Options{
		TracerProvider: noop.NewTracerProvider(),
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	})
	require.NoError(t, err)

	check := WrapCheck(inst, func(context.Context, string) (*models.IntegritySignal, error) {
		return &models.IntegritySignal{}, nil
	})
	_, err = check(context.Background(), "")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	names := make([]string, 0)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, semconv.MetricIntegrityChecksTotal)
}
