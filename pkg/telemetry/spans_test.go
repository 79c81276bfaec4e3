//go:build unit || !integration

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/otlp"
)

type BuildSpanTestSuite struct {
	suite.Suite
	recorder *tracetest.SpanRecorder
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

func TestBuildSpanTestSuite(t *testing.T) {
	suite.Run(t, new(BuildSpanTestSuite))
}

func (s *BuildSpanTestSuite) SetupTest() {
	s.recorder = tracetest.NewSpanRecorder()
	s.provider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.recorder))
	s.tracer = s.provider.Tracer("test")
}

func (s *BuildSpanTestSuite) TearDownTest() {
	s.NoError(s.provider.Shutdown(context.Background()))
}

func (s *BuildSpanTestSuite) TestRootSpan() {
	attrs := otlp.Attrs{
		{Key: "verdict", Value: "clear"},
		{Key: "count", Value: 3},
		{Key: "ratio", Value: 0.5},
		{Key: "whole", Value: 2.0},
		{Key: "proceed", Value: models.Ptr(true)},
		{Key: "missing", Value: (*string)(nil)},
		{Key: "also-missing", Value: nil},
	}

	span := BuildSpan(context.Background(), s.tracer, "aip.integrity_check", attrs)
	s.False(span.IsRecording(), "span must be ended")

	ended := s.recorder.Ended()
	s.Require().Len(ended, 1)
	ro := ended[0]

	s.Equal("aip.integrity_check", ro.Name())
	s.Equal(trace.SpanKindInternal, ro.SpanKind())
	s.Equal(codes.Ok, ro.Status().Code)
	s.False(ro.Parent().IsValid())
	s.Equal([]attribute.KeyValue{
		attribute.String("verdict", "clear"),
		attribute.Int64("count", 3),
		attribute.Float64("ratio", 0.5),
		attribute.Int64("whole", 2),
		attribute.Bool("proceed", true),
	}, ro.Attributes())
	s.Empty(ro.Events())
}

func (s *BuildSpanTestSuite) TestChildOfActiveSpan() {
	ctx, parent := s.tracer.Start(context.Background(), "parent")
	child := BuildSpan(ctx, s.tracer, "aap.verify_trace", nil)
	parent.End()

	s.Equal(parent.SpanContext().TraceID(), child.SpanContext().TraceID())

	ended := s.recorder.Ended()
	s.Require().Len(ended, 2)
	s.Equal("aap.verify_trace", ended[0].Name())
	s.Equal(parent.SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func (s *BuildSpanTestSuite) TestEventsInOrder() {
	BuildSpan(context.Background(), s.tracer, "aap.detect_drift", nil,
		otlp.EventSpec{Name: "first", Attrs: otlp.Attrs{
			{Key: "category", Value: "a"},
			{Key: "absent", Value: nil},
		}},
		otlp.EventSpec{Name: "second"},
		otlp.EventSpec{Name: "third", Attrs: otlp.Attrs{{Key: "score", Value: 0.25}}},
	)

	ended := s.recorder.Ended()
	s.Require().Len(ended, 1)
	events := ended[0].Events()
	s.Require().Len(events, 3)

	s.Equal("first", events[0].Name)
	s.Equal([]attribute.KeyValue{attribute.String("category", "a")}, events[0].Attributes)
	s.Equal("second", events[1].Name)
	s.Empty(events[1].Attributes)
	s.Equal("third", events[2].Name)
	s.Equal([]attribute.KeyValue{attribute.Float64("score", 0.25)}, events[2].Attributes)
}

func TestAttributes_Slices(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected attribute.Value
	}{
		{name: "strings", value: []string{"a", "b"}, expected: attribute.StringSliceValue([]string{"a", "b"})},
		{name: "empty", value: []string{}, expected: attribute.StringSliceValue([]string{})},
		{name: "bools", value: []bool{true, false}, expected: attribute.BoolSliceValue([]bool{true, false})},
		{name: "ints", value: []int{1, 2}, expected: attribute.Int64SliceValue([]int64{1, 2})},
		{name: "whole floats", value: []float64{1, 2}, expected: attribute.Int64SliceValue([]int64{1, 2})},
		{
			name:     "numbers",
			value:    []float64{1, 2.5},
			expected: attribute.Float64SliceValue([]float64{1, 2.5}),
		},
		{
			name:     "mixed",
			value:    []any{"a", 1, true, 0.5, nil},
			expected: attribute.StringSliceValue([]string{"a", "1", "true", "0.5"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Attributes(otlp.Attrs{{Key: "k", Value: tt.value}})
			require.Len(t, actual, 1)
			assert.Equal(t, attribute.Key("k"), actual[0].Key)
			assert.Equal(t, tt.expected, actual[0].Value)
		})
	}
}

func TestAttributes_Empty(t *testing.T) {
	assert.Empty(t, Attributes(nil))
	assert.Empty(t, Attributes(otlp.Attrs{{Key: "k", Value: []int(nil)}}))
}
