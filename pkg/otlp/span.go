package otlp

import (
	"github.com/benbjohnson/clock"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/util/idgen"
)

const (
	// SpanKindInternal is SPAN_KIND_INTERNAL.
	SpanKindInternal = 1
	// StatusCodeOK is STATUS_CODE_OK.
	StatusCodeOK = 1
)

// Span corresponds to Span.
// https://github.com/open-telemetry/opentelemetry-proto/blob/v1.3.2/opentelemetry/proto/trace/v1/trace.proto#L88
type Span struct {
	TraceID           string      `json:"traceId"`
	SpanID            string      `json:"spanId"`
	ParentSpanID      string      `json:"parentSpanId,omitempty"`
	Name              string      `json:"name"`
	Kind              int         `json:"kind"`
	StartTimeUnixNano Int64String `json:"startTimeUnixNano"`
	EndTimeUnixNano   Int64String `json:"endTimeUnixNano"`
	Attributes        []KeyValue  `json:"attributes"`
	Events            []Event     `json:"events"`
	Status            Status      `json:"status"`
}

// Event corresponds to Span.Event.
type Event struct {
	Name         string      `json:"name"`
	TimeUnixNano Int64String `json:"timeUnixNano"`
	Attributes   []KeyValue  `json:"attributes"`
}

// Status corresponds to Status.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// EventSpec describes an event before encoding.
type EventSpec struct {
	Name  string
	Attrs Attrs
}

// SpanBuilder assembles self-contained spans: fresh identifiers, no parent, and a single
// timestamp used for start, end and every event.
type SpanBuilder struct {
	clock clock.Clock
}

type SpanBuilderOption func(*SpanBuilder)

// WithClock sets the clock used to stamp spans.
func WithClock(c clock.Clock) SpanBuilderOption {
	return func(b *SpanBuilder) {
		b.clock = c
	}
}

func NewSpanBuilder(opts ...SpanBuilderOption) *SpanBuilder {
	b := &SpanBuilder{clock: clock.New()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles a span named name. The timestamp has millisecond precision, expressed in
// nanoseconds.
func (b *SpanBuilder) Build(name string, attrs Attrs, events ...EventSpec) Span {
	now := Int64String(b.clock.Now().UnixMilli() * 1_000_000)

	encoded := make([]Event, 0, len(events))
	for _, e := range events {
		encoded = append(encoded, Event{
			Name:         e.Name,
			TimeUnixNano: now,
			Attributes:   EncodeAttrs(e.Attrs),
		})
	}

	return Span{
		TraceID:           idgen.TraceID(),
		SpanID:            idgen.SpanID(),
		Name:              name,
		Kind:              SpanKindInternal,
		StartTimeUnixNano: now,
		EndTimeUnixNano:   now,
		Attributes:        EncodeAttrs(attrs),
		Events:            encoded,
		Status:            Status{Code: StatusCodeOK},
	}
}

var defaultSpanBuilder = NewSpanBuilder()

// NewStandaloneSpan builds a self-contained span with the wall clock.
func NewStandaloneSpan(name string, attrs Attrs, events ...EventSpec) Span {
	return defaultSpanBuilder.Build(name, attrs, events...)
}
