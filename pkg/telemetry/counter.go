package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counter is a monotonic int64 counter.
type Counter struct {
	counter metric.Int64Counter
}

func NewCounter(meter metric.Meter, name string, description string) (*Counter, error) {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, err
	}

	return &Counter{
		counter: counter,
	}, nil
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (c *Counter) Add(ctx context.Context, num int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, num, metric.WithAttributes(attrs...))
}

// Histogram records float64 distributions.
type Histogram struct {
	histogram metric.Float64Histogram
}

// NewHistogram creates a histogram. unit may be empty.
func NewHistogram(meter metric.Meter, name, description, unit string) (*Histogram, error) {
	opts := []metric.Float64HistogramOption{metric.WithDescription(description)}
	if unit != "" {
		opts = append(opts, metric.WithUnit(unit))
	}
	histogram, err := meter.Float64Histogram(name, opts...)
	if err != nil {
		return nil, err
	}
	return &Histogram{histogram: histogram}, nil
}

// Record records v. A nil v is skipped.
func (h *Histogram) Record(ctx context.Context, v *float64, attrs ...attribute.KeyValue) {
	if v == nil {
		return
	}
	h.histogram.Record(ctx, *v, metric.WithAttributes(attrs...))
}
