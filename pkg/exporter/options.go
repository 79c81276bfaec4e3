package exporter

import (
	"net/http"

	"github.com/benbjohnson/clock"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/otlp"
)

type Option func(*BatchExporter)

// WithHTTPClient replaces the default client, including its timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(e *BatchExporter) {
		e.client = client
	}
}

// WithClock sets the clock used to timestamp spans.
func WithClock(c clock.Clock) Option {
	return func(e *BatchExporter) {
		e.builder = otlp.NewSpanBuilder(otlp.WithClock(c))
	}
}

// WithErrorHandler sets the function receiving errors of flushes started in the background
// when the batch size is reached. The default logs them.
func WithErrorHandler(handler func(error)) Option {
	return func(e *BatchExporter) {
		e.onError = handler
	}
}
