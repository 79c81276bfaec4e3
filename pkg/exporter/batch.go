// Package exporter queues self-contained spans and ships them as OTLP/HTTP JSON, for runtimes
// that have no OpenTelemetry SDK pipeline.
package exporter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/collector/pdata/ptrace/ptraceotlp"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/config"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/otlp"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/recorder"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/telemetry"
)

const jsonContentType = "application/json"

// BatchExporter accumulates spans and POSTs them to an OTLP/HTTP traces endpoint.
//
// Reaching the configured batch size starts a flush in the background. Callers must still call
// Flush or Shutdown before exiting to send whatever remains queued.
type BatchExporter struct {
	endpoint      string
	authorization string
	headers       map[string]string
	serviceName   string
	maxBatchSize  int

	client  *http.Client
	builder *otlp.SpanBuilder
	onError func(error)

	mu       sync.Mutex
	queue    []otlp.Span
	inflight sync.WaitGroup
}

func New(cfg config.ExporterConfig, opts ...Option) (*BatchExporter, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = config.DefaultServiceName
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = config.DefaultMaxBatchSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}

	e := &BatchExporter{
		endpoint:      cfg.Endpoint,
		authorization: cfg.Authorization,
		headers:       cfg.Headers,
		serviceName:   cfg.ServiceName,
		maxBatchSize:  cfg.MaxBatchSize,
		client:        &http.Client{Timeout: cfg.Timeout},
		builder:       otlp.NewSpanBuilder(),
		onError: func(err error) {
			log.Warn().Err(err).Msg("background flush of OTLP spans failed")
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *BatchExporter) RecordIntegrityCheck(ctx context.Context, signal *models.IntegritySignal) {
	e.enqueue(ctx, recorder.IntegrityCheck(signal))
}

func (e *BatchExporter) RecordVerification(ctx context.Context, result *models.VerificationResult) {
	e.enqueue(ctx, recorder.Verification(result))
}

func (e *BatchExporter) RecordCoherence(ctx context.Context, result *models.CoherenceResult) {
	e.enqueue(ctx, recorder.Coherence(result))
}

// RecordDrift queues a drift detection span. tracesAnalyzed may be nil.
func (e *BatchExporter) RecordDrift(ctx context.Context, alerts []models.DriftAlert, tracesAnalyzed *int64) {
	e.enqueue(ctx, recorder.Drift(alerts, tracesAnalyzed))
}

// Len returns the number of queued spans.
func (e *BatchExporter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

func (e *BatchExporter) enqueue(ctx context.Context, spec recorder.SpanSpec) {
	span := spec.Standalone(e.builder)

	e.mu.Lock()
	e.queue = append(e.queue, span)
	full := len(e.queue) >= e.maxBatchSize
	e.mu.Unlock()

	if !full {
		return
	}

	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		if err := e.Flush(telemetry.NewDetachedContext(ctx)); err != nil {
			e.onError(err)
		}
	}()
}

// Flush sends every queued span in a single request. An empty queue sends nothing.
// The batch is dropped whether or not the request succeeds.
func (e *BatchExporter) Flush(ctx context.Context) error {
	e.mu.Lock()
	batch := e.queue
	e.queue = nil
	e.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	body, err := otlp.Serialize(batch, e.serviceName)
	if err != nil {
		return err
	}
	return e.send(ctx, body, len(batch))
}

func (e *BatchExporter) send(ctx context.Context, body []byte, spans int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create OTLP request")
	}
	if e.authorization != "" {
		req.Header.Set("Authorization", e.authorization)
	}
	for k, v := range e.headers {
		req.Header.Set(k, v)
	}
	// the body is always OTLP JSON
	req.Header.Set("Content-Type", jsonContentType)

	resp, err := e.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send OTLP request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Discard response body on error to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil || len(respBody) == 0 {
		return nil
	}
	logPartialSuccess(ctx, respBody, spans)
	return nil
}

// logPartialSuccess reports spans a collector accepted the request for but rejected.
func logPartialSuccess(ctx context.Context, body []byte, sent int) {
	resp := ptraceotlp.NewExportResponse()
	if err := resp.UnmarshalJSON(body); err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("ignoring undecodable OTLP export response")
		return
	}
	if s := resp.PartialSuccess(); s.RejectedSpans() > 0 {
		log.Ctx(ctx).Warn().
			Int64("rejected", s.RejectedSpans()).
			Int("sent", sent).
			Str("message", s.ErrorMessage()).
			Msg("collector rejected OTLP spans")
	}
}

// Shutdown waits for background flushes to finish, then flushes what remains queued.
func (e *BatchExporter) Shutdown(ctx context.Context) error {
	var result *multierror.Error

	done := make(chan struct{})
	go func() {
		e.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		result = multierror.Append(result, errors.Wrap(ctx.Err(), "waiting for background flushes"))
	}

	if err := e.Flush(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
