package recorder

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/semconv"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/telemetry"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/version"
)

const unitMilliseconds = "ms"

// Metrics holds the counters and histograms fed by AIP and AAP results.
//
// Label sets are fixed per instrument: a missing label source is reported as "unknown".
// A missing measurement (duration, ratio, score) is not recorded at all.
type Metrics struct {
	integrityChecks      *telemetry.Counter
	concerns             *telemetry.Counter
	driftAlerts          *telemetry.Counter
	verifications        *telemetry.Counter
	violations           *telemetry.Counter
	analysisDuration     *telemetry.Histogram
	windowIntegrityRatio *telemetry.Histogram
	verificationDuration *telemetry.Histogram
	coherenceScore       *telemetry.Histogram
}

// NewMetricsFromProvider creates the instruments on this exporter's meter of mp.
func NewMetricsFromProvider(mp metric.MeterProvider) (*Metrics, error) {
	return NewMetrics(mp.Meter(semconv.InstrumentationName, metric.WithInstrumentationVersion(version.Release())))
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	counters := []struct {
		target      **telemetry.Counter
		name        string
		description string
	}{
		{&m.integrityChecks, semconv.MetricIntegrityChecksTotal, "Total number of AIP integrity checks"},
		{&m.concerns, semconv.MetricConcernsTotal, "Total number of AIP integrity concerns"},
		{&m.driftAlerts, semconv.MetricDriftAlertsTotal, "Total number of drift alerts"},
		{&m.verifications, semconv.MetricVerificationsTotal, "Total number of AAP trace verifications"},
		{&m.violations, semconv.MetricViolationsTotal, "Total number of AAP verification violations"},
	}
	for _, c := range counters {
		if *c.target, err = telemetry.NewCounter(meter, c.name, c.description); err != nil {
			return nil, errors.Wrapf(err, "failed to create counter %s", c.name)
		}
	}

	histograms := []struct {
		target      **telemetry.Histogram
		name        string
		description string
		unit        string
	}{
		{&m.analysisDuration, semconv.MetricAnalysisDuration, "Duration of AIP integrity analyses", unitMilliseconds},
		{&m.windowIntegrityRatio, semconv.MetricWindowIntegrityRatio, "AIP window integrity ratio", ""},
		{&m.verificationDuration, semconv.MetricVerificationDuration, "Duration of AAP trace verifications", unitMilliseconds},
		{&m.coherenceScore, semconv.MetricCoherenceScore, "AAP value coherence score", ""},
	}
	for _, h := range histograms {
		if *h.target, err = telemetry.NewHistogram(meter, h.name, h.description, h.unit); err != nil {
			return nil, errors.Wrapf(err, "failed to create histogram %s", h.name)
		}
	}
	return &m, nil
}

func (m *Metrics) RecordIntegrityCheck(ctx context.Context, signal *models.IntegritySignal) {
	cp := signal.GetCheckpoint()
	verdict := attribute.String(semconv.LabelVerdict, stringLabel(cp.GetVerdict()))
	agentID := attribute.String(semconv.LabelAgentID, stringLabel(cp.GetAgentID()))

	m.integrityChecks.Inc(ctx, verdict, agentID)

	for _, c := range cp.GetConcerns() {
		m.concerns.Inc(ctx,
			attribute.String(semconv.LabelCategory, labelOrUnknown(c.Category)),
			attribute.String(semconv.LabelSeverity, labelOrUnknown(c.Severity)),
			verdict, agentID,
		)
	}

	m.analysisDuration.Record(ctx, cp.GetAnalysisMetadata().GetAnalysisDurationMs(), verdict, agentID)

	window := signal.GetWindowSummary()
	m.windowIntegrityRatio.Record(ctx, window.GetIntegrityRatio(), verdict, agentID)
	if window.IsDriftAlertActive() {
		m.driftAlerts.Inc(ctx,
			attribute.String(semconv.LabelDriftDirection, semconv.UnknownLabelValue),
			agentID,
		)
	}
}

func (m *Metrics) RecordVerification(ctx context.Context, result *models.VerificationResult) {
	verified := attribute.String(semconv.LabelVerified, boolLabel(result.GetVerified()))
	cardID := attribute.String(semconv.LabelCardID, stringLabel(result.GetCardID()))

	m.verifications.Inc(ctx, verified, cardID)

	for _, v := range result.GetViolations() {
		m.violations.Inc(ctx,
			attribute.String(semconv.LabelType, labelOrUnknown(v.Type)),
			attribute.String(semconv.LabelSeverity, labelOrUnknown(v.Severity)),
		)
	}

	m.verificationDuration.Record(ctx, result.GetVerificationMetadata().GetDurationMs(), verified, cardID)
}

func (m *Metrics) RecordCoherence(ctx context.Context, result *models.CoherenceResult) {
	m.coherenceScore.Record(ctx, result.GetScore(),
		attribute.String(semconv.LabelCompatible, boolLabel(result.GetCompatible())),
	)
}

func (m *Metrics) RecordDrift(ctx context.Context, alerts []models.DriftAlert) {
	for i := range alerts {
		alert := &alerts[i]
		m.driftAlerts.Inc(ctx,
			attribute.String(semconv.LabelDriftDirection, stringLabel(alert.GetAnalysis().GetDriftDirection())),
			attribute.String(semconv.LabelAgentID, stringLabel(alert.AgentID)),
		)
	}
}

func stringLabel(v *string) string {
	if v == nil {
		return semconv.UnknownLabelValue
	}
	return labelOrUnknown(*v)
}

func labelOrUnknown(v string) string {
	if v == "" {
		return semconv.UnknownLabelValue
	}
	return v
}

func boolLabel(v *bool) string {
	if v == nil {
		return semconv.UnknownLabelValue
	}
	return strconv.FormatBool(*v)
}
