// Package recorder maps AIP and AAP results onto span specifications and metric measurements.
//
// Mappers tolerate partially populated and nil input: absent values are left in the attribute
// record as nil and dropped when the record is encoded. A list that is absent yields no count
// attribute, a list that is present but empty yields a count of 0.
package recorder

import (
	"strings"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/otlp"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/semconv"
)

// SpanSpec is a span described independently of how it will be emitted.
type SpanSpec struct {
	Name   string
	Attrs  otlp.Attrs
	Events []otlp.EventSpec
}

// Standalone renders s as a self-contained OTLP span.
func (s SpanSpec) Standalone(builder *otlp.SpanBuilder) otlp.Span {
	return builder.Build(s.Name, s.Attrs, s.Events...)
}

// IntegrityCheck maps an AIP integrity signal.
func IntegrityCheck(signal *models.IntegritySignal) SpanSpec {
	cp := signal.GetCheckpoint()
	meta := cp.GetAnalysisMetadata()
	conscience := cp.GetConscienceContext()
	window := signal.GetWindowSummary()
	concerns := cp.GetConcerns()

	attrs := otlp.Attrs{
		{Key: semconv.IntegrityCheckpointID, Value: cp.GetCheckpointID()},
		{Key: semconv.IntegrityVerdict, Value: cp.GetVerdict()},
		{Key: semconv.IntegrityAgentID, Value: cp.GetAgentID()},
		{Key: semconv.IntegrityCardID, Value: cp.GetCardID()},
		{Key: semconv.IntegritySessionID, Value: cp.GetSessionID()},
		{Key: semconv.IntegrityThinkingHash, Value: cp.GetThinkingBlockHash()},

		{Key: semconv.IntegrityProceed, Value: signal.GetProceed()},
		{Key: semconv.IntegrityRecommendedAction, Value: signal.GetRecommendedAction()},
		{Key: semconv.IntegrityConcernsCount, Value: count(concerns)},

		{Key: semconv.IntegrityAnalysisModel, Value: meta.GetAnalysisModel()},
		{Key: semconv.IntegrityAnalysisDurationMs, Value: meta.GetAnalysisDurationMs()},
		{Key: semconv.IntegrityThinkingTokens, Value: meta.GetThinkingTokensOriginal()},
		{Key: semconv.IntegrityTruncated, Value: meta.GetTruncated()},
		{Key: semconv.IntegrityExtractionConfidence, Value: meta.GetExtractionConfidence()},

		{Key: semconv.ConscienceConsultationDepth, Value: conscience.GetConsultationDepth()},
		{Key: semconv.ConscienceValuesCheckedCount, Value: count(conscience.GetValuesChecked())},
		{Key: semconv.ConscienceConflictsCount, Value: count(conscience.GetConflicts())},

		{Key: semconv.WindowSize, Value: window.GetSize()},
		{Key: semconv.WindowIntegrityRatio, Value: window.GetIntegrityRatio()},
		{Key: semconv.WindowDriftAlertActive, Value: window.GetDriftAlertActive()},

		{Key: semconv.GenAIEvaluationVerdict, Value: cp.GetVerdict()},
		{Key: semconv.GenAIEvaluationScore, Value: window.GetIntegrityRatio()},
	}

	events := make([]otlp.EventSpec, 0, len(concerns)+1)
	for _, c := range concerns {
		events = append(events, otlp.EventSpec{
			Name: semconv.EventAIPConcern,
			Attrs: otlp.Attrs{
				{Key: semconv.EventCategory, Value: c.Category},
				{Key: semconv.EventSeverity, Value: c.Severity},
				{Key: semconv.EventDescription, Value: c.Description},
			},
		})
	}
	if alert := signal.GetDriftAlert(); alert != nil || window.IsDriftAlertActive() {
		events = append(events, integrityDriftEvent(alert))
	}

	return SpanSpec{Name: semconv.SpanIntegrityCheck, Attrs: attrs, Events: events}
}

// integrityDriftEvent carries the AIP drift alert details when the signal has them.
func integrityDriftEvent(alert *models.IntegrityDriftAlert) otlp.EventSpec {
	event := otlp.EventSpec{Name: semconv.EventAIPDriftAlert}
	if alert == nil {
		return event
	}
	event.Attrs = otlp.Attrs{
		{Key: semconv.AIPDriftAlertID, Value: alert.AlertID},
		{Key: semconv.AIPDriftAgentID, Value: alert.AgentID},
		{Key: semconv.AIPDriftSessionID, Value: alert.SessionID},
		{Key: semconv.AIPDriftIntegritySimilarity, Value: alert.IntegritySimilarity},
		{Key: semconv.AIPDriftSustainedChecks, Value: alert.SustainedChecks},
		{Key: semconv.AIPDriftSeverity, Value: alert.Severity},
		{Key: semconv.AIPDriftDirection, Value: alert.DriftDirection},
		{Key: semconv.AIPDriftMessage, Value: alert.Message},
	}
	return event
}

// Verification maps an AAP verification result. Warnings are counted but never become events.
func Verification(result *models.VerificationResult) SpanSpec {
	meta := result.GetVerificationMetadata()
	violations := result.GetViolations()

	attrs := otlp.Attrs{
		{Key: semconv.VerificationResult, Value: result.GetVerified()},
		{Key: semconv.VerificationSimilarityScore, Value: result.GetSimilarityScore()},
		{Key: semconv.VerificationViolationsCount, Value: count(violations)},
		{Key: semconv.VerificationWarningsCount, Value: count(result.GetWarnings())},
		{Key: semconv.VerificationTraceID, Value: result.GetTraceID()},
		{Key: semconv.VerificationCardID, Value: result.GetCardID()},
		{Key: semconv.VerificationDurationMs, Value: meta.GetDurationMs()},
		{Key: semconv.VerificationChecksPerformed, Value: joined(meta.GetChecksPerformed())},
	}

	events := make([]otlp.EventSpec, 0, len(violations))
	for _, v := range violations {
		events = append(events, otlp.EventSpec{
			Name: semconv.EventAAPViolation,
			Attrs: otlp.Attrs{
				{Key: semconv.EventType, Value: v.Type},
				{Key: semconv.EventSeverity, Value: v.Severity},
				{Key: semconv.EventDescription, Value: v.Description},
			},
		})
	}

	return SpanSpec{Name: semconv.SpanVerifyTrace, Attrs: attrs, Events: events}
}

// Coherence maps an AAP value coherence result. It has no events.
func Coherence(result *models.CoherenceResult) SpanSpec {
	alignment := result.GetValueAlignment()

	attrs := otlp.Attrs{
		{Key: semconv.CoherenceCompatible, Value: result.GetCompatible()},
		{Key: semconv.CoherenceScore, Value: result.GetScore()},
		{Key: semconv.CoherenceProceed, Value: result.GetProceed()},
		{Key: semconv.CoherenceMatchedCount, Value: count(alignment.GetMatched())},
		{Key: semconv.CoherenceConflictCount, Value: count(alignment.GetConflicts())},
	}

	return SpanSpec{Name: semconv.SpanCheckCoherence, Attrs: attrs}
}

// Drift maps an AAP drift detection run. The alert count is always present, and every alert
// yields exactly one event even when all of its fields are absent.
func Drift(alerts []models.DriftAlert, tracesAnalyzed *int64) SpanSpec {
	attrs := otlp.Attrs{
		{Key: semconv.DriftAlertsCount, Value: len(alerts)},
		{Key: semconv.DriftTracesAnalyzed, Value: tracesAnalyzed},
	}

	events := make([]otlp.EventSpec, 0, len(alerts))
	for i := range alerts {
		alert := &alerts[i]
		analysis := alert.GetAnalysis()
		events = append(events, otlp.EventSpec{
			Name: semconv.EventAAPDriftAlert,
			Attrs: otlp.Attrs{
				{Key: semconv.EventAlertType, Value: alert.AlertType},
				{Key: semconv.EventAgentID, Value: alert.AgentID},
				{Key: semconv.EventCardID, Value: alert.CardID},
				{Key: semconv.EventSimilarityScore, Value: analysis.GetSimilarityScore()},
				{Key: semconv.EventDriftDirection, Value: analysis.GetDriftDirection()},
				{Key: semconv.EventRecommendation, Value: alert.Recommendation},
			},
		})
	}

	return SpanSpec{Name: semconv.SpanDetectDrift, Attrs: attrs, Events: events}
}

// count returns the length of a present list, or nil for an absent one.
func count[T any](list []T) any {
	if list == nil {
		return nil
	}
	return len(list)
}

// joined flattens a non-empty list into a single ", " separated string, or nil for an absent
// or empty one.
func joined(list []string) any {
	if len(list) == 0 {
		return nil
	}
	return strings.Join(list, ", ")
}
