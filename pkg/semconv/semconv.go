// Package semconv holds the attribute, span, event and metric names emitted for AIP and AAP
// telemetry. Dashboards key off these exact strings, so they are part of the public contract.
//
// The primary namespaces are aip.* and aap.*. The gen_ai.evaluation.* keys are aliases kept for
// the OpenTelemetry GenAI evaluation conventions.
package semconv

// AIP integrity check attributes.
const (
	IntegrityCheckpointID         = "aip.integrity.checkpoint_id"
	IntegrityVerdict              = "aip.integrity.verdict"
	IntegrityProceed              = "aip.integrity.proceed"
	IntegrityRecommendedAction    = "aip.integrity.recommended_action"
	IntegrityConcernsCount        = "aip.integrity.concerns_count"
	IntegrityAgentID              = "aip.integrity.agent_id"
	IntegrityCardID               = "aip.integrity.card_id"
	IntegritySessionID            = "aip.integrity.session_id"
	IntegrityThinkingHash         = "aip.integrity.thinking_hash"
	IntegrityAnalysisModel        = "aip.integrity.analysis_model"
	IntegrityAnalysisDurationMs   = "aip.integrity.analysis_duration_ms"
	IntegrityThinkingTokens       = "aip.integrity.thinking_tokens"
	IntegrityTruncated            = "aip.integrity.truncated"
	IntegrityExtractionConfidence = "aip.integrity.extraction_confidence"
)

// AIP conscience attributes.
const (
	ConscienceConsultationDepth  = "aip.conscience.consultation_depth"
	ConscienceValuesCheckedCount = "aip.conscience.values_checked_count"
	ConscienceConflictsCount     = "aip.conscience.conflicts_count"
)

// AIP window attributes.
const (
	WindowSize             = "aip.window.size"
	WindowIntegrityRatio   = "aip.window.integrity_ratio"
	WindowDriftAlertActive = "aip.window.drift_alert_active"
)

// GenAI evaluation aliases.
const (
	GenAIEvaluationVerdict = "gen_ai.evaluation.verdict"
	GenAIEvaluationScore   = "gen_ai.evaluation.score"
)

// AAP verification attributes.
const (
	VerificationResult          = "aap.verification.result"
	VerificationSimilarityScore = "aap.verification.similarity_score"
	VerificationViolationsCount = "aap.verification.violations_count"
	VerificationWarningsCount   = "aap.verification.warnings_count"
	VerificationTraceID         = "aap.verification.trace_id"
	VerificationCardID          = "aap.verification.card_id"
	VerificationDurationMs      = "aap.verification.duration_ms"
	VerificationChecksPerformed = "aap.verification.checks_performed"
)

// AAP coherence attributes.
const (
	CoherenceCompatible    = "aap.coherence.compatible"
	CoherenceScore         = "aap.coherence.score"
	CoherenceProceed       = "aap.coherence.proceed"
	CoherenceMatchedCount  = "aap.coherence.matched_count"
	CoherenceConflictCount = "aap.coherence.conflict_count"
)

// AAP drift detection attributes.
const (
	DriftAlertsCount    = "aap.drift.alerts_count"
	DriftTracesAnalyzed = "aap.drift.traces_analyzed"
)

// AIP drift alert attributes. Reserved for AIP drift alert events.
const (
	AIPDriftAlertID             = "aip.drift.alert_id"
	AIPDriftAgentID             = "aip.drift.agent_id"
	AIPDriftSessionID           = "aip.drift.session_id"
	AIPDriftIntegritySimilarity = "aip.drift.integrity_similarity"
	AIPDriftSustainedChecks     = "aip.drift.sustained_checks"
	AIPDriftSeverity            = "aip.drift.severity"
	AIPDriftDirection           = "aip.drift.drift_direction"
	AIPDriftMessage             = "aip.drift.message"
)

// Event attribute keys. These are unqualified on purpose: they live inside a named event.
const (
	EventCategory        = "category"
	EventSeverity        = "severity"
	EventDescription     = "description"
	EventType            = "type"
	EventAlertType       = "alert_type"
	EventAgentID         = "agent_id"
	EventCardID          = "card_id"
	EventSimilarityScore = "similarity_score"
	EventDriftDirection  = "drift_direction"
	EventRecommendation  = "recommendation"
)

// Span names.
const (
	SpanIntegrityCheck = "aip.integrity_check"
	SpanVerifyTrace    = "aap.verify_trace"
	SpanCheckCoherence = "aap.check_coherence"
	SpanDetectDrift    = "aap.detect_drift"
)

// Event names.
const (
	EventAIPConcern    = "aip.concern"
	EventAIPDriftAlert = "aip.drift_alert"
	EventAAPViolation  = "aap.violation"
	EventAAPDriftAlert = "aap.drift_alert"
)

// Metric names.
const (
	MetricIntegrityChecksTotal     = "aip.integrity_checks.total"
	MetricIntegrityChecksByVerdict = "aip.integrity_checks.by_verdict"
	MetricConcernsTotal            = "aip.concerns.total"
	MetricAnalysisDuration         = "aip.analysis.duration_ms"
	MetricWindowIntegrityRatio     = "aip.window.integrity_ratio"
	MetricDriftAlertsTotal         = "aip.drift_alerts.total"
	MetricVerificationsTotal       = "aap.verifications.total"
	MetricViolationsTotal          = "aap.violations.total"
	MetricVerificationDuration     = "aap.verification.duration_ms"
	MetricCoherenceScore           = "aap.coherence.score"
)

// Metric label keys.
const (
	LabelVerdict        = "verdict"
	LabelAgentID        = "agent_id"
	LabelCategory       = "category"
	LabelSeverity       = "severity"
	LabelDriftDirection = "drift_direction"
	LabelVerified       = "verified"
	LabelCardID         = "card_id"
	LabelType           = "type"
	LabelCompatible     = "compatible"

	// UnknownLabelValue replaces a missing label source so label sets stay fixed per instrument.
	UnknownLabelValue = "unknown"
)

// InstrumentationName is the tracer, meter and OTLP scope name of this exporter.
const InstrumentationName = "aip-otel-exporter"

// ServiceNameKey is the resource attribute carrying the service name in OTLP payloads.
const ServiceNameKey = "service.name"
