package models

// Violation is a hard failure found while verifying an agent trace against its card.
type Violation struct {
	Type        string  `json:"type"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	TraceField  *string `json:"trace_field,omitempty"`
}

// Warning is a soft finding of a verification. Warnings are counted, never itemised.
type Warning struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	TraceField  *string `json:"trace_field,omitempty"`
}

type VerificationMetadata struct {
	AlgorithmVersion *string  `json:"algorithm_version,omitempty"`
	ChecksPerformed  []string `json:"checks_performed"`
	DurationMs       *float64 `json:"duration_ms,omitempty"`
}

func (m *VerificationMetadata) GetChecksPerformed() []string {
	if m == nil {
		return nil
	}
	return m.ChecksPerformed
}

func (m *VerificationMetadata) GetDurationMs() *float64 {
	if m == nil {
		return nil
	}
	return m.DurationMs
}

// VerificationResult is the AAP outcome of verifying one trace.
type VerificationResult struct {
	Verified             *bool                 `json:"verified,omitempty"`
	TraceID              *string               `json:"trace_id,omitempty"`
	CardID               *string               `json:"card_id,omitempty"`
	Timestamp            *string               `json:"timestamp,omitempty"`
	Violations           []Violation           `json:"violations"`
	Warnings             []Warning             `json:"warnings"`
	VerificationMetadata *VerificationMetadata `json:"verification_metadata,omitempty"`
	// SimilarityScore is in the range [0, 1].
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

func (r *VerificationResult) GetVerified() *bool {
	if r == nil {
		return nil
	}
	return r.Verified
}

func (r *VerificationResult) GetTraceID() *string {
	if r == nil {
		return nil
	}
	return r.TraceID
}

func (r *VerificationResult) GetCardID() *string {
	if r == nil {
		return nil
	}
	return r.CardID
}

func (r *VerificationResult) GetViolations() []Violation {
	if r == nil {
		return nil
	}
	return r.Violations
}

func (r *VerificationResult) GetWarnings() []Warning {
	if r == nil {
		return nil
	}
	return r.Warnings
}

func (r *VerificationResult) GetVerificationMetadata() *VerificationMetadata {
	if r == nil {
		return nil
	}
	return r.VerificationMetadata
}

func (r *VerificationResult) GetSimilarityScore() *float64 {
	if r == nil {
		return nil
	}
	return r.SimilarityScore
}

// ValueAlignmentConflict is a structured conflict between the values of two agents.
type ValueAlignmentConflict struct {
	InitiatorValue *string `json:"initiator_value,omitempty"`
	ResponderValue *string `json:"responder_value,omitempty"`
	ConflictType   *string `json:"conflict_type,omitempty"`
	Description    *string `json:"description,omitempty"`
}

type ValueAlignment struct {
	Matched   []string                 `json:"matched"`
	Unmatched []string                 `json:"unmatched"`
	Conflicts []ValueAlignmentConflict `json:"conflicts"`
}

func (v *ValueAlignment) GetMatched() []string {
	if v == nil {
		return nil
	}
	return v.Matched
}

func (v *ValueAlignment) GetConflicts() []ValueAlignmentConflict {
	if v == nil {
		return nil
	}
	return v.Conflicts
}

// CoherenceResult is the AAP compatibility check between two agents' value systems.
type CoherenceResult struct {
	Compatible *bool `json:"compatible,omitempty"`
	// Score is in the range [0, 1].
	Score          *float64        `json:"score,omitempty"`
	ValueAlignment *ValueAlignment `json:"value_alignment,omitempty"`
	Proceed        *bool           `json:"proceed,omitempty"`
	Conditions     []string        `json:"conditions"`
}

func (r *CoherenceResult) GetCompatible() *bool {
	if r == nil {
		return nil
	}
	return r.Compatible
}

func (r *CoherenceResult) GetScore() *float64 {
	if r == nil {
		return nil
	}
	return r.Score
}

func (r *CoherenceResult) GetProceed() *bool {
	if r == nil {
		return nil
	}
	return r.Proceed
}

func (r *CoherenceResult) GetValueAlignment() *ValueAlignment {
	if r == nil {
		return nil
	}
	return r.ValueAlignment
}

type DriftIndicator struct {
	Indicator   *string  `json:"indicator,omitempty"`
	Baseline    *float64 `json:"baseline,omitempty"`
	Current     *float64 `json:"current,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type DriftAnalysis struct {
	SimilarityScore    *float64         `json:"similarity_score,omitempty"`
	SustainedTraces    *int64           `json:"sustained_traces,omitempty"`
	Threshold          *float64         `json:"threshold,omitempty"`
	DriftDirection     *string          `json:"drift_direction,omitempty"`
	SpecificIndicators []DriftIndicator `json:"specific_indicators"`
}

func (a *DriftAnalysis) GetSimilarityScore() *float64 {
	if a == nil {
		return nil
	}
	return a.SimilarityScore
}

func (a *DriftAnalysis) GetDriftDirection() *string {
	if a == nil {
		return nil
	}
	return a.DriftDirection
}

// DriftAlert is raised by AAP when an agent's behaviour drifts from its card over a sustained
// run of traces.
type DriftAlert struct {
	AlertType          *string        `json:"alert_type,omitempty"`
	AgentID            *string        `json:"agent_id,omitempty"`
	CardID             *string        `json:"card_id,omitempty"`
	DetectionTimestamp *string        `json:"detection_timestamp,omitempty"`
	Analysis           *DriftAnalysis `json:"analysis,omitempty"`
	Recommendation     *string        `json:"recommendation,omitempty"`
	TraceIDs           []string       `json:"trace_ids"`
}

func (a *DriftAlert) GetAnalysis() *DriftAnalysis {
	if a == nil {
		return nil
	}
	return a.Analysis
}
