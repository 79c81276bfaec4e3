package models

// Integrity verdicts reported by an AIP checkpoint.
const (
	VerdictClear             = "clear"
	VerdictReviewNeeded      = "review_needed"
	VerdictBoundaryViolation = "boundary_violation"
)

// IntegrityConcern is one issue raised by an integrity analysis. Category, severity and
// description are always present on a concern; the list holding concerns may be absent.
type IntegrityConcern struct {
	Category                string  `json:"category"`
	Severity                string  `json:"severity"`
	Description             string  `json:"description"`
	Evidence                *string `json:"evidence,omitempty"`
	RelevantCardField       *string `json:"relevant_card_field,omitempty"`
	RelevantConscienceValue *string `json:"relevant_conscience_value,omitempty"`
}

// ConscienceContext describes which conscience values were consulted during an analysis.
type ConscienceContext struct {
	ConsultationDepth *string  `json:"consultation_depth,omitempty"`
	ValuesChecked     []string `json:"values_checked"`
	Conflicts         []string `json:"conflicts"`
	Supports          []string `json:"supports"`
	Considerations    []string `json:"considerations"`
}

func (c *ConscienceContext) GetConsultationDepth() *string {
	if c == nil {
		return nil
	}
	return c.ConsultationDepth
}

func (c *ConscienceContext) GetValuesChecked() []string {
	if c == nil {
		return nil
	}
	return c.ValuesChecked
}

func (c *ConscienceContext) GetConflicts() []string {
	if c == nil {
		return nil
	}
	return c.Conflicts
}

// AnalysisMetadata describes the analysis run that produced a checkpoint.
type AnalysisMetadata struct {
	AnalysisModel          *string  `json:"analysis_model,omitempty"`
	AnalysisDurationMs     *float64 `json:"analysis_duration_ms,omitempty"`
	ThinkingTokensOriginal *int64   `json:"thinking_tokens_original,omitempty"`
	ThinkingTokensAnalyzed *int64   `json:"thinking_tokens_analyzed,omitempty"`
	Truncated              *bool    `json:"truncated,omitempty"`
	// ExtractionConfidence is in the range [0, 1].
	ExtractionConfidence *float64 `json:"extraction_confidence,omitempty"`
}

func (m *AnalysisMetadata) GetAnalysisModel() *string {
	if m == nil {
		return nil
	}
	return m.AnalysisModel
}

func (m *AnalysisMetadata) GetAnalysisDurationMs() *float64 {
	if m == nil {
		return nil
	}
	return m.AnalysisDurationMs
}

func (m *AnalysisMetadata) GetThinkingTokensOriginal() *int64 {
	if m == nil {
		return nil
	}
	return m.ThinkingTokensOriginal
}

func (m *AnalysisMetadata) GetTruncated() *bool {
	if m == nil {
		return nil
	}
	return m.Truncated
}

func (m *AnalysisMetadata) GetExtractionConfidence() *float64 {
	if m == nil {
		return nil
	}
	return m.ExtractionConfidence
}

// WindowVerdicts counts verdicts inside the sliding window.
type WindowVerdicts struct {
	Clear             *int64 `json:"clear,omitempty"`
	ReviewNeeded      *int64 `json:"review_needed,omitempty"`
	BoundaryViolation *int64 `json:"boundary_violation,omitempty"`
}

// WindowSummary summarises the sliding window of recent checkpoints for a session.
type WindowSummary struct {
	Size     *int64          `json:"size,omitempty"`
	MaxSize  *int64          `json:"max_size,omitempty"`
	Verdicts *WindowVerdicts `json:"verdicts,omitempty"`
	// IntegrityRatio is the share of clear verdicts in the window, in the range [0, 1].
	IntegrityRatio   *float64 `json:"integrity_ratio,omitempty"`
	DriftAlertActive *bool    `json:"drift_alert_active,omitempty"`
}

func (w *WindowSummary) GetSize() *int64 {
	if w == nil {
		return nil
	}
	return w.Size
}

func (w *WindowSummary) GetIntegrityRatio() *float64 {
	if w == nil {
		return nil
	}
	return w.IntegrityRatio
}

func (w *WindowSummary) GetDriftAlertActive() *bool {
	if w == nil {
		return nil
	}
	return w.DriftAlertActive
}

// IsDriftAlertActive reports whether the window flags an active drift alert.
func (w *WindowSummary) IsDriftAlertActive() bool {
	active := w.GetDriftAlertActive()
	return active != nil && *active
}

// WindowPosition locates a checkpoint inside its window.
type WindowPosition struct {
	Index      *int64 `json:"index,omitempty"`
	WindowSize *int64 `json:"window_size,omitempty"`
}

// IntegrityCheckpoint is the verdict of one AIP integrity analysis.
type IntegrityCheckpoint struct {
	CheckpointID      *string            `json:"checkpoint_id,omitempty"`
	AgentID           *string            `json:"agent_id,omitempty"`
	CardID            *string            `json:"card_id,omitempty"`
	SessionID         *string            `json:"session_id,omitempty"`
	Timestamp         *string            `json:"timestamp,omitempty"`
	ThinkingBlockHash *string            `json:"thinking_block_hash,omitempty"`
	Provider          *string            `json:"provider,omitempty"`
	Model             *string            `json:"model,omitempty"`
	Verdict           *string            `json:"verdict,omitempty"`
	Concerns          []IntegrityConcern `json:"concerns"`
	ReasoningSummary  *string            `json:"reasoning_summary,omitempty"`
	ConscienceContext *ConscienceContext `json:"conscience_context,omitempty"`
	WindowPosition    *WindowPosition    `json:"window_position,omitempty"`
	AnalysisMetadata  *AnalysisMetadata  `json:"analysis_metadata,omitempty"`
	LinkedTraceID     *string            `json:"linked_trace_id,omitempty"`
}

func (c *IntegrityCheckpoint) GetCheckpointID() *string {
	if c == nil {
		return nil
	}
	return c.CheckpointID
}

func (c *IntegrityCheckpoint) GetAgentID() *string {
	if c == nil {
		return nil
	}
	return c.AgentID
}

func (c *IntegrityCheckpoint) GetCardID() *string {
	if c == nil {
		return nil
	}
	return c.CardID
}

func (c *IntegrityCheckpoint) GetSessionID() *string {
	if c == nil {
		return nil
	}
	return c.SessionID
}

func (c *IntegrityCheckpoint) GetThinkingBlockHash() *string {
	if c == nil {
		return nil
	}
	return c.ThinkingBlockHash
}

func (c *IntegrityCheckpoint) GetVerdict() *string {
	if c == nil {
		return nil
	}
	return c.Verdict
}

func (c *IntegrityCheckpoint) GetConcerns() []IntegrityConcern {
	if c == nil {
		return nil
	}
	return c.Concerns
}

func (c *IntegrityCheckpoint) GetConscienceContext() *ConscienceContext {
	if c == nil {
		return nil
	}
	return c.ConscienceContext
}

func (c *IntegrityCheckpoint) GetAnalysisMetadata() *AnalysisMetadata {
	if c == nil {
		return nil
	}
	return c.AnalysisMetadata
}

// IntegritySignal is the primary AIP output: a checkpoint plus the decision derived from it.
type IntegritySignal struct {
	Checkpoint        *IntegrityCheckpoint `json:"checkpoint,omitempty"`
	Proceed           *bool                `json:"proceed,omitempty"`
	RecommendedAction *string              `json:"recommended_action,omitempty"`
	WindowSummary     *WindowSummary       `json:"window_summary,omitempty"`
	// DriftAlert is set when this check raised a session drift alert.
	DriftAlert *IntegrityDriftAlert `json:"drift_alert,omitempty"`
}

func (s *IntegritySignal) GetCheckpoint() *IntegrityCheckpoint {
	if s == nil {
		return nil
	}
	return s.Checkpoint
}

func (s *IntegritySignal) GetProceed() *bool {
	if s == nil {
		return nil
	}
	return s.Proceed
}

func (s *IntegritySignal) GetRecommendedAction() *string {
	if s == nil {
		return nil
	}
	return s.RecommendedAction
}

func (s *IntegritySignal) GetWindowSummary() *WindowSummary {
	if s == nil {
		return nil
	}
	return s.WindowSummary
}

func (s *IntegritySignal) GetDriftAlert() *IntegrityDriftAlert {
	if s == nil {
		return nil
	}
	return s.DriftAlert
}

// IntegrityDriftAlert is raised by AIP when the integrity ratio of a session drifts over
// several consecutive checks.
type IntegrityDriftAlert struct {
	AlertID             *string  `json:"alert_id,omitempty"`
	AgentID             *string  `json:"agent_id,omitempty"`
	SessionID           *string  `json:"session_id,omitempty"`
	CheckpointIDs       []string `json:"checkpoint_ids"`
	IntegritySimilarity *float64 `json:"integrity_similarity,omitempty"`
	SustainedChecks     *int64   `json:"sustained_checks,omitempty"`
	Severity            *string  `json:"severity,omitempty"`
	DriftDirection      *string  `json:"drift_direction,omitempty"`
	Message             *string  `json:"message,omitempty"`
}
