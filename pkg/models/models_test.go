//go:build unit || !integration

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegritySignal_AbsentVersusEmpty(t *testing.T) {
	var signal IntegritySignal
	require.NoError(t, json.Unmarshal([]byte(`{
		"checkpoint": {
			"verdict": "clear",
			"concerns": [],
			"conscience_context": {"values_checked": ["honesty"]}
		}
	}`), &signal))

	checkpoint := signal.GetCheckpoint()
	require.NotNil(t, checkpoint)
	assert.NotNil(t, checkpoint.GetConcerns())
	assert.Empty(t, checkpoint.GetConcerns())
	assert.Equal(t, []string{"honesty"}, checkpoint.GetConscienceContext().GetValuesChecked())
	assert.Nil(t, checkpoint.GetConscienceContext().GetConflicts())
	assert.Nil(t, signal.GetProceed())
	assert.Nil(t, signal.GetWindowSummary())
}

func TestIntegritySignal_EncodesEmptyListsOnly(t *testing.T) {
	b, err := json.Marshal(IntegrityCheckpoint{Verdict: Ptr("clear"), Concerns: []IntegrityConcern{}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"concerns":[]`)
	assert.NotContains(t, string(b), `"agent_id"`)
}

func TestNilSafeGetters(t *testing.T) {
	var (
		signal       *IntegritySignal
		checkpoint   *IntegrityCheckpoint
		window       *WindowSummary
		verification *VerificationResult
		metadata     *VerificationMetadata
		coherence    *CoherenceResult
		alignment    *ValueAlignment
		alert        *DriftAlert
		analysis     *DriftAnalysis
	)

	assert.Nil(t, signal.GetCheckpoint())
	assert.Nil(t, signal.GetCheckpoint().GetVerdict())
	assert.Nil(t, checkpoint.GetConcerns())
	assert.Nil(t, checkpoint.GetAnalysisMetadata().GetThinkingTokensOriginal())
	assert.Nil(t, window.GetDriftAlertActive())
	assert.False(t, window.IsDriftAlertActive())
	assert.Nil(t, verification.GetViolations())
	assert.Nil(t, verification.GetVerificationMetadata().GetChecksPerformed())
	assert.Nil(t, metadata.GetDurationMs())
	assert.Nil(t, coherence.GetValueAlignment().GetMatched())
	assert.Nil(t, alignment.GetConflicts())
	assert.Nil(t, alert.GetAnalysis().GetDriftDirection())
	assert.Nil(t, analysis.GetSimilarityScore())
}

func TestWindowSummary_IsDriftAlertActive(t *testing.T) {
	assert.False(t, (&WindowSummary{}).IsDriftAlertActive())
	assert.False(t, (&WindowSummary{DriftAlertActive: Ptr(false)}).IsDriftAlertActive())
	assert.True(t, (&WindowSummary{DriftAlertActive: Ptr(true)}).IsDriftAlertActive())
}

func TestDriftAlert_Decode(t *testing.T) {
	var alerts []DriftAlert
	require.NoError(t, json.Unmarshal([]byte(`[
		{"alert_type": "value_drift", "analysis": {"similarity_score": 0.42, "sustained_traces": 5}, "trace_ids": []},
		{"alert_type": "autonomy_drift"}
	]`), &alerts))

	require.Len(t, alerts, 2)
	assert.Equal(t, 0.42, *alerts[0].GetAnalysis().GetSimilarityScore())
	assert.Equal(t, int64(5), *alerts[0].Analysis.SustainedTraces)
	assert.NotNil(t, alerts[0].TraceIDs)
	assert.Nil(t, alerts[1].TraceIDs)
	assert.Nil(t, alerts[1].GetAnalysis())
}
