package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrimonio/internal/domain/reports"
)

func TestStatsGroupedResponse_Envelope(t *testing.T) {
	resp := NewStatsGroupedResponse([]reports.GroupedStats{
		{Project: "PRY-001", Stats: reports.Stats{LegacyTotal: 10, ReconciledCount: 5, MissingCount: 5, CoveragePercent: 50}},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "estadisticas")

	var groups []map[string]any
	require.NoError(t, json.Unmarshal(decoded["estadisticas"], &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "PRY-001", groups[0]["proyecto"])
	assert.Equal(t, float64(50), groups[0]["avance"])
}

func TestStatsGroupedResponse_EmptyIsNotNull(t *testing.T) {
	raw, err := json.Marshal(NewStatsGroupedResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"estadisticas": []}`, string(raw))
}
