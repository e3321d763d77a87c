package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.NotEmpty(t, s.Title())
	}

	_, err := ParseStatus("HIRED")
	assert.Error(t, err)
	_, err = ParseStatus("applied")
	assert.Error(t, err)
}

func TestStatusUnmarshalRejectsUnknownValues(t *testing.T) {
	var body struct {
		Status Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"INTERVIEW_HR"}`), &body))
	assert.Equal(t, StatusInterviewHR, body.Status)

	err := json.Unmarshal([]byte(`{"status":"ON_HOLD"}`), &body)
	assert.Error(t, err)
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 2, Priority("").Rank())
	assert.Equal(t, 2, Priority("URGENT").Rank())
}

func TestPriorityUnmarshal(t *testing.T) {
	var p Priority
	require.NoError(t, json.Unmarshal([]byte(`"HIGH"`), &p))
	assert.Equal(t, PriorityHigh, p)
	assert.Error(t, json.Unmarshal([]byte(`"CRITICAL"`), &p))
}

func TestUnmappedColumns(t *testing.T) {
	missing := unmappedColumns(
		[]string{"id", "user_id", "legacy_score", "Position"},
		[]string{"id", "user_id", "position"},
	)
	assert.Equal(t, []string{"legacy_score"}, missing)
}
