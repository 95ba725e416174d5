package recur

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecJSON(t *testing.T) {
	data := []byte(`{
		"recurrenceType": "weekly",
		"interval": 2,
		"daysOfWeek": ["Wednesday", "Monday", "monday", "Funday"],
		"startDate": "2024-01-01",
		"endDate": "2024-03-01",
		"isEndDateEnabled": true
	}`)

	spec, err := ParseSpecJSON(data)
	require.NoError(t, err)

	assert.Equal(t, Weekly, spec.Frequency)
	assert.Equal(t, 2, spec.Interval)
	// Duplicates and unknown names dropped, order preserved otherwise.
	assert.Equal(t, []time.Weekday{time.Wednesday, time.Monday}, spec.DaysOfWeek)
	assert.Equal(t, "2024-01-01", spec.Start.String())
	assert.Equal(t, "2024-03-01", spec.End.String())
	assert.True(t, spec.EndEnabled)
}

func TestParseSpecJSON_MonthlyPattern(t *testing.T) {
	data := []byte(`{
		"recurrenceType": "monthly",
		"interval": 1,
		"monthlyPattern": {"week": "Second", "day": "tuesday"},
		"startDate": "2024-01-01",
		"isEndDateEnabled": false
	}`)

	spec, err := ParseSpecJSON(data)
	require.NoError(t, err)
	assert.Equal(t, Monthly, spec.Frequency)
	assert.Equal(t, Second, spec.Monthly.Week)
	assert.Equal(t, time.Tuesday, spec.Monthly.Day)
}

func TestParseSpecJSON_LenientInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval string
		expected int
	}{
		{"plain number", `3`, 3},
		{"numeric string", `"4"`, 4},
		{"float truncates", `2.9`, 2},
		{"garbage decodes as zero", `"soon"`, 0},
		{"null decodes as zero", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecJSON([]byte(`{"recurrenceType":"daily","interval":` + tt.interval + `,"startDate":"2024-01-01"}`))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec.Interval)
		})
	}
}

func TestParseSpecJSON_DegradedFields(t *testing.T) {
	spec, err := ParseSpecJSON([]byte(`{
		"recurrenceType": "fortnightly",
		"interval": 1,
		"startDate": "not-a-date",
		"endDate": "also-not-a-date",
		"isEndDateEnabled": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, Frequency(""), spec.Frequency)
	assert.True(t, spec.Start.IsZero())
	assert.True(t, spec.End.IsZero())

	// The degraded spec expands to nothing rather than failing.
	engine := quietEngine(10)
	assert.Empty(t, engine.Expand(spec))
}

func TestParseSpecJSON_MalformedJSON(t *testing.T) {
	_, err := ParseSpecJSON([]byte(`{"recurrenceType":`))
	assert.Error(t, err)
}

func TestSpec_MarshalRoundTrip(t *testing.T) {
	original := Spec{
		Frequency:  Weekly,
		Interval:   2,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
		Start:      day("2024-01-01"),
		End:        day("2024-06-30"),
		EndEnabled: true,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Spec
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestSpec_MarshalRoundTrip_Monthly(t *testing.T) {
	original := Spec{
		Frequency: Monthly,
		Interval:  1,
		Monthly:   MonthlyPattern{Week: Last, Day: time.Friday},
		Start:     day("2024-01-01"),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monthlyPattern":{"week":"last","day":"Friday"}`)

	var decoded Spec
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
