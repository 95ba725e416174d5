package recur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportXCal(t *testing.T) {
	spec := Spec{
		Frequency:  Weekly,
		Interval:   2,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
		Start:      day("2024-01-01"),
		End:        day("2024-06-30"),
		EndEnabled: true,
	}

	doc, err := ExportXCal(spec)
	require.NoError(t, err)

	out, err := doc.WriteToString()
	require.NoError(t, err)

	assert.Contains(t, out, `<icalendar xmlns="urn:ietf:params:xml:ns:icalendar-2.0">`)
	assert.Contains(t, out, "<freq>WEEKLY</freq>")
	assert.Contains(t, out, "<interval>2</interval>")
	assert.Contains(t, out, "<byday>MO</byday>")
	assert.Contains(t, out, "<byday>FR</byday>")
	assert.Contains(t, out, "<until>2024-06-30</until>")
	assert.Contains(t, out, "<date>2024-01-01</date>")
}

func TestExportXCal_MonthlyOrdinal(t *testing.T) {
	spec := Spec{
		Frequency: Monthly,
		Interval:  1,
		Monthly:   MonthlyPattern{Week: Last, Day: time.Friday},
		Start:     day("2024-01-01"),
	}

	doc, err := ExportXCal(spec)
	require.NoError(t, err)

	out, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Contains(t, out, "<byday>-1FR</byday>")
	assert.NotContains(t, out, "<until>")
}

func TestExportXCal_InvalidSpec(t *testing.T) {
	_, err := ExportXCal(Spec{Frequency: Daily, Interval: 1})
	assert.Error(t, err, "missing start date")

	_, err = ExportXCal(Spec{Frequency: Frequency("hourly"), Interval: 1, Start: day("2024-01-01")})
	assert.Error(t, err, "unknown frequency")
}
