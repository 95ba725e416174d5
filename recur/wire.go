package recur

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// wireSpec mirrors the JSON shape the editing UI produces.
type wireSpec struct {
	RecurrenceType   string      `json:"recurrenceType"`
	Interval         flexInt     `json:"interval"`
	DaysOfWeek       []string    `json:"daysOfWeek,omitempty"`
	MonthlyPattern   wirePattern `json:"monthlyPattern"`
	StartDate        string      `json:"startDate,omitempty"`
	EndDate          string      `json:"endDate,omitempty"`
	IsEndDateEnabled bool        `json:"isEndDateEnabled"`
}

type wirePattern struct {
	Week string `json:"week"`
	Day  string `json:"day"`
}

// flexInt tolerates numbers, numeric strings and garbage. Anything that does
// not parse decodes as zero and is clamped to 1 during normalization.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexInt(int(v))
		return nil
	}
	*f = 0
	return nil
}

// ParseSpecJSON decodes a serialized recurrence spec. Only malformed JSON is
// an error; unknown weekday names, bad dates and out-of-range intervals are
// tolerated and degrade at expansion time.
func ParseSpecJSON(data []byte) (Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("decoding recurrence spec: %w", err)
	}
	return spec, nil
}

// UnmarshalJSON implements json.Unmarshaler over the UI wire shape.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var w wireSpec
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = w.spec()
	return nil
}

// MarshalJSON implements json.Marshaler over the UI wire shape.
func (s Spec) MarshalJSON() ([]byte, error) {
	w := wireSpec{
		RecurrenceType: string(s.Frequency),
		Interval:       flexInt(s.Interval),
		MonthlyPattern: wirePattern{
			Week: string(s.Monthly.Week),
			Day:  s.Monthly.Day.String(),
		},
		IsEndDateEnabled: s.EndEnabled,
	}
	for _, d := range s.DaysOfWeek {
		w.DaysOfWeek = append(w.DaysOfWeek, d.String())
	}
	if !s.Start.IsZero() {
		w.StartDate = s.Start.String()
	}
	if !s.End.IsZero() {
		w.EndDate = s.End.String()
	}
	return json.Marshal(w)
}

// spec converts the wire form into the typed Spec. Weekday names are
// order-insensitive; duplicates and unknown names are dropped.
func (w wireSpec) spec() Spec {
	spec := Spec{
		Interval:   int(w.Interval),
		EndEnabled: w.IsEndDateEnabled,
	}
	if f, ok := ParseFrequency(w.RecurrenceType); ok {
		spec.Frequency = f
	}
	seen := make(map[time.Weekday]struct{})
	for _, name := range w.DaysOfWeek {
		d, ok := ParseWeekday(name)
		if !ok {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		spec.DaysOfWeek = append(spec.DaysOfWeek, d)
	}
	if d, ok := ParseWeekday(w.MonthlyPattern.Day); ok {
		spec.Monthly.Day = d
	}
	spec.Monthly.Week = WeekOrdinal(strings.ToLower(w.MonthlyPattern.Week))
	if d, err := ParseDate(w.StartDate); err == nil {
		spec.Start = d
	}
	if d, err := ParseDate(w.EndDate); err == nil {
		spec.End = d
	}
	return spec
}
