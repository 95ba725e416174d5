package recur

import (
	"strings"
	"time"
)

// Frequency selects the per-type expansion strategy.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// ParseFrequency maps a wire string onto a Frequency.
func ParseFrequency(s string) (Frequency, bool) {
	switch f := Frequency(strings.ToLower(s)); f {
	case Daily, Weekly, Monthly, Yearly:
		return f, true
	default:
		return "", false
	}
}

// WeekOrdinal qualifies a weekday by its position within a month.
type WeekOrdinal string

const (
	First  WeekOrdinal = "first"
	Second WeekOrdinal = "second"
	Third  WeekOrdinal = "third"
	Fourth WeekOrdinal = "fourth"
	Last   WeekOrdinal = "last"
)

// nth returns the 1-based occurrence the ordinal asks for. Last and
// malformed ordinals return 0 so they never match by count.
func (o WeekOrdinal) nth() int {
	switch o {
	case First:
		return 1
	case Second:
		return 2
	case Third:
		return 3
	case Fourth:
		return 4
	default:
		return 0
	}
}

// MonthlyPattern describes an "Nth weekday of the month" rule, e.g. the
// second Tuesday or the last Friday.
type MonthlyPattern struct {
	Week WeekOrdinal
	Day  time.Weekday
}

// Spec is a declarative recurrence pattern. Expansion is a pure function of
// the full Spec; see Engine.Expand.
type Spec struct {
	Frequency Frequency

	// Interval is the step multiplier in the frequency's natural unit
	// (days, weeks, months or years). Values below 1 are treated as 1.
	Interval int

	// DaysOfWeek filters weekly patterns. An empty set means "no filter":
	// the sequence stays on the start date's weekday.
	DaysOfWeek []time.Weekday

	// Monthly is consulted only for monthly patterns.
	Monthly MonthlyPattern

	// Start is the first candidate date. A zero Start expands to nothing.
	Start Date

	// End bounds the sequence when EndEnabled is set; otherwise expansion
	// is open-ended and stops at the engine's safety cap.
	End        Date
	EndEnabled bool
}

// matchesWeekday reports whether w is in the weekly filter.
func (s Spec) matchesWeekday(w time.Weekday) bool {
	for _, d := range s.DaysOfWeek {
		if d == w {
			return true
		}
	}
	return false
}

// weekdayNames is the single canonical weekday enumeration. The wire codec,
// the weekly filter and the ordinal resolver all go through it; weekday
// arithmetic uses time.Weekday ordinals (Sunday = 0).
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a weekday name (case-insensitive) onto its time.Weekday.
func ParseWeekday(s string) (time.Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(s)]
	return d, ok
}
