/*
Package recur turns a declarative recurring calendar pattern into the
concrete, ascending, duplicate-free set of dates it produces.

A pattern is described by a Spec: one of four frequencies (daily, weekly,
monthly, yearly), an interval, an optional weekday filter for weekly
patterns, an "Nth weekday of the month" pattern for monthly ones, a start
date and an optional end date. Expansion is a pure function of the Spec and
never fails; malformed input degrades to an empty sequence.

# Basic Usage

	engine := recur.NewEngine()
	defer engine.Close()

	spec := recur.Spec{
		Frequency: recur.Weekly,
		Interval:  1,
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
		Start:     recur.NewDate(2024, time.January, 1),
		End:       recur.NewDate(2024, time.January, 14),
		EndEnabled: true,
	}
	for _, d := range engine.Expand(spec) {
		fmt.Println(d) // 2024-01-01, 2024-01-03, 2024-01-08, 2024-01-10
	}

Open-ended specs (EndEnabled false) are truncated at the engine's safety cap
(731 dates by default, two years of daily granularity plus one) and a single
"recurrence truncated" warning is logged. Truncation is a defined policy
outcome, not an error.

# Wire Format

Spec marshals to and from the JSON shape used by editing UIs:

	{
	  "recurrenceType": "monthly",
	  "interval": 1,
	  "monthlyPattern": {"week": "second", "day": "Tuesday"},
	  "startDate": "2024-01-01",
	  "isEndDateEnabled": false
	}

ExpandStrings returns the matching output shape: a JSON-ready array of
YYYY-MM-DD strings.

# Interchange

Specs can be exported as iCalendar (ExportICal, with the equivalent RRULE
attached), as xCal XML (ExportXCal), or mapped directly onto an rrule
(Spec.RRule) for interoperation with RRULE-based tooling.
*/
package recur
