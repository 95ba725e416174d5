package recur

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// rruleWeekdays maps the canonical weekday enumeration onto rrule weekday
// constants.
var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// ordinalPositions maps week ordinals onto BYDAY position prefixes.
var ordinalPositions = map[WeekOrdinal]int{
	First:  1,
	Second: 2,
	Third:  3,
	Fourth: 4,
	Last:   -1,
}

func ordinalFromPosition(n int) (WeekOrdinal, bool) {
	for ord, pos := range ordinalPositions {
		if pos == n {
			return ord, true
		}
	}
	return "", false
}

// fromRRuleWeekday converts rrule's Monday-based weekday numbering back to
// time.Weekday (Sunday-based).
func fromRRuleWeekday(wd rrule.Weekday) time.Weekday {
	return time.Weekday((wd.Day() + 1) % 7)
}

// RRule maps the spec onto an iCalendar recurrence rule. Not every nuance
// survives the mapping (the weekly scan window and the safety cap have no
// RRULE equivalent), so this is an interchange surface, not the expansion
// engine.
func (s Spec) RRule() (*rrule.RRule, error) {
	if s.Start.IsZero() {
		return nil, fmt.Errorf("recurrence rule requires a start date")
	}
	interval := s.Interval
	if interval < 1 {
		interval = 1
	}

	opt := rrule.ROption{
		Interval: interval,
		Dtstart:  s.Start.Time(),
	}
	switch s.Frequency {
	case Daily:
		opt.Freq = rrule.DAILY
	case Weekly:
		opt.Freq = rrule.WEEKLY
		for _, d := range s.DaysOfWeek {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
		}
	case Monthly:
		opt.Freq = rrule.MONTHLY
		pos, ok := ordinalPositions[s.Monthly.Week]
		if !ok {
			return nil, fmt.Errorf("unknown week ordinal %q", s.Monthly.Week)
		}
		wd := rruleWeekdays[s.Monthly.Day]
		opt.Byweekday = []rrule.Weekday{wd.Nth(pos)}
	case Yearly:
		opt.Freq = rrule.YEARLY
	default:
		return nil, fmt.Errorf("unknown frequency %q", s.Frequency)
	}
	if s.EndEnabled && !s.End.IsZero() {
		opt.Until = s.End.Time()
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}
	return rule, nil
}

// RRuleString renders the rule in RRULE property value form: the rule parts
// only, without the DTSTART line that RRule.String prepends.
func (s Spec) RRuleString() (string, error) {
	rule, err := s.RRule()
	if err != nil {
		return "", err
	}
	return rule.OrigOptions.RRuleString(), nil
}

// specFromROption reconstructs a Spec from parsed rule options. Only the
// four supported rule shapes are expressible.
func specFromROption(opt rrule.ROption, start Date) (Spec, error) {
	spec := Spec{
		Interval: opt.Interval,
		Start:    start,
	}
	if spec.Interval < 1 {
		spec.Interval = 1
	}

	switch opt.Freq {
	case rrule.DAILY:
		spec.Frequency = Daily
	case rrule.WEEKLY:
		spec.Frequency = Weekly
		for _, wd := range opt.Byweekday {
			if wd.N() != 0 {
				return Spec{}, fmt.Errorf("positional BYDAY %v not supported for weekly rules", wd)
			}
			spec.DaysOfWeek = append(spec.DaysOfWeek, fromRRuleWeekday(wd))
		}
	case rrule.MONTHLY:
		if len(opt.Byweekday) != 1 {
			return Spec{}, fmt.Errorf("monthly rules need exactly one BYDAY, got %d", len(opt.Byweekday))
		}
		wd := opt.Byweekday[0]
		ord, ok := ordinalFromPosition(wd.N())
		if !ok {
			return Spec{}, fmt.Errorf("unsupported BYDAY position %d", wd.N())
		}
		spec.Frequency = Monthly
		spec.Monthly = MonthlyPattern{Week: ord, Day: fromRRuleWeekday(wd)}
	case rrule.YEARLY:
		spec.Frequency = Yearly
	default:
		return Spec{}, fmt.Errorf("unsupported frequency %v", opt.Freq)
	}

	if !opt.Until.IsZero() {
		spec.End = DateOf(opt.Until)
		spec.EndEnabled = true
	}
	return spec, nil
}
