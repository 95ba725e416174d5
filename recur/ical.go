package recur

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

const productID = "-//dategrid//librecur//EN"

// ExportICal renders the spec as a VCALENDAR holding a single all-day VEVENT
// with the equivalent RRULE attached. The event gets a fresh UID on every
// call.
func ExportICal(spec Spec, summary string) (*ical.Calendar, error) {
	rule, err := spec.RRuleString()
	if err != nil {
		return nil, err
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.NewString())
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	setDateProp(event.Props, ical.PropDateTimeStart, spec.Start)
	// RRULE is RECUR-valued; SetText would escape the ; and , separators.
	rruleProp := ical.NewProp(ical.PropRecurrenceRule)
	rruleProp.Value = rule
	event.Props.Set(rruleProp)

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Children = append(cal.Children, event.Component)
	return cal, nil
}

// SpecFromEvent reconstructs a spec from a VEVENT carrying one of the four
// supported rule shapes. Rules outside that subset return an error.
func SpecFromEvent(event *ical.Event) (Spec, error) {
	dtstart := event.Props.Get(ical.PropDateTimeStart)
	if dtstart == nil {
		return Spec{}, fmt.Errorf("event has no DTSTART")
	}
	start, err := parseICalDate(dtstart.Value)
	if err != nil {
		return Spec{}, err
	}

	rruleProp := event.Props.Get(ical.PropRecurrenceRule)
	if rruleProp == nil {
		return Spec{}, fmt.Errorf("event has no RRULE")
	}
	rule, err := rrule.StrToRRule(rruleProp.Value)
	if err != nil {
		return Spec{}, fmt.Errorf("parsing RRULE %q: %w", rruleProp.Value, err)
	}

	return specFromROption(rule.OrigOptions, start)
}

// setDateProp stores a date-only property value (VALUE=DATE, no time part).
func setDateProp(props ical.Props, name string, d Date) {
	prop := ical.NewProp(name)
	prop.SetValueType(ical.ValueDate)
	prop.Value = d.Time().Format("20060102")
	props.Set(prop)
}

// parseICalDate handles both date-only and date-time iCalendar values,
// truncating the latter to its calendar date.
func parseICalDate(value string) (Date, error) {
	if t, err := time.Parse("20060102", value); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse("20060102T150405Z", value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date value %q: %w", value, err)
	}
	return DateOf(t), nil
}
