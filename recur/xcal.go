package recur

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

const xcalNamespace = "urn:ietf:params:xml:ns:icalendar-2.0"

// weekdayCodes renders weekdays in the two-letter BYDAY form used by RRULE
// and xCal.
var weekdayCodes = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// ExportXCal renders the spec as an xCal (RFC 6321) document: one vevent
// whose structured recur element mirrors the RRULE mapping.
func ExportXCal(spec Spec) (*etree.Document, error) {
	if spec.Start.IsZero() {
		return nil, fmt.Errorf("xCal export requires a start date")
	}
	if _, ok := ParseFrequency(string(spec.Frequency)); !ok {
		return nil, fmt.Errorf("unknown frequency %q", spec.Frequency)
	}
	interval := spec.Interval
	if interval < 1 {
		interval = 1
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	icalendar := doc.CreateElement("icalendar")
	icalendar.CreateAttr("xmlns", xcalNamespace)
	vcalendar := icalendar.CreateElement("vcalendar")

	props := vcalendar.CreateElement("properties")
	props.CreateElement("prodid").CreateElement("text").SetText(productID)
	props.CreateElement("version").CreateElement("text").SetText("2.0")

	vevent := vcalendar.CreateElement("components").CreateElement("vevent")
	eventProps := vevent.CreateElement("properties")
	eventProps.CreateElement("uid").CreateElement("text").SetText(uuid.NewString())
	eventProps.CreateElement("dtstart").CreateElement("date").SetText(spec.Start.String())

	recurElem := eventProps.CreateElement("rrule").CreateElement("recur")
	recurElem.CreateElement("freq").SetText(strings.ToUpper(string(spec.Frequency)))
	recurElem.CreateElement("interval").SetText(strconv.Itoa(interval))

	switch spec.Frequency {
	case Weekly:
		for _, d := range spec.DaysOfWeek {
			recurElem.CreateElement("byday").SetText(weekdayCodes[d])
		}
	case Monthly:
		pos, ok := ordinalPositions[spec.Monthly.Week]
		if !ok {
			return nil, fmt.Errorf("unknown week ordinal %q", spec.Monthly.Week)
		}
		recurElem.CreateElement("byday").SetText(
			strconv.Itoa(pos) + weekdayCodes[spec.Monthly.Day])
	}
	if spec.EndEnabled && !spec.End.IsZero() {
		recurElem.CreateElement("until").SetText(spec.End.String())
	}

	doc.Indent(2)
	return doc, nil
}
