package recur

import (
	"fmt"
	"time"
)

// dateLayout is the canonical wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a timezone-naive calendar date, backed by a midnight-UTC time.Time
// (the same convention iCalendar date-only values use). Date is a value type:
// every arithmetic operation returns a fresh Date, so a date captured for
// emission can never be corrupted by a later cursor advance. The zero value
// means "no date".
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day. Out-of-range values are
// normalized the way time.Date normalizes them, so January 32 becomes
// February 1.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String returns the canonical YYYY-MM-DD form.
func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns the underlying midnight-UTC time.
func (d Date) Time() time.Time { return d.t }

func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// AddMonths uses native calendar normalization: January 31 plus one month
// rolls over into March.
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// AddYears uses native calendar normalization: February 29 plus one year
// rolls over to March 1 in a non-leap year.
func (d Date) AddYears(n int) Date { return Date{t: d.t.AddDate(n, 0, 0)} }

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
