package recur

import (
	"time"

	"github.com/samber/mo"
)

// ResolveOrdinal scans a month for the date matching "the <ordinal>
// <weekday>", e.g. the second Tuesday of January 2024. It returns None when
// the month has no such occurrence; for first through fourth that can only
// happen with a malformed ordinal, since every weekday occurs at least four
// times per month.
func ResolveOrdinal(year int, month time.Month, weekday time.Weekday, ordinal WeekOrdinal) mo.Option[Date] {
	last := daysInMonth(year, month)
	occurrence := 0
	for day := 1; day <= last; day++ {
		d := NewDate(year, month, day)
		if d.Weekday() != weekday {
			continue
		}
		occurrence++
		switch {
		case ordinal == Last:
			// The same weekday repeats every 7 days, so this is the
			// final occurrence exactly when day+7 leaves the month.
			if day+7 > last {
				return mo.Some(d)
			}
		case occurrence == ordinal.nth():
			return mo.Some(d)
		}
	}
	return mo.None[Date]()
}
