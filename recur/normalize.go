package recur

import (
	"github.com/samber/mo"
)

// normalSpec is a Spec with its interval clamped and its effective end
// boundary resolved.
type normalSpec struct {
	Spec
	end mo.Option[Date]
}

// normalize validates a Spec for expansion. It returns None only when the
// spec has no start date; every other input is coerced rather than rejected,
// so expansion itself never fails.
func normalize(s Spec) mo.Option[normalSpec] {
	if s.Start.IsZero() {
		return mo.None[normalSpec]()
	}
	if s.Interval < 1 {
		s.Interval = 1
	}
	end := mo.None[Date]()
	if s.EndEnabled && !s.End.IsZero() {
		end = mo.Some(s.End)
	}
	return mo.Some(normalSpec{Spec: s, end: end})
}
