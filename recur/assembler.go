package recur

import (
	"sort"

	"github.com/samber/mo"
)

// assembler accumulates candidate dates for one expansion run. It owns
// deduplication, the end-boundary check and the safety cap.
type assembler struct {
	end   mo.Option[Date]
	limit int
	seen  map[string]struct{}
	dates []Date
}

func newAssembler(end mo.Option[Date], limit int) *assembler {
	return &assembler{
		end:   end,
		limit: limit,
		seen:  make(map[string]struct{}),
	}
}

// add inserts a candidate date. Candidates past the end boundary, duplicate
// dates and anything beyond the cap are silently absorbed.
func (a *assembler) add(d Date) {
	if a.full() {
		return
	}
	if end, bounded := a.end.Get(); bounded && d.After(end) {
		return
	}
	key := d.String()
	if _, dup := a.seen[key]; dup {
		return
	}
	a.seen[key] = struct{}{}
	a.dates = append(a.dates, d)
}

func (a *assembler) full() bool { return len(a.dates) >= a.limit }

// result returns the accumulated dates sorted ascending. Keys are unique, so
// ties are impossible.
func (a *assembler) result() []Date {
	sort.Slice(a.dates, func(i, j int) bool { return a.dates[i].Before(a.dates[j]) })
	return a.dates
}
