package recur

import (
	"log/slog"
)

// Engine expands recurrence specs into concrete date sequences.
type Engine struct {
	config EngineConfig
	cache  *ExpansionCache
	logger *slog.Logger
}

// NewEngine creates an engine with DefaultEngineConfig.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig)
}

// NewEngineWithConfig creates an engine with custom configuration.
func NewEngineWithConfig(config EngineConfig) *Engine {
	if config.MaxDates <= 0 {
		config.MaxDates = DefaultMaxDates
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var cache *ExpansionCache
	if config.CacheEnabled {
		cache = NewExpansionCache(config.CacheConfig)
	}
	return &Engine{config: config, cache: cache, logger: logger}
}

// Close releases the engine's cache resources. It is a no-op when caching is
// disabled.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// Expand computes the full date sequence for the given spec: ascending,
// duplicate-free, each date no later than the end boundary when one is
// enabled. Expansion never fails; malformed specs degrade to an empty
// sequence. Open-ended specs are truncated at the configured cap, with a
// single warning logged per computation.
func (e *Engine) Expand(spec Spec) []Date {
	if e.cache != nil {
		if dates, ok := e.cache.Get(spec); ok {
			return dates
		}
	}
	dates, truncated := expand(spec, e.config.MaxDates)
	if truncated {
		e.logger.Warn("recurrence truncated",
			"frequency", string(spec.Frequency),
			"start", spec.Start.String(),
			"cap", e.config.MaxDates)
	}
	if e.cache != nil {
		e.cache.Set(spec, dates)
	}
	return dates
}

// ExpandStrings is Expand with the output rendered in YYYY-MM-DD wire form.
func (e *Engine) ExpandStrings(spec Spec) []string {
	dates := e.Expand(spec)
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

// step advances one strategy iteration: it emits zero or more candidates for
// the current cursor and returns the next cursor. The frequency is fixed for
// the whole run, so exactly one step function drives each expansion.
type step func(cursor Date, spec normalSpec, acc *assembler) Date

// stepFor selects the per-frequency strategy.
func stepFor(f Frequency) step {
	switch f {
	case Daily:
		return dailyStep
	case Weekly:
		return weeklyStep
	case Monthly:
		return monthlyStep
	case Yearly:
		return yearlyStep
	default:
		return nil
	}
}

func expand(spec Spec, limit int) (dates []Date, truncated bool) {
	ns, ok := normalize(spec).Get()
	if !ok {
		return nil, false
	}
	advance := stepFor(ns.Frequency)
	if advance == nil {
		return nil, false
	}

	acc := newAssembler(ns.end, limit)
	cursor := ns.Start
	for iterations := 0; ; iterations++ {
		if end, bounded := ns.end.Get(); bounded && cursor.After(end) {
			break
		}
		if acc.full() {
			truncated = true
			break
		}
		// Every well-formed pattern emits at least one date per
		// iteration, so the cap above is normally what stops an
		// open-ended run. A monthly pattern whose ordinal never
		// resolves emits nothing; bail out so it cannot spin forever.
		if iterations >= limit {
			break
		}
		cursor = advance(cursor, ns, acc)
	}
	return acc.result(), truncated
}

// dailyStep emits the cursor and moves it interval days forward.
func dailyStep(cursor Date, spec normalSpec, acc *assembler) Date {
	acc.add(cursor)
	return cursor.AddDays(spec.Interval)
}

// yearlyStep emits the cursor and moves it interval years forward. A Feb 29
// anchor rolls over to Mar 1 in non-leap years and the shifted date becomes
// the anchor for all later years. That is plain calendar arithmetic, kept as
// the documented policy rather than clamping to Feb 28 or skipping the year.
func yearlyStep(cursor Date, spec normalSpec, acc *assembler) Date {
	acc.add(cursor)
	return cursor.AddYears(spec.Interval)
}

// weeklyStep scans the 7-day window starting at the cursor, emits every day
// whose weekday is in the filter, then jumps interval weeks ahead. With an
// empty filter the cursor itself is the single occurrence per period. The
// scan always covers offsets 0..6 even when interval > 1; the assembler's
// dedup absorbs any overlap between windows.
func weeklyStep(cursor Date, spec normalSpec, acc *assembler) Date {
	if len(spec.DaysOfWeek) == 0 {
		acc.add(cursor)
		return cursor.AddDays(7 * spec.Interval)
	}
	for offset := 0; offset < 7; offset++ {
		candidate := cursor.AddDays(offset)
		if spec.matchesWeekday(candidate.Weekday()) {
			acc.add(candidate)
		}
	}
	return cursor.AddDays(7 * spec.Interval)
}

// monthlyStep resolves the ordinal pattern within the cursor's month and
// emits the match, if any. The cursor then moves to the first day of the
// month interval months ahead; resetting to day 1 keeps month-length
// rollover out of the cursor (Jan 31 plus one month must not land in March).
func monthlyStep(cursor Date, spec normalSpec, acc *assembler) Date {
	if d, ok := ResolveOrdinal(cursor.Year(), cursor.Month(), spec.Monthly.Day, spec.Monthly.Week).Get(); ok {
		acc.add(d)
	}
	return NewDate(cursor.Year(), cursor.Month(), 1).AddMonths(spec.Interval)
}
