package recur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_MissingStartIsEmpty(t *testing.T) {
	_, ok := normalize(Spec{Frequency: Daily, Interval: 1}).Get()
	assert.False(t, ok)
}

func TestNormalize_ClampsInterval(t *testing.T) {
	for _, interval := range []int{-5, 0, 1} {
		ns, ok := normalize(Spec{
			Frequency: Daily,
			Interval:  interval,
			Start:     day("2024-01-01"),
		}).Get()
		require.True(t, ok)
		assert.GreaterOrEqual(t, ns.Interval, 1)
	}

	ns, ok := normalize(Spec{Frequency: Daily, Interval: 7, Start: day("2024-01-01")}).Get()
	require.True(t, ok)
	assert.Equal(t, 7, ns.Interval)
}

func TestNormalize_EffectiveEnd(t *testing.T) {
	base := Spec{Frequency: Daily, Interval: 1, Start: day("2024-01-01")}

	ns, ok := normalize(base).Get()
	require.True(t, ok)
	assert.True(t, ns.end.IsAbsent())

	withEndDisabled := base
	withEndDisabled.End = day("2024-02-01")
	ns, ok = normalize(withEndDisabled).Get()
	require.True(t, ok)
	assert.True(t, ns.end.IsAbsent(), "end date without the enable flag is ignored")

	withEnd := withEndDisabled
	withEnd.EndEnabled = true
	ns, ok = normalize(withEnd).Get()
	require.True(t, ok)
	end, present := ns.end.Get()
	require.True(t, present)
	assert.Equal(t, "2024-02-01", end.String())
}

func TestNormalize_DoesNotMutateWeeklyFilter(t *testing.T) {
	// An empty weekday set stays empty; the fallback is a strategy concern.
	ns, ok := normalize(Spec{
		Frequency: Weekly,
		Interval:  1,
		Start:     day("2024-01-01"),
	}).Get()
	require.True(t, ok)
	assert.Empty(t, ns.DaysOfWeek)
}
