package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/deadline"
)

func TestIsBusinessDay(t *testing.T) {
	// Ordinary weekday
	assert.True(t, deadline.IsBusinessDay(deadline.NewTimePoint(2026, time.March, 11)))
	// Weekend
	assert.False(t, deadline.IsBusinessDay(deadline.NewTimePoint(2026, time.March, 14)))
	assert.False(t, deadline.IsBusinessDay(deadline.NewTimePoint(2026, time.March, 15)))
	// Observed holiday: July 4, 2026 is a Saturday, observed Friday July 3
	assert.False(t, deadline.IsBusinessDay(deadline.NewTimePoint(2026, time.July, 3)))
	// Holiday observed across a year boundary: Jan 1, 2022 -> Fri Dec 31, 2021
	assert.False(t, deadline.IsBusinessDay(deadline.NewTimePoint(2021, time.December, 31)))
}

func TestAddBusinessDays_SkipsWeekendsAndHolidays(t *testing.T) {
	// Thursday July 2, 2026 + 1 business day: Friday July 3 is the observed
	// Independence Day, so the next business day is Monday July 6.
	start := deadline.NewTimePoint(2026, time.July, 2)
	assert.Equal(t, deadline.NewTimePoint(2026, time.July, 6), deadline.AddBusinessDays(start, 1))

	// Zero steps is a no-op
	assert.Equal(t, start, deadline.AddBusinessDays(start, 0))

	// Negative n counts in the other direction
	assert.Equal(t, deadline.SubtractBusinessDays(start, 3), deadline.AddBusinessDays(start, -3))
}

func TestCountBusinessDays_Convention(t *testing.T) {
	// The convention under test: CountBusinessDays(start, end) counts the
	// half-open interval (start, end], negated when start > end.
	mon := deadline.NewTimePoint(2026, time.March, 9)
	fri := deadline.NewTimePoint(2026, time.March, 13)

	assert.Equal(t, 4, deadline.CountBusinessDays(mon, fri), "start excluded, end included")
	assert.Equal(t, -4, deadline.CountBusinessDays(fri, mon), "reversed interval is negated")
	assert.Equal(t, 0, deadline.CountBusinessDays(mon, mon))

	// Weekend endpoints contribute nothing
	sun := deadline.NewTimePoint(2026, time.March, 8)
	assert.Equal(t, 5, deadline.CountBusinessDays(sun, fri))
}

func TestCountBusinessDays_RoundTripWithAdd(t *testing.T) {
	// For all D and positive n: CountBusinessDays(D, AddBusinessDays(D, n)) == n
	starts := []deadline.TimePoint{
		deadline.NewTimePoint(2026, time.January, 2),
		deadline.NewTimePoint(2026, time.June, 30),     // spans July 3 holiday
		deadline.NewTimePoint(2026, time.November, 20), // spans Thanksgiving
		deadline.NewTimePoint(2026, time.December, 31), // spans year boundary
	}
	for _, d := range starts {
		for _, n := range []int{1, 2, 5, 10, 22} {
			landed := deadline.AddBusinessDays(d, n)
			assert.Equal(t, n, deadline.CountBusinessDays(d, landed), "from %s, n=%d", d, n)
		}
	}
}

func TestAddSubtract_RoundTrip(t *testing.T) {
	// AddBusinessDays(SubtractBusinessDays(D, n), n) == D when D is a business day
	d := deadline.NewTimePoint(2026, time.March, 11) // Wednesday
	require.True(t, deadline.IsBusinessDay(d))
	for _, n := range []int{1, 3, 7, 20} {
		assert.Equal(t, d, deadline.AddBusinessDays(deadline.SubtractBusinessDays(d, n), n))
	}
}

func TestPreviousNextBusinessDay(t *testing.T) {
	// For any date D: previous is a business day strictly before D,
	// next is a business day strictly after.
	dates := []deadline.TimePoint{
		deadline.NewTimePoint(2026, time.March, 14), // Saturday
		deadline.NewTimePoint(2026, time.July, 3),   // observed holiday
		deadline.NewTimePoint(2026, time.March, 11), // plain Wednesday
	}
	for _, d := range dates {
		prev := deadline.PreviousBusinessDay(d)
		next := deadline.NextBusinessDay(d)
		assert.True(t, deadline.IsBusinessDay(prev))
		assert.True(t, prev.Before(d))
		assert.True(t, deadline.IsBusinessDay(next))
		assert.True(t, next.After(d))
	}
}
