package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/deadline"
)

func TestParseDate(t *testing.T) {
	tp, err := deadline.ParseDate("2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2026, time.March, 31), tp)
	assert.Equal(t, "2026-03-31", tp.String())

	_, err = deadline.ParseDate("03/31/2026")
	assert.Error(t, err)
	_, err = deadline.ParseDate("")
	assert.Error(t, err)
}

func TestTimePoint_Comparison(t *testing.T) {
	a := deadline.NewTimePoint(2026, time.March, 30)
	b := deadline.NewTimePoint(2026, time.March, 31)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.True(t, a.AfterOrEqual(a))
	assert.False(t, a.Equal(b))

	// Clock and zone are irrelevant: only the calendar date matters.
	est := time.FixedZone("EST", -5*3600)
	c := deadline.FromTime(time.Date(2026, time.March, 31, 23, 59, 0, 0, est))
	assert.True(t, b.Equal(c))
}

func TestDaysBetween(t *testing.T) {
	from := deadline.NewTimePoint(2026, time.January, 15)
	to := deadline.NewTimePoint(2026, time.March, 31)

	assert.Equal(t, 75, deadline.DaysBetween(from, to))
	assert.Equal(t, -75, deadline.DaysBetween(to, from))
	assert.Equal(t, 0, deadline.DaysBetween(from, from))
}

func TestAddMonths(t *testing.T) {
	ipo := deadline.NewTimePoint(2024, time.June, 15)
	assert.Equal(t, deadline.NewTimePoint(2026, time.June, 15), ipo.AddMonths(24))
	assert.Equal(t, deadline.NewTimePoint(2026, time.December, 15), ipo.AddMonths(30))
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, deadline.NewTimePoint(2026, time.February, 28), deadline.EndOfMonth(2026, time.February))
	assert.Equal(t, deadline.NewTimePoint(2028, time.February, 29), deadline.EndOfMonth(2028, time.February))
	assert.Equal(t, deadline.NewTimePoint(2026, time.December, 31), deadline.EndOfMonth(2026, time.December))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, deadline.NewTimePoint(2026, time.March, 14).IsWeekend())
	assert.True(t, deadline.NewTimePoint(2026, time.March, 15).IsWeekend())
	assert.False(t, deadline.NewTimePoint(2026, time.March, 16).IsWeekend())
}
