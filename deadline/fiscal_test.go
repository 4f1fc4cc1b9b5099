package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/deadline"
)

func TestFiscalYearEnd(t *testing.T) {
	end, err := deadline.FiscalYearEnd(2025, time.December)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2025, time.December, 31), end)

	end, err = deadline.FiscalYearEnd(2026, time.June)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2026, time.June, 30), end)

	// February respects leap years
	end, err = deadline.FiscalYearEnd(2028, time.February)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2028, time.February, 29), end)

	_, err = deadline.FiscalYearEnd(2026, time.Month(0))
	assert.ErrorIs(t, err, deadline.ErrInvalidFiscalMonth)
}

func TestFiscalQuarterEnd_December(t *testing.T) {
	cases := []struct {
		quarter int
		want    deadline.TimePoint
	}{
		{1, deadline.NewTimePoint(2025, time.March, 31)},
		{2, deadline.NewTimePoint(2025, time.June, 30)},
		{3, deadline.NewTimePoint(2025, time.September, 30)},
		{4, deadline.NewTimePoint(2025, time.December, 31)},
	}
	for _, c := range cases {
		got, err := deadline.FiscalQuarterEnd(2025, c.quarter, time.December)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "Q%d", c.quarter)
	}
}

func TestFiscalQuarterEnd_JuneWrapsCalendarYear(t *testing.T) {
	// FY2026 ending June 30, 2026: quarters end Sep/Dec 2025, Mar/Jun 2026.
	cases := []struct {
		quarter int
		want    deadline.TimePoint
	}{
		{1, deadline.NewTimePoint(2025, time.September, 30)},
		{2, deadline.NewTimePoint(2025, time.December, 31)},
		{3, deadline.NewTimePoint(2026, time.March, 31)},
		{4, deadline.NewTimePoint(2026, time.June, 30)},
	}
	for _, c := range cases {
		got, err := deadline.FiscalQuarterEnd(2026, c.quarter, time.June)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "Q%d", c.quarter)
	}
}

func TestFiscalQuarterEnd_Q4MatchesFiscalYearEnd(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		q4, err := deadline.FiscalQuarterEnd(2026, 4, m)
		require.NoError(t, err)
		fye, err := deadline.FiscalYearEnd(2026, m)
		require.NoError(t, err)
		assert.Equal(t, fye, q4, "month %s", m)
	}
}

func TestFiscalQuarterEnd_InvalidInputs(t *testing.T) {
	_, err := deadline.FiscalQuarterEnd(2026, 0, time.December)
	assert.ErrorIs(t, err, deadline.ErrInvalidQuarter)
	_, err = deadline.FiscalQuarterEnd(2026, 5, time.December)
	assert.ErrorIs(t, err, deadline.ErrInvalidQuarter)
	_, err = deadline.FiscalQuarterEnd(2026, 1, time.Month(13))
	assert.ErrorIs(t, err, deadline.ErrInvalidFiscalMonth)
}

func TestFiscalQuarterPeriod_StartIsFirstDayOfQuarter(t *testing.T) {
	// December FYE, Q2 runs April through June
	period, err := deadline.FiscalQuarterPeriod(2025, 2, time.December)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2025, time.April, 1), period.Start)
	assert.Equal(t, deadline.NewTimePoint(2025, time.June, 30), period.End)
	assert.Equal(t, "FY2025 Q2", period.String())

	// June FYE, Q2 runs October through December of the prior calendar year
	period, err = deadline.FiscalQuarterPeriod(2026, 2, time.June)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2025, time.October, 1), period.Start)
	assert.Equal(t, deadline.NewTimePoint(2025, time.December, 31), period.End)
}

func TestFiscalYearPeriod(t *testing.T) {
	period, err := deadline.FiscalYearPeriod(2025, time.December)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2025, time.January, 1), period.Start)
	assert.Equal(t, deadline.NewTimePoint(2025, time.December, 31), period.End)
	assert.Equal(t, 0, period.Quarter)
	assert.Equal(t, "FY2025", period.String())

	// June FYE spans two calendar years
	period, err = deadline.FiscalYearPeriod(2026, time.June)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2025, time.July, 1), period.Start)
	assert.Equal(t, deadline.NewTimePoint(2026, time.June, 30), period.End)
}

func TestCurrentFiscalQuarter(t *testing.T) {
	cases := []struct {
		name    string
		date    deadline.TimePoint
		fyEnd   time.Month
		quarter int
		year    int
	}{
		{"mid Q1 of calendar fiscal year", deadline.NewTimePoint(2026, time.February, 15), time.December, 1, 2026},
		{"last day of Q4", deadline.NewTimePoint(2026, time.December, 31), time.December, 4, 2026},
		{"first day of Q1", deadline.NewTimePoint(2026, time.January, 1), time.December, 1, 2026},
		{"June FYE, July is Q1 of next fiscal year", deadline.NewTimePoint(2026, time.July, 10), time.June, 1, 2027},
		{"June FYE, May is Q4", deadline.NewTimePoint(2026, time.May, 1), time.June, 4, 2026},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			quarter, year, err := deadline.CurrentFiscalQuarter(c.date, c.fyEnd)
			require.NoError(t, err)
			assert.Equal(t, c.quarter, quarter)
			assert.Equal(t, c.year, year)
		})
	}

	_, _, err := deadline.CurrentFiscalQuarter(deadline.TimePoint{}, time.December)
	assert.ErrorIs(t, err, deadline.ErrMissingDate)
}
