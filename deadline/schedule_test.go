package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/deadline"
)

func TestGeneratePeriodicSchedule_Shape(t *testing.T) {
	now := deadline.NewTimePoint(2026, time.January, 15)

	entries, err := deadline.GeneratePeriodicSchedule(time.December, deadline.FilerNonAccelerated, 2, now)
	require.NoError(t, err)

	// One 10-K and three 10-Qs per year, for the current year plus two
	require.Len(t, entries, 12)

	var annuals, quarterlies int
	for _, e := range entries {
		switch e.FilingType {
		case deadline.Form10K:
			annuals++
			assert.Equal(t, 0, e.Period.Quarter)
		case deadline.Form10Q:
			quarterlies++
			assert.GreaterOrEqual(t, e.Period.Quarter, 1)
			assert.LessOrEqual(t, e.Period.Quarter, 3, "no 10-Q exists for Q4")
		default:
			t.Fatalf("unexpected filing type %q in schedule", e.FilingType)
		}
		assert.Equal(t, e.Period.End, e.PeriodEnd)
		assert.True(t, deadline.IsBusinessDay(e.Deadline))
	}
	assert.Equal(t, 3, annuals)
	assert.Equal(t, 9, quarterlies)
}

func TestGeneratePeriodicSchedule_SortedByDeadline(t *testing.T) {
	now := deadline.NewTimePoint(2026, time.January, 15)
	entries, err := deadline.GeneratePeriodicSchedule(time.June, deadline.FilerAccelerated, 1, now)
	require.NoError(t, err)

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Deadline.BeforeOrEqual(entries[i].Deadline),
			"entries out of order at %d: %s after %s", i, entries[i-1].Deadline, entries[i].Deadline)
	}
}

func TestGeneratePeriodicSchedule_StatusClassification(t *testing.T) {
	// Mid-August 2026, December fiscal year end, non-accelerated filer.
	now := deadline.NewTimePoint(2026, time.August, 15)
	entries, err := deadline.GeneratePeriodicSchedule(time.December, deadline.FilerNonAccelerated, 0, now)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	byPeriod := map[string]deadline.ScheduleEntry{}
	for _, e := range entries {
		byPeriod[e.Period.String()] = e
	}

	// Q1 ended March 31, 10-Q was due May 15: overdue by August.
	assert.Equal(t, deadline.ScheduleOverdue, byPeriod["FY2026 Q1"].Status)
	// Q2 ended June 30, 45 days later is August 14: just tipped overdue.
	assert.Equal(t, deadline.ScheduleOverdue, byPeriod["FY2026 Q2"].Status)
	// Q3 has not ended yet.
	assert.Equal(t, deadline.ScheduleUpcoming, byPeriod["FY2026 Q3"].Status)
	// The fiscal year has not ended either.
	assert.Equal(t, deadline.ScheduleUpcoming, byPeriod["FY2026"].Status)
}

func TestGeneratePeriodicSchedule_DueWindow(t *testing.T) {
	// Between the Q1 period end (March 31) and its deadline (May 15) the
	// entry reads as due.
	now := deadline.NewTimePoint(2026, time.April, 20)
	entries, err := deadline.GeneratePeriodicSchedule(time.December, deadline.FilerNonAccelerated, 0, now)
	require.NoError(t, err)

	for _, e := range entries {
		if e.Period.String() == "FY2026 Q1" {
			assert.Equal(t, deadline.NewTimePoint(2026, time.May, 15), e.Deadline)
			assert.Equal(t, deadline.ScheduleDue, e.Status)
			return
		}
	}
	t.Fatal("FY2026 Q1 entry not found")
}

func TestGeneratePeriodicSchedule_InvalidInputs(t *testing.T) {
	now := deadline.NewTimePoint(2026, time.January, 15)

	_, err := deadline.GeneratePeriodicSchedule(time.Month(0), deadline.FilerNonAccelerated, 1, now)
	assert.ErrorIs(t, err, deadline.ErrInvalidFiscalMonth)

	_, err = deadline.GeneratePeriodicSchedule(time.December, deadline.FilerNonAccelerated, -1, now)
	assert.ErrorIs(t, err, deadline.ErrNegativeDayCount)

	_, err = deadline.GeneratePeriodicSchedule(time.December, deadline.FilerNonAccelerated, 1, deadline.TimePoint{})
	assert.ErrorIs(t, err, deadline.ErrMissingDate)

	_, err = deadline.GeneratePeriodicSchedule(time.December, deadline.FilerStatus("mega"), 1, now)
	assert.ErrorIs(t, err, deadline.ErrUnknownFilerStatus)
}
