package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/deadline"
)

func TestCalculate8KDeadline(t *testing.T) {
	// Material event on Friday March 6, 2026: 4 business days later is
	// Thursday March 12.
	result, err := deadline.Calculate8KDeadline(deadline.NewTimePoint(2026, time.March, 6))
	require.NoError(t, err)

	assert.Equal(t, deadline.Form8K, result.FilingType)
	assert.Equal(t, "material_event", result.EventType)
	assert.Equal(t, deadline.NewTimePoint(2026, time.March, 12), result.Deadline)
	assert.Equal(t, 4, result.DayCount)
	assert.Equal(t, deadline.UnitBusinessDays, result.Unit)
}

func TestCalculateSuper8KDeadline(t *testing.T) {
	// De-SPAC closing Wednesday July 1, 2026: the walk skips the observed
	// July 3 holiday and the weekend, landing Wednesday July 8.
	result, err := deadline.CalculateSuper8KDeadline(deadline.NewTimePoint(2026, time.July, 1))
	require.NoError(t, err)

	assert.Equal(t, deadline.FormSuper8K, result.FilingType)
	assert.Equal(t, "despac_closing", result.EventType)
	assert.Equal(t, deadline.NewTimePoint(2026, time.July, 8), result.Deadline)
}

func TestCalculateForm4Deadline(t *testing.T) {
	// Insider trade on Thursday March 12: 2 business days later is Monday
	// March 16.
	result, err := deadline.CalculateForm4Deadline(deadline.NewTimePoint(2026, time.March, 12))
	require.NoError(t, err)

	assert.Equal(t, deadline.Form4, result.FilingType)
	assert.Equal(t, "insider_transaction", result.EventType)
	assert.Equal(t, deadline.NewTimePoint(2026, time.March, 16), result.Deadline)
	assert.Equal(t, 2, result.DayCount)
}

func TestCalculateSchedule13DDeadline_SnapsWeekend(t *testing.T) {
	// Threshold crossed Wednesday February 4: 10 calendar days is Saturday
	// February 14, snapped back to Friday February 13.
	result, err := deadline.CalculateSchedule13DDeadline(deadline.NewTimePoint(2026, time.February, 4))
	require.NoError(t, err)

	assert.Equal(t, deadline.Schedule13D, result.FilingType)
	assert.Equal(t, "ownership_threshold", result.EventType)
	assert.Equal(t, deadline.NewTimePoint(2026, time.February, 13), result.Deadline)
	assert.Equal(t, deadline.UnitCalendarDays, result.Unit)
}

func TestEventDeadlines_RejectZeroDate(t *testing.T) {
	_, err := deadline.Calculate8KDeadline(deadline.TimePoint{})
	assert.ErrorIs(t, err, deadline.ErrMissingDate)
	_, err = deadline.CalculateSuper8KDeadline(deadline.TimePoint{})
	assert.ErrorIs(t, err, deadline.ErrMissingDate)
	_, err = deadline.CalculateForm4Deadline(deadline.TimePoint{})
	assert.ErrorIs(t, err, deadline.ErrMissingDate)
	_, err = deadline.CalculateSchedule13DDeadline(deadline.TimePoint{})
	assert.ErrorIs(t, err, deadline.ErrMissingDate)
}
