package spac_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/spac"
)

func TestCalculateSPACDeadlines_CharterMilestones(t *testing.T) {
	// GIVEN a SPAC that priced its IPO June 15, 2024 with a 24-month term
	ipo := deadline.NewTimePoint(2024, time.June, 15)
	now := deadline.NewTimePoint(2026, time.January, 10)

	// WHEN lifecycle deadlines are derived
	dl, err := spac.CalculateSPACDeadlines(ipo, 24, 0, nil, now)
	require.NoError(t, err)

	// THEN the trust liquidates June 15, 2026, and the extension cutoff is
	// 30 days earlier. May 16, 2026 is a Saturday and stays a Saturday:
	// charter milestones are raw calendar dates, not filings.
	assert.Equal(t, deadline.NewTimePoint(2026, time.June, 15), dl.Liquidation)
	assert.Equal(t, deadline.NewTimePoint(2026, time.May, 16), dl.Extension)
	assert.Equal(t, time.Saturday, dl.Extension.Weekday())

	assert.Nil(t, dl.ProxyFiling)
	assert.Nil(t, dl.Vote)
	assert.Nil(t, dl.Redemption)
	assert.Equal(t, 156, dl.DaysToLiquidation)
	assert.Equal(t, deadline.UrgencyMedium, dl.Urgency)
}

func TestCalculateSPACDeadlines_ExtensionMonthsPushLiquidation(t *testing.T) {
	ipo := deadline.NewTimePoint(2024, time.June, 15)
	now := deadline.NewTimePoint(2026, time.January, 10)

	dl, err := spac.CalculateSPACDeadlines(ipo, 24, 6, nil, now)
	require.NoError(t, err)
	assert.Equal(t, deadline.NewTimePoint(2026, time.December, 15), dl.Liquidation)
	assert.Equal(t, deadline.NewTimePoint(2026, time.November, 15), dl.Extension)
}

func TestCalculateSPACDeadlines_VoteDrivenDeadlines(t *testing.T) {
	ipo := deadline.NewTimePoint(2024, time.June, 15)
	now := deadline.NewTimePoint(2026, time.January, 10)

	// Vote scheduled Friday March 20, 2026. Twenty business days earlier is
	// Friday February 20, and the redemption cutoff is Wednesday March 18.
	vote := deadline.NewTimePoint(2026, time.March, 20)
	dl, err := spac.CalculateSPACDeadlines(ipo, 24, 0, &vote, now)
	require.NoError(t, err)

	require.NotNil(t, dl.ProxyFiling)
	require.NotNil(t, dl.Vote)
	require.NotNil(t, dl.Redemption)
	assert.Equal(t, deadline.NewTimePoint(2026, time.February, 20), *dl.ProxyFiling)
	assert.Equal(t, vote, *dl.Vote)
	assert.Equal(t, deadline.NewTimePoint(2026, time.March, 18), *dl.Redemption)
}

func TestCalculateSPACDeadlines_LiquidationUrgency(t *testing.T) {
	ipo := deadline.NewTimePoint(2024, time.June, 15)
	liquidation := deadline.NewTimePoint(2026, time.June, 15)

	cases := []struct {
		name string
		now  deadline.TimePoint
		want deadline.Urgency
	}{
		{"over six months out", liquidation.AddDays(-200), deadline.UrgencyLow},
		{"inside six months", liquidation.AddDays(-180), deadline.UrgencyMedium},
		{"inside three months", liquidation.AddDays(-90), deadline.UrgencyHigh},
		{"inside one month", liquidation.AddDays(-30), deadline.UrgencyCritical},
		{"past liquidation", liquidation.AddDays(10), deadline.UrgencyCritical},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dl, err := spac.CalculateSPACDeadlines(ipo, 24, 0, nil, c.now)
			require.NoError(t, err)
			assert.Equal(t, c.want, dl.Urgency)
		})
	}
}

func TestCalculateSPACDeadlines_InputValidation(t *testing.T) {
	ipo := deadline.NewTimePoint(2024, time.June, 15)
	now := deadline.NewTimePoint(2026, time.January, 10)

	_, err := spac.CalculateSPACDeadlines(deadline.TimePoint{}, 24, 0, nil, now)
	assert.ErrorIs(t, err, deadline.ErrMissingDate)

	_, err = spac.CalculateSPACDeadlines(ipo, 24, 0, nil, deadline.TimePoint{})
	assert.ErrorIs(t, err, deadline.ErrMissingDate)

	_, err = spac.CalculateSPACDeadlines(ipo, 0, 0, nil, now)
	assert.ErrorIs(t, err, spac.ErrInvalidTerm)

	_, err = spac.CalculateSPACDeadlines(ipo, 24, -1, nil, now)
	assert.ErrorIs(t, err, spac.ErrInvalidTerm)
}
