/*
fiscal.go - Fiscal year and quarter resolution

PURPOSE:

	Maps an organization-specific fiscal-year-end month onto concrete
	calendar dates: when a fiscal year ends, when each fiscal quarter ends,
	and which fiscal quarter an arbitrary date falls in.

CONVENTION:

	A fiscal year is labeled by the calendar year in which it ENDS. Fiscal
	year Y runs from the day after FiscalYearEnd(Y-1) through
	FiscalYearEnd(Y). Quarter k of fiscal year Y ends 3*k months after
	FiscalYearEnd(Y-1), so quarter 4 always coincides with the fiscal year
	end. For non-December fiscal year ends the quarter ends wrap across
	calendar-year boundaries; the wraparound is resolved explicitly below.
*/
package deadline

import (
	"fmt"
	"time"
)

// FiscalPeriod describes one fiscal year or fiscal quarter.
// Quarter is 1-4, or 0 when the period is the full fiscal year.
type FiscalPeriod struct {
	FiscalYear int
	Quarter    int
	Start      TimePoint
	End        TimePoint
}

func (fp FiscalPeriod) String() string {
	if fp.Quarter == 0 {
		return fmt.Sprintf("FY%d", fp.FiscalYear)
	}
	return fmt.Sprintf("FY%d Q%d", fp.FiscalYear, fp.Quarter)
}

// validFiscalMonth rejects months outside January-December.
func validFiscalMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return &InvalidInputError{Field: "fiscal year end month", Value: fmt.Sprint(int(m)), Err: ErrInvalidFiscalMonth}
	}
	return nil
}

// FiscalYearEnd returns the last calendar day of the fiscal-year-end month
// in the given calendar year.
func FiscalYearEnd(year int, fyEndMonth time.Month) (TimePoint, error) {
	if err := validFiscalMonth(fyEndMonth); err != nil {
		return TimePoint{}, err
	}
	return EndOfMonth(year, fyEndMonth), nil
}

// FiscalQuarterEnd returns the last day of fiscal quarter 1-4 of the fiscal
// year ending in the given calendar year. The quarter end month is offset
// 3/6/9/12 months from the PRIOR fiscal year end, carrying into the next
// calendar year where the offset crosses December.
func FiscalQuarterEnd(year, quarter int, fyEndMonth time.Month) (TimePoint, error) {
	if err := validFiscalMonth(fyEndMonth); err != nil {
		return TimePoint{}, err
	}
	if quarter < 1 || quarter > 4 {
		return TimePoint{}, &InvalidInputError{Field: "fiscal quarter", Value: fmt.Sprint(quarter), Err: ErrInvalidQuarter}
	}

	m := int(fyEndMonth) + 3*quarter
	y := year - 1
	for m > 12 {
		m -= 12
		y++
	}
	return EndOfMonth(y, time.Month(m)), nil
}

// FiscalYearPeriod returns the full fiscal year ending in the given
// calendar year.
func FiscalYearPeriod(year int, fyEndMonth time.Month) (FiscalPeriod, error) {
	end, err := FiscalYearEnd(year, fyEndMonth)
	if err != nil {
		return FiscalPeriod{}, err
	}
	prevEnd := EndOfMonth(year-1, fyEndMonth)
	return FiscalPeriod{FiscalYear: year, Start: prevEnd.AddDays(1), End: end}, nil
}

// FiscalQuarterPeriod returns fiscal quarter 1-4 of the fiscal year ending
// in the given calendar year.
func FiscalQuarterPeriod(year, quarter int, fyEndMonth time.Month) (FiscalPeriod, error) {
	end, err := FiscalQuarterEnd(year, quarter, fyEndMonth)
	if err != nil {
		return FiscalPeriod{}, err
	}
	// A quarter spans three whole months ending in the quarter-end month.
	m := int(end.Month()) - 2
	y := end.Year()
	if m <= 0 {
		m += 12
		y--
	}
	start := NewTimePoint(y, time.Month(m), 1)
	return FiscalPeriod{FiscalYear: year, Quarter: quarter, Start: start, End: end}, nil
}

// CurrentFiscalQuarter returns the fiscal quarter and fiscal year containing
// the given date, by bucketing the month offset from the fiscal year end.
func CurrentFiscalQuarter(date TimePoint, fyEndMonth time.Month) (quarter, fiscalYear int, err error) {
	if err := validFiscalMonth(fyEndMonth); err != nil {
		return 0, 0, err
	}
	if date.IsZero() {
		return 0, 0, &InvalidInputError{Field: "date", Err: ErrMissingDate}
	}

	// Months since the fiscal year started: 0 for the first month of Q1,
	// 11 for the fiscal-year-end month.
	offset := (int(date.Month()) - int(fyEndMonth) - 1 + 24) % 12
	quarter = offset/3 + 1

	fiscalYear = date.Year()
	if date.Month() > fyEndMonth {
		fiscalYear++
	}
	return quarter, fiscalYear, nil
}
