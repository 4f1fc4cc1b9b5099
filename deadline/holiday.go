/*
holiday.go - US federal holiday calendar

PURPOSE:

	Computes the observed federal holidays for any year. EDGAR accepts
	filings only on business days, so every deadline computation ultimately
	consults this calendar.

OBSERVANCE RULE (5 U.S.C. 6103):

	A holiday falling on Saturday is observed the preceding Friday; one
	falling on Sunday is observed the following Monday. This means the
	observed date can cross a year boundary: New Year's Day on a Saturday
	is observed on December 31 of the PRIOR year.

DESIGN:

	Pure recomputation per call, no caching. Callers that care about
	performance can memoize by year; correctness never depends on it.

SEE ALSO:
  - businessday.go: Consumes this calendar for business-day checks
*/
package deadline

import (
	"sort"
	"time"
)

// Holiday is one federal holiday with both its statutory date and the
// weekday on which it is observed.
type Holiday struct {
	Name     string
	Actual   TimePoint
	Observed TimePoint
}

// HolidaysForYear returns the holidays observed within the given calendar
// year, ordered by observed date. Because observance can shift a holiday
// across the year boundary, the set is assembled from the statutory
// holidays of both this year and the next.
func HolidaysForYear(year int) []Holiday {
	var out []Holiday
	for _, h := range append(statutoryHolidays(year), statutoryHolidays(year+1)...) {
		if h.Observed.Year() == year {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Observed.Before(out[j].Observed) })
	return out
}

// statutoryHolidays returns the eleven federal holidays of a year on their
// statutory dates, each paired with its observed date.
func statutoryHolidays(year int) []Holiday {
	fixed := func(name string, month time.Month, day int) Holiday {
		d := NewTimePoint(year, month, day)
		return Holiday{Name: name, Actual: d, Observed: observeOnWeekday(d)}
	}
	floating := func(name string, d TimePoint) Holiday {
		// Nth-weekday holidays always land on a weekday already.
		return Holiday{Name: name, Actual: d, Observed: d}
	}

	return []Holiday{
		fixed("New Year's Day", time.January, 1),
		floating("Birthday of Martin Luther King, Jr.", nthWeekday(year, time.January, time.Monday, 3)),
		floating("Washington's Birthday", nthWeekday(year, time.February, time.Monday, 3)),
		floating("Memorial Day", lastWeekday(year, time.May, time.Monday)),
		fixed("Juneteenth National Independence Day", time.June, 19),
		fixed("Independence Day", time.July, 4),
		floating("Labor Day", nthWeekday(year, time.September, time.Monday, 1)),
		floating("Columbus Day", nthWeekday(year, time.October, time.Monday, 2)),
		fixed("Veterans Day", time.November, 11),
		floating("Thanksgiving Day", nthWeekday(year, time.November, time.Thursday, 4)),
		fixed("Christmas Day", time.December, 25),
	}
}

// nthWeekday returns the nth occurrence of a weekday in a month (n = 1 for first).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) TimePoint {
	first := NewTimePoint(year, month, 1)
	offset := int(weekday - first.Weekday())
	if offset < 0 {
		offset += 7
	}
	return first.AddDays(offset + (n-1)*7)
}

// lastWeekday returns the last occurrence of a weekday in a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) TimePoint {
	last := EndOfMonth(year, month)
	offset := int(last.Weekday() - weekday)
	if offset < 0 {
		offset += 7
	}
	return last.AddDays(-offset)
}

// observeOnWeekday applies the federal observance adjustment.
func observeOnWeekday(d TimePoint) TimePoint {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}
