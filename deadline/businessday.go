/*
businessday.go - Business-day arithmetic

PURPOSE:

	Classifies dates as business days and performs add / subtract / count
	operations in business-day units. A business day is any weekday that is
	not an observed federal holiday.

COUNTING CONVENTION:

	CountBusinessDays(start, end) counts business days in the half-open
	interval (start, end]: the start date is excluded, the end date is
	included. When start is after end the forward count is negated, so the
	result is a signed "business days remaining" value. Under this
	convention CountBusinessDays(d, AddBusinessDays(d, n)) == n.

SEE ALSO:
  - holiday.go: The holiday calendar consulted here
  - calculator.go: Deadline snapping built on these primitives
*/
package deadline

// IsBusinessDay reports whether the date is a weekday that is not an
// observed federal holiday.
func IsBusinessDay(tp TimePoint) bool {
	if tp.IsWeekend() {
		return false
	}
	for _, h := range HolidaysForYear(tp.Year()) {
		if h.Observed.Equal(tp) {
			return false
		}
	}
	return true
}

// AddBusinessDays steps forward one calendar day at a time until n business
// days have been consumed. The landing date is itself a business day.
// n == 0 returns the date unchanged.
func AddBusinessDays(tp TimePoint, n int) TimePoint {
	if n < 0 {
		return SubtractBusinessDays(tp, -n)
	}
	d := tp
	for remaining := n; remaining > 0; {
		d = d.AddDays(1)
		if IsBusinessDay(d) {
			remaining--
		}
	}
	return d
}

// SubtractBusinessDays steps backward one calendar day at a time until n
// business days have been consumed.
func SubtractBusinessDays(tp TimePoint, n int) TimePoint {
	if n < 0 {
		return AddBusinessDays(tp, -n)
	}
	d := tp
	for remaining := n; remaining > 0; {
		d = d.AddDays(-1)
		if IsBusinessDay(d) {
			remaining--
		}
	}
	return d
}

// CountBusinessDays returns the signed number of business days in
// (start, end]. See the file header for the exact convention.
func CountBusinessDays(start, end TimePoint) int {
	if start.Equal(end) {
		return 0
	}
	if start.After(end) {
		return -CountBusinessDays(end, start)
	}
	count := 0
	for d := start.AddDays(1); d.BeforeOrEqual(end); d = d.AddDays(1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// NextBusinessDay returns the nearest business day strictly after the date.
func NextBusinessDay(tp TimePoint) TimePoint {
	return AddBusinessDays(tp, 1)
}

// PreviousBusinessDay returns the nearest business day strictly before the date.
func PreviousBusinessDay(tp TimePoint) TimePoint {
	return SubtractBusinessDays(tp, 1)
}
