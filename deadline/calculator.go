/*
calculator.go - Filing deadline calculation and urgency classification

PURPOSE:

	The core operation of the engine: given a filing type, the date that
	triggers the obligation, and the filer's SEC classification, compute the
	deadline date, remaining-day counts, overdue flag, and urgency tier.

SNAPPING RULE:

	A deadline never falls on a weekend or holiday. When calendar-day
	arithmetic lands on one, the deadline snaps BACKWARD to the previous
	business day: the filer must submit on or before the last preceding
	business day, a holiday never grants extra time. Business-day arithmetic
	lands on a business day by construction.

URGENCY TIERS:

	Thresholds sit 3 / 7 / 14 business days before the deadline.
	  critical  overdue, or today is on/after the 3-day threshold
	  high      today is on/after the 7-day threshold
	  medium    today is on/after the 14-day threshold
	  low       everything earlier

"NOW" IS A PARAMETER:

	Every calculation takes now explicitly so a single logical "now" spans
	all calculations made for one render or batch pass, and so tests are
	deterministic.
*/
package deadline

// Urgency classifies how close a deadline is.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// DeadlineCalculation is the computed result for one filing obligation.
// It is a value object: produced fresh on each call, never mutated.
type DeadlineCalculation struct {
	FilingType  FilingType
	FilerStatus FilerStatus
	BaseDate    TimePoint
	Deadline    TimePoint
	Unit        DeadlineUnit
	DayCount    int

	// DaysRemaining is signed: positive while the deadline is in the
	// future, negative once it has passed.
	DaysRemaining         int
	BusinessDaysRemaining int
	Overdue               bool
	Urgency               Urgency

	// Threshold dates backing the urgency tier.
	CriticalThreshold TimePoint
	HighThreshold     TimePoint
	MediumThreshold   TimePoint
}

// CalculateFilingDeadline computes the full deadline picture for one
// obligation. An empty filer status falls back to DefaultFilerStatus,
// which only matters for the two periodic report types; any other
// unrecognized status is an error.
func CalculateFilingDeadline(ft FilingType, baseDate TimePoint, status FilerStatus, now TimePoint) (DeadlineCalculation, error) {
	if baseDate.IsZero() {
		return DeadlineCalculation{}, &InvalidInputError{Field: "base date", Err: ErrMissingDate}
	}
	if now.IsZero() {
		return DeadlineCalculation{}, &InvalidInputError{Field: "now", Err: ErrMissingDate}
	}
	if status == "" {
		status = DefaultFilerStatus
	}
	if !ValidFilerStatus(status) {
		return DeadlineCalculation{}, &InvalidInputError{Field: "filer status", Value: string(status), Err: ErrUnknownFilerStatus}
	}

	rule, err := RuleFor(ft)
	if err != nil {
		return DeadlineCalculation{}, err
	}
	days, err := rule.DayCount(status)
	if err != nil {
		return DeadlineCalculation{}, err
	}

	due := applyDayCount(baseDate, days, rule.Unit)

	calc := DeadlineCalculation{
		FilingType:            ft,
		FilerStatus:           status,
		BaseDate:              baseDate,
		Deadline:              due,
		Unit:                  rule.Unit,
		DayCount:              days,
		DaysRemaining:         DaysBetween(now, due),
		BusinessDaysRemaining: CountBusinessDays(now, due),
		Overdue:               due.Before(now),
		CriticalThreshold:     SubtractBusinessDays(due, 3),
		HighThreshold:         SubtractBusinessDays(due, 7),
		MediumThreshold:       SubtractBusinessDays(due, 14),
	}
	calc.Urgency = classifyUrgency(calc, now)
	return calc, nil
}

// applyDayCount adds the day count in the declared unit and snaps the
// result to a business day.
func applyDayCount(base TimePoint, days int, unit DeadlineUnit) TimePoint {
	if unit == UnitBusinessDays {
		return AddBusinessDays(base, days)
	}
	due := base.AddDays(days)
	if !IsBusinessDay(due) {
		due = PreviousBusinessDay(due)
	}
	return due
}

func classifyUrgency(calc DeadlineCalculation, now TimePoint) Urgency {
	switch {
	case calc.Overdue, now.AfterOrEqual(calc.CriticalThreshold):
		return UrgencyCritical
	case now.AfterOrEqual(calc.HighThreshold):
		return UrgencyHigh
	case now.AfterOrEqual(calc.MediumThreshold):
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// =============================================================================
// LATE-FILING EXTENSION RELIEF (Rule 12b-25)
// =============================================================================

// CalculateExtendedDeadline returns the deadline bought by a timely late
// notification: 15 calendar days past the original deadline for a 10-K,
// 5 for a 10-Q, snapped to a business day. Other filing types have no
// notification relief.
func CalculateExtendedDeadline(ft FilingType, originalDeadline TimePoint) (TimePoint, error) {
	if originalDeadline.IsZero() {
		return TimePoint{}, &InvalidInputError{Field: "original deadline", Err: ErrMissingDate}
	}

	var notification FilingType
	switch ft {
	case Form10K:
		notification = FormNT10K
	case Form10Q:
		notification = FormNT10Q
	default:
		return TimePoint{}, &InvalidInputError{Field: "filing type", Value: string(ft), Err: ErrNotExtendable}
	}

	rule, err := RuleFor(notification)
	if err != nil {
		return TimePoint{}, err
	}
	return applyDayCount(originalDeadline, rule.Days, rule.Unit), nil
}
