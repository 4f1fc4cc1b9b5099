/*
events.go - Event-triggered deadline rules

PURPOSE:

	One-shot calculators for episodic filings: obligations triggered by a
	specific event rather than the fiscal calendar. Each rule is the
	function - a fixed day count in a fixed unit added to the trigger date,
	with no catalog lookup and no filer-status variation.
*/
package deadline

// EventBasedDeadline is the result of a single episodic-trigger rule. It
// carries enough metadata to render without a separate lookup.
type EventBasedDeadline struct {
	FilingType  FilingType
	EventType   string
	Description string
	EventDate   TimePoint
	Deadline    TimePoint
	DayCount    int
	Unit        DeadlineUnit
}

// Calculate8KDeadline: a material event must be reported on Form 8-K
// within 4 business days.
func Calculate8KDeadline(eventDate TimePoint) (EventBasedDeadline, error) {
	return eventDeadline(Form8K, "material_event",
		"Material event requiring a current report", eventDate, 4, UnitBusinessDays)
}

// CalculateSuper8KDeadline: the de-SPAC closing triggers a "Super 8-K"
// with Form 10 information within 4 business days.
func CalculateSuper8KDeadline(closingDate TimePoint) (EventBasedDeadline, error) {
	return eventDeadline(FormSuper8K, "despac_closing",
		"Business combination closing requiring Form 10 information", closingDate, 4, UnitBusinessDays)
}

// CalculateForm4Deadline: an insider transaction must be reported within
// 2 business days of execution.
func CalculateForm4Deadline(transactionDate TimePoint) (EventBasedDeadline, error) {
	return eventDeadline(Form4, "insider_transaction",
		"Change in beneficial ownership by an insider", transactionDate, 2, UnitBusinessDays)
}

// CalculateSchedule13DDeadline: crossing the 5% beneficial ownership
// threshold must be disclosed within 10 calendar days of acquisition.
func CalculateSchedule13DDeadline(acquisitionDate TimePoint) (EventBasedDeadline, error) {
	return eventDeadline(Schedule13D, "ownership_threshold",
		"Beneficial ownership crossed the 5% threshold", acquisitionDate, 10, UnitCalendarDays)
}

func eventDeadline(ft FilingType, eventType, description string, eventDate TimePoint, days int, unit DeadlineUnit) (EventBasedDeadline, error) {
	if eventDate.IsZero() {
		return EventBasedDeadline{}, &InvalidInputError{Field: "event date", Err: ErrMissingDate}
	}
	return EventBasedDeadline{
		FilingType:  ft,
		EventType:   eventType,
		Description: description,
		EventDate:   eventDate,
		Deadline:    applyDayCount(eventDate, days, unit),
		DayCount:    days,
		Unit:        unit,
	}, nil
}
