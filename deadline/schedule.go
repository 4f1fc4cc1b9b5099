/*
schedule.go - Forward-looking periodic filing calendar

PURPOSE:

	Projects the deadline calculator across future years to produce the full
	annual/quarterly report calendar for an entity: one 10-K per fiscal year
	plus 10-Qs for fiscal quarters 1-3. Quarter 4 is intentionally omitted -
	its results are reported in the annual report, no separate 10-Q exists.

STATUS:

	Each entry is classified relative to "now":
	  overdue   the filing deadline has passed
	  upcoming  the fiscal period itself has not ended yet
	  due       period ended, deadline still ahead
	"filed" requires an external signal (the actual filing record) that this
	engine does not track; callers overlay it from storage.
*/
package deadline

import (
	"fmt"
	"sort"
	"time"
)

// ScheduleStatus is the state of one periodic filing obligation.
type ScheduleStatus string

const (
	ScheduleUpcoming ScheduleStatus = "upcoming"
	ScheduleDue      ScheduleStatus = "due"
	ScheduleFiled    ScheduleStatus = "filed"
	ScheduleOverdue  ScheduleStatus = "overdue"
)

// ScheduleEntry is one entry in the periodic filing calendar.
type ScheduleEntry struct {
	FilingType FilingType
	Period     FiscalPeriod
	PeriodEnd  TimePoint
	Deadline   TimePoint
	Status     ScheduleStatus
}

// GeneratePeriodicSchedule builds the filing calendar from the current
// year through yearsAhead additional years, sorted ascending by deadline.
func GeneratePeriodicSchedule(fyEndMonth time.Month, status FilerStatus, yearsAhead int, now TimePoint) ([]ScheduleEntry, error) {
	if err := validFiscalMonth(fyEndMonth); err != nil {
		return nil, err
	}
	if yearsAhead < 0 {
		return nil, &InvalidInputError{Field: "years ahead", Value: fmt.Sprint(yearsAhead), Err: ErrNegativeDayCount}
	}
	if now.IsZero() {
		return nil, &InvalidInputError{Field: "now", Err: ErrMissingDate}
	}

	var entries []ScheduleEntry
	for year := now.Year(); year <= now.Year()+yearsAhead; year++ {
		annual, err := FiscalYearPeriod(year, fyEndMonth)
		if err != nil {
			return nil, err
		}
		entry, err := scheduleEntry(Form10K, annual, status, now)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		for q := 1; q <= 3; q++ {
			period, err := FiscalQuarterPeriod(year, q, fyEndMonth)
			if err != nil {
				return nil, err
			}
			entry, err := scheduleEntry(Form10Q, period, status, now)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Deadline.Before(entries[j].Deadline) })
	return entries, nil
}

func scheduleEntry(ft FilingType, period FiscalPeriod, status FilerStatus, now TimePoint) (ScheduleEntry, error) {
	calc, err := CalculateFilingDeadline(ft, period.End, status, now)
	if err != nil {
		return ScheduleEntry{}, err
	}

	entryStatus := ScheduleDue
	switch {
	case calc.Deadline.Before(now):
		entryStatus = ScheduleOverdue
	case now.BeforeOrEqual(period.End):
		entryStatus = ScheduleUpcoming
	}

	return ScheduleEntry{
		FilingType: ft,
		Period:     period,
		PeriodEnd:  period.End,
		Deadline:   calc.Deadline,
		Status:     entryStatus,
	}, nil
}
