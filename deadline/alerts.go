/*
alerts.go - Deadline alert generation

PURPOSE:

	Converts a set of DeadlineCalculations into a prioritized, human-readable
	alert list. The urgency tier already computed on each calculation maps
	onto a three-level alert severity; phrasing distinguishes overdue from
	urgent-but-not-yet-due from merely upcoming.

ALERTS ARE DERIVED, NOT AUTHORITATIVE:

	The underlying DeadlineCalculation is always the source of truth. No
	persistence, no deduplication - repeated calls produce fresh alerts and
	the caller decides what to do about repeats.
*/
package deadline

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// AlertSeverity is the three-tier presentation severity.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

var severityRank = map[AlertSeverity]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityInfo:     2,
}

// DeadlineAlert is a presentation-ready record derived from one
// DeadlineCalculation.
type DeadlineAlert struct {
	ID                    string
	FilingType            FilingType
	Title                 string
	Message               string
	Deadline              TimePoint
	DaysRemaining         int
	BusinessDaysRemaining int
	Severity              AlertSeverity
}

// GenerateDeadlineAlerts builds one alert per calculation, sorted by
// severity (critical first) then by deadline ascending. Remaining-day
// counts are recomputed against the supplied now so one logical "now"
// covers the whole batch even if the calculations were made earlier.
func GenerateDeadlineAlerts(calcs []DeadlineCalculation, now TimePoint) []DeadlineAlert {
	alerts := make([]DeadlineAlert, 0, len(calcs))
	for _, calc := range calcs {
		alerts = append(alerts, buildAlert(calc, now))
	}

	sort.Slice(alerts, func(i, j int) bool {
		ri, rj := severityRank[alerts[i].Severity], severityRank[alerts[j].Severity]
		if ri != rj {
			return ri < rj
		}
		return alerts[i].Deadline.Before(alerts[j].Deadline)
	})
	return alerts
}

func buildAlert(calc DeadlineCalculation, now TimePoint) DeadlineAlert {
	rule, err := RuleFor(calc.FilingType)
	name := string(calc.FilingType)
	if err == nil {
		name = rule.DisplayName
	}

	daysRemaining := DaysBetween(now, calc.Deadline)
	overdue := calc.Deadline.Before(now)

	var title, message string
	switch {
	case overdue:
		title = fmt.Sprintf("OVERDUE: %s", name)
		message = fmt.Sprintf("%s was due %s (%d days ago). File immediately.",
			name, calc.Deadline, -daysRemaining)
	case calc.Urgency == UrgencyCritical || calc.Urgency == UrgencyHigh:
		title = fmt.Sprintf("Due soon: %s", name)
		message = fmt.Sprintf("%s is due %s (%d days remaining).",
			name, calc.Deadline, daysRemaining)
	default:
		title = fmt.Sprintf("Upcoming: %s", name)
		message = fmt.Sprintf("%s is due %s (%d days away).",
			name, calc.Deadline, daysRemaining)
	}

	return DeadlineAlert{
		ID:                    uuid.NewString(),
		FilingType:            calc.FilingType,
		Title:                 title,
		Message:               message,
		Deadline:              calc.Deadline,
		DaysRemaining:         daysRemaining,
		BusinessDaysRemaining: CountBusinessDays(now, calc.Deadline),
		Severity:              alertSeverity(calc.Urgency),
	}
}

// alertSeverity folds the four urgency tiers into three alert levels.
func alertSeverity(u Urgency) AlertSeverity {
	switch u {
	case UrgencyCritical:
		return SeverityCritical
	case UrgencyHigh:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
