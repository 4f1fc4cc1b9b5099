/*
lifecycle.go - SPAC lifecycle deadlines

PURPOSE:

	Derives the lifecycle milestone deadlines of a SPAC from its charter
	terms: when the trust must liquidate, the last practical date to execute
	an extension, and (once a shareholder vote is scheduled) the proxy-filing
	and redemption cutoffs.

DATE SEMANTICS:

	Liquidation and extension are charter milestones, not filings: they keep
	their raw calendar date even when it falls on a weekend. The proxy and
	redemption deadlines are business-day arithmetic and land on business
	days by construction.
*/
package spac

import (
	"fmt"

	"github.com/spacdesk/filing-engine/deadline"
)

// SPACDeadlines bundles the lifecycle deadlines for one SPAC. Proxy, vote,
// and redemption are nil until a vote date is known.
type SPACDeadlines struct {
	Liquidation deadline.TimePoint
	Extension   deadline.TimePoint

	ProxyFiling *deadline.TimePoint
	Vote        *deadline.TimePoint
	Redemption  *deadline.TimePoint

	DaysToLiquidation int
	Urgency           deadline.Urgency
}

// CalculateSPACDeadlines derives the full lifecycle bundle.
//
//	liquidation = IPO + term + extensions (calendar months)
//	extension   = liquidation - 30 calendar days
//	proxy       = vote - 20 business days (when a vote date is known)
//	redemption  = vote - 2 business days
func CalculateSPACDeadlines(ipoDate deadline.TimePoint, termMonths, extensionMonths int, voteDate *deadline.TimePoint, now deadline.TimePoint) (SPACDeadlines, error) {
	if ipoDate.IsZero() {
		return SPACDeadlines{}, &deadline.InvalidInputError{Field: "IPO date", Err: deadline.ErrMissingDate}
	}
	if now.IsZero() {
		return SPACDeadlines{}, &deadline.InvalidInputError{Field: "now", Err: deadline.ErrMissingDate}
	}
	if termMonths <= 0 {
		return SPACDeadlines{}, &deadline.InvalidInputError{Field: "term months", Value: fmt.Sprint(termMonths), Err: ErrInvalidTerm}
	}
	if extensionMonths < 0 {
		return SPACDeadlines{}, &deadline.InvalidInputError{Field: "extension months", Value: fmt.Sprint(extensionMonths), Err: ErrInvalidTerm}
	}

	liquidation := ipoDate.AddMonths(termMonths + extensionMonths)
	out := SPACDeadlines{
		Liquidation:       liquidation,
		Extension:         liquidation.AddDays(-30),
		DaysToLiquidation: deadline.DaysBetween(now, liquidation),
		Urgency:           liquidationUrgency(liquidation, now),
	}

	if voteDate != nil && !voteDate.IsZero() {
		proxy := deadline.SubtractBusinessDays(*voteDate, 20)
		redemption := deadline.SubtractBusinessDays(*voteDate, 2)
		vote := *voteDate
		out.ProxyFiling = &proxy
		out.Vote = &vote
		out.Redemption = &redemption
	}
	return out, nil
}

// liquidationUrgency grades proximity to the liquidation date on the same
// month scale SPAC sponsors plan extensions around.
func liquidationUrgency(liquidation, now deadline.TimePoint) deadline.Urgency {
	days := deadline.DaysBetween(now, liquidation)
	switch {
	case days <= 30:
		return deadline.UrgencyCritical
	case days <= 90:
		return deadline.UrgencyHigh
	case days <= 180:
		return deadline.UrgencyMedium
	default:
		return deadline.UrgencyLow
	}
}
