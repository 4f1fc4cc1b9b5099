// Package spac implements SPAC-specific filing obligations on top of the
// deadline engine: lifecycle deadlines derived from the trust charter,
// SEC comment-letter response tracking, and trust account economics.
package spac

import (
	"time"

	"github.com/spacdesk/filing-engine/deadline"
)

// =============================================================================
// DOMAIN RECORDS
// =============================================================================

// SPAC is one special-purpose acquisition company being tracked. Optional
// milestone dates are pointers: an unknown date yields a nil derived
// deadline rather than a computed guess.
type SPAC struct {
	ID     string
	Name   string
	Ticker string

	IPODate         deadline.TimePoint
	TermMonths      int
	ExtensionMonths int

	FiscalYearEndMonth time.Month
	FilerStatus        deadline.FilerStatus

	AnnouncedDealDate *deadline.TimePoint
	VoteDate          *deadline.TimePoint

	CommentResponseDays int
	Trust               TrustAccount

	CreatedAt time.Time
}

// Filing is one recorded filing obligation. FiledOn is nil until the
// document has actually been submitted.
type Filing struct {
	ID        string
	SPACID    string
	Type      deadline.FilingType
	PeriodEnd deadline.TimePoint
	FiledOn   *deadline.TimePoint
}

// CommentLetter is one SEC comment letter awaiting a response.
type CommentLetter struct {
	ID           string
	SPACID       string
	Form         string
	ReceivedOn   deadline.TimePoint
	ResponseDays int
	RespondedOn  *deadline.TimePoint
}
