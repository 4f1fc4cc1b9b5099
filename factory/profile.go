/*
Package factory provides JSON to Go filing-profile conversion.

PURPOSE:

	Converts a JSON SPAC filing profile into a validated spac.SPAC record.
	Compliance staff define entities in JSON (or through the admin UI, which
	posts the same shape); the factory applies defaults and rejects anything
	the deadline engine would refuse downstream.

JSON SCHEMA:

	{
	  "name": "Aurora Acquisition Corp",
	  "ticker": "AURC",
	  "ipo_date": "2024-06-15",
	  "term_months": 24,
	  "extension_months": 0,
	  "fiscal_year_end_month": 12,
	  "filer_status": "non_accelerated",
	  "vote_date": "2026-03-20",
	  "comment_response_days": 10,
	  "trust_balance": "230000000.00",
	  "public_shares": 23000000
	}

DEFAULTS:

	term_months            24 (the standard SPAC charter term)
	fiscal_year_end_month  12 (December)
	filer_status           non_accelerated (SPACs are shells pre-combination)
	comment_response_days  10

SEE ALSO:
  - spac/types.go: The record this factory produces
  - api/handlers.go: Uses the factory on SPAC creation
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/spac"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ProfileJSON is the JSON representation of a SPAC filing profile.
type ProfileJSON struct {
	Name                string `json:"name"`
	Ticker              string `json:"ticker"`
	IPODate             string `json:"ipo_date"`
	TermMonths          int    `json:"term_months,omitempty"`
	ExtensionMonths     int    `json:"extension_months,omitempty"`
	FiscalYearEndMonth  int    `json:"fiscal_year_end_month,omitempty"` // 1-12
	FilerStatus         string `json:"filer_status,omitempty"`
	AnnouncedDealDate   string `json:"announced_deal_date,omitempty"`
	VoteDate            string `json:"vote_date,omitempty"`
	CommentResponseDays int    `json:"comment_response_days,omitempty"`
	TrustBalance        string `json:"trust_balance,omitempty"`
	PublicShares        int64  `json:"public_shares,omitempty"`
}

// ProfileFactory converts JSON profiles into SPAC records.
type ProfileFactory struct{}

func NewProfileFactory() *ProfileFactory { return &ProfileFactory{} }

// ParseProfile parses and validates a JSON profile string.
func (f *ProfileFactory) ParseProfile(jsonStr string) (*spac.SPAC, error) {
	var p ProfileJSON
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return nil, fmt.Errorf("invalid profile JSON: %w", err)
	}
	return f.FromJSON(p)
}

// FromJSON builds a SPAC record from an already-decoded profile, applying
// defaults and validating every field the deadline engine depends on.
func (f *ProfileFactory) FromJSON(p ProfileJSON) (*spac.SPAC, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("profile requires a name")
	}
	if p.IPODate == "" {
		return nil, fmt.Errorf("profile requires an ipo_date: %w", deadline.ErrMissingDate)
	}
	ipo, err := deadline.ParseDate(p.IPODate)
	if err != nil {
		return nil, fmt.Errorf("invalid ipo_date: %w", err)
	}

	s := &spac.SPAC{
		ID:                  uuid.NewString(),
		Name:                p.Name,
		Ticker:              p.Ticker,
		IPODate:             ipo,
		TermMonths:          p.TermMonths,
		ExtensionMonths:     p.ExtensionMonths,
		FiscalYearEndMonth:  time.Month(p.FiscalYearEndMonth),
		FilerStatus:         deadline.FilerStatus(p.FilerStatus),
		CommentResponseDays: p.CommentResponseDays,
		CreatedAt:           time.Now().UTC(),
	}

	// Defaults
	if s.TermMonths == 0 {
		s.TermMonths = 24
	}
	if s.FiscalYearEndMonth == 0 {
		s.FiscalYearEndMonth = time.December
	}
	if s.FilerStatus == "" {
		s.FilerStatus = deadline.FilerNonAccelerated
	}
	if s.CommentResponseDays == 0 {
		s.CommentResponseDays = spac.DefaultResponseDays
	}

	// Validation
	if s.TermMonths < 0 || s.ExtensionMonths < 0 {
		return nil, fmt.Errorf("term_months/extension_months: %w", spac.ErrInvalidTerm)
	}
	if s.FiscalYearEndMonth < time.January || s.FiscalYearEndMonth > time.December {
		return nil, fmt.Errorf("fiscal_year_end_month %d: %w", p.FiscalYearEndMonth, deadline.ErrInvalidFiscalMonth)
	}
	if !deadline.ValidFilerStatus(s.FilerStatus) {
		return nil, fmt.Errorf("filer_status %q: %w", p.FilerStatus, deadline.ErrUnknownFilerStatus)
	}
	if s.CommentResponseDays < 0 {
		return nil, fmt.Errorf("comment_response_days: %w", deadline.ErrNegativeDayCount)
	}

	if p.AnnouncedDealDate != "" {
		d, err := deadline.ParseDate(p.AnnouncedDealDate)
		if err != nil {
			return nil, fmt.Errorf("invalid announced_deal_date: %w", err)
		}
		s.AnnouncedDealDate = &d
	}
	if p.VoteDate != "" {
		d, err := deadline.ParseDate(p.VoteDate)
		if err != nil {
			return nil, fmt.Errorf("invalid vote_date: %w", err)
		}
		s.VoteDate = &d
	}

	if p.TrustBalance != "" {
		trust, err := spac.NewTrustAccount(p.TrustBalance, p.PublicShares)
		if err != nil {
			return nil, err
		}
		s.Trust = trust
	}

	return s, nil
}
