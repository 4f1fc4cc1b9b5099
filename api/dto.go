/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication, decoupling the
	engine's value objects from the external contract. Dates are rendered as
	YYYY-MM-DD strings; nullable dates as pointer strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - factory/profile.go: ProfileJSON, the SPAC creation request body
*/
package api

import (
	"time"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/spac"
	"github.com/spacdesk/filing-engine/store/sqlite"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SPACDTO represents a SPAC entity in API responses.
type SPACDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Ticker             string  `json:"ticker,omitempty"`
	IPODate            string  `json:"ipo_date"`
	TermMonths         int     `json:"term_months"`
	ExtensionMonths    int     `json:"extension_months"`
	FiscalYearEndMonth int     `json:"fiscal_year_end_month"`
	FilerStatus        string  `json:"filer_status"`
	AnnouncedDealDate  *string `json:"announced_deal_date,omitempty"`
	VoteDate           *string `json:"vote_date,omitempty"`
	TrustBalance       string  `json:"trust_balance"`
	PublicShares       int64   `json:"public_shares"`
	CreatedAt          string  `json:"created_at"`
}

// HolidayDTO represents one observed federal holiday.
type HolidayDTO struct {
	Name     string `json:"name"`
	Actual   string `json:"actual"`
	Observed string `json:"observed"`
}

// DeadlineCalculationDTO is the full computed picture for one obligation.
type DeadlineCalculationDTO struct {
	FilingType            string `json:"filing_type"`
	FilerStatus           string `json:"filer_status"`
	BaseDate              string `json:"base_date"`
	Deadline              string `json:"deadline"`
	Unit                  string `json:"unit"`
	DayCount              int    `json:"day_count"`
	DaysRemaining         int    `json:"days_remaining"`
	BusinessDaysRemaining int    `json:"business_days_remaining"`
	Overdue               bool   `json:"overdue"`
	Urgency               string `json:"urgency"`
	CriticalThreshold     string `json:"critical_threshold"`
	HighThreshold         string `json:"high_threshold"`
	MediumThreshold       string `json:"medium_threshold"`
}

// ScheduleEntryDTO is one entry of the periodic filing calendar.
type ScheduleEntryDTO struct {
	FilingType string `json:"filing_type"`
	Period     string `json:"period"`
	FiscalYear int    `json:"fiscal_year"`
	Quarter    int    `json:"quarter,omitempty"`
	PeriodEnd  string `json:"period_end"`
	Deadline   string `json:"deadline"`
	Status     string `json:"status"`
}

// EventDeadlineDTO is the result of an event-triggered deadline rule.
type EventDeadlineDTO struct {
	FilingType  string `json:"filing_type"`
	EventType   string `json:"event_type"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	Deadline    string `json:"deadline"`
	DayCount    int    `json:"day_count"`
	Unit        string `json:"unit"`
}

// AlertDTO is one prioritized deadline alert.
type AlertDTO struct {
	ID                    string `json:"id"`
	FilingType            string `json:"filing_type"`
	Title                 string `json:"title"`
	Message               string `json:"message"`
	Deadline              string `json:"deadline"`
	DaysRemaining         int    `json:"days_remaining"`
	BusinessDaysRemaining int    `json:"business_days_remaining"`
	Severity              string `json:"severity"`
}

// SPACDeadlinesDTO is the lifecycle deadline bundle.
type SPACDeadlinesDTO struct {
	Liquidation       string  `json:"liquidation"`
	Extension         string  `json:"extension"`
	ProxyFiling       *string `json:"proxy_filing,omitempty"`
	Vote              *string `json:"vote,omitempty"`
	Redemption        *string `json:"redemption,omitempty"`
	DaysToLiquidation int     `json:"days_to_liquidation"`
	Urgency           string  `json:"urgency"`
}

// FilingDTO is one recorded filing obligation.
type FilingDTO struct {
	ID         string  `json:"id"`
	FilingType string  `json:"filing_type"`
	PeriodEnd  string  `json:"period_end"`
	FiledOn    *string `json:"filed_on,omitempty"`
}

// CommentLetterDTO is a comment letter with its computed response deadline.
type CommentLetterDTO struct {
	ID                    string  `json:"id"`
	Form                  string  `json:"form,omitempty"`
	ReceivedOn            string  `json:"received_on"`
	ResponseDays          int     `json:"response_days"`
	RespondedOn           *string `json:"responded_on,omitempty"`
	Deadline              string  `json:"deadline"`
	DaysRemaining         int     `json:"days_remaining"`
	BusinessDaysRemaining int     `json:"business_days_remaining"`
	Overdue               bool    `json:"overdue"`
	ExtensionEligible     bool    `json:"extension_eligible"`
}

// RedemptionPriceDTO is the trust account's pro-rata payout.
type RedemptionPriceDTO struct {
	TrustBalance    string `json:"trust_balance"`
	PublicShares    int64  `json:"public_shares"`
	RedemptionPrice string `json:"redemption_price"`
}

// AlertRunDTO is one recorded background sweep.
type AlertRunDTO struct {
	ID              string `json:"id"`
	RanAt           string `json:"ran_at"`
	SPACsChecked    int    `json:"spacs_checked"`
	AlertsGenerated int    `json:"alerts_generated"`
	CriticalAlerts  int    `json:"critical_alerts"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ComputeDeadlineRequest asks for an ad-hoc filing deadline calculation.
type ComputeDeadlineRequest struct {
	FilingType  string `json:"filing_type"`
	BaseDate    string `json:"base_date"`
	FilerStatus string `json:"filer_status,omitempty"`
	AsOf        string `json:"as_of,omitempty"`
}

// EventDeadlineRequest asks for an event-triggered deadline.
type EventDeadlineRequest struct {
	EventType string `json:"event_type"` // material_event | despac_closing | insider_transaction | ownership_threshold
	EventDate string `json:"event_date"`
}

// CreateCommentLetterRequest records a received comment letter.
type CreateCommentLetterRequest struct {
	Form         string `json:"form,omitempty"`
	ReceivedOn   string `json:"received_on"`
	ResponseDays int    `json:"response_days,omitempty"`
}

// CreateFilingRequest records a filing obligation, optionally already filed.
type CreateFilingRequest struct {
	FilingType string `json:"filing_type"`
	PeriodEnd  string `json:"period_end"`
	FiledOn    string `json:"filed_on,omitempty"`
}

// MarkFiledRequest records the actual submission date for a filing.
type MarkFiledRequest struct {
	FiledOn string `json:"filed_on"`
}

// SetVoteDateRequest schedules (or clears, with an empty string) the
// shareholder vote.
type SetVoteDateRequest struct {
	VoteDate string `json:"vote_date"`
}

// RespondCommentLetterRequest records the response date for a letter.
type RespondCommentLetterRequest struct {
	RespondedOn string `json:"responded_on"`
}

// LoadScenarioRequest selects a demo scenario.
type LoadScenarioRequest struct {
	Name string `json:"name"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func spacDTO(rec *spac.SPAC) SPACDTO {
	return SPACDTO{
		ID:                 rec.ID,
		Name:               rec.Name,
		Ticker:             rec.Ticker,
		IPODate:            rec.IPODate.String(),
		TermMonths:         rec.TermMonths,
		ExtensionMonths:    rec.ExtensionMonths,
		FiscalYearEndMonth: int(rec.FiscalYearEndMonth),
		FilerStatus:        string(rec.FilerStatus),
		AnnouncedDealDate:  datePtr(rec.AnnouncedDealDate),
		VoteDate:           datePtr(rec.VoteDate),
		TrustBalance:       rec.Trust.Balance.String(),
		PublicShares:       rec.Trust.PublicShares,
		CreatedAt:          rec.CreatedAt.Format(time.RFC3339),
	}
}

func calculationDTO(c deadline.DeadlineCalculation) DeadlineCalculationDTO {
	return DeadlineCalculationDTO{
		FilingType:            string(c.FilingType),
		FilerStatus:           string(c.FilerStatus),
		BaseDate:              c.BaseDate.String(),
		Deadline:              c.Deadline.String(),
		Unit:                  string(c.Unit),
		DayCount:              c.DayCount,
		DaysRemaining:         c.DaysRemaining,
		BusinessDaysRemaining: c.BusinessDaysRemaining,
		Overdue:               c.Overdue,
		Urgency:               string(c.Urgency),
		CriticalThreshold:     c.CriticalThreshold.String(),
		HighThreshold:         c.HighThreshold.String(),
		MediumThreshold:       c.MediumThreshold.String(),
	}
}

func scheduleEntryDTO(e deadline.ScheduleEntry) ScheduleEntryDTO {
	return ScheduleEntryDTO{
		FilingType: string(e.FilingType),
		Period:     e.Period.String(),
		FiscalYear: e.Period.FiscalYear,
		Quarter:    e.Period.Quarter,
		PeriodEnd:  e.PeriodEnd.String(),
		Deadline:   e.Deadline.String(),
		Status:     string(e.Status),
	}
}

func eventDeadlineDTO(e deadline.EventBasedDeadline) EventDeadlineDTO {
	return EventDeadlineDTO{
		FilingType:  string(e.FilingType),
		EventType:   e.EventType,
		Description: e.Description,
		EventDate:   e.EventDate.String(),
		Deadline:    e.Deadline.String(),
		DayCount:    e.DayCount,
		Unit:        string(e.Unit),
	}
}

func alertDTO(a deadline.DeadlineAlert) AlertDTO {
	return AlertDTO{
		ID:                    a.ID,
		FilingType:            string(a.FilingType),
		Title:                 a.Title,
		Message:               a.Message,
		Deadline:              a.Deadline.String(),
		DaysRemaining:         a.DaysRemaining,
		BusinessDaysRemaining: a.BusinessDaysRemaining,
		Severity:              string(a.Severity),
	}
}

func spacDeadlinesDTO(d spac.SPACDeadlines) SPACDeadlinesDTO {
	return SPACDeadlinesDTO{
		Liquidation:       d.Liquidation.String(),
		Extension:         d.Extension.String(),
		ProxyFiling:       datePtr(d.ProxyFiling),
		Vote:              datePtr(d.Vote),
		Redemption:        datePtr(d.Redemption),
		DaysToLiquidation: d.DaysToLiquidation,
		Urgency:           string(d.Urgency),
	}
}

func filingDTO(f *spac.Filing) FilingDTO {
	return FilingDTO{
		ID:         f.ID,
		FilingType: string(f.Type),
		PeriodEnd:  f.PeriodEnd.String(),
		FiledOn:    datePtr(f.FiledOn),
	}
}

func commentLetterDTO(c *spac.CommentLetter, calc spac.CommentResponseDeadline) CommentLetterDTO {
	return CommentLetterDTO{
		ID:                    c.ID,
		Form:                  c.Form,
		ReceivedOn:            c.ReceivedOn.String(),
		ResponseDays:          calc.ResponseDays,
		RespondedOn:           datePtr(c.RespondedOn),
		Deadline:              calc.Deadline.String(),
		DaysRemaining:         calc.DaysRemaining,
		BusinessDaysRemaining: calc.BusinessDaysRemaining,
		Overdue:               calc.Overdue,
		ExtensionEligible:     calc.ExtensionEligible,
	}
}

func alertRunDTO(r sqlite.AlertRun) AlertRunDTO {
	return AlertRunDTO{
		ID:              r.ID,
		RanAt:           r.RanAt.Format(time.RFC3339),
		SPACsChecked:    r.SPACsChecked,
		AlertsGenerated: r.AlertsGenerated,
		CriticalAlerts:  r.CriticalAlerts,
	}
}

func datePtr(tp *deadline.TimePoint) *string {
	if tp == nil || tp.IsZero() {
		return nil
	}
	s := tp.String()
	return &s
}
