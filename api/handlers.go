/*
handlers.go - HTTP API handlers for the filing deadline tracker

PURPOSE:

	Exposes the deadline engine via REST. Handlers parse HTTP input, read
	records from the store, invoke the pure engine functions with one
	consistent "now", and serialize results.

ENDPOINTS:

	Calendar:
	  GET  /api/holidays?year=YYYY        Observed federal holidays

	Ad-hoc calculations:
	  POST /api/deadlines/compute         Filing deadline for type + base date
	  POST /api/deadlines/events          Event-triggered deadline

	SPACs:
	  GET  /api/spacs                     List SPACs
	  POST /api/spacs                     Create SPAC (filing profile JSON)
	  GET  /api/spacs/{id}                SPAC detail
	  GET  /api/spacs/{id}/deadlines      Lifecycle deadline bundle
	  GET  /api/spacs/{id}/schedule       Periodic filing calendar (?years=N)
	  GET  /api/spacs/{id}/alerts         Prioritized deadline alerts
	  GET  /api/spacs/{id}/redemption-price
	  PUT  /api/spacs/{id}/vote-date       Schedule or clear the vote
	  GET  /api/spacs/{id}/filings         Recorded filing obligations
	  POST /api/spacs/{id}/filings
	  POST /api/spacs/{id}/filings/{filingID}/filed
	  GET  /api/spacs/{id}/comment-letters
	  POST /api/spacs/{id}/comment-letters
	  POST /api/spacs/{id}/comment-letters/{letterID}/responded

	Admin:
	  GET  /api/admin/alert-runs          Background sweep audit trail

DETERMINISTIC "NOW":

	Every date-sensitive endpoint accepts ?as_of=YYYY-MM-DD. One parsed
	value is threaded through all calculations for the request, so a single
	render never mixes two different days.

ERROR HANDLING:
  - 400: Validation errors, invalid input (deadline.IsClientError)
  - 404: Record not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - scenarios.go: Demo scenario loaders
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/factory"
	"github.com/spacdesk/filing-engine/spac"
	"github.com/spacdesk/filing-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store          *sqlite.Store
	ProfileFactory *factory.ProfileFactory

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:          store,
		ProfileFactory: factory.NewProfileFactory(),
	}
}

// asOf resolves the request's logical "now": the as_of query parameter if
// present, today otherwise.
func asOf(r *http.Request) (deadline.TimePoint, error) {
	if s := r.URL.Query().Get("as_of"); s != "" {
		return deadline.ParseDate(s)
	}
	return deadline.Today(), nil
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListHolidays returns the observed federal holidays for a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing year parameter", err)
		return
	}

	holidays := deadline.HolidaysForYear(year)
	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = HolidayDTO{Name: hol.Name, Actual: hol.Actual.String(), Observed: hol.Observed.String()}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// AD-HOC DEADLINE HANDLERS
// =============================================================================

// ComputeDeadline calculates a filing deadline for an arbitrary type and
// base date.
func (h *Handler) ComputeDeadline(w http.ResponseWriter, r *http.Request) {
	var req ComputeDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	base, err := deadline.ParseDate(req.BaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid base_date", err)
		return
	}
	now := deadline.Today()
	if req.AsOf != "" {
		if now, err = deadline.ParseDate(req.AsOf); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of", err)
			return
		}
	}

	calc, err := deadline.CalculateFilingDeadline(
		deadline.FilingType(req.FilingType), base, deadline.FilerStatus(req.FilerStatus), now)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calculationDTO(calc))
}

// ComputeEventDeadline calculates an event-triggered deadline.
func (h *Handler) ComputeEventDeadline(w http.ResponseWriter, r *http.Request) {
	var req EventDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	eventDate, err := deadline.ParseDate(req.EventDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event_date", err)
		return
	}

	var result deadline.EventBasedDeadline
	switch req.EventType {
	case "material_event":
		result, err = deadline.Calculate8KDeadline(eventDate)
	case "despac_closing":
		result, err = deadline.CalculateSuper8KDeadline(eventDate)
	case "insider_transaction":
		result, err = deadline.CalculateForm4Deadline(eventDate)
	case "ownership_threshold":
		result, err = deadline.CalculateSchedule13DDeadline(eventDate)
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Unknown event_type %q", req.EventType), nil)
		return
	}
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eventDeadlineDTO(result))
}

// =============================================================================
// SPAC HANDLERS
// =============================================================================

// ListSPACs returns all SPAC records.
func (h *Handler) ListSPACs(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListSPACs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list SPACs", err)
		return
	}

	dtos := make([]SPACDTO, len(records))
	for i, rec := range records {
		dtos[i] = spacDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateSPAC creates a SPAC from a filing profile JSON body.
func (h *Handler) CreateSPAC(w http.ResponseWriter, r *http.Request) {
	var profile factory.ProfileJSON
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, err := h.ProfileFactory.FromJSON(profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid filing profile", err)
		return
	}
	if err := h.Store.CreateSPAC(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create SPAC", err)
		return
	}
	writeJSON(w, http.StatusCreated, spacDTO(rec))
}

// GetSPAC returns a single SPAC.
func (h *Handler) GetSPAC(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, spacDTO(rec))
}

// GetSPACDeadlines returns the lifecycle deadline bundle.
func (h *Handler) GetSPACDeadlines(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}
	now, err := asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of", err)
		return
	}

	deadlines, err := spac.CalculateSPACDeadlines(rec.IPODate, rec.TermMonths, rec.ExtensionMonths, rec.VoteDate, now)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spacDeadlinesDTO(deadlines))
}

// GetSPACSchedule returns the periodic filing calendar, with filed status
// overlaid from recorded filings.
func (h *Handler) GetSPACSchedule(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}
	now, err := asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of", err)
		return
	}

	years := 1
	if s := r.URL.Query().Get("years"); s != "" {
		if years, err = strconv.Atoi(s); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid years parameter", err)
			return
		}
	}

	entries, err := deadline.GeneratePeriodicSchedule(rec.FiscalYearEndMonth, rec.FilerStatus, years, now)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	filings, err := h.Store.ListFilings(r.Context(), rec.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load filings", err)
		return
	}
	entries = overlayFiled(entries, filings)

	dtos := make([]ScheduleEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = scheduleEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetSPACAlerts computes prioritized alerts from the SPAC's unfiled
// periodic obligations.
func (h *Handler) GetSPACAlerts(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}
	now, err := asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of", err)
		return
	}

	filings, err := h.Store.ListFilings(r.Context(), rec.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load filings", err)
		return
	}

	alerts, err := buildSPACAlerts(rec, filings, now)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	dtos := make([]AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = alertDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRedemptionPrice returns the trust's pro-rata per-share payout.
func (h *Handler) GetRedemptionPrice(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}

	price, err := rec.Trust.RedemptionPrice()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Redemption price unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, RedemptionPriceDTO{
		TrustBalance:    rec.Trust.Balance.String(),
		PublicShares:    rec.Trust.PublicShares,
		RedemptionPrice: price.String(),
	})
}

// SetVoteDate schedules or clears the SPAC's shareholder vote, which
// drives the proxy-filing and redemption deadlines.
func (h *Handler) SetVoteDate(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}

	var req SetVoteDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var voteDate *deadline.TimePoint
	if req.VoteDate != "" {
		d, err := deadline.ParseDate(req.VoteDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid vote_date", err)
			return
		}
		voteDate = &d
	}

	if err := h.Store.SetVoteDate(r.Context(), rec.ID, voteDate); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to set vote date", err)
		return
	}
	rec.VoteDate = voteDate
	writeJSON(w, http.StatusOK, spacDTO(rec))
}

// =============================================================================
// FILING RECORD HANDLERS
// =============================================================================

// ListSPACFilings returns a SPAC's recorded filings.
func (h *Handler) ListSPACFilings(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}
	filings, err := h.Store.ListFilings(r.Context(), rec.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list filings", err)
		return
	}
	dtos := make([]FilingDTO, len(filings))
	for i, f := range filings {
		dtos[i] = filingDTO(f)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateSPACFiling records a filing obligation against a period, optionally
// already filed.
func (h *Handler) CreateSPACFiling(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}

	var req CreateFilingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if _, err := deadline.RuleFor(deadline.FilingType(req.FilingType)); err != nil {
		writeEngineError(w, err)
		return
	}
	periodEnd, err := deadline.ParseDate(req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid period_end", err)
		return
	}

	filing := &spac.Filing{
		ID:        uuid.NewString(),
		SPACID:    rec.ID,
		Type:      deadline.FilingType(req.FilingType),
		PeriodEnd: periodEnd,
	}
	if req.FiledOn != "" {
		filedOn, err := deadline.ParseDate(req.FiledOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid filed_on", err)
			return
		}
		filing.FiledOn = &filedOn
	}

	if err := h.Store.CreateFiling(r.Context(), filing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record filing", err)
		return
	}
	writeJSON(w, http.StatusCreated, filingDTO(filing))
}

// MarkFilingFiled records the actual submission date for a filing.
func (h *Handler) MarkFilingFiled(w http.ResponseWriter, r *http.Request) {
	var req MarkFiledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	filedOn, err := deadline.ParseDate(req.FiledOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid filed_on", err)
		return
	}

	filingID := chi.URLParam(r, "filingID")
	err = h.Store.MarkFilingFiled(r.Context(), filingID, filedOn)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Filing not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to mark filing filed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": filingID, "filed_on": filedOn.String()})
}

// =============================================================================
// COMMENT LETTER HANDLERS
// =============================================================================

// CreateCommentLetter records a received comment letter.
func (h *Handler) CreateCommentLetter(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}

	var req CreateCommentLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	receivedOn, err := deadline.ParseDate(req.ReceivedOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid received_on", err)
		return
	}

	responseDays := req.ResponseDays
	if responseDays == 0 {
		responseDays = rec.CommentResponseDays
	}

	letter := &spac.CommentLetter{
		ID:           uuid.NewString(),
		SPACID:       rec.ID,
		Form:         req.Form,
		ReceivedOn:   receivedOn,
		ResponseDays: responseDays,
	}

	// Reject bad windows before persisting anything.
	calc, err := spac.CalculateCommentResponseDeadline(receivedOn, responseDays, deadline.Today())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := h.Store.CreateCommentLetter(r.Context(), letter); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create comment letter", err)
		return
	}
	writeJSON(w, http.StatusCreated, commentLetterDTO(letter, calc))
}

// ListCommentLetters returns a SPAC's comment letters with computed
// response deadlines.
func (h *Handler) ListCommentLetters(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.loadSPAC(w, r)
	if !ok {
		return
	}
	now, err := asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of", err)
		return
	}

	letters, err := h.Store.ListCommentLetters(r.Context(), rec.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list comment letters", err)
		return
	}

	dtos := make([]CommentLetterDTO, 0, len(letters))
	for _, letter := range letters {
		calc, err := spac.CalculateCommentResponseDeadline(letter.ReceivedOn, letter.ResponseDays, now)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		dtos = append(dtos, commentLetterDTO(letter, calc))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RespondCommentLetter records the response date for a comment letter.
func (h *Handler) RespondCommentLetter(w http.ResponseWriter, r *http.Request) {
	var req RespondCommentLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	respondedOn, err := deadline.ParseDate(req.RespondedOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid responded_on", err)
		return
	}

	letterID := chi.URLParam(r, "letterID")
	err = h.Store.MarkCommentLetterResponded(r.Context(), letterID, respondedOn)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Comment letter not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record response", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": letterID, "responded_on": respondedOn.String()})
}

// =============================================================================
// ADMIN HANDLERS
// =============================================================================

// ListAlertRuns returns the background sweep audit trail.
func (h *Handler) ListAlertRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListAlertRuns(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list alert runs", err)
		return
	}
	dtos := make([]AlertRunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = alertRunDTO(run)
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": dtos})
}

// =============================================================================
// SHARED LOGIC
// =============================================================================

// buildSPACAlerts turns a SPAC's unfiled periodic obligations over the next
// year into a prioritized alert list. Used by the alerts endpoint and the
// background sweep.
func buildSPACAlerts(rec *spac.SPAC, filings []*spac.Filing, now deadline.TimePoint) ([]deadline.DeadlineAlert, error) {
	entries, err := deadline.GeneratePeriodicSchedule(rec.FiscalYearEndMonth, rec.FilerStatus, 1, now)
	if err != nil {
		return nil, err
	}
	entries = overlayFiled(entries, filings)

	var calcs []deadline.DeadlineCalculation
	for _, e := range entries {
		if e.Status == deadline.ScheduleFiled || e.Status == deadline.ScheduleUpcoming {
			continue
		}
		calc, err := deadline.CalculateFilingDeadline(e.FilingType, e.PeriodEnd, rec.FilerStatus, now)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}
	return deadline.GenerateDeadlineAlerts(calcs, now), nil
}

// overlayFiled applies the external "filed" signal from recorded filings
// onto generated schedule entries.
func overlayFiled(entries []deadline.ScheduleEntry, filings []*spac.Filing) []deadline.ScheduleEntry {
	filed := make(map[string]bool, len(filings))
	for _, f := range filings {
		if f.FiledOn != nil {
			filed[string(f.Type)+"|"+f.PeriodEnd.String()] = true
		}
	}
	for i, e := range entries {
		if filed[string(e.FilingType)+"|"+e.PeriodEnd.String()] {
			entries[i].Status = deadline.ScheduleFiled
		}
	}
	return entries
}

func (h *Handler) loadSPAC(w http.ResponseWriter, r *http.Request) (*spac.SPAC, bool) {
	id := chi.URLParam(r, "id")
	rec, err := h.Store.GetSPAC(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "SPAC not found", nil)
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load SPAC", err)
		return nil, false
	}
	return rec, true
}

func writeEngineError(w http.ResponseWriter, err error) {
	if deadline.IsClientError(err) || errors.Is(err, deadline.ErrUnknownFilingType) || errors.Is(err, spac.ErrInvalidTerm) {
		writeError(w, http.StatusBadRequest, "Calculation rejected", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Calculation failed", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
