/*
scenarios.go - Demo scenario loaders

PURPOSE:

	Seeds the store with representative SPACs so the dashboard has something
	to show on a fresh database. Each scenario is a named set of records;
	loading one does not clear previously loaded data.

SCENARIOS:

	searching:  A fresh SPAC mid-term with no announced deal
	announced:  A SPAC with a signed deal, scheduled vote, and an open
	            comment letter on its merger proxy
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/spac"
)

// ScenarioDTO describes one loadable demo scenario.
type ScenarioDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

var scenarioDescriptions = map[string]string{
	"searching": "A SPAC mid-term, still searching for a target",
	"announced": "A SPAC with a signed deal, scheduled vote, and an open comment letter",
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := []ScenarioDTO{}
	for _, name := range []string{"searching", "announced"} {
		dtos = append(dtos, ScenarioDTO{
			Name:        name,
			Description: scenarioDescriptions[name],
			Current:     h.currentScenario == name,
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario seeds the store with the named scenario's records.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var err error
	switch req.Name {
	case "searching":
		err = h.loadSearchingScenario(r.Context())
	case "announced":
		err = h.loadAnnouncedScenario(r.Context())
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scenario %q", req.Name), nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.Name
	writeJSON(w, http.StatusOK, map[string]any{"loaded": req.Name})
}

func (h *Handler) loadSearchingScenario(ctx context.Context) error {
	trust, err := spac.NewTrustAccount("230000000.00", 23000000)
	if err != nil {
		return err
	}
	rec := &spac.SPAC{
		ID:                  uuid.NewString(),
		Name:                "Meridian Horizon Acquisition Corp",
		Ticker:              "MHAC",
		IPODate:             deadline.Today().AddMonths(-10),
		TermMonths:          24,
		FiscalYearEndMonth:  time.December,
		FilerStatus:         deadline.FilerNonAccelerated,
		CommentResponseDays: spac.DefaultResponseDays,
		Trust:               trust,
		CreatedAt:           time.Now().UTC(),
	}
	return h.Store.CreateSPAC(ctx, rec)
}

func (h *Handler) loadAnnouncedScenario(ctx context.Context) error {
	trust, err := spac.NewTrustAccount("345600000.00", 34500000)
	if err != nil {
		return err
	}

	announced := deadline.Today().AddMonths(-2)
	vote := deadline.AddBusinessDays(deadline.Today(), 45)
	rec := &spac.SPAC{
		ID:                  uuid.NewString(),
		Name:                "Beacon Ridge Acquisition Corp II",
		Ticker:              "BRAC",
		IPODate:             deadline.Today().AddMonths(-20),
		TermMonths:          24,
		ExtensionMonths:     3,
		FiscalYearEndMonth:  time.December,
		FilerStatus:         deadline.FilerNonAccelerated,
		AnnouncedDealDate:   &announced,
		VoteDate:            &vote,
		CommentResponseDays: spac.DefaultResponseDays,
		Trust:               trust,
		CreatedAt:           time.Now().UTC(),
	}
	if err := h.Store.CreateSPAC(ctx, rec); err != nil {
		return err
	}

	letter := &spac.CommentLetter{
		ID:           uuid.NewString(),
		SPACID:       rec.ID,
		Form:         "DEFM14A",
		ReceivedOn:   deadline.SubtractBusinessDays(deadline.Today(), 3),
		ResponseDays: spac.DefaultResponseDays,
	}
	return h.Store.CreateCommentLetter(ctx, letter)
}
