/*
server.go - HTTP router and middleware configuration

PURPOSE:

	Configures the HTTP router (chi), middleware stack, and route
	definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
 1. Logger:     Request logging
 2. Recoverer:  Panic recovery (500 instead of crash)
 3. RequestID:  Unique ID per request for tracing
 4. CORS:       Cross-origin requests for the dashboard frontend

SECURITY NOTE:

	No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/holidays", h.ListHolidays)

		// Ad-hoc deadline calculations
		r.Route("/deadlines", func(r chi.Router) {
			r.Post("/compute", h.ComputeDeadline)
			r.Post("/events", h.ComputeEventDeadline)
		})

		// SPAC routes
		r.Route("/spacs", func(r chi.Router) {
			r.Get("/", h.ListSPACs)
			r.Post("/", h.CreateSPAC)
			r.Get("/{id}", h.GetSPAC)
			r.Get("/{id}/deadlines", h.GetSPACDeadlines)
			r.Get("/{id}/schedule", h.GetSPACSchedule)
			r.Get("/{id}/alerts", h.GetSPACAlerts)
			r.Get("/{id}/redemption-price", h.GetRedemptionPrice)
			r.Put("/{id}/vote-date", h.SetVoteDate)
			r.Get("/{id}/filings", h.ListSPACFilings)
			r.Post("/{id}/filings", h.CreateSPACFiling)
			r.Post("/{id}/filings/{filingID}/filed", h.MarkFilingFiled)
			r.Get("/{id}/comment-letters", h.ListCommentLetters)
			r.Post("/{id}/comment-letters", h.CreateCommentLetter)
			r.Post("/{id}/comment-letters/{letterID}/responded", h.RespondCommentLetter)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Get("/alert-runs", h.ListAlertRuns)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	// Minimal index so hitting the root in a browser is not a dead end.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>SPAC Filing Deadline Tracker</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>SPAC Filing Deadline Tracker API</h1>
<ul>
<li><a href="/api/spacs">/api/spacs</a> - List SPACs</li>
<li><a href="/api/holidays?year=2026">/api/holidays?year=2026</a> - Federal holidays</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo scenarios</li>
</ul>
</body>
</html>`))
	})

	return r
}
