/*
scheduler.go - Background alert sweep

PURPOSE:

	Periodically recomputes deadline alerts for every stored SPAC and
	records a run row for audit and UI display. The engine itself never
	runs in the background - the sweep just invokes the same pure functions
	the alerts endpoint does, on a timer.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - One logical "now" per sweep, shared across every SPAC checked
  - Records runs via the store; delivery of the alerts themselves is a
    consumer concern (UI badges, email digests) outside this service

USAGE:

	sweep := NewAlertSweep(store)
	sweep.Start()
	// ... later
	sweep.Stop()
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/store/sqlite"
)

// AlertSweep periodically recomputes alerts for all SPACs.
type AlertSweep struct {
	Store         *sqlite.Store
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewAlertSweep creates a sweep with the default daily-ish interval.
func NewAlertSweep(store *sqlite.Store) *AlertSweep {
	return &AlertSweep{
		Store:         store,
		CheckInterval: 6 * time.Hour,
		Enabled:       true,
		stop:          make(chan bool),
	}
}

// Start begins the sweep loop.
func (as *AlertSweep) Start() {
	as.mu.Lock()
	defer as.mu.Unlock()

	if !as.Enabled {
		log.Println("[AlertSweep] Disabled, not starting")
		return
	}

	as.ticker = time.NewTicker(as.CheckInterval)
	as.wg.Add(1)
	go as.run()

	log.Printf("[AlertSweep] Started with check interval: %v", as.CheckInterval)
}

// Stop halts the sweep loop and waits for any in-flight sweep.
func (as *AlertSweep) Stop() {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.ticker == nil {
		return
	}
	as.ticker.Stop()
	close(as.stop)
	as.wg.Wait()
	log.Println("[AlertSweep] Stopped")
}

func (as *AlertSweep) run() {
	defer as.wg.Done()

	// Sweep once at startup so a restarted server has fresh numbers.
	as.RunOnce(context.Background())

	for {
		select {
		case <-as.ticker.C:
			as.RunOnce(context.Background())
		case <-as.stop:
			return
		}
	}
}

// RunOnce performs a single sweep and records the run.
func (as *AlertSweep) RunOnce(ctx context.Context) {
	now := deadline.Today()

	records, err := as.Store.ListSPACs(ctx)
	if err != nil {
		log.Printf("[AlertSweep] Failed to list SPACs: %v", err)
		return
	}

	total, critical := 0, 0
	for _, rec := range records {
		filings, err := as.Store.ListFilings(ctx, rec.ID)
		if err != nil {
			log.Printf("[AlertSweep] Failed to load filings for %s: %v", rec.ID, err)
			continue
		}
		alerts, err := buildSPACAlerts(rec, filings, now)
		if err != nil {
			log.Printf("[AlertSweep] Failed to compute alerts for %s: %v", rec.ID, err)
			continue
		}
		total += len(alerts)
		for _, a := range alerts {
			if a.Severity == deadline.SeverityCritical {
				critical++
			}
		}
	}

	run := sqlite.AlertRun{
		ID:              uuid.NewString(),
		RanAt:           time.Now().UTC(),
		SPACsChecked:    len(records),
		AlertsGenerated: total,
		CriticalAlerts:  critical,
	}
	if err := as.Store.RecordAlertRun(ctx, run); err != nil {
		log.Printf("[AlertSweep] Failed to record run: %v", err)
		return
	}
	log.Printf("[AlertSweep] Checked %d SPACs: %d alerts (%d critical)",
		run.SPACsChecked, run.AlertsGenerated, run.CriticalAlerts)
}
