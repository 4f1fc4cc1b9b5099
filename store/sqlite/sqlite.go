/*
Package sqlite provides SQLite-backed persistence for the filing tracker.

PURPOSE:

	Stores the records the deadline engine is invoked against: SPAC
	entities, their recorded filings, and SEC comment letters, plus an audit
	trail of alert sweep runs. The engine itself never touches this package;
	the API layer reads records here and feeds plain values into the engine.

KEY TABLES:

	spacs:           SPAC entities with charter terms and trust figures
	filings:         Recorded filing obligations (filed_on marks completion)
	comment_letters: Comment letters and their response state
	alert_runs:      One row per background alert sweep, for audit and UI

DATES:

	All dates are stored as TEXT in YYYY-MM-DD. Money is stored as TEXT and
	parsed with decimal on the way out - never as REAL.

WAL MODE:

	SQLite is opened with WAL for better read concurrency. A sync.RWMutex
	guards the single writer; with PostgreSQL the database would handle this.

USAGE:

	store, err := sqlite.New("./data/filings.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/spacdesk/filing-engine/deadline"
	"github.com/spacdesk/filing-engine/spac"
)

// Store implements persistence for SPAC, filing, and comment-letter records.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent across the
	// pool; writes are serialized by the mutex regardless.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS spacs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		ticker TEXT,
		ipo_date TEXT NOT NULL,
		term_months INTEGER NOT NULL,
		extension_months INTEGER NOT NULL DEFAULT 0,
		fiscal_year_end_month INTEGER NOT NULL,
		filer_status TEXT NOT NULL,
		announced_deal_date TEXT,
		vote_date TEXT,
		comment_response_days INTEGER NOT NULL,
		trust_balance TEXT NOT NULL DEFAULT '0',
		public_shares INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS filings (
		id TEXT PRIMARY KEY,
		spac_id TEXT NOT NULL REFERENCES spacs(id),
		filing_type TEXT NOT NULL,
		period_end TEXT NOT NULL,
		filed_on TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_filings_spac
		ON filings(spac_id, period_end);

	-- One recorded obligation per SPAC / type / period
	CREATE UNIQUE INDEX IF NOT EXISTS idx_filings_unique_period
		ON filings(spac_id, filing_type, period_end);

	CREATE TABLE IF NOT EXISTS comment_letters (
		id TEXT PRIMARY KEY,
		spac_id TEXT NOT NULL REFERENCES spacs(id),
		form TEXT,
		received_on TEXT NOT NULL,
		response_days INTEGER NOT NULL,
		responded_on TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_comment_letters_spac
		ON comment_letters(spac_id, received_on);

	CREATE TABLE IF NOT EXISTS alert_runs (
		id TEXT PRIMARY KEY,
		ran_at TEXT NOT NULL,
		spacs_checked INTEGER NOT NULL,
		alerts_generated INTEGER NOT NULL,
		critical_alerts INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SPAC RECORDS
// =============================================================================

// CreateSPAC persists a SPAC record.
func (s *Store) CreateSPAC(ctx context.Context, rec *spac.SPAC) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spacs (id, name, ticker, ipo_date, term_months, extension_months,
			fiscal_year_end_month, filer_status, announced_deal_date, vote_date,
			comment_response_days, trust_balance, public_shares, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Ticker, rec.IPODate.String(),
		rec.TermMonths, rec.ExtensionMonths, int(rec.FiscalYearEndMonth),
		string(rec.FilerStatus), optionalDate(rec.AnnouncedDealDate), optionalDate(rec.VoteDate),
		rec.CommentResponseDays, rec.Trust.Balance.String(), rec.Trust.PublicShares,
		rec.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetSPAC returns one SPAC by ID, or ErrNotFound.
func (s *Store) GetSPAC(ctx context.Context, id string) (*spac.SPAC, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, ticker, ipo_date, term_months, extension_months,
			fiscal_year_end_month, filer_status, announced_deal_date, vote_date,
			comment_response_days, trust_balance, public_shares, created_at
		FROM spacs WHERE id = ?`, id)

	rec, err := scanSPAC(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return rec, err
}

// ListSPACs returns all SPAC records ordered by IPO date.
func (s *Store) ListSPACs(ctx context.Context) ([]*spac.SPAC, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, ticker, ipo_date, term_months, extension_months,
			fiscal_year_end_month, filer_status, announced_deal_date, vote_date,
			comment_response_days, trust_balance, public_shares, created_at
		FROM spacs ORDER BY ipo_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*spac.SPAC
	for rows.Next() {
		rec, err := scanSPAC(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SetVoteDate records (or clears) a SPAC's announced shareholder vote date.
func (s *Store) SetVoteDate(ctx context.Context, id string, voteDate *deadline.TimePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE spacs SET vote_date = ? WHERE id = ?`,
		optionalDate(voteDate), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// =============================================================================
// FILING RECORDS
// =============================================================================

// CreateFiling records a filing obligation.
func (s *Store) CreateFiling(ctx context.Context, f *spac.Filing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filings (id, spac_id, filing_type, period_end, filed_on)
		VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.SPACID, string(f.Type), f.PeriodEnd.String(), optionalDate(f.FiledOn))
	return err
}

// ListFilings returns a SPAC's recorded filings ordered by period end.
func (s *Store) ListFilings(ctx context.Context, spacID string) ([]*spac.Filing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, spac_id, filing_type, period_end, filed_on
		FROM filings WHERE spac_id = ? ORDER BY period_end`, spacID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*spac.Filing
	for rows.Next() {
		var f spac.Filing
		var filingType, periodEnd string
		var filedOn sql.NullString
		if err := rows.Scan(&f.ID, &f.SPACID, &filingType, &periodEnd, &filedOn); err != nil {
			return nil, err
		}
		f.Type = deadline.FilingType(filingType)
		if f.PeriodEnd, err = deadline.ParseDate(periodEnd); err != nil {
			return nil, err
		}
		if f.FiledOn, err = parseOptionalDate(filedOn); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

// MarkFilingFiled records the actual submission date for a filing.
func (s *Store) MarkFilingFiled(ctx context.Context, id string, filedOn deadline.TimePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE filings SET filed_on = ? WHERE id = ?`,
		filedOn.String(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// =============================================================================
// COMMENT LETTERS
// =============================================================================

// CreateCommentLetter records a received comment letter.
func (s *Store) CreateCommentLetter(ctx context.Context, c *spac.CommentLetter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comment_letters (id, spac_id, form, received_on, response_days, responded_on)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.SPACID, c.Form, c.ReceivedOn.String(), c.ResponseDays, optionalDate(c.RespondedOn))
	return err
}

// ListCommentLetters returns a SPAC's comment letters, most recent first.
func (s *Store) ListCommentLetters(ctx context.Context, spacID string) ([]*spac.CommentLetter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, spac_id, form, received_on, response_days, responded_on
		FROM comment_letters WHERE spac_id = ? ORDER BY received_on DESC`, spacID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*spac.CommentLetter
	for rows.Next() {
		var c spac.CommentLetter
		var receivedOn string
		var respondedOn sql.NullString
		if err := rows.Scan(&c.ID, &c.SPACID, &c.Form, &receivedOn, &c.ResponseDays, &respondedOn); err != nil {
			return nil, err
		}
		if c.ReceivedOn, err = deadline.ParseDate(receivedOn); err != nil {
			return nil, err
		}
		if c.RespondedOn, err = parseOptionalDate(respondedOn); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// MarkCommentLetterResponded records the response date for a comment letter.
func (s *Store) MarkCommentLetterResponded(ctx context.Context, id string, respondedOn deadline.TimePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE comment_letters SET responded_on = ? WHERE id = ?`,
		respondedOn.String(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// =============================================================================
// ALERT RUNS
// =============================================================================

// AlertRun is one recorded background alert sweep.
type AlertRun struct {
	ID              string
	RanAt           time.Time
	SPACsChecked    int
	AlertsGenerated int
	CriticalAlerts  int
}

// RecordAlertRun persists a sweep run for audit.
func (s *Store) RecordAlertRun(ctx context.Context, run AlertRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alert_runs (id, ran_at, spacs_checked, alerts_generated, critical_alerts)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.RanAt.Format(time.RFC3339), run.SPACsChecked, run.AlertsGenerated, run.CriticalAlerts)
	return err
}

// ListAlertRuns returns recent sweep runs, newest first.
func (s *Store) ListAlertRuns(ctx context.Context, limit int) ([]AlertRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ran_at, spacs_checked, alerts_generated, critical_alerts
		FROM alert_runs ORDER BY ran_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AlertRun
	for rows.Next() {
		var run AlertRun
		var ranAt string
		if err := rows.Scan(&run.ID, &ranAt, &run.SPACsChecked, &run.AlertsGenerated, &run.CriticalAlerts); err != nil {
			return nil, err
		}
		if run.RanAt, err = time.Parse(time.RFC3339, ranAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// =============================================================================
// HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSPAC(row rowScanner) (*spac.SPAC, error) {
	var rec spac.SPAC
	var ipoDate, filerStatus, trustBalance, createdAt string
	var fyMonth int
	var announcedDeal, voteDate sql.NullString

	err := row.Scan(&rec.ID, &rec.Name, &rec.Ticker, &ipoDate,
		&rec.TermMonths, &rec.ExtensionMonths, &fyMonth, &filerStatus,
		&announcedDeal, &voteDate, &rec.CommentResponseDays,
		&trustBalance, &rec.Trust.PublicShares, &createdAt)
	if err != nil {
		return nil, err
	}

	rec.FiscalYearEndMonth = time.Month(fyMonth)
	rec.FilerStatus = deadline.FilerStatus(filerStatus)
	if rec.IPODate, err = deadline.ParseDate(ipoDate); err != nil {
		return nil, err
	}
	if rec.AnnouncedDealDate, err = parseOptionalDate(announcedDeal); err != nil {
		return nil, err
	}
	if rec.VoteDate, err = parseOptionalDate(voteDate); err != nil {
		return nil, err
	}
	if rec.Trust.Balance, err = decimal.NewFromString(trustBalance); err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func optionalDate(tp *deadline.TimePoint) any {
	if tp == nil || tp.IsZero() {
		return nil
	}
	return tp.String()
}

func parseOptionalDate(s sql.NullString) (*deadline.TimePoint, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	tp, err := deadline.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &tp, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
