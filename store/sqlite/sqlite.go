/*
Package sqlite provides a SQLite-backed snapshot of computed holidays.

PURPOSE:
  Materializes engine output into a table other systems can query or join
  against (e.g. payroll or scheduling jobs that only speak SQL). The engine
  remains the source of truth; this store is written by the export command
  and read by consumers.

KEY TABLES:
  holidays: One row per (date, name, type, state). National rows carry an
            empty state; state rows carry the lower-case state code.

INDEXES:
  - idx_holidays_unique:     Upsert key, makes re-exports idempotent
  - idx_holidays_state_date: Year/state lookups (hot path)

CONCURRENCY:
  Uses sync.RWMutex for thread-safety, same as the rest of the store layer.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block
  a running export.

USAGE:
  store, err := sqlite.New("./data/feriados.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  err = store.SaveHolidays(ctx, "rj", engine.Holidays(2024, "rj", feriados.AllTypes))

SEE ALSO:
  - cmd/feriados-export/main.go: Writes the snapshot
  - feriados/engine.go: Produces the rows
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/holiday-engine/generic"
)

// Store persists computed holidays in SQLite.
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
	if dbPath == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

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
	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT NOT NULL,
		year INTEGER NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_unique
		ON holidays(date, name, type, state);
	CREATE INDEX IF NOT EXISTS idx_holidays_state_date
		ON holidays(state, year, date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAY STORE
// =============================================================================

// stateColumn is the state value stored for a holiday. Only state-scoped
// holidays are keyed by state; national rows are shared.
func stateColumn(h generic.Holiday, state string) string {
	if h.Type == generic.TypeState {
		return strings.ToLower(state)
	}
	return ""
}

// SaveHolidays upserts holidays computed for the given state (empty for
// national only) in a single transaction.
func (s *Store) SaveHolidays(ctx context.Context, state string, holidays []generic.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO holidays (date, year, name, type, state, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, name, type, state) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for _, h := range holidays {
		if _, err := stmt.ExecContext(ctx,
			h.Date.String(),
			h.Date.Year(),
			h.Name,
			string(h.Type),
			stateColumn(h, state),
			now,
		); err != nil {
			return fmt.Errorf("failed to save holiday %s %q: %w", h.Date, h.Name, err)
		}
	}

	return tx.Commit()
}

// GetHolidays returns the national holidays of a year plus the given state's
// holidays, ordered by date. Rows sharing a date keep insertion order.
func (s *Store) GetHolidays(ctx context.Context, year int, state string) ([]generic.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT date, name, type
		FROM holidays
		WHERE year = ? AND (state = '' OR state = ?)
		ORDER BY date ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query, year, strings.ToLower(state))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []generic.Holiday
	for rows.Next() {
		var h generic.Holiday
		var dateStr, typ string
		if err := rows.Scan(&dateStr, &h.Name, &typ); err != nil {
			return nil, err
		}
		date, err := generic.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", dateStr, err)
		}
		h.Date = date
		h.Type = generic.HolidayType(typ)
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// IsHoliday checks if a date is a national holiday or a holiday of the given state.
func (s *Store) IsHoliday(ctx context.Context, date generic.Date, state string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT COUNT(*) FROM holidays
		WHERE date = ? AND (state = '' OR state = ?)
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, date.String(), strings.ToLower(state)).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountHolidays returns the number of stored rows, for export reporting.
func (s *Store) CountHolidays(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM holidays").Scan(&count)
	return count, err
}
