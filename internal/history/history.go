// Package history provides SQLite-backed storage of validation run
// summaries, so learners can see progress across sessions. It is optional
// and disabled unless configured.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// Store wraps an SQLite database holding run summaries.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// Run is one persisted validation run summary.
type Run struct {
	RunID          string
	ExerciseID     string
	RequiredPassed int
	RequiredTotal  int
	OptionalPassed int
	OptionalTotal  int
	OverallPass    bool
	Duration       time.Duration
	RecordedAt     time.Time
}

// DefaultPath returns the history database path under the learning path
// root.
func DefaultPath(basePath string) string {
	return filepath.Join(basePath, ".pathcheck", "history.db")
}

// Open opens the history database at the given path, creating parent
// directories as needed. WAL mode is enabled for concurrent reads.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	s := &Store{conn: conn, path: path}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies pending schema migrations.
func (s *Store) migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1Runs},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

const migrationV1Runs = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	exercise_id TEXT NOT NULL,
	required_passed INTEGER NOT NULL,
	required_total INTEGER NOT NULL,
	optional_passed INTEGER NOT NULL,
	optional_total INTEGER NOT NULL,
	overall_pass INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	recorded_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_exercise_id ON runs(exercise_id);
`

// Record persists a validation report's summary.
func (s *Store) Record(rep models.ValidationReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		INSERT INTO runs (run_id, exercise_id, required_passed, required_total,
			optional_passed, optional_total, overall_pass, duration_ms, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.RunID, rep.ExerciseID,
		rep.RequiredPassed, rep.RequiredTotal,
		rep.OptionalPassed, rep.OptionalTotal,
		rep.OverallPass, rep.Duration.Milliseconds(),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", rep.RunID, err)
	}
	return nil
}

// RecentRuns returns the most recent runs for an exercise, newest first.
func (s *Store) RecentRuns(exerciseID string, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.conn.Query(`
		SELECT run_id, exercise_id, required_passed, required_total,
			optional_passed, optional_total, overall_pass, duration_ms, recorded_at
		FROM runs
		WHERE exercise_id = ?
		ORDER BY recorded_at DESC
		LIMIT ?`,
		exerciseID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs for %s: %w", exerciseID, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		if err := rows.Scan(&r.RunID, &r.ExerciseID,
			&r.RequiredPassed, &r.RequiredTotal,
			&r.OptionalPassed, &r.OptionalTotal,
			&r.OverallPass, &durationMS, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
