// Package storage provides SQLite-based persistence for swarm runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry is one stored run.
type RunEntry struct {
	ID         int64
	RunID      string
	Difficulty string
	Initials   string
	Score      int
	Kills      int
	Survived   float64 // seconds
	Seed       int64
	CreatedAt  time.Time
}

// RunStats aggregates the runs of one difficulty.
type RunStats struct {
	Difficulty   string
	Runs         int
	HighScore    int
	AvgScore     float64
	TotalKills   int64
	BestSurvival float64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			initials TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			survived_secs REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Saving the same run id twice keeps the
// first record. Returns the row id.
func (s *Store) SaveRun(run core.RunRecord) (int64, error) {
	if run.ID == "" {
		return 0, errors.New("storage: run has no id")
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, difficulty, initials, score, kills, survived_secs, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO NOTHING`,
		run.ID, run.Difficulty, run.Initials, run.Score, run.Kills, run.Survived, run.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, run_id, difficulty, initials, score, kills, survived_secs, seed, created_at`

// TopRuns retrieves the best runs, highest score first. An empty
// difficulty matches every difficulty.
func (s *Store) TopRuns(difficulty string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE (? = '' OR difficulty = ?)
		 ORDER BY score DESC, survived_secs DESC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves one run. Returns nil if the run is unknown.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Difficulty, &e.Initials, &e.Score,
			&e.Kills, &e.Survived, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the difficulty ("" for any).
// Returns 0 if no runs exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE (? = '' OR difficulty = ?)",
		difficulty, difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes the runs of a difficulty ("" for all).
func (s *Store) ClearRuns(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE (? = '' OR difficulty = ?)", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every difficulty played.
func (s *Store) Stats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(kills), MAX(survived_secs), MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var st RunStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Runs, &st.HighScore, &st.AvgScore,
			&st.TotalKills, &st.BestSurvival, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
