// Package storage provides SQLite-based persistence for attempt history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only finished attempts are recorded; no simulation state is ever saved or
// restored from here.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for attempt history.
type Store struct {
	db *sql.DB
}

// MarkEntry is one finished attempt: where it ended and how. Death marks
// from previous attempts are what the rendering layer overlays on a stage,
// which is why the simulation has to be deterministic in the first place.
type MarkEntry struct {
	ID        int64
	StageID   string
	Outcome   string // "dead" or "cleared"
	Cause     string // death cause, empty for cleared attempts
	X, Y      float64
	Score     int
	Duration  float64 // attempt length in seconds
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS attempt_marks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			x REAL NOT NULL,
			y REAL NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_marks_stage_id ON attempt_marks(stage_id);
		CREATE INDEX IF NOT EXISTS idx_marks_recent ON attempt_marks(stage_id, created_at DESC);
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

// SaveMark records a finished attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveMark(m MarkEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO attempt_marks (stage_id, outcome, cause, x, y, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.StageID, m.Outcome, m.Cause, m.X, m.Y, m.Score, m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save mark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// MarksForStage retrieves the most recent N attempt marks for a stage.
func (s *Store) MarksForStage(stageID string, limit int) ([]MarkEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, stage_id, outcome, cause, x, y, score, duration_secs, created_at
		 FROM attempt_marks
		 WHERE stage_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		stageID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query marks: %w", err)
	}
	defer rows.Close()

	var entries []MarkEntry
	for rows.Next() {
		var e MarkEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.StageID, &e.Outcome, &e.Cause, &e.X, &e.Y, &e.Score, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest clear score for the given stage.
// Returns 0 if the stage has never been cleared.
func (s *Store) BestScore(stageID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM attempt_marks WHERE stage_id = ? AND outcome = 'cleared'",
		stageID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearMarks deletes all recorded attempts for the given stage.
func (s *Store) ClearMarks(stageID string) error {
	_, err := s.db.Exec("DELETE FROM attempt_marks WHERE stage_id = ?", stageID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear marks: %w", err)
	}
	return nil
}
