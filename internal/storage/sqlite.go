// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values recorded with a result.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished session: the integer score shown on the
// scoreboard plus the exact claimed percentage and how the run ended.
type ResultEntry struct {
	ID        int64
	GameID    string
	Score     int
	Percent   float64
	Outcome   string
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			percent REAL NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, percent DESC);
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

// SaveResult records a finished session for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(gameID string, score int, percent float64, outcome string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (game_id, score, percent, outcome) VALUES (?, ?, ?, ?)",
		gameID, score, percent, outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the top N results for the given game, ordered by
// claimed percentage descending.
func (s *Store) TopResults(gameID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, percent, outcome, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY percent DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// AllResults retrieves all results for the given game (no limit).
func (s *Store) AllResults(gameID string) ([]ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, percent, outcome, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY percent DESC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Percent, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles the driver returning either time.Time or the
// textual DATETIME default.
func parseCreatedAt(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest recorded score for the given game.
// Returns 0 if no results exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// BestPercent returns the highest claimed percentage recorded for the
// given game, 0 if no results exist.
func (s *Store) BestPercent(gameID string) (float64, error) {
	var pct sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(percent) FROM results WHERE game_id = ?",
		gameID,
	).Scan(&pct)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best percent: %w", err)
	}

	if !pct.Valid {
		return 0, nil
	}

	return pct.Float64, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	GamesCount  int
	Wins        int
	HighScore   int
	BestPercent float64
	AvgPercent  float64
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = ?), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MAX(percent), 0),
		        COALESCE(AVG(percent), 0)
		 FROM results WHERE game_id = ?`,
		OutcomeWon, gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.BestPercent, &stats.AvgPercent)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}
