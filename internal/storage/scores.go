package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry is one cleared level.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int    // level that was cleared
	RunID     string // shared by every level cleared in one session
	CreatedAt time.Time
}

// GameStats aggregates every cleared level recorded for a mode.
type GameStats struct {
	GameID     string
	GamesCount int // cleared levels recorded
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
}

const scoreColumns = `SELECT id, game_id, score, level, run_id, created_at FROM scores`

// SaveScore records a cleared level and returns the new row id.
func (s *Store) SaveScore(gameID string, score, level int, runID string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, level, run_id) VALUES (?, ?, ?, ?)",
		gameID, score, level, runID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best limit scores of a mode, highest first. Ties
// keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(scoreColumns+` WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
}

// RunScores returns the levels cleared in one session, in the order they
// were cleared.
func (s *Store) RunScores(runID string) ([]ScoreEntry, error) {
	return s.queryScores(scoreColumns+` WHERE run_id = ? ORDER BY id ASC`, runID)
}

// ClearScores deletes every score of a mode and reports how many rows
// were removed.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: clear scores: %w", err)
	}
	return res.RowsAffected()
}

// GetGameStats aggregates the scores of a mode. A mode with no scores
// returns zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE game_id = ?`, gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestLevel, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`, gameID,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: last played: %w", err)
	default:
		stats.LastPlayed = parseTime(last)
	}
	return stats, nil
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var created any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Level, &e.RunID, &created); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// parseTime accepts the driver's time.Time or SQLite's text DATETIME.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.DateTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
