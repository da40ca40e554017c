package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// MatchEntry is a stored match result.
type MatchEntry struct {
	ID     int64
	GameID string
	core.MatchResult
	CreatedAt time.Time
}

// GameStats totals the stored matches of one game. Wins and losses are
// counted for the left side.
type GameStats struct {
	GameID       string
	Matches      int
	Wins         int
	Losses       int
	LongestRally int
	LastPlayed   time.Time // zero before the first match
}

// SaveMatch stores a finished match and, when the left side scored, its
// score, both or neither.
func (s *Store) SaveMatch(gameID string, m core.MatchResult) (int64, error) {
	var id int64
	err := s.tx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO matches (game_id, score1, score2, winner, rallies, longest_rally, ticks)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			gameID, m.Score1, m.Score2, m.Winner, m.Rallies, m.LongestRally, m.Ticks,
		)
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		if m.Score1 > 0 {
			_, err = insertScore(tx, gameID, m.Score1)
		}
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("storage: save match: %w", err)
	}
	return id, nil
}

// RecentMatches returns up to limit matches, newest first. A non-positive
// limit means 20.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	entries, err := queryAll(s.db, func(rows *sql.Rows, e *MatchEntry) error {
		var at any
		err := rows.Scan(&e.ID, &e.GameID, &e.Score1, &e.Score2, &e.Winner,
			&e.Rallies, &e.LongestRally, &e.Ticks, &at)
		e.CreatedAt = parseTime(at)
		return err
	}, `SELECT id, game_id, score1, score2, winner, rallies, longest_rally, ticks, created_at
		FROM matches WHERE game_id = ? ORDER BY id DESC LIMIT ?`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: recent matches: %w", err)
	}
	return entries, nil
}

// Stats totals every stored match of a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(winner = 1), 0), COALESCE(SUM(winner = 2), 0),
		        COALESCE(MAX(longest_rally), 0), MAX(created_at)
		 FROM matches WHERE game_id = ?`, gameID,
	).Scan(&stats.Matches, &stats.Wins, &stats.Losses, &stats.LongestRally, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

// ClearScores deletes the scores and matches of a game.
func (s *Store) ClearScores(gameID string) error {
	err := s.tx(func(tx *sql.Tx) error {
		for _, table := range []string{"scores", "matches"} {
			if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}
