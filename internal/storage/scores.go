package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one stored score. For match games it is the left side's
// final score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertScore(db execer, gameID string, score int) (int64, error) {
	res, err := db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SaveScore stores score and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	id, err := insertScore(s.db, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores, best first. Ties keep insertion
// order. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := queryAll(s.db, func(rows *sql.Rows, e *ScoreEntry) error {
		var at any
		err := rows.Scan(&e.ID, &e.GameID, &e.Score, &at)
		e.CreatedAt = parseTime(at)
		return err
	}, `SELECT id, game_id, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score of a game, 0 when none is stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}
