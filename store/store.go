// Package store persists finished-game records to a local SQLite database:
// one append-only row per player score and one per game outcome. The core
// never reads these back except for the leaderboard and history listings.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// AIUsername is the reserved name AI scores are recorded under. Leaderboard
// queries exclude it.
const AIUsername = "AI"

type ScoreRecord struct {
	ID           string
	Username     string
	Score        int
	SurvivalTime time.Duration
	CreatedAt    time.Time
}

type HistoryRecord struct {
	ID           string
	Username     string
	Winner       string
	HumanScore   int
	AIScore      int
	SurvivalTime time.Duration
	CreatedAt    time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %s: %w", path, err)
	}

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			survival_seconds REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS game_history (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			winner TEXT NOT NULL,
			human_score INTEGER NOT NULL,
			ai_score INTEGER NOT NULL,
			survival_seconds REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("cannot create schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScore appends one player's score record and returns it with its
// generated id and timestamp filled in.
func (s *Store) SaveScore(rec ScoreRecord) (ScoreRecord, error) {
	rec.ID = uuid.NewString()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO scores (id, username, score, survival_seconds, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Username, rec.Score, rec.SurvivalTime.Seconds(), rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("cannot save score for %s: %w", rec.Username, err)
	}
	return rec, nil
}

// SaveHistory appends one finished game's outcome record.
func (s *Store) SaveHistory(rec HistoryRecord) (HistoryRecord, error) {
	rec.ID = uuid.NewString()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO game_history (id, username, winner, human_score, ai_score, survival_seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Username, rec.Winner, rec.HumanScore, rec.AIScore,
		rec.SurvivalTime.Seconds(), rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return HistoryRecord{}, fmt.Errorf("cannot save game history for %s: %w", rec.Username, err)
	}
	return rec, nil
}

// TopScores returns up to n of the highest human scores, best first. AI
// scores are excluded.
func (s *Store) TopScores(n int) ([]ScoreRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, username, score, survival_seconds, created_at
		 FROM scores WHERE username != ? ORDER BY score DESC LIMIT ?`,
		AIUsername, n,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot query top scores: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

// RecentGames returns up to n game outcomes, most recent first.
func (s *Store) RecentGames(n int) ([]HistoryRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, username, winner, human_score, ai_score, survival_seconds, created_at
		 FROM game_history ORDER BY created_at DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot query game history: %w", err)
	}
	defer rows.Close()

	var recs []HistoryRecord
	for rows.Next() {
		var rec HistoryRecord
		var seconds float64
		var created string
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Winner, &rec.HumanScore, &rec.AIScore, &seconds, &created); err != nil {
			return nil, fmt.Errorf("cannot scan game history row: %w", err)
		}
		rec.SurvivalTime = time.Duration(seconds * float64(time.Second))
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanScores(rows *sql.Rows) ([]ScoreRecord, error) {
	var recs []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		var seconds float64
		var created string
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Score, &seconds, &created); err != nil {
			return nil, fmt.Errorf("cannot scan score row: %w", err)
		}
		rec.SurvivalTime = time.Duration(seconds * float64(time.Second))
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
