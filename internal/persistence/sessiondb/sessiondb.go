// Package sessiondb keeps an operational sqlite index of game sessions:
// when they ran, who joined, and the final standings. It is a read model
// for operators; the rules engine never touches it.
package sessiondb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	db *sql.DB
}

func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	ended_at    TEXT,
	journal     TEXT
);
CREATE TABLE IF NOT EXISTS session_players (
	session_id  TEXT NOT NULL,
	player_id   INTEGER NOT NULL,
	joined_at   TEXT NOT NULL,
	left_at     TEXT,
	final_score INTEGER,
	final_money INTEGER,
	PRIMARY KEY (session_id, player_id)
);
`

func (d *DB) Close() error { return d.db.Close() }

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func (d *DB) SessionStarted(id, journalPath string) error {
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO sessions (id, started_at, journal) VALUES (?, ?, ?)`,
		id, now(), journalPath)
	return err
}

func (d *DB) SessionEnded(id string) error {
	_, err := d.db.Exec(`UPDATE sessions SET ended_at = ? WHERE id = ?`, now(), id)
	return err
}

func (d *DB) PlayerJoined(sessionID string, playerID int) error {
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO session_players (session_id, player_id, joined_at) VALUES (?, ?, ?)`,
		sessionID, playerID, now())
	return err
}

func (d *DB) PlayerLeft(sessionID string, playerID int, score, money int) error {
	_, err := d.db.Exec(
		`UPDATE session_players SET left_at = ?, final_score = ?, final_money = ? WHERE session_id = ? AND player_id = ?`,
		now(), score, money, sessionID, playerID)
	return err
}

// PlayerCount reports how many players ever joined a session.
func (d *DB) PlayerCount(sessionID string) (int, error) {
	var n int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM session_players WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}
