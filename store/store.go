package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists users, tasks, mood records, sleep records and reading
// contents in a local sqlite database. It also serves as the context
// aggregator's record source.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	preferences TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'low',
	category TEXT NOT NULL DEFAULT 'general',
	due_date TEXT NOT NULL DEFAULT '',
	completed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS mood_records (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	mood_score INTEGER NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mood_user ON mood_records(user_id, date DESC);

CREATE TABLE IF NOT EXISTS sleep_records (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	bedtime TEXT NOT NULL,
	wake_time TEXT NOT NULL,
	quality_score INTEGER NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sleep_user ON sleep_records(user_id, date DESC);

CREATE TABLE IF NOT EXISTS reading_contents (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	difficulty_level INTEGER NOT NULL DEFAULT 1,
	category TEXT NOT NULL DEFAULT 'general',
	created_at TEXT NOT NULL
);
`

// Open opens (creating if needed) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
