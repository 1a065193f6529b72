package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"focusflow/adhd-assist/types"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

func (s *Store) CreateUser(user types.User) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO users (id, name, email, preferences, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, string(prefs), formatTime(user.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(id string) (types.User, error) {
	var user types.User
	var prefs, createdAt string

	err := s.db.QueryRow(
		`SELECT id, name, email, preferences, created_at FROM users WHERE id = ?`, id,
	).Scan(&user.ID, &user.Name, &user.Email, &prefs, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.User{}, ErrNotFound
	}
	if err != nil {
		return types.User{}, fmt.Errorf("select user: %w", err)
	}

	if err := json.Unmarshal([]byte(prefs), &user.Preferences); err != nil {
		user.Preferences = nil
	}
	user.CreatedAt = parseTime(createdAt)
	return user, nil
}
