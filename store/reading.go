package store

import (
	"fmt"

	"focusflow/adhd-assist/types"
)

func (s *Store) CreateReading(content types.ReadingContent) error {
	_, err := s.db.Exec(
		`INSERT INTO reading_contents (id, title, content, difficulty_level, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		content.ID, content.Title, content.Content, content.DifficultyLevel,
		content.Category, formatTime(content.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert reading content: %w", err)
	}
	return nil
}

// ListReading returns reading contents, newest first, optionally filtered by
// difficulty (0 means any) and category ("" means any).
func (s *Store) ListReading(difficulty int, category string) ([]types.ReadingContent, error) {
	query := `SELECT id, title, content, difficulty_level, category, created_at FROM reading_contents WHERE 1=1`
	var args []any

	if difficulty > 0 {
		query += ` AND difficulty_level = ?`
		args = append(args, difficulty)
	}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("select reading contents: %w", err)
	}
	defer rows.Close()

	var contents []types.ReadingContent
	for rows.Next() {
		var c types.ReadingContent
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Title, &c.Content, &c.DifficultyLevel, &c.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("scan reading content: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		contents = append(contents, c)
	}
	return contents, rows.Err()
}
