package store

import (
	"database/sql"
	"errors"
	"fmt"

	"focusflow/adhd-assist/types"
)

func (s *Store) CreateTask(task types.Task) error {
	_, err := s.db.Exec(
		`INSERT INTO tasks (id, user_id, title, description, priority, category, due_date, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.UserID, task.Title, task.Description, task.Priority,
		task.Category, task.DueDate, task.Completed, formatTime(task.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// RecentTasks returns the user's most recent tasks, newest first.
func (s *Store) RecentTasks(userID string, limit int) ([]types.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, description, priority, category, due_date, completed, created_at
		 FROM tasks WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		var t types.Task
		var createdAt string
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
			&t.Category, &t.DueDate, &t.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.CreatedAt = parseTime(createdAt)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(id string, update types.TaskUpdate) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, priority = ?, due_date = ?, completed = ? WHERE id = ?`,
		update.Title, update.Description, update.Priority, update.DueDate, update.Completed, id,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetTask(id string) (types.Task, error) {
	var t types.Task
	var createdAt string

	err := s.db.QueryRow(
		`SELECT id, user_id, title, description, priority, category, due_date, completed, created_at
		 FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority,
		&t.Category, &t.DueDate, &t.Completed, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Task{}, ErrNotFound
	}
	if err != nil {
		return types.Task{}, fmt.Errorf("select task: %w", err)
	}

	t.CreatedAt = parseTime(createdAt)
	return t, nil
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
