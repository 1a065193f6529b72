package store

import (
	"fmt"

	"focusflow/adhd-assist/types"
)

func (s *Store) CreateMood(mood types.MoodRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO mood_records (id, user_id, mood_score, notes, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		mood.ID, mood.UserID, mood.MoodScore, mood.Notes, mood.Date, formatTime(mood.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert mood record: %w", err)
	}
	return nil
}

// RecentMoods returns the user's most recent mood records, newest first.
func (s *Store) RecentMoods(userID string, limit int) ([]types.MoodRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, mood_score, notes, date, created_at
		 FROM mood_records WHERE user_id = ? ORDER BY date DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select mood records: %w", err)
	}
	defer rows.Close()

	var moods []types.MoodRecord
	for rows.Next() {
		var m types.MoodRecord
		var createdAt string
		if err := rows.Scan(&m.ID, &m.UserID, &m.MoodScore, &m.Notes, &m.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan mood record: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

func (s *Store) CreateSleep(sleep types.SleepRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO sleep_records (id, user_id, bedtime, wake_time, quality_score, notes, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sleep.ID, sleep.UserID, sleep.Bedtime, sleep.WakeTime, sleep.QualityScore,
		sleep.Notes, sleep.Date, formatTime(sleep.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert sleep record: %w", err)
	}
	return nil
}

// RecentSleep returns the user's most recent sleep records, newest first.
func (s *Store) RecentSleep(userID string, limit int) ([]types.SleepRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, bedtime, wake_time, quality_score, notes, date, created_at
		 FROM sleep_records WHERE user_id = ? ORDER BY date DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select sleep records: %w", err)
	}
	defer rows.Close()

	var records []types.SleepRecord
	for rows.Next() {
		var r types.SleepRecord
		var createdAt string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Bedtime, &r.WakeTime, &r.QualityScore,
			&r.Notes, &r.Date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan sleep record: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
