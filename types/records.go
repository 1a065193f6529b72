package types

import "time"

type MoodRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MoodScore int       `json:"mood_score"` // 1-5
	Notes     string    `json:"notes,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`

	AIAnalysis *AIResult `json:"ai_analysis,omitempty"`
}

type SleepRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Bedtime      string    `json:"bedtime"`
	WakeTime     string    `json:"wake_time"`
	QualityScore int       `json:"quality_score"` // 1-5
	Notes        string    `json:"notes,omitempty"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`

	AIAnalysis *AIResult `json:"ai_analysis,omitempty"`
}

type ReadingContent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	DifficultyLevel int       `json:"difficulty_level"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at"`
}
