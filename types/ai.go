package types

// AIResult is the uniform envelope every AI operation returns. On success
// Data carries the typed payload; on failure Error is set and Fallback
// carries a static payload of the same shape, so callers never branch on
// AI availability.
type AIResult struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Fallback any    `json:"fallback,omitempty"`
}

// UserContext summarizes a user's recent activity for prompt enrichment.
// It is recomputed on every request and never returned to the caller.
type UserContext struct {
	TaskCompletionPercent int     `json:"task_completion_percent"`
	MoodAverage           float64 `json:"mood_average"`
	SleepQualityAverage   float64 `json:"sleep_quality_average"`
	TaskPressure          string  `json:"task_pressure"` // "low", "medium", "high"
}

// Task pressure levels.
const (
	PressureLow    = "low"
	PressureMedium = "medium"
	PressureHigh   = "high"
)

// TaskDecomposition is the payload shape for task decomposition.
type TaskDecomposition struct {
	Analysis       string     `json:"analysis"`
	Steps          []TaskStep `json:"steps,omitempty"`
	AttentionTraps []string   `json:"attention_traps,omitempty"`
	MotivationTips []string   `json:"motivation_tips,omitempty"`
}

type TaskStep struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	Tips          string `json:"tips"`
}

// MoodAdvice is the payload shape for mood analysis.
type MoodAdvice struct {
	MoodAnalysis   string           `json:"mood_analysis"`
	Suggestions    []MoodSuggestion `json:"suggestions,omitempty"`
	PreventionTips []string         `json:"prevention_tips,omitempty"`
	Encouragement  string           `json:"encouragement,omitempty"`
}

type MoodSuggestion struct {
	Type        string `json:"type"` // "immediate", "short_term", "long_term"
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty,omitempty"` // "easy", "medium", "hard"
}

// SleepAdvice is the payload shape for sleep analysis.
type SleepAdvice struct {
	SleepAnalysis          string            `json:"sleep_analysis"`
	ImprovementSuggestions []SleepSuggestion `json:"improvement_suggestions,omitempty"`
	SleepScheduleTips      string            `json:"sleep_schedule_tips,omitempty"`
	NextDayPreparation     string            `json:"next_day_preparation,omitempty"`
}

type SleepSuggestion struct {
	Category    string `json:"category"` // "sleep_hygiene", "environment", "routine", "stress"
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // "high", "medium", "low"
}

// GeneratedReading is the payload shape for reading-content generation.
type GeneratedReading struct {
	Title                string   `json:"title"`
	Content              string   `json:"content"`
	KeyPoints            []string `json:"key_points,omitempty"`
	DiscussionQuestions  []string `json:"discussion_questions,omitempty"`
	DifficultyLevel      int      `json:"difficulty_level"`
	EstimatedReadingTime string   `json:"estimated_reading_time,omitempty"`
}

// TipsPayload is the payload shape for daily personalized tips.
type TipsPayload struct {
	Tips []Tip `json:"tips"`
}

type Tip struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Difficulty      string `json:"difficulty,omitempty"`
	ExpectedBenefit string `json:"expected_benefit,omitempty"`
}

// Answer is the payload shape for free-form Q&A.
type Answer struct {
	Content string `json:"content"`
}

// PatternPrediction is the payload shape for behavior pattern prediction.
type PatternPrediction struct {
	PatternAnalysis          string       `json:"pattern_analysis"`
	Predictions              []Prediction `json:"predictions,omitempty"`
	RiskFactors              []string     `json:"risk_factors,omitempty"`
	ImprovementOpportunities []string     `json:"improvement_opportunities,omitempty"`
}

type Prediction struct {
	Timeframe       string   `json:"timeframe"`  // "short_term", "medium_term", "long_term"
	Prediction      string   `json:"prediction"`
	Confidence      string   `json:"confidence"` // "high", "medium", "low"
	Recommendations []string `json:"recommendations,omitempty"`
}
