package types

import "time"

// Task priorities. The pressure calculation treats "high" as urgent.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	DueDate     string    `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`

	// AISuggestions carries the decomposition result attached at creation
	// time when AI features are enabled. Not persisted.
	AISuggestions *AIResult `json:"ai_suggestions,omitempty"`
}

// TaskUpdate is the mutable subset accepted by the update endpoint.
type TaskUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
}
