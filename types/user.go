package types

import "time"

type User struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Preferences map[string]string `json:"preferences,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// UserProfile describes learning and attention traits used to personalize
// prompts. There is no profile editor yet, so DefaultUserProfile is what
// every user gets.
type UserProfile struct {
	ADHDType          string   `json:"adhd_type"`
	AttentionSpan     string   `json:"attention_span"`
	LearningStyle     string   `json:"learning_style"`
	MotivationFactors []string `json:"motivation_factors"`
	DifficultyAreas   []string `json:"difficulty_areas"`
}

func DefaultUserProfile() UserProfile {
	return UserProfile{
		ADHDType:          "mixed",
		AttentionSpan:     "short",
		LearningStyle:     "visual",
		MotivationFactors: []string{"achievement", "social"},
		DifficultyAreas:   []string{"time_management", "organization"},
	}
}
