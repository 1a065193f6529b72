package ai

import (
	"fmt"

	"focusflow/adhd-assist/types"
)

// Static fallback payloads, one per operation, matching the shape of a
// successful response. They are returned whenever the live AI call cannot
// produce an answer, so the UI always has something to render.

func fallbackTaskDecomposition() types.TaskDecomposition {
	return types.TaskDecomposition{
		Analysis: "The AI service is temporarily unavailable, so here is a basic task breakdown.",
		Steps: []types.TaskStep{
			{
				Title:         "Preparation",
				Description:   "Gather the materials and information the task needs",
				EstimatedTime: "10-15 minutes",
				Tips:          "Tidy your workspace and remove distractions first",
			},
			{
				Title:         "Execution",
				Description:   "Work through the main part of the task as planned",
				EstimatedTime: "depends on task complexity",
				Tips:          "Set a timer: 25 minutes of focus, then a 5 minute break",
			},
			{
				Title:         "Review",
				Description:   "Check the result and make any needed adjustments",
				EstimatedTime: "5-10 minutes",
				Tips:          "Go over the outcome carefully against what you expected",
			},
		},
		AttentionTraps: []string{"phone notifications", "web browsing", "perfectionism"},
		MotivationTips: []string{"set small rewards", "find a study buddy", "track your progress"},
	}
}

func fallbackMoodAdvice(score int) types.MoodAdvice {
	var suggestions []types.MoodSuggestion

	switch {
	case score <= 2:
		suggestions = []types.MoodSuggestion{
			{Type: "immediate", Title: "Breathing exercise", Description: "Do 5 minutes of deep breathing to relax"},
			{Type: "short_term", Title: "Light exercise", Description: "Take a walk or do some gentle stretching"},
			{Type: "long_term", Title: "Reach out", Description: "Talk with a friend or family member about how you feel"},
		}
	case score >= 4:
		suggestions = []types.MoodSuggestion{
			{Type: "immediate", Title: "Record the win", Description: "Write down today's positive experience"},
			{Type: "short_term", Title: "Share the mood", Description: "Share your good mood with someone else"},
			{Type: "long_term", Title: "Keep the habit", Description: "Keep up the routines that are working for you"},
		}
	default:
		suggestions = []types.MoodSuggestion{
			{Type: "immediate", Title: "Mindfulness", Description: "Focus on the present moment and your surroundings"},
			{Type: "short_term", Title: "Adjust the plan", Description: "Lighten today's plan to reduce pressure"},
			{Type: "long_term", Title: "Regular rhythm", Description: "Keep sleep and meals on a steady schedule"},
		}
	}

	return types.MoodAdvice{
		MoodAnalysis:   fmt.Sprintf("Based on your mood score of %d, it is worth paying attention to emotion regulation.", score),
		Suggestions:    suggestions,
		PreventionTips: []string{"keep a regular schedule", "exercise moderately", "stay socially connected"},
		Encouragement:  "Every day is a fresh start. You can handle this!",
	}
}

func fallbackSleepAdvice() types.SleepAdvice {
	return types.SleepAdvice{
		SleepAnalysis: "Based on your sleep record, improving sleep quality is worth focusing on.",
		ImprovementSuggestions: []types.SleepSuggestion{
			{
				Category:    "sleep_hygiene",
				Title:       "Wind down",
				Description: "Avoid screens for the hour before bed",
				Priority:    "high",
			},
			{
				Category:    "environment",
				Title:       "Sleep environment",
				Description: "Keep the bedroom quiet, dark and cool",
				Priority:    "medium",
			},
		},
		SleepScheduleTips:  "Try to go to bed and wake up at the same times each day",
		NextDayPreparation: "Lay out clothes and essentials for tomorrow before bed",
	}
}

func fallbackReading(topic string, difficulty int) types.GeneratedReading {
	return types.GeneratedReading{
		Title:                fmt.Sprintf("An introduction to %s", topic),
		Content:              fmt.Sprintf("This is a short introduction to %s. The AI service is temporarily unavailable, so this is a simplified version. Please try again later or browse our other content.", topic),
		KeyPoints:            []string{"basic concepts", "important characteristics", "practical uses"},
		DiscussionQuestions:  []string{fmt.Sprintf("What is %s?", topic), fmt.Sprintf("Why does %s matter?", topic)},
		DifficultyLevel:      difficulty,
		EstimatedReadingTime: "3-5 minutes",
	}
}

func fallbackDailyTips() types.TipsPayload {
	return types.TipsPayload{
		Tips: []types.Tip{
			{
				Title:           "Pomodoro technique",
				Description:     "Work in cycles of 25 minutes of focus plus 5 minutes of rest",
				Difficulty:      "easy",
				ExpectedBenefit: "Better focus and efficiency",
			},
			{
				Title:           "Daily checklist",
				Description:     "Make a short task list each day and tick items off",
				Difficulty:      "easy",
				ExpectedBenefit: "A sense of progress and structure",
			},
			{
				Title:           "Scheduled breaks",
				Description:     "Stand up and move for 5 minutes every hour",
				Difficulty:      "easy",
				ExpectedBenefit: "Sustained energy and attention",
			},
		},
	}
}

func fallbackAnswer() types.Answer {
	return types.Answer{
		Content: "Sorry, I cannot answer your question right now. Please try again later.",
	}
}

func fallbackPrediction() types.PatternPrediction {
	return types.PatternPrediction{
		PatternAnalysis: "The AI service is temporarily unavailable, so no pattern analysis could be generated.",
		Predictions: []types.Prediction{
			{
				Timeframe:       "short_term",
				Prediction:      "Keep logging your records; trends become reliable with steady data",
				Confidence:      "low",
				Recommendations: []string{"record daily", "review your entries weekly"},
			},
		},
		ImprovementOpportunities: []string{"consistent daily logging"},
	}
}
