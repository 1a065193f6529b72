package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"focusflow/adhd-assist/types"
)

// Prompt builders are pure: they format typed domain input into a single
// instruction string that spells out the exact JSON shape the model must
// return. They never perform I/O.

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

func contextLine(label string, value any, hasData bool) string {
	if !hasData {
		return fmt.Sprintf("%s: no data", label)
	}
	return fmt.Sprintf("%s: %v", label, value)
}

// DecomposeTaskPrompt asks for an ADHD-friendly breakdown of a task.
func DecomposeTaskPrompt(task types.Task) string {
	return fmt.Sprintf(`As an ADHD support expert, break the following task into small steps suited to ADHD users:

Task title: %s
Task description: %s
Priority: %s
Due date: %s

Answer in JSON with this shape:
{
  "analysis": "task analysis",
  "steps": [
    {
      "title": "step title",
      "description": "what to do",
      "estimated_time": "estimated minutes",
      "tips": "execution advice"
    }
  ],
  "attention_traps": ["likely attention traps"],
  "motivation_tips": ["motivation advice"]
}`,
		task.Title, orNone(task.Description), orNone(task.Priority), orNone(task.DueDate))
}

// MoodAdvicePrompt asks for emotion-regulation advice for a mood entry,
// enriched with the user's recent activity context.
func MoodAdvicePrompt(mood types.MoodRecord, userCtx types.UserContext) string {
	return fmt.Sprintf(`Provide emotion-regulation advice for an ADHD user based on this data:

Current mood score: %d/5
Mood notes: %s
Recorded at: %s
%s
%s
%s

Answer in JSON with this shape:
{
  "mood_analysis": "analysis of the current mood state",
  "suggestions": [
    {
      "type": "immediate|short_term|long_term",
      "title": "suggestion title",
      "description": "concrete advice",
      "difficulty": "easy|medium|hard"
    }
  ],
  "prevention_tips": ["preventive measures"],
  "encouragement": "a few encouraging words"
}`,
		mood.MoodScore, orNone(mood.Notes), mood.Date,
		contextLine("Recent task completion", fmt.Sprintf("%d%%", userCtx.TaskCompletionPercent), userCtx.TaskCompletionPercent > 0),
		contextLine("Recent sleep quality", userCtx.SleepQualityAverage, userCtx.SleepQualityAverage > 0),
		contextLine("Task pressure", userCtx.TaskPressure, userCtx.TaskPressure != ""))
}

// SleepAdvicePrompt asks for sleep-improvement advice for a sleep entry.
func SleepAdvicePrompt(sleep types.SleepRecord, userCtx types.UserContext) string {
	return fmt.Sprintf(`Provide sleep-improvement advice for an ADHD user based on this data:

Sleep quality score: %d/5
Bedtime: %s
Wake time: %s
Sleep notes: %s
Date: %s
%s
%s

Answer in JSON with this shape:
{
  "sleep_analysis": "analysis of sleep quality",
  "improvement_suggestions": [
    {
      "category": "sleep_hygiene|environment|routine|stress",
      "title": "suggestion title",
      "description": "concrete advice",
      "priority": "high|medium|low"
    }
  ],
  "sleep_schedule_tips": "schedule advice",
  "next_day_preparation": "how to prepare for tomorrow"
}`,
		sleep.QualityScore, sleep.Bedtime, sleep.WakeTime, orNone(sleep.Notes), sleep.Date,
		contextLine("Recent mood average", userCtx.MoodAverage, userCtx.MoodAverage > 0),
		contextLine("Task pressure", userCtx.TaskPressure, userCtx.TaskPressure != ""))
}

// ReadingContentPrompt asks for a short ADHD-friendly article.
func ReadingContentPrompt(topic string, difficulty int, profile types.UserProfile) string {
	profileJSON, _ := json.Marshal(profile)
	return fmt.Sprintf(`Generate reading content suited to an ADHD user:

Topic: %s
Difficulty level: %d/5
User traits: %s

Write an article for an ADHD reader that:
1. has a clear structure with short paragraphs
2. uses plain, concise language
3. includes an interesting fact or story
4. is moderately sized (300-500 words)
5. ends with questions to think about

Answer in JSON with this shape:
{
  "title": "article title",
  "content": "article body",
  "key_points": ["key takeaways"],
  "discussion_questions": ["discussion questions"],
  "difficulty_level": %d,
  "estimated_reading_time": "estimated minutes"
}`, topic, difficulty, profileJSON, difficulty)
}

// QuestionPrompt asks for a free-form answer, optionally with background.
func QuestionPrompt(question, background string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User question: %s\n", question)
	if strings.TrimSpace(background) != "" {
		fmt.Fprintf(&b, "\nBackground: %s\n", background)
	}
	b.WriteString("\nAs an ADHD support expert, answer the question in a concise and friendly way. If it relates to ADHD, learning, time management or emotion regulation, give professional advice.")
	return b.String()
}

// DailyTipsPrompt asks for 3-5 actionable tips for a category.
func DailyTipsPrompt(profile types.UserProfile, category string) string {
	profileJSON, _ := json.Marshal(profile)
	return fmt.Sprintf(`Generate personalized tips from this user profile:

User traits: %s
Tip category: %s

Provide 3-5 concrete, actionable tips in JSON with this shape:
{
  "tips": [
    {
      "title": "tip title",
      "description": "detailed description",
      "difficulty": "easy|medium|hard",
      "expected_benefit": "expected effect"
    }
  ]
}`, profileJSON, category)
}

// PatternPrompt asks for a trend prediction over a user's history of the
// given record kind. History is embedded as JSON.
func PatternPrompt(kind string, history any) string {
	historyJSON, _ := json.Marshal(history)
	return fmt.Sprintf(`Analyze this ADHD user's %s history and predict future trends:

History: %s

Answer in JSON with this shape:
{
  "pattern_analysis": "pattern analysis",
  "predictions": [
    {
      "timeframe": "short_term|medium_term|long_term",
      "prediction": "predicted development",
      "confidence": "high|medium|low",
      "recommendations": ["advice"]
    }
  ],
  "risk_factors": ["risk factors"],
  "improvement_opportunities": ["opportunities to improve"]
}`, kind, historyJSON)
}

// ConnectionTestPrompt is used by the config test endpoint.
func ConnectionTestPrompt() string {
	return "Hello, please reply with a short test message."
}
