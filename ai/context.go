package ai

import (
	"math"
	"time"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/types"
)

// recentLimit caps how many records feed the context aggregation.
const recentLimit = 30

// ContextReader supplies a user's recent records. Implemented by the sqlite
// store; tests use in-memory doubles.
type ContextReader interface {
	RecentTasks(userID string, limit int) ([]types.Task, error)
	RecentMoods(userID string, limit int) ([]types.MoodRecord, error)
	RecentSleep(userID string, limit int) ([]types.SleepRecord, error)
}

// BuildContext computes a fresh activity snapshot for prompt enrichment.
// Store failures degrade to a zero-value context; context is an enhancement,
// never a reason to fail a request.
func BuildContext(reader ContextReader, userID string) types.UserContext {
	tasks, err := reader.RecentTasks(userID, recentLimit)
	if err != nil {
		config.Logger.Warn("Failed to load recent tasks for context:", err)
	}
	moods, err := reader.RecentMoods(userID, recentLimit)
	if err != nil {
		config.Logger.Warn("Failed to load recent moods for context:", err)
	}
	sleep, err := reader.RecentSleep(userID, recentLimit)
	if err != nil {
		config.Logger.Warn("Failed to load recent sleep records for context:", err)
	}

	return types.UserContext{
		TaskCompletionPercent: taskCompletionPercent(tasks),
		MoodAverage:           moodAverage(moods),
		SleepQualityAverage:   sleepQualityAverage(sleep),
		TaskPressure:          taskPressure(tasks, time.Now()),
	}
}

func taskCompletionPercent(tasks []types.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}

func moodAverage(moods []types.MoodRecord) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.MoodScore
	}
	return roundTo1(float64(sum) / float64(len(moods)))
}

func sleepQualityAverage(records []types.SleepRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, s := range records {
		sum += s.QualityScore
	}
	return roundTo1(float64(sum) / float64(len(records)))
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// taskPressure classifies workload from overdue and high-priority counts.
func taskPressure(tasks []types.Task, now time.Time) string {
	if len(tasks) == 0 {
		return types.PressureLow
	}

	overdue := 0
	urgent := 0
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if due, ok := parseDueDate(t.DueDate); ok && due.Before(now) {
			overdue++
		}
		if t.Priority == types.PriorityHigh {
			urgent++
		}
	}

	switch {
	case overdue > 2 || urgent > 3:
		return types.PressureHigh
	case overdue > 0 || urgent > 1:
		return types.PressureMedium
	default:
		return types.PressureLow
	}
}

func parseDueDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
