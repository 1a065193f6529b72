package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focusflow/adhd-assist/types"
)

func TestParseOrWrap_ValidJSON(t *testing.T) {
	raw := `{"analysis": "a big task", "steps": [{"title": "start", "description": "begin", "estimated_time": "5", "tips": "go"}]}`

	var payload types.TaskDecomposition
	ParseOrWrap(raw, &payload, func(s string) {
		t.Fatal("wrap should not be called for valid JSON")
	})

	assert.Equal(t, "a big task", payload.Analysis)
	assert.Len(t, payload.Steps, 1)
	assert.Equal(t, "start", payload.Steps[0].Title)
}

func TestParseOrWrap_NotJSON(t *testing.T) {
	var payload types.MoodAdvice
	ParseOrWrap("not json", &payload, func(raw string) {
		payload = types.MoodAdvice{MoodAnalysis: raw}
	})

	assert.Equal(t, "not json", payload.MoodAnalysis)
	assert.Empty(t, payload.Suggestions)
}

func TestParseOrWrap_CodeFence(t *testing.T) {
	raw := "Here you go:\n```json\n{\"mood_analysis\": \"steady\"}\n```\nHope that helps."

	var payload types.MoodAdvice
	ParseOrWrap(raw, &payload, func(string) {
		t.Fatal("wrap should not be called")
	})

	assert.Equal(t, "steady", payload.MoodAnalysis)
}

func TestParseOrWrap_SurroundingProse(t *testing.T) {
	raw := `Sure! {"sleep_analysis": "restless", "sleep_schedule_tips": "earlier bedtime"} Let me know.`

	var payload types.SleepAdvice
	ParseOrWrap(raw, &payload, func(string) {
		t.Fatal("wrap should not be called")
	})

	assert.Equal(t, "restless", payload.SleepAnalysis)
	assert.Equal(t, "earlier bedtime", payload.SleepScheduleTips)
}

func TestParseOrWrap_TypeMismatchWraps(t *testing.T) {
	// Valid JSON, wrong shape: tips should be an array.
	raw := `{"tips": "just one string"}`

	var payload types.TipsPayload
	ParseOrWrap(raw, &payload, func(s string) {
		payload = types.TipsPayload{Tips: []types.Tip{{Title: "tip", Description: s}}}
	})

	assert.Len(t, payload.Tips, 1)
	assert.Equal(t, raw, payload.Tips[0].Description)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, found := ExtractJSON(`{"analysis": "never closed`)
	assert.False(t, found)
}
