package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/llm"
	"focusflow/adhd-assist/types"
)

// fakeChat is a ChatClient double recording calls and serving a canned reply.
type fakeChat struct {
	calls      int
	lastPrompt string
	response   string
	err        error
}

func (f *fakeChat) Chat(ctx context.Context, prompt string, opts ...llm.ChatOption) (llm.ChatResult, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return llm.ChatResult{}, f.err
	}
	return llm.ChatResult{Content: f.response}, nil
}

func newTestService(t *testing.T, chat *fakeChat, reader ContextReader, aiEnabled bool) *Service {
	t.Helper()
	settings := config.NewSettings(config.SettingsView{
		APIKey:       "test-key",
		BaseURL:      "http://example.invalid",
		Model:        "glm-4",
		RateLimit:    100,
		CacheEnabled: true,
		AIEnabled:    aiEnabled,
	})
	if reader == nil {
		reader = &fakeReader{}
	}
	return NewService(chat, NewCache(t.TempDir(), true), reader, settings)
}

func TestDecomposeTask_DisabledShortCircuits(t *testing.T) {
	chat := &fakeChat{response: "{}"}
	svc := newTestService(t, chat, nil, false)

	task := types.Task{Title: "Write report", Priority: types.PriorityHigh, DueDate: "2024-01-01"}
	result := svc.DecomposeTask(context.Background(), task)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 0, chat.calls, "disabled AI must not touch the network")

	fallback, ok := result.Fallback.(types.TaskDecomposition)
	require.True(t, ok)
	require.Len(t, fallback.Steps, 3)
	assert.Equal(t, "Preparation", fallback.Steps[0].Title)
	assert.Equal(t, "Execution", fallback.Steps[1].Title)
	assert.Equal(t, "Review", fallback.Steps[2].Title)
}

func TestDecomposeTask_ChatErrorDegrades(t *testing.T) {
	chat := &fakeChat{err: llm.ErrServiceUnavailable}
	svc := newTestService(t, chat, nil, true)

	result := svc.DecomposeTask(context.Background(), types.Task{Title: "t"})
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	fallback, ok := result.Fallback.(types.TaskDecomposition)
	require.True(t, ok)
	assert.NotEmpty(t, fallback.Steps, "fallback must match the success shape")
}

func TestDecomposeTask_CachesSuccess(t *testing.T) {
	chat := &fakeChat{response: `{"analysis": "split it", "steps": [{"title": "one"}]}`}
	svc := newTestService(t, chat, nil, true)
	task := types.Task{Title: "Write report"}

	first := svc.DecomposeTask(context.Background(), task)
	require.True(t, first.Success)
	assert.Equal(t, 1, chat.calls)

	second := svc.DecomposeTask(context.Background(), task)
	require.True(t, second.Success)
	assert.Equal(t, 1, chat.calls, "cache hit must not make a second network call")
	assert.Equal(t, first.Data, second.Data)

	// Different task content misses the cache.
	svc.DecomposeTask(context.Background(), types.Task{Title: "Other"})
	assert.Equal(t, 2, chat.calls)
}

func TestDecomposeTask_WrapsUnparseableOutput(t *testing.T) {
	chat := &fakeChat{response: "not json"}
	svc := newTestService(t, chat, nil, true)

	result := svc.DecomposeTask(context.Background(), types.Task{Title: "t"})
	require.True(t, result.Success)

	data, ok := result.Data.(types.TaskDecomposition)
	require.True(t, ok)
	assert.Equal(t, "not json", data.Analysis)
	assert.Empty(t, data.Steps)
}

func TestAnalyzeMood_NotCached(t *testing.T) {
	chat := &fakeChat{response: `{"mood_analysis": "doing fine"}`}
	svc := newTestService(t, chat, nil, true)
	mood := types.MoodRecord{UserID: "u1", MoodScore: 3, Date: "2024-03-01"}

	svc.AnalyzeMood(context.Background(), mood)
	svc.AnalyzeMood(context.Background(), mood)
	assert.Equal(t, 2, chat.calls, "per-event analyses must not be cached")
}

func TestAnalyzeMood_FallbackTracksScore(t *testing.T) {
	chat := &fakeChat{err: llm.ErrNetwork}
	svc := newTestService(t, chat, nil, true)

	low := svc.AnalyzeMood(context.Background(), types.MoodRecord{UserID: "u1", MoodScore: 1})
	lowFallback, ok := low.Fallback.(types.MoodAdvice)
	require.True(t, ok)
	require.NotEmpty(t, lowFallback.Suggestions)
	assert.Equal(t, "Breathing exercise", lowFallback.Suggestions[0].Title)

	high := svc.AnalyzeMood(context.Background(), types.MoodRecord{UserID: "u1", MoodScore: 5})
	highFallback, ok := high.Fallback.(types.MoodAdvice)
	require.True(t, ok)
	assert.Equal(t, "Record the win", highFallback.Suggestions[0].Title)
}

func TestAnalyzeMood_PromptCarriesContext(t *testing.T) {
	reader := &fakeReader{
		tasks: []types.Task{{Completed: true}, {Completed: true}, {Completed: false}},
		sleep: []types.SleepRecord{{QualityScore: 4}},
	}
	chat := &fakeChat{response: `{"mood_analysis": "ok"}`}
	svc := newTestService(t, chat, reader, true)

	svc.AnalyzeMood(context.Background(), types.MoodRecord{UserID: "u1", MoodScore: 3})
	assert.Contains(t, chat.lastPrompt, "67%")
	assert.Contains(t, chat.lastPrompt, "4")
}

func TestGenerateReading_CachedByTopicAndDifficulty(t *testing.T) {
	chat := &fakeChat{response: `{"title": "Space", "content": "stars", "difficulty_level": 3}`}
	svc := newTestService(t, chat, nil, true)

	svc.GenerateReading(context.Background(), "space", 3, "u1")
	svc.GenerateReading(context.Background(), "space", 3, "u1")
	assert.Equal(t, 1, chat.calls)

	svc.GenerateReading(context.Background(), "space", 4, "u1")
	assert.Equal(t, 2, chat.calls, "different difficulty is a different cache key")
}

func TestGenerateReading_WrapKeepsTopic(t *testing.T) {
	chat := &fakeChat{response: "just an essay, no json"}
	svc := newTestService(t, chat, nil, true)

	result := svc.GenerateReading(context.Background(), "space", 2, "u1")
	require.True(t, result.Success)

	data, ok := result.Data.(types.GeneratedReading)
	require.True(t, ok)
	assert.Equal(t, "space", data.Title)
	assert.Equal(t, "just an essay, no json", data.Content)
	assert.Equal(t, 2, data.DifficultyLevel)
}

func TestAnswerQuestion_ReturnsRawContent(t *testing.T) {
	chat := &fakeChat{response: "Try the pomodoro technique."}
	svc := newTestService(t, chat, nil, true)

	result := svc.AnswerQuestion(context.Background(), "How do I focus?", "u1", "")
	require.True(t, result.Success)

	answer, ok := result.Data.(types.Answer)
	require.True(t, ok)
	assert.Equal(t, "Try the pomodoro technique.", answer.Content)
}

func TestDailyTips_RotatesByCalendarDate(t *testing.T) {
	chat := &fakeChat{response: `{"tips": [{"title": "breathe"}]}`}
	svc := newTestService(t, chat, nil, true)

	day := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	svc.DailyTips(context.Background(), "u1")
	svc.DailyTips(context.Background(), "u1")
	assert.Equal(t, 1, chat.calls, "same user and day hits the cache")

	day = day.Add(24 * time.Hour)
	svc.DailyTips(context.Background(), "u1")
	assert.Equal(t, 2, chat.calls, "a new day is a new cache key")

	svc.DailyTips(context.Background(), "u2")
	assert.Equal(t, 3, chat.calls, "tips are per user")
}

func TestPredictPattern_RequiresHistory(t *testing.T) {
	reader := &fakeReader{moods: []types.MoodRecord{{MoodScore: 3}, {MoodScore: 4}}}
	chat := &fakeChat{response: "{}"}
	svc := newTestService(t, chat, reader, true)

	result := svc.PredictPattern(context.Background(), "u1", "mood")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not enough history")
	assert.Equal(t, 0, chat.calls)
	assert.NotNil(t, result.Fallback)
}

func TestPredictPattern_EnoughHistory(t *testing.T) {
	moods := make([]types.MoodRecord, 8)
	for i := range moods {
		moods[i] = types.MoodRecord{MoodScore: 3}
	}
	reader := &fakeReader{moods: moods}
	chat := &fakeChat{response: `{"pattern_analysis": "stable"}`}
	svc := newTestService(t, chat, reader, true)

	result := svc.PredictPattern(context.Background(), "u1", "mood")
	require.True(t, result.Success)

	data, ok := result.Data.(types.PatternPrediction)
	require.True(t, ok)
	assert.Equal(t, "stable", data.PatternAnalysis)
}

func TestPredictPattern_UnknownKind(t *testing.T) {
	chat := &fakeChat{response: "{}"}
	svc := newTestService(t, chat, nil, true)

	result := svc.PredictPattern(context.Background(), "u1", "weather")
	assert.False(t, result.Success)
	assert.Equal(t, 0, chat.calls)
}

func TestTestConnection(t *testing.T) {
	svc := newTestService(t, &fakeChat{response: "pong"}, nil, true)
	res := svc.TestConnection(context.Background())
	assert.True(t, res.Success)
	assert.Equal(t, "pong", res.Response)

	svc = newTestService(t, &fakeChat{err: errors.New("boom")}, nil, true)
	res = svc.TestConnection(context.Background())
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "boom")
}

func TestStatus(t *testing.T) {
	svc := newTestService(t, &fakeChat{}, nil, true)
	status := svc.Status()
	assert.True(t, status.AIEnabled)
	assert.True(t, status.APIConfigured)
	assert.True(t, status.CacheEnabled)
	assert.Equal(t, "glm-4", status.Model)
}

func TestUpdateConfig(t *testing.T) {
	svc := newTestService(t, &fakeChat{}, nil, true)
	svc.UpdateConfig("new-key", "glm-4-plus", "")

	status := svc.Status()
	assert.Equal(t, "glm-4-plus", status.Model)
	assert.True(t, status.APIConfigured)
}
