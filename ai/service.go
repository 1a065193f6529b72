package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusflow/adhd-assist/config"
	"focusflow/adhd-assist/llm"
	"focusflow/adhd-assist/types"
)

// ErrDisabled indicates the AI feature flag is off; operations short-circuit
// to their static fallback without any network call.
var ErrDisabled = errors.New("ai features are disabled")

// minPredictionHistory is the fewest records pattern prediction will work with.
const minPredictionHistory = 7

// Cache kinds. Only idempotent, user-invariant generations are cached;
// per-event analyses and Q&A are tied to non-repeating inputs.
const (
	cacheKindTaskDecompose  = "task_decompose"
	cacheKindReadingContent = "reading_content"
	cacheKindDailyTips      = "daily_tips"
)

// Service orchestrates every AI operation: cache lookup, context gathering,
// prompt building, the chat call, parse-or-wrap and cache write-through.
// Any failure along the way degrades to a static fallback; errors never
// propagate past this layer.
type Service struct {
	client   llm.ChatClient
	cache    *Cache
	reader   ContextReader
	settings *config.Settings

	now func() time.Time
}

func NewService(client llm.ChatClient, cache *Cache, reader ContextReader, settings *config.Settings) *Service {
	return &Service{
		client:   client,
		cache:    cache,
		reader:   reader,
		settings: settings,
		now:      time.Now,
	}
}

func ok(data any) types.AIResult {
	return types.AIResult{Success: true, Data: data}
}

func degraded(err error, fallback any) types.AIResult {
	return types.AIResult{Success: false, Error: err.Error(), Fallback: fallback}
}

func (s *Service) enabled() bool {
	return s.settings.Snapshot().AIEnabled
}

// DecomposeTask breaks a task into ADHD-friendly steps. Results are cached
// by task content for 24h.
func (s *Service) DecomposeTask(ctx context.Context, task types.Task) types.AIResult {
	if !s.enabled() {
		return degraded(ErrDisabled, fallbackTaskDecomposition())
	}

	keyInput := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
	}{task.Title, task.Description, task.Priority, task.DueDate}
	key := Key(cacheKindTaskDecompose, keyInput)

	var payload types.TaskDecomposition
	if s.cache.Get(key, &payload) {
		return ok(payload)
	}

	result, err := s.client.Chat(ctx, llm.DecomposeTaskPrompt(task), llm.WithTemperature(0.8))
	if err != nil {
		config.Logger.Error("Task decomposition failed:", err)
		return degraded(err, fallbackTaskDecomposition())
	}

	llm.ParseOrWrap(result.Content, &payload, func(raw string) {
		payload = types.TaskDecomposition{Analysis: raw}
	})

	s.cache.Put(key, payload)
	return ok(payload)
}

// AnalyzeMood produces advice for a single mood entry, enriched with the
// user's recent activity. Not cached: each entry is a unique event.
func (s *Service) AnalyzeMood(ctx context.Context, mood types.MoodRecord) types.AIResult {
	if !s.enabled() {
		return degraded(ErrDisabled, fallbackMoodAdvice(mood.MoodScore))
	}

	userCtx := BuildContext(s.reader, mood.UserID)

	result, err := s.client.Chat(ctx, llm.MoodAdvicePrompt(mood, userCtx))
	if err != nil {
		config.Logger.Error("Mood analysis failed:", err)
		return degraded(err, fallbackMoodAdvice(mood.MoodScore))
	}

	var payload types.MoodAdvice
	llm.ParseOrWrap(result.Content, &payload, func(raw string) {
		payload = types.MoodAdvice{MoodAnalysis: raw}
	})
	return ok(payload)
}

// AnalyzeSleep produces advice for a single sleep entry. Not cached.
func (s *Service) AnalyzeSleep(ctx context.Context, sleep types.SleepRecord) types.AIResult {
	if !s.enabled() {
		return degraded(ErrDisabled, fallbackSleepAdvice())
	}

	userCtx := BuildContext(s.reader, sleep.UserID)

	result, err := s.client.Chat(ctx, llm.SleepAdvicePrompt(sleep, userCtx), llm.WithTemperature(0.6))
	if err != nil {
		config.Logger.Error("Sleep analysis failed:", err)
		return degraded(err, fallbackSleepAdvice())
	}

	var payload types.SleepAdvice
	llm.ParseOrWrap(result.Content, &payload, func(raw string) {
		payload = types.SleepAdvice{SleepAnalysis: raw}
	})
	return ok(payload)
}

// GenerateReading creates a personalized article. Cached by topic,
// difficulty and profile. Content generation gets a larger token budget.
func (s *Service) GenerateReading(ctx context.Context, topic string, difficulty int, userID string) types.AIResult {
	if difficulty < 1 || difficulty > 5 {
		difficulty = 3
	}

	if !s.enabled() {
		return degraded(ErrDisabled, fallbackReading(topic, difficulty))
	}

	profile := types.DefaultUserProfile()

	keyInput := struct {
		Topic      string            `json:"topic"`
		Difficulty int               `json:"difficulty"`
		Profile    types.UserProfile `json:"profile"`
	}{topic, difficulty, profile}
	key := Key(cacheKindReadingContent, keyInput)

	var payload types.GeneratedReading
	if s.cache.Get(key, &payload) {
		return ok(payload)
	}

	result, err := s.client.Chat(ctx, llm.ReadingContentPrompt(topic, difficulty, profile),
		llm.WithTemperature(0.8), llm.WithMaxTokens(1500))
	if err != nil {
		config.Logger.Error("Reading content generation failed:", err)
		return degraded(err, fallbackReading(topic, difficulty))
	}

	llm.ParseOrWrap(result.Content, &payload, func(raw string) {
		payload = types.GeneratedReading{
			Title:           topic,
			Content:         raw,
			DifficultyLevel: difficulty,
		}
	})

	s.cache.Put(key, payload)
	return ok(payload)
}

// AnswerQuestion answers a free-form question with profile and activity
// context folded into the prompt. Not cached: conversational input does
// not repeat.
func (s *Service) AnswerQuestion(ctx context.Context, question, userID, background string) types.AIResult {
	if !s.enabled() {
		return degraded(ErrDisabled, fallbackAnswer())
	}

	userCtx := BuildContext(s.reader, userID)
	enriched := fmt.Sprintf("%s\nUser traits: %s\nRecent activity: task completion %d%%, mood average %.1f, sleep quality %.1f, task pressure %s",
		background, profileSummary(types.DefaultUserProfile()),
		userCtx.TaskCompletionPercent, userCtx.MoodAverage, userCtx.SleepQualityAverage, userCtx.TaskPressure)

	result, err := s.client.Chat(ctx, llm.QuestionPrompt(question, enriched))
	if err != nil {
		config.Logger.Error("Question answering failed:", err)
		return degraded(err, fallbackAnswer())
	}

	return ok(types.Answer{Content: result.Content})
}

func profileSummary(p types.UserProfile) string {
	return fmt.Sprintf("adhd_type=%s attention_span=%s learning_style=%s", p.ADHDType, p.AttentionSpan, p.LearningStyle)
}

// DailyTips generates 3-5 personalized tips, cached per user per calendar
// day so they rotate once a day.
func (s *Service) DailyTips(ctx context.Context, userID string) types.AIResult {
	if !s.enabled() {
		return degraded(ErrDisabled, fallbackDailyTips())
	}

	keyInput := struct {
		UserID string `json:"user_id"`
		Date   string `json:"date"`
	}{userID, s.now().Format("2006-01-02")}
	key := Key(cacheKindDailyTips, keyInput)

	var payload types.TipsPayload
	if s.cache.Get(key, &payload) {
		return ok(payload)
	}

	userCtx := BuildContext(s.reader, userID)
	category := tipCategory(userCtx)

	result, err := s.client.Chat(ctx, llm.DailyTipsPrompt(types.DefaultUserProfile(), category), llm.WithTemperature(0.8))
	if err != nil {
		config.Logger.Error("Daily tips generation failed:", err)
		return degraded(err, fallbackDailyTips())
	}

	llm.ParseOrWrap(result.Content, &payload, func(raw string) {
		payload = types.TipsPayload{
			Tips: []types.Tip{{Title: "Personalized tip", Description: raw}},
		}
	})

	s.cache.Put(key, payload)
	return ok(payload)
}

// tipCategory picks the advice category the user most needs right now.
func tipCategory(userCtx types.UserContext) string {
	switch {
	case userCtx.TaskPressure == types.PressureHigh:
		return "time_management"
	case userCtx.MoodAverage > 0 && userCtx.MoodAverage < 3:
		return "emotion_regulation"
	case userCtx.SleepQualityAverage > 0 && userCtx.SleepQualityAverage < 3:
		return "sleep"
	default:
		return "general"
	}
}

// PredictPattern analyzes a user's history of the given kind ("task",
// "mood" or "sleep") and predicts trends. Requires at least 7 records.
func (s *Service) PredictPattern(ctx context.Context, userID, kind string) types.AIResult {
	if !s.enabled() {
		return degraded(ErrDisabled, fallbackPrediction())
	}

	history, count, err := s.history(userID, kind)
	if err != nil {
		config.Logger.Error("Failed to load history for prediction:", err)
		return degraded(err, fallbackPrediction())
	}
	if count < minPredictionHistory {
		return degraded(
			fmt.Errorf("not enough history for prediction: have %d records, need %d", count, minPredictionHistory),
			fallbackPrediction())
	}

	result, err := s.client.Chat(ctx, llm.PatternPrompt(kind, history), llm.WithTemperature(0.6))
	if err != nil {
		config.Logger.Error("Pattern prediction failed:", err)
		return degraded(err, fallbackPrediction())
	}

	var payload types.PatternPrediction
	llm.ParseOrWrap(result.Content, &payload, func(raw string) {
		payload = types.PatternPrediction{PatternAnalysis: raw}
	})
	return ok(payload)
}

func (s *Service) history(userID, kind string) (any, int, error) {
	switch kind {
	case "mood":
		records, err := s.reader.RecentMoods(userID, recentLimit)
		return records, len(records), err
	case "sleep":
		records, err := s.reader.RecentSleep(userID, recentLimit)
		return records, len(records), err
	case "task":
		records, err := s.reader.RecentTasks(userID, recentLimit)
		return records, len(records), err
	default:
		return nil, 0, fmt.Errorf("unknown history kind %q", kind)
	}
}

// ConnectionTest reports whether the upstream API is reachable with the
// current configuration.
type ConnectionTest struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Response string `json:"response,omitempty"`
}

func (s *Service) TestConnection(ctx context.Context) ConnectionTest {
	result, err := s.client.Chat(ctx, llm.ConnectionTestPrompt(), llm.WithMaxTokens(50))
	if err != nil {
		return ConnectionTest{Success: false, Message: err.Error()}
	}
	return ConnectionTest{
		Success:  true,
		Message:  "connection test succeeded",
		Response: result.Content,
	}
}

// Status describes the AI subsystem for the status endpoint.
type Status struct {
	AIEnabled     bool   `json:"ai_enabled"`
	APIConfigured bool   `json:"api_configured"`
	CacheEnabled  bool   `json:"cache_enabled"`
	Model         string `json:"model"`
}

func (s *Service) Status() Status {
	snap := s.settings.Snapshot()
	return Status{
		AIEnabled:     snap.AIEnabled,
		APIConfigured: s.settings.Configured(),
		CacheEnabled:  snap.CacheEnabled,
		Model:         snap.Model,
	}
}

// UpdateConfig applies a runtime configuration change.
func (s *Service) UpdateConfig(apiKey, model, baseURL string) {
	s.settings.Update(apiKey, model, baseURL)
}
