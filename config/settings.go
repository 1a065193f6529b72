package config

import (
	"os"
	"strconv"
	"sync"
)

const (
	DefaultModel     = "glm-4"
	DefaultBaseURL   = "https://open.bigmodel.cn/api/paas/v4"
	DefaultRateLimit = 100

	// keyPlaceholder is the value shipped in .env.example; treat it as unset.
	keyPlaceholder = "your_api_key_here"
)

// Settings holds the AI-layer configuration. The API key, model and base URL
// can be updated at runtime through the config endpoint, so reads go through
// Snapshot and writes through Update.
type Settings struct {
	mu sync.RWMutex

	apiKey  string
	baseURL string
	model   string

	rateLimit    int
	cacheEnabled bool
	cacheDir     string
	aiEnabled    bool
}

// SettingsView is an immutable copy of the current settings.
type SettingsView struct {
	APIKey       string
	BaseURL      string
	Model        string
	RateLimit    int
	CacheEnabled bool
	CacheDir     string
	AIEnabled    bool
}

// SettingsFromEnv builds Settings from environment variables.
func SettingsFromEnv() *Settings {
	s := &Settings{
		apiKey:       os.Getenv("AI_API_KEY"),
		baseURL:      os.Getenv("AI_BASE_URL"),
		model:        os.Getenv("AI_MODEL"),
		rateLimit:    DefaultRateLimit,
		cacheEnabled: os.Getenv("AI_CACHE_ENABLED") == "true",
		cacheDir:     os.Getenv("AI_CACHE_DIR"),
		aiEnabled:    os.Getenv("AI_FEATURES_ENABLED") == "true",
	}

	if s.model == "" {
		s.model = DefaultModel
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.cacheDir == "" {
		s.cacheDir = "cache"
	}
	if v := os.Getenv("AI_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.rateLimit = n
		} else {
			Logger.Warn("Invalid AI_RATE_LIMIT value, using default:", v)
		}
	}

	if !s.configuredLocked(s.apiKey) {
		Logger.Warn("AI API key is not configured, AI features will be degraded")
	}

	return s
}

// NewSettings builds Settings directly, mainly for tests.
func NewSettings(view SettingsView) *Settings {
	return &Settings{
		apiKey:       view.APIKey,
		baseURL:      view.BaseURL,
		model:        view.Model,
		rateLimit:    view.RateLimit,
		cacheEnabled: view.CacheEnabled,
		cacheDir:     view.CacheDir,
		aiEnabled:    view.AIEnabled,
	}
}

func (s *Settings) configuredLocked(key string) bool {
	return key != "" && key != keyPlaceholder
}

// Configured reports whether a usable API key is present.
func (s *Settings) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configuredLocked(s.apiKey)
}

// Snapshot returns a copy of the current settings for lock-free use.
func (s *Settings) Snapshot() SettingsView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsView{
		APIKey:       s.apiKey,
		BaseURL:      s.baseURL,
		Model:        s.model,
		RateLimit:    s.rateLimit,
		CacheEnabled: s.cacheEnabled,
		CacheDir:     s.cacheDir,
		AIEnabled:    s.aiEnabled,
	}
}

// Update replaces the API key, model and base URL. Empty fields keep their
// current value, matching the config endpoint contract.
func (s *Settings) Update(apiKey, model, baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if apiKey != "" {
		s.apiKey = apiKey
	}
	if model != "" {
		s.model = model
	}
	if baseURL != "" {
		s.baseURL = baseURL
	}

	Logger.Info("AI configuration updated")
}
