package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusflow/adhd-assist/config"
)

func testSettings(baseURL string) *config.Settings {
	return config.NewSettings(config.SettingsView{
		APIKey:    "test-key",
		BaseURL:   baseURL,
		Model:     "glm-4",
		RateLimit: 10,
		AIEnabled: true,
	})
}

func chatBody(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"total_tokens": 42},
	}
}

func TestClient_Chat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "glm-4", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "hello there", req.Messages[1].Content)
		assert.InDelta(t, 0.7, req.Temperature, 0.001)
		assert.Equal(t, 1000, req.MaxTokens)
		assert.InDelta(t, 0.9, req.TopP, 0.001)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatBody("hi!"))
	}))
	defer srv.Close()

	client := NewClient(testSettings(srv.URL))
	result, err := client.Chat(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, "hi!", result.Content)
	assert.Equal(t, 42, result.UsageTokens)
}

func TestClient_Chat_Options(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0.8, req.Temperature, 0.001)
		assert.Equal(t, 1500, req.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatBody("ok"))
	}))
	defer srv.Close()

	client := NewClient(testSettings(srv.URL))
	_, err := client.Chat(context.Background(), "prompt", WithTemperature(0.8), WithMaxTokens(1500))
	require.NoError(t, err)
}

func TestClient_Chat_NotConfigured(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	settings := config.NewSettings(config.SettingsView{
		BaseURL:   srv.URL,
		Model:     "glm-4",
		RateLimit: 10,
	})
	client := NewClient(settings)

	_, err := client.Chat(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, int64(0), requests.Load(), "no HTTP request should be made")
}

func TestClient_Chat_PlaceholderKeyNotConfigured(t *testing.T) {
	settings := config.NewSettings(config.SettingsView{
		APIKey:    "your_api_key_here",
		BaseURL:   "http://127.0.0.1:0",
		Model:     "glm-4",
		RateLimit: 10,
	})
	client := NewClient(settings)

	_, err := client.Chat(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Chat_LocalRateLimit(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatBody("ok"))
	}))
	defer srv.Close()

	settings := config.NewSettings(config.SettingsView{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "glm-4",
		RateLimit: 2,
	})
	client := NewClient(settings)

	assert.Equal(t, 2, client.Limiter().Remaining())
	for i := 0; i < 2; i++ {
		_, err := client.Chat(context.Background(), "prompt")
		require.NoError(t, err)
	}
	assert.Equal(t, 0, client.Limiter().Remaining())

	_, err := client.Chat(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int64(2), requests.Load(), "rejected call must not reach the network")
}

func TestClient_Chat_StatusClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrInvalidCredentials},
		{"rate limited upstream", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrServiceUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrServiceUnavailable},
		{"other", http.StatusBadRequest, ErrAPI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "upstream says no"},
				})
			}))
			defer srv.Close()

			client := NewClient(testSettings(srv.URL))
			_, err := client.Chat(context.Background(), "prompt")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_Chat_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(testSettings(srv.URL))
	_, err := client.Chat(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_Chat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewClient(testSettings(srv.URL))
	_, err := client.Chat(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrAPI)
}

func TestClient_Chat_RuntimeConfigUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer rotated-key", r.Header.Get("Authorization"))
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "glm-4-plus", req.Model)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatBody("ok"))
	}))
	defer srv.Close()

	settings := testSettings(srv.URL)
	client := NewClient(settings)

	settings.Update("rotated-key", "glm-4-plus", "")
	_, err := client.Chat(context.Background(), "prompt")
	require.NoError(t, err)
}
