package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"focusflow/adhd-assist/config"
)

const (
	requestTimeout = 30 * time.Second

	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
	defaultTopP        = 0.9

	systemPrompt = "You are a professional ADHD support assistant who helps users with attention challenges improve their learning and daily life. Answer in a concise, friendly and encouraging tone."
)

// ChatResult holds the raw model output of a successful chat call.
type ChatResult struct {
	Content     string
	UsageTokens int
}

// ChatClient is the outbound chat-completion boundary. The orchestrator
// depends on this interface so tests can substitute a double.
type ChatClient interface {
	Chat(ctx context.Context, prompt string, opts ...ChatOption) (ChatResult, error)
}

type chatOptions struct {
	temperature float64
	maxTokens   int
	model       string
}

// ChatOption overrides a generation parameter for a single call.
type ChatOption func(*chatOptions)

func WithTemperature(t float64) ChatOption {
	return func(o *chatOptions) { o.temperature = t }
}

func WithMaxTokens(n int) ChatOption {
	return func(o *chatOptions) { o.maxTokens = n }
}

func WithModel(m string) ChatOption {
	return func(o *chatOptions) { o.model = m }
}

// Client talks to an OpenAI-style chat-completions endpoint.
type Client struct {
	settings *config.Settings
	limiter  *RateLimiter
	http     *http.Client
}

func NewClient(settings *config.Settings) *Client {
	return &Client{
		settings: settings,
		limiter:  NewRateLimiter(settings.Snapshot().RateLimit),
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Limiter exposes the rate limiter, mainly for tests and status reporting.
func (c *Client) Limiter() *RateLimiter {
	return c.limiter
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a single prompt with the fixed assistant persona. It checks
// configuration and the local rate window before touching the network.
func (c *Client) Chat(ctx context.Context, prompt string, opts ...ChatOption) (ChatResult, error) {
	snap := c.settings.Snapshot()

	if !c.settings.Configured() {
		return ChatResult{}, ErrNotConfigured
	}

	if !c.limiter.Allow() {
		return ChatResult{}, ErrRateLimited
	}

	options := chatOptions{
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
		model:       snap.Model,
	}
	for _, opt := range opts {
		opt(&options)
	}

	body := chatRequest{
		Model: options.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: options.temperature,
		MaxTokens:   options.maxTokens,
		TopP:        defaultTopP,
		Stream:      false,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, snap.BaseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+snap.APIKey)
	req.Header.Set("User-Agent", "ADHD-Assistant/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return ChatResult{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ChatResult{}, classifyStatus(resp)
	}

	var res chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return ChatResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(res.Choices) == 0 {
		return ChatResult{}, fmt.Errorf("%w: no choices in response", ErrAPI)
	}

	return ChatResult{
		Content:     res.Choices[0].Message.Content,
		UsageTokens: res.Usage.TotalTokens,
	}, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func classifyStatus(resp *http.Response) error {
	var body chatResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	message := ""
	if body.Error != nil {
		message = body.Error.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidCredentials
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return ErrServiceUnavailable
	default:
		return apiError(resp.StatusCode, message)
	}
}
