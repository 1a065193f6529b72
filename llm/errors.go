package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates no usable API key is present; no request
	// is attempted.
	ErrNotConfigured = errors.New("ai api key not configured")

	// ErrRateLimited indicates the local window ceiling was hit or the
	// upstream returned 429.
	ErrRateLimited = errors.New("ai request rate limit exceeded")

	// ErrInvalidCredentials indicates the upstream rejected the API key.
	ErrInvalidCredentials = errors.New("ai api key rejected")

	// ErrTimeout indicates the request exceeded the 30s deadline.
	ErrTimeout = errors.New("ai request timed out")

	// ErrNetwork indicates a transport failure before any response.
	ErrNetwork = errors.New("ai request failed")

	// ErrServiceUnavailable indicates an upstream 5xx.
	ErrServiceUnavailable = errors.New("ai service unavailable")

	// ErrAPI indicates any other non-2xx upstream response.
	ErrAPI = errors.New("ai api error")
)

// apiError wraps ErrAPI with the server-provided message.
func apiError(status int, message string) error {
	if message == "" {
		return fmt.Errorf("%w: status %d", ErrAPI, status)
	}
	return fmt.Errorf("%w: status %d: %s", ErrAPI, status, message)
}
