// Package llm provides a unified interface over the completion providers
// used for extraction.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Provider is the core abstraction over completion backends. One provider is
// bound per extraction call and reused for every chunk.
type Provider interface {
	// Complete sends a single-turn prompt and returns the model's text.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier.
	Name() string
}

// Config holds common provider configuration.
type Config struct {
	APIKey  string
	Model   string        // empty selects the provider default
	BaseURL string        // override for custom or test endpoints
	Timeout time.Duration

	// HTTPClient overrides the transport for providers with hand-rolled
	// clients. Nil uses a fresh http.Client.
	HTTPClient *http.Client
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 60 * time.Second,
	}
}

// StatusError is a non-200 reply from a provider endpoint, carrying the raw
// response body so callers can surface exactly what the API said.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned %d - %s", e.StatusCode, e.Body)
}
