package llm

import (
	"context"
	"errors"
)

var (
	// ErrEmptyResponse is returned when the model answers without any text.
	ErrEmptyResponse = errors.New("llm returned empty response")
	// ErrNotConfigured is returned when no model is available, either because
	// the configuration is unusable or because generation is switched off.
	ErrNotConfigured = errors.New("llm provider not configured")
)

// Provider sends a prompt to a text-generation model and returns the raw
// text. The output is untrusted and must be cleaned by the caller.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
