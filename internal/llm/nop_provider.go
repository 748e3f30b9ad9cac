package llm

import "context"

// NopProvider is used when LLM_PROVIDER=none or no API key is configured.
type NopProvider struct{}

func (NopProvider) Complete(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
