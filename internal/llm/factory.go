package llm

import (
	"context"
	"fmt"
	"net/http"

	"jobquery/internal/config"
)

// NewProvider builds the provider selected by cfg.ResolvedProvider.
func NewProvider(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (Provider, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch name := cfg.ResolvedProvider(); name {
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, httpClient)
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, httpClient)
	case config.ProviderNone:
		return NopProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrNotConfigured, name)
	}
}
