package providers

import (
	"context"
	"fmt"

	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/llm"
)

// Factory creates LLM provider instances from configuration
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// CreateProvider creates an LLM provider based on the configuration. The
// credential comes from config and is handed to the provider constructor
// only; nothing writes it into ambient process state.
func (f *Factory) CreateProvider(ctx context.Context) (llm.Provider, error) {
	switch f.config.LLM.Provider {
	case "claude":
		return NewClaudeProvider(f.config.LLM.APIKey, f.config.LLM.Model, f.config.LLM.MaxTokens), nil
	case "gemini":
		return NewGeminiProvider(ctx, f.config.LLM.APIKey, f.config.LLM.Model, f.config.LLM.MaxTokens)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// GetSupportedProviders returns a list of supported LLM providers
func (f *Factory) GetSupportedProviders() []string {
	return []string{"claude", "gemini"}
}
