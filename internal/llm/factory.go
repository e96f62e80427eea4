package llm

import (
	"context"
)

// ProviderFactory creates LLM provider instances. The concrete factory lives
// in the providers package so this package stays free of SDK imports.
type ProviderFactory interface {
	// CreateProvider creates a provider based on the configuration
	CreateProvider(ctx context.Context) (Provider, error)

	// GetSupportedProviders returns a list of supported provider names
	GetSupportedProviders() []string
}
