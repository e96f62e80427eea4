package llm

import (
	"context"
	"fmt"
	"sync"

	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/logging"
)

// Manager manages the LLM provider lifecycle and health. All assistant
// facades share one manager; it is the single choke-point for outbound AI
// backend calls.
type Manager struct {
	config   *config.Config
	factory  ProviderFactory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config, factory ProviderFactory) *Manager {
	return &Manager{
		config:  cfg,
		factory: factory,
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	healthCtx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(healthCtx); err != nil {
		m.logger.Warn("LLM provider health check failed - assistant features will be degraded", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
		// Allow the server to start anyway; health is re-checked periodically
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// Complete executes a blocking chat call through the configured provider
func (m *Manager) Complete(ctx context.Context, req ChatRequest) (string, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	return provider.Complete(callCtx, req)
}

// Stream executes a streaming chat call through the configured provider. The
// configured LLM timeout bounds the whole stream; expiry surfaces as a
// provider error chunk.
func (m *Manager) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	provider, err := m.activeProvider()
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)

	inner, err := provider.Stream(callCtx, req)
	if err != nil {
		cancel()
		return nil, err
	}

	chunks := make(chan Chunk)
	go func() {
		defer close(chunks)
		defer cancel()
		for chunk := range inner {
			if chunk.Err != nil {
				// Relay the terminal error unconditionally. On timeout the
				// caller context may be done at the same moment and a select
				// would drop the error chunk at random.
				chunks <- chunk
				return
			}
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return chunks, nil
}

func (m *Manager) activeProvider() (Provider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("LLM manager not started or provider not available")
	}

	if !healthy {
		return nil, fmt.Errorf("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}

	return provider, nil
}

// IsHealthy checks if the LLM manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
