package llm

import (
	"context"
)

// Role identifies the author of a model message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry of the ordered message list sent to a provider
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries one complete model call: the ordered message list plus
// the generation parameters bound to the calling persona. The first message
// is always the system message built by the conversation translator.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature"`
}

// Chunk is one incremental fragment of a streamed response. A chunk carries
// either text or a terminal error, never both. The channel is closed after
// the final chunk.
type Chunk struct {
	Text string
	Err  error
}

// Provider defines the interface for LLM providers. This is the only
// component that talks to the AI backend; all four assistants route their
// calls through it.
type Provider interface {
	// Complete executes a blocking call and returns the full response text
	Complete(ctx context.Context, req ChatRequest) (string, error)

	// Stream executes a streaming call. Fragments arrive in provider order;
	// empty fragments are filtered out. Cancelling ctx abandons the stream.
	Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, error)

	// IsHealthy checks if the provider is configured and reachable
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
