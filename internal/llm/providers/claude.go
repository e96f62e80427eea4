package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
)

const defaultClaudeMaxTokens = 8192

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client       anthropic.Client
	apiKey       string
	defaultModel string
	maxTokens    int
	logger       logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance. The API key is
// passed in explicitly; the provider never reads or mutates process-wide
// credential state.
func NewClaudeProvider(apiKey, defaultModel string, maxTokens int) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	if defaultModel == "" {
		defaultModel = string(anthropic.ModelClaude3_7SonnetLatest)
	}
	if maxTokens <= 0 {
		maxTokens = defaultClaudeMaxTokens
	}

	return &ClaudeProvider{
		client:       client,
		apiKey:       apiKey,
		defaultModel: defaultModel,
		maxTokens:    maxTokens,
		logger:       logging.GetGlobalLogger(),
	}
}

// Complete executes a blocking chat call and returns the full response text
func (cp *ClaudeProvider) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	params, err := cp.buildParams(req)
	if err != nil {
		return "", &llm.ProviderError{Provider: "claude", Op: "complete", Err: err}
	}

	response, err := cp.client.Messages.New(ctx, params)
	if err != nil {
		return "", &llm.ProviderError{Provider: "claude", Op: "complete", Err: err}
	}

	text := collectText(response)
	if text == "" {
		return "", &llm.ProviderError{Provider: "claude", Op: "complete", Err: llm.ErrEmptyResponse}
	}

	return text, nil
}

// Stream executes a streaming chat call, yielding text fragments in arrival
// order. Empty fragments are filtered out. A terminal stream error is
// delivered as the final chunk.
func (cp *ClaudeProvider) Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	params, err := cp.buildParams(req)
	if err != nil {
		return nil, &llm.ProviderError{Provider: "claude", Op: "stream", Err: err}
	}

	chunks := make(chan llm.Chunk)

	go func() {
		defer close(chunks)

		stream := cp.client.Messages.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			event := stream.Current()

			switch eventVariant := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				switch delta := eventVariant.Delta.AsAny().(type) {
				case anthropic.TextDelta:
					if delta.Text == "" {
						continue
					}
					select {
					case chunks <- llm.Chunk{Text: delta.Text}:
					case <-ctx.Done():
						return
					}
				}
			}
		}

		// The terminal error chunk is sent unconditionally: when the deadline
		// is what ended the stream, ctx.Done() is ready too and a select
		// would drop the error at random. Consumers always drain.
		if err := stream.Err(); err != nil {
			chunks <- llm.Chunk{Err: &llm.ProviderError{Provider: "claude", Op: "stream", Err: err}}
		}
	}()

	return chunks, nil
}

// buildParams translates the gateway request into Anthropic API parameters.
// The leading system message maps to the dedicated system slot; the
// remaining turns keep their order and roles.
func (cp *ClaudeProvider) buildParams(req llm.ChatRequest) (anthropic.MessageNewParams, error) {
	model := cp.defaultModel
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := cp.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(float64(req.Temperature)),
	}

	var messages []anthropic.MessageParam
	hasUser := false
	for _, msg := range req.Messages {
		switch msg.Role {
		case llm.RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: msg.Content})
		case llm.RoleUser:
			hasUser = true
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case llm.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			return anthropic.MessageNewParams{}, fmt.Errorf("unsupported message role: %s", msg.Role)
		}
	}

	if !hasUser {
		return anthropic.MessageNewParams{}, llm.ErrNoUserMessage
	}

	params.Messages = messages
	return params, nil
}

// collectText gathers the text blocks of a Claude response in order
func collectText(response *anthropic.Message) string {
	var sb strings.Builder
	for _, content := range response.Content {
		textContent := content.AsText()
		sb.WriteString(textContent.Text)
	}
	return strings.TrimSpace(sb.String())
}

// IsHealthy checks if the Claude provider is configured and reachable
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.apiKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.defaultModel),
		MaxTokens: 64,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("Hello")),
		},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
