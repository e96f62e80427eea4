package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider implements the LLM provider interface using Google Gemini
type GeminiProvider struct {
	client       *genai.Client
	apiKey       string
	defaultModel string
	maxTokens    int
	logger       logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(ctx context.Context, apiKey, defaultModel string, maxTokens int) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if defaultModel == "" {
		defaultModel = defaultGeminiModel
	}

	return &GeminiProvider{
		client:       client,
		apiKey:       apiKey,
		defaultModel: defaultModel,
		maxTokens:    maxTokens,
		logger:       logging.GetGlobalLogger(),
	}, nil
}

// Complete executes a blocking chat call and returns the full response text
func (gp *GeminiProvider) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	session, lastParts, err := gp.buildChat(req)
	if err != nil {
		return "", &llm.ProviderError{Provider: "gemini", Op: "complete", Err: err}
	}

	resp, err := session.SendMessage(ctx, lastParts...)
	if err != nil {
		return "", &llm.ProviderError{Provider: "gemini", Op: "complete", Err: err}
	}

	text := extractGeminiText(resp)
	if text == "" {
		return "", &llm.ProviderError{Provider: "gemini", Op: "complete", Err: llm.ErrEmptyResponse}
	}

	return text, nil
}

// Stream executes a streaming chat call, yielding text fragments in arrival order
func (gp *GeminiProvider) Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	session, lastParts, err := gp.buildChat(req)
	if err != nil {
		return nil, &llm.ProviderError{Provider: "gemini", Op: "stream", Err: err}
	}

	chunks := make(chan llm.Chunk)

	go func() {
		defer close(chunks)

		iter := session.SendMessageStream(ctx, lastParts...)
		for {
			resp, err := iter.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				// Unconditional send: on deadline expiry ctx.Done() is ready
				// at the same time and a select would drop the error chunk.
				chunks <- llm.Chunk{Err: &llm.ProviderError{Provider: "gemini", Op: "stream", Err: err}}
				return
			}

			text := extractGeminiText(resp)
			if text == "" {
				continue
			}

			select {
			case chunks <- llm.Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return chunks, nil
}

// buildChat assembles a Gemini chat session from the gateway request: the
// leading system message becomes the system instruction, intermediate turns
// become chat history, and the final user turn is returned as the message to
// send.
func (gp *GeminiProvider) buildChat(req llm.ChatRequest) (*genai.ChatSession, []genai.Part, error) {
	modelName := gp.defaultModel
	if req.Model != "" {
		modelName = req.Model
	}

	model := gp.client.GenerativeModel(modelName)
	model.SetTemperature(req.Temperature)
	if gp.maxTokens > 0 {
		model.SetMaxOutputTokens(int32(gp.maxTokens))
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	var turns []llm.Message
	for _, msg := range req.Messages {
		switch msg.Role {
		case llm.RoleSystem:
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(msg.Content)},
			}
		case llm.RoleUser, llm.RoleAssistant:
			turns = append(turns, msg)
		default:
			return nil, nil, fmt.Errorf("unsupported message role: %s", msg.Role)
		}
	}

	if len(turns) == 0 || turns[len(turns)-1].Role != llm.RoleUser {
		return nil, nil, llm.ErrNoUserMessage
	}

	session := model.StartChat()
	for _, turn := range turns[:len(turns)-1] {
		role := "user"
		if turn.Role == llm.RoleAssistant {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}

	return session, []genai.Part{genai.Text(turns[len(turns)-1].Content)}, nil
}

// extractGeminiText flattens the text parts of a Gemini response
func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// IsHealthy checks if the Gemini provider is configured and reachable
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	model := gp.client.GenerativeModel(gp.defaultModel)
	if _, err := model.GenerateContent(ctx, genai.Text("Hello")); err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}
	return nil
}

// GetProviderName returns the name of the LLM provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

// Close releases resources held by the underlying client
func (gp *GeminiProvider) Close() error {
	if gp.client != nil {
		return gp.client.Close()
	}
	return nil
}
