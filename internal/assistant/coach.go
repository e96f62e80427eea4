package assistant

import (
	"context"

	"jobbuddy-utils/internal/conversation"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/internal/prompts"
	"jobbuddy-utils/pkg/models"
)

// CareerCoach runs the conversational coaching persona. Chat turns stream;
// the one-shot recommendation report streams too so long reports render
// progressively.
type CareerCoach struct {
	gateway Gateway
	logger  logging.Logger
}

func NewCareerCoach(gateway Gateway) *CareerCoach {
	return &CareerCoach{
		gateway: gateway,
		logger:  logging.GetGlobalLogger(),
	}
}

// Chat streams the coach's reply to the latest turn of a caller-maintained
// conversation. The candidate profile is baked into the system prompt, so
// history carries only user and assistant turns.
func (c *CareerCoach) Chat(ctx context.Context, profile string, history []models.ChatTurn) (<-chan llm.Chunk, error) {
	tmpl, _ := prompts.Lookup(prompts.TemplateCareerCoach)
	system, err := prompts.Render(prompts.TemplateCareerCoach, map[string]string{
		"candidate_profile": profile,
	})
	if err != nil {
		return nil, err
	}

	messages, err := conversation.ToModelMessages(system, history)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Coach chat turn", map[string]interface{}{
		"history_turns": len(history),
	})

	return streamText(ctx, c.gateway, tmpl, llm.ChatRequest{
		Messages:    messages,
		Temperature: tmpl.Temperature,
	})
}

// Recommend streams a personalized career development report for the
// profile, with no conversation history.
func (c *CareerCoach) Recommend(ctx context.Context, profile string) (<-chan llm.Chunk, error) {
	return c.Chat(ctx, profile, []models.ChatTurn{
		{Role: "user", Content: prompts.RecommendationPrompt()},
	})
}
