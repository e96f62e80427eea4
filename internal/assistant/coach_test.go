package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/conversation"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/pkg/models"
)

func TestCoachChatStreamsReply(t *testing.T) {
	gw := &fakeGateway{streamChunks: []string{"Focus on ", "systems design ", "roles."}}
	coach := NewCareerCoach(gw)

	history := []models.ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello, what can I help with?"},
		{Role: "user", Content: "what should I focus on next?"},
	}

	chunks, err := coach.Chat(context.Background(), "Name: Ada. Skills: Rust, Go.", history)
	require.NoError(t, err)

	reply := drain(t, chunks)
	assert.Equal(t, "Focus on systems design roles.", reply)

	req := gw.lastRequest()
	require.Len(t, req.Messages, len(history)+1)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Name: Ada. Skills: Rust, Go.")
	assert.Equal(t, float32(0.5), req.Temperature)
}

func TestCoachChatRejectsUnknownRole(t *testing.T) {
	gw := &fakeGateway{}
	coach := NewCareerCoach(gw)

	_, err := coach.Chat(context.Background(), "profile", []models.ChatTurn{
		{Role: "moderator", Content: "hello"},
	})
	require.Error(t, err)

	var roleErr *conversation.UnknownRoleError
	assert.True(t, errors.As(err, &roleErr))
	assert.Equal(t, 0, gw.streamCalls)
}

func TestCoachRecommendUsesFixedReport(t *testing.T) {
	gw := &fakeGateway{streamChunks: []string{"## Assessment\n", "You are well positioned."}}
	coach := NewCareerCoach(gw)

	chunks, err := coach.Recommend(context.Background(), "Name: Ada. Skills: Rust, Go.")
	require.NoError(t, err)
	assert.Equal(t, "## Assessment\nYou are well positioned.", drain(t, chunks))

	req := gw.lastRequest()
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "career development report")
}
