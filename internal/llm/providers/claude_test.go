package providers

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/llm"
)

func TestClaudeBuildParams(t *testing.T) {
	cp := NewClaudeProvider("test-key", "", 0)

	t.Run("system message maps to the system slot", func(t *testing.T) {
		params, err := cp.buildParams(llm.ChatRequest{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: "persona"},
				{Role: llm.RoleUser, Content: "question"},
				{Role: llm.RoleAssistant, Content: "answer"},
				{Role: llm.RoleUser, Content: "followup"},
			},
		})
		require.NoError(t, err)

		require.Len(t, params.System, 1)
		assert.Equal(t, "persona", params.System[0].Text)
		assert.Len(t, params.Messages, 3)
		assert.Equal(t, anthropic.MessageParamRoleUser, params.Messages[0].Role)
		assert.Equal(t, anthropic.MessageParamRoleAssistant, params.Messages[1].Role)
	})

	t.Run("request overrides win over provider defaults", func(t *testing.T) {
		params, err := cp.buildParams(llm.ChatRequest{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "question"}},
			Model:     "claude-3-5-haiku-latest",
			MaxTokens: 1024,
		})
		require.NoError(t, err)

		assert.Equal(t, anthropic.Model("claude-3-5-haiku-latest"), params.Model)
		assert.Equal(t, int64(1024), params.MaxTokens)
	})

	t.Run("history without a user turn is rejected", func(t *testing.T) {
		_, err := cp.buildParams(llm.ChatRequest{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: "persona"},
				{Role: llm.RoleAssistant, Content: "answer"},
			},
		})
		require.ErrorIs(t, err, llm.ErrNoUserMessage)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := cp.buildParams(llm.ChatRequest{
			Messages: []llm.Message{{Role: "moderator", Content: "hm"}},
		})
		require.Error(t, err)
	})
}
