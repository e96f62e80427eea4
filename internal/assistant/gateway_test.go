package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/prompts"
)

func TestCompleteTextFollowsTemplateCallMode(t *testing.T) {
	t.Run("blocking persona uses a single completion", func(t *testing.T) {
		gw := &fakeGateway{completeResponse: "full reply"}
		tmpl := prompts.Template{ID: "blocking", Streaming: false}

		text, err := completeText(context.Background(), gw, tmpl, llm.ChatRequest{})
		require.NoError(t, err)
		assert.Equal(t, "full reply", text)
		assert.Equal(t, 1, gw.completeCalls)
		assert.Equal(t, 0, gw.streamCalls)
	})

	t.Run("streaming persona is drained and concatenated", func(t *testing.T) {
		gw := &fakeGateway{streamChunks: []string{"full ", "reply"}}
		tmpl := prompts.Template{ID: "streaming", Streaming: true}

		text, err := completeText(context.Background(), gw, tmpl, llm.ChatRequest{})
		require.NoError(t, err)
		assert.Equal(t, "full reply", text)
		assert.Equal(t, 0, gw.completeCalls)
		assert.Equal(t, 1, gw.streamCalls)
	})
}

func TestStreamTextFollowsTemplateCallMode(t *testing.T) {
	t.Run("streaming persona streams", func(t *testing.T) {
		gw := &fakeGateway{streamChunks: []string{"a", "b"}}
		tmpl := prompts.Template{ID: "streaming", Streaming: true}

		chunks, err := streamText(context.Background(), gw, tmpl, llm.ChatRequest{})
		require.NoError(t, err)
		assert.Equal(t, "ab", drain(t, chunks))
		assert.Equal(t, 1, gw.streamCalls)
	})

	t.Run("blocking persona yields the reply as one chunk", func(t *testing.T) {
		gw := &fakeGateway{completeResponse: "whole reply"}
		tmpl := prompts.Template{ID: "blocking", Streaming: false}

		chunks, err := streamText(context.Background(), gw, tmpl, llm.ChatRequest{})
		require.NoError(t, err)
		assert.Equal(t, "whole reply", drain(t, chunks))
		assert.Equal(t, 1, gw.completeCalls)
		assert.Equal(t, 0, gw.streamCalls)
	})
}
