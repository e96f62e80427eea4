// Package assistant implements the four career assistants: resume analyzer,
// job post summarizer, career coach and mock interviewer. Each facade owns
// its persona template and translates caller input into gateway requests.
package assistant

import (
	"context"
	"strings"

	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/prompts"
)

// Gateway is the slice of the LLM manager the assistants consume. Tests
// substitute a fake; production wiring passes *llm.Manager.
type Gateway interface {
	Complete(ctx context.Context, req llm.ChatRequest) (string, error)
	Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error)
}

// completeText executes the request in the persona's call mode and returns
// the full response text. Streaming personas are drained and concatenated so
// blocking callers keep a single return value.
func completeText(ctx context.Context, gateway Gateway, tmpl prompts.Template, req llm.ChatRequest) (string, error) {
	if !tmpl.Streaming {
		return gateway.Complete(ctx, req)
	}

	stream, err := gateway.Stream(ctx, req)
	if err != nil {
		return "", err
	}

	var reply strings.Builder
	for chunk := range stream {
		if chunk.Err != nil {
			return "", chunk.Err
		}
		reply.WriteString(chunk.Text)
	}
	return reply.String(), nil
}

// streamText executes the request in the persona's call mode and returns a
// chunk channel. Non-streaming personas complete in one blocking call and
// yield the reply as a single chunk.
func streamText(ctx context.Context, gateway Gateway, tmpl prompts.Template, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	if tmpl.Streaming {
		return gateway.Stream(ctx, req)
	}

	text, err := gateway.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make(chan llm.Chunk, 1)
	out <- llm.Chunk{Text: text}
	close(out)
	return out, nil
}
