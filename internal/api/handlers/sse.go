package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"jobbuddy-utils/internal/llm"
)

// sseChunk is the payload of every incremental "chunk" event.
type sseChunk struct {
	Text string `json:"text"`
}

type sseError struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func writeSSE(c echo.Context, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}

func startSSE(c echo.Context) {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Response().WriteHeader(200)
}

// streamSSE relays chunks to the client and returns the concatenated reply
// text. A chunk carrying an error becomes a terminal "error" event; the
// caller decides whether to emit a "done" event from what it returns.
func streamSSE(c echo.Context, reqID string, chunks <-chan llm.Chunk) (string, bool) {
	var reply strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			_ = writeSSE(c, "error", sseError{
				Error:     "llm_failed",
				Message:   chunk.Err.Error(),
				RequestID: reqID,
			})
			return reply.String(), false
		}
		if chunk.Text == "" {
			continue
		}
		reply.WriteString(chunk.Text)
		if err := writeSSE(c, "chunk", sseChunk{Text: chunk.Text}); err != nil {
			// Client went away; drain the channel so the producer can exit.
			for range chunks {
			}
			return reply.String(), false
		}
	}
	return reply.String(), true
}
