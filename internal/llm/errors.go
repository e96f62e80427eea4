package llm

import (
	"context"
	"errors"
	"fmt"
)

// ProviderError wraps any failure of an outbound LLM call: network errors,
// authentication failures, timeouts, and malformed provider responses. The
// core performs no automatic retry; the error propagates to the caller with
// the underlying cause preserved.
type ProviderError struct {
	Provider string
	Op       string // "complete" or "stream"
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %s: %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline expiry
func (e *ProviderError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// ErrEmptyResponse indicates the provider returned no usable text content
var ErrEmptyResponse = errors.New("empty response from provider")

// ErrNoUserMessage indicates a request carried no user turn to respond to
var ErrNoUserMessage = errors.New("request contains no user message")
