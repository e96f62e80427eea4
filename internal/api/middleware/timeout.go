package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// llmPathPrefixes lists route prefixes that hold an LLM call open and need
// the extended deadline. Streaming endpoints are included; the deadline is
// applied as a request context deadline, not a buffering wrapper, so SSE
// responses flush normally.
var llmPathPrefixes = []string{
	"/api/v1/resume/analyze",
	"/api/v1/listing/summarize",
	"/api/v1/coach/",
	"/api/v1/interview/",
}

// SelectiveTimeout applies defaultTimeout to ordinary endpoints and
// llmTimeout to model-backed endpoints.
func SelectiveTimeout(defaultTimeout, llmTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			path := c.Request().URL.Path
			for _, prefix := range llmPathPrefixes {
				if strings.HasPrefix(path, prefix) {
					timeout = llmTimeout
					break
				}
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
