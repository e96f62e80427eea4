// Package fetcher retrieves the raw content of job posting pages. Engines
// are selected by configuration; the default engine is a plain HTTP GET.
package fetcher

import (
	"context"
	"fmt"

	"jobbuddy-utils/internal/config"
)

// FetchError reports a retrieval failure for a listing URL: network errors,
// timeouts, and non-success HTTP statuses all surface as FetchError so the
// API layer can map them uniformly.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetcher: %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetcher: failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves page content for a listing URL.
type Fetcher interface {
	// Fetch returns the page body as text. HTML engines return raw HTML;
	// the firecrawl engine returns markdown.
	Fetch(ctx context.Context, url string) (string, error)

	// Engine returns the engine name for response metadata.
	Engine() string

	// IsHealthy reports whether the engine is ready to serve requests.
	IsHealthy() bool
}

// NewFetcher builds the engine named in the configuration.
func NewFetcher(cfg *config.Config) (Fetcher, error) {
	switch cfg.Fetcher.Engine {
	case "", "http":
		return NewHTTPFetcher(cfg), nil
	case "firecrawl":
		return NewFirecrawlFetcher(cfg)
	default:
		return nil, fmt.Errorf("unsupported fetcher engine: %s", cfg.Fetcher.Engine)
	}
}
