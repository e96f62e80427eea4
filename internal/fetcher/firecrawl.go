package fetcher

import (
	"context"
	"fmt"

	"github.com/mendableai/firecrawl-go"

	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/logging"
)

// FirecrawlFetcher retrieves pages through the Firecrawl API, which handles
// JavaScript-heavy job boards the plain HTTP engine cannot render.
type FirecrawlFetcher struct {
	app    *firecrawl.FirecrawlApp
	apiKey string
	logger logging.Logger
}

func NewFirecrawlFetcher(cfg *config.Config) (*FirecrawlFetcher, error) {
	logger := logging.GetGlobalLogger()

	app, err := firecrawl.NewFirecrawlApp(cfg.Firecrawl.APIKey, cfg.Firecrawl.APIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firecrawl: %w", err)
	}

	logger.Info("Firecrawl fetcher initialized", map[string]interface{}{
		"api_url": cfg.Firecrawl.APIURL,
	})

	return &FirecrawlFetcher{
		app:    app,
		apiKey: cfg.Firecrawl.APIKey,
		logger: logger,
	}, nil
}

func (f *FirecrawlFetcher) Engine() string { return "firecrawl" }

func (f *FirecrawlFetcher) IsHealthy() bool {
	return f.app != nil && f.apiKey != ""
}

// Fetch scrapes the URL and returns markdown when available, falling back
// to raw HTML.
func (f *FirecrawlFetcher) Fetch(ctx context.Context, url string) (string, error) {
	result, err := f.app.ScrapeURL(url, &firecrawl.ScrapeParams{
		Formats: []string{"markdown", "html"},
	})
	if err != nil {
		f.logger.Warn("Firecrawl scrape failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return "", &FetchError{URL: url, Err: err}
	}
	if result == nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("no result returned from firecrawl")}
	}

	var content string
	switch {
	case result.Markdown != "":
		content = result.Markdown
	case result.HTML != "":
		content = result.HTML
	default:
		return "", &FetchError{URL: url, Err: fmt.Errorf("no content found in firecrawl response")}
	}

	f.logger.Debug("Fetched listing via Firecrawl", map[string]interface{}{
		"url":            url,
		"content_length": len(content),
	})
	return content, nil
}
