package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"

	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/logging"
)

// HTTPFetcher retrieves pages with a plain GET and a bounded body read.
type HTTPFetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       logging.Logger
}

func NewHTTPFetcher(cfg *config.Config) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: cfg.Fetcher.RequestTimeout,
		},
		userAgent:    cfg.Fetcher.UserAgent,
		maxBodyBytes: cfg.Fetcher.MaxBodyBytes,
		logger:       logging.GetGlobalLogger(),
	}
}

func (f *HTTPFetcher) Engine() string { return "http" }

func (f *HTTPFetcher) IsHealthy() bool { return true }

// Fetch retrieves the URL's body as HTML text. Timeouts, connection errors
// and non-2xx statuses all return a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("Listing fetch failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &FetchError{URL: url, Err: err}
	}

	f.logger.Debug("Fetched listing page", map[string]interface{}{
		"url":          url,
		"status_code":  resp.StatusCode,
		"body_length":  len(body),
		"content_type": resp.Header.Get("Content-Type"),
	})
	return string(body), nil
}
