package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Fetcher.Engine = "http"
	cfg.Fetcher.UserAgent = "jobbuddy-test/1.0"
	cfg.Fetcher.RequestTimeout = 2 * time.Second
	cfg.Fetcher.MaxBodyBytes = 1024
	return cfg
}

func TestHTTPFetcherReturnsBody(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body><main>Backend Engineer wanted</main></body></html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(testConfig())
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, body, "Backend Engineer wanted")
	assert.Equal(t, "jobbuddy-test/1.0", gotUserAgent)
	assert.Equal(t, "http", f.Engine())
}

func TestHTTPFetcherNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(testConfig())
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestHTTPFetcherTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Fetcher.RequestTimeout = 50 * time.Millisecond

	f := NewHTTPFetcher(cfg)
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestHTTPFetcherTruncatesOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 4096)))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(testConfig())
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, 1024)
}

func TestNewFetcherSelectsEngine(t *testing.T) {
	cfg := testConfig()

	f, err := NewFetcher(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http", f.Engine())

	cfg.Fetcher.Engine = "browser"
	_, err = NewFetcher(cfg)
	assert.Error(t, err)
}
