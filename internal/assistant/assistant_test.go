package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/extractor"
	"jobbuddy-utils/internal/fetcher"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
)

// fakeGateway records every request and serves canned responses.
type fakeGateway struct {
	mu               sync.Mutex
	completeResponse string
	completeErr      error
	streamChunks     []string
	streamErr        error
	requests         []llm.ChatRequest
	completeCalls    int
	streamCalls      int
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completeCalls++
	f.requests = append(f.requests, req)
	return f.completeResponse, f.completeErr
}

func (f *fakeGateway) Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	f.mu.Lock()
	f.streamCalls++
	f.requests = append(f.requests, req)
	chunks := f.streamChunks
	streamErr := f.streamErr
	f.mu.Unlock()

	if streamErr != nil {
		return nil, streamErr
	}

	out := make(chan llm.Chunk)
	go func() {
		defer close(out)
		for _, text := range chunks {
			out <- llm.Chunk{Text: text}
		}
	}()
	return out, nil
}

func (f *fakeGateway) lastRequest() llm.ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

// fakeFetcher serves a fixed page or error without touching the network.
type fakeFetcher struct {
	page       string
	err        error
	fetchCalls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.fetchCalls++
	if f.err != nil {
		return "", f.err
	}
	return f.page, nil
}

func (f *fakeFetcher) Engine() string  { return "http" }
func (f *fakeFetcher) IsHealthy() bool { return true }

func drain(t *testing.T, chunks <-chan llm.Chunk) string {
	t.Helper()
	var out string
	for chunk := range chunks {
		require.NoError(t, chunk.Err)
		out += chunk.Text
	}
	return out
}

func TestAnalyzeRejectsUnsupportedFormatWithoutModelCall(t *testing.T) {
	gw := &fakeGateway{}
	analyzer := NewResumeAnalyzer(gw, extractor.New(logging.GetGlobalLogger()))

	_, err := analyzer.Analyze(context.Background(), "resume.txt", []byte("text resume"))
	require.Error(t, err)

	var formatErr *extractor.UnsupportedFormatError
	assert.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 0, gw.completeCalls, "no model call may happen for unsupported uploads")
}

func TestAnalyzeEmptyDocumentFailsWithoutModelCall(t *testing.T) {
	gw := &fakeGateway{}
	analyzer := NewResumeAnalyzer(gw, extractor.New(logging.GetGlobalLogger()))

	// Corrupt bytes in a supported format degrade to empty text.
	_, err := analyzer.Analyze(context.Background(), "resume.docx", []byte("garbage"))
	require.Error(t, err)

	var malformedErr *MalformedOutputError
	assert.True(t, errors.As(err, &malformedErr))
	assert.Equal(t, 0, gw.completeCalls)
}

const fakeListingJSON = "```json\n" + `{
  "Position Name": "Backend Engineer",
  "Position Overview": "Build services.",
  "About the Role": "You will own the API layer.",
  "Key Responsibilities": ["Design APIs", "Operate services"],
  "Required Skills & Experience": ["Go", "Distributed systems"],
  "Highly Valued Experience": "Event-driven architecture",
  "Soft Skills": ["Communication"],
  "Benefits": null
}` + "\n```"

func TestSummarizeHappyPath(t *testing.T) {
	gw := &fakeGateway{completeResponse: fakeListingJSON}
	ff := &fakeFetcher{page: "<html><body><main>Backend Engineer. Go required.</main></body></html>"}
	summarizer := NewJobPostSummarizer(gw, ff)

	listing, engine, err := summarizer.Summarize(context.Background(), "https://example.com/jobs/1")
	require.NoError(t, err)
	assert.Equal(t, "http", engine)
	assert.Equal(t, 1, gw.completeCalls)

	req := gw.lastRequest()
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "Backend Engineer. Go required.")
	assert.Equal(t, float32(0.5), req.Temperature)

	assert.Contains(t, string(listing), `"Position Name"`)
	assert.Contains(t, string(listing), "Backend Engineer")
}

func TestSummarizeFetchFailureSkipsModelCall(t *testing.T) {
	gw := &fakeGateway{}
	ff := &fakeFetcher{err: &fetcher.FetchError{URL: "https://example.com/jobs/1", StatusCode: 404}}
	summarizer := NewJobPostSummarizer(gw, ff)

	_, engine, err := summarizer.Summarize(context.Background(), "https://example.com/jobs/1")
	require.Error(t, err)
	assert.Equal(t, "http", engine)

	var fetchErr *fetcher.FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 0, gw.completeCalls, "no model call may happen when the fetch fails")
}

func TestSummarizeMalformedModelOutput(t *testing.T) {
	gw := &fakeGateway{completeResponse: "sorry, I cannot do that"}
	ff := &fakeFetcher{page: "<html><body>job text</body></html>"}
	summarizer := NewJobPostSummarizer(gw, ff)

	_, _, err := summarizer.Summarize(context.Background(), "https://example.com/jobs/1")
	require.Error(t, err)

	var malformedErr *MalformedOutputError
	assert.True(t, errors.As(err, &malformedErr))
}
