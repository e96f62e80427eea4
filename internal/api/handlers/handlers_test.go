package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobbuddy-utils/internal/assistant"
	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/extractor"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/pkg/models"
)

type fakeGateway struct {
	completeResponse string
	streamChunks     []string
	completeCalls    int
}

func (f *fakeGateway) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	f.completeCalls++
	return f.completeResponse, nil
}

func (f *fakeGateway) Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	out := make(chan llm.Chunk)
	go func() {
		defer close(out)
		for _, text := range f.streamChunks {
			out <- llm.Chunk{Text: text}
		}
	}()
	return out, nil
}

type fakeFetcher struct {
	page string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) { return f.page, nil }
func (f *fakeFetcher) Engine() string                                        { return "http" }
func (f *fakeFetcher) IsHealthy() bool                                       { return true }

func newContext(t *testing.T, method, path, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSummarizeHandlerRejectsInvalidURL(t *testing.T) {
	summarizer := assistant.NewJobPostSummarizer(&fakeGateway{}, &fakeFetcher{})
	handler := SummarizeHandler(summarizer)

	c, rec := newContext(t, http.MethodPost, "/api/v1/listing/summarize",
		`{"url": "not-a-url"}`, echo.MIMEApplicationJSON)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

const fakeListingResponse = `{
  "Position Name": "Backend Engineer",
  "Position Overview": "Build services.",
  "About the Role": "API ownership.",
  "Key Responsibilities": ["Design APIs"],
  "Required Skills & Experience": ["Go"],
  "Highly Valued Experience": null,
  "Soft Skills": ["Communication"],
  "Benefits": null
}`

func TestSummarizeHandlerSuccess(t *testing.T) {
	gw := &fakeGateway{completeResponse: fakeListingResponse}
	ff := &fakeFetcher{page: "<html><body>Backend Engineer job posting with Go experience required for the platform team.</body></html>"}
	handler := SummarizeHandler(assistant.NewJobPostSummarizer(gw, ff))

	c, rec := newContext(t, http.MethodPost, "/api/v1/listing/summarize",
		`{"url": "https://example.com/jobs/1"}`, echo.MIMEApplicationJSON)
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "http", resp.Engine)

	var listing models.JobListing
	require.NoError(t, json.Unmarshal(resp.Listing, &listing))
	assert.Equal(t, "Backend Engineer", listing.PositionName)
}

func TestAnalyzeHandlerRejectsUnsupportedUpload(t *testing.T) {
	gw := &fakeGateway{}
	handler := AnalyzeResumeHandler(assistant.NewResumeAnalyzer(gw, extractor.New(logging.GetGlobalLogger())))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text resume"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/analyze", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, 0, gw.completeCalls, "no model call may happen for unsupported uploads")

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "request_failed", resp.Error)
}

func TestCoachChatHandlerStreamsSSE(t *testing.T) {
	gw := &fakeGateway{streamChunks: []string{"Focus on ", "backend roles."}}
	handler := CoachChatHandler(assistant.NewCareerCoach(gw), nil)

	body := `{"profile": "Name: Ada. Skills: Rust, Go.", "history": [{"role": "user", "content": "what next?"}]}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/coach/chat", body, echo.MIMEApplicationJSON)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/event-stream")

	out := rec.Body.String()
	assert.Contains(t, out, `event: chunk`)
	assert.Contains(t, out, `"text":"Focus on "`)
	assert.Contains(t, out, `"text":"backend roles."`)
	assert.Contains(t, out, "event: done")
}

func TestCoachChatHandlerRequiresTrailingUserTurn(t *testing.T) {
	handler := CoachChatHandler(assistant.NewCareerCoach(&fakeGateway{}), nil)

	body := `{"profile": "p", "history": [{"role": "assistant", "content": "hello"}]}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/coach/chat", body, echo.MIMEApplicationJSON)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterviewStartHandlerRejectsUnknownStyle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Interview.Style = "behavioral"
	cfg.Interview.MaxExchanges = 10
	gw := &fakeGateway{completeResponse: "First question."}
	handler := InterviewStartHandler(assistant.NewMockInterviewer(gw, cfg), nil)

	body := `{"style": "casual", "profile": "p", "listing": "l"}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/interview/start", body, echo.MIMEApplicationJSON)
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, gw.completeCalls)
}

func TestInterviewStartHandlerSuccess(t *testing.T) {
	cfg := &config.Config{}
	cfg.Interview.Style = "behavioral"
	cfg.Interview.MaxExchanges = 10
	gw := &fakeGateway{completeResponse: "Welcome. Tell me about yourself."}
	handler := InterviewStartHandler(assistant.NewMockInterviewer(gw, cfg), nil)

	body := `{"profile": "Name: Ada. Skills: Rust, Go.", "listing": "Role: Backend Engineer."}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/interview/start", body, echo.MIMEApplicationJSON)
	require.NoError(t, handler(c))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.InterviewStartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Welcome. Tell me about yourself.", resp.Question)
	assert.Equal(t, "in_progress", resp.State)
	assert.True(t, strings.HasPrefix(resp.SessionID, "session_"))
}

func TestSessionHandlersWithoutStore(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/api/v1/sessions/session_x/history", "", "")
	c.SetParamNames("id")
	c.SetParamValues("session_x")
	require.NoError(t, GetSessionHistoryHandler(nil)(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	c, rec = newContext(t, http.MethodDelete, "/api/v1/sessions/session_x", "", "")
	c.SetParamNames("id")
	c.SetParamValues("session_x")
	require.NoError(t, DeleteSessionHandler(nil)(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
