package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"jobbuddy-utils/internal/fetcher"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/llm/processors"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/internal/prompts"
)

// JobPostSummarizer fetches a listing URL, strips the page down to its
// listing content and summarizes it into the eight-key listing document.
type JobPostSummarizer struct {
	gateway Gateway
	fetcher fetcher.Fetcher
	cleaner *processors.HTMLCleaner
	logger  logging.Logger
}

func NewJobPostSummarizer(gateway Gateway, f fetcher.Fetcher) *JobPostSummarizer {
	return &JobPostSummarizer{
		gateway: gateway,
		fetcher: f,
		cleaner: processors.NewHTMLCleaner(),
		logger:  logging.GetGlobalLogger(),
	}
}

// Summarize runs the fetch, clean and summarize pipeline for one URL. Fetch
// failures surface as *fetcher.FetchError without a model call ever being
// made. The returned engine name goes into response metadata.
func (s *JobPostSummarizer) Summarize(ctx context.Context, url string) (json.RawMessage, string, error) {
	engine := s.fetcher.Engine()

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, engine, err
	}

	content := page
	if engine == "http" {
		cleaned, err := s.cleaner.ExtractListingContent(page)
		if err != nil {
			s.logger.Warn("HTML cleanup failed, using raw page text", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
		} else {
			content = cleaned
		}
	}
	if strings.TrimSpace(content) == "" {
		return nil, engine, &MalformedOutputError{
			Assistant: "job_summarizer",
			Reason:    "fetched page contained no listing content",
		}
	}

	tmpl, _ := prompts.Lookup(prompts.TemplateJobSummarizer)
	system, err := prompts.Render(prompts.TemplateJobSummarizer, nil)
	if err != nil {
		return nil, engine, err
	}
	userPrompt, err := prompts.SummarizePrompt(content)
	if err != nil {
		return nil, engine, err
	}

	s.logger.Info("Summarizing job listing", map[string]interface{}{
		"url":              url,
		"engine":           engine,
		"content_length":   len(content),
		"estimated_tokens": s.cleaner.EstimateTokens(content),
	})

	raw, err := completeText(ctx, s.gateway, tmpl, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Temperature: tmpl.Temperature,
	})
	if err != nil {
		return nil, engine, err
	}

	listing, err := normalizeListing("job_summarizer", raw)
	if err != nil {
		return nil, engine, err
	}
	return listing, engine, nil
}
