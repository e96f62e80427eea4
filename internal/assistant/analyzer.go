package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"jobbuddy-utils/internal/extractor"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/internal/prompts"
)

// ResumeAnalyzer turns an uploaded resume document into the structured
// analysis document: nine extracted sections plus an assessment block.
type ResumeAnalyzer struct {
	gateway   Gateway
	extractor *extractor.Extractor
	logger    logging.Logger
}

func NewResumeAnalyzer(gateway Gateway, ex *extractor.Extractor) *ResumeAnalyzer {
	return &ResumeAnalyzer{
		gateway:   gateway,
		extractor: ex,
		logger:    logging.GetGlobalLogger(),
	}
}

// Analyze extracts text from the uploaded file and runs the analyzer
// persona over it. Unsupported formats fail before any model call.
func (a *ResumeAnalyzer) Analyze(ctx context.Context, filename string, data []byte) (json.RawMessage, error) {
	text, err := a.extractor.Extract(filename, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, &MalformedOutputError{
			Assistant: "resume_analyzer",
			Reason:    "no text content found in uploaded document",
		}
	}

	tmpl, _ := prompts.Lookup(prompts.TemplateResumeAnalyzer)
	system, err := prompts.Render(prompts.TemplateResumeAnalyzer, nil)
	if err != nil {
		return nil, err
	}
	userPrompt, err := prompts.ResumeAnalysisPrompt(text)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Analyzing resume", map[string]interface{}{
		"filename":    filename,
		"text_length": len(text),
	})

	raw, err := completeText(ctx, a.gateway, tmpl, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Temperature: tmpl.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return normalizeResume("resume_analyzer", raw)
}
