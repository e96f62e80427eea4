package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jobbuddy-utils/internal/config"
	"jobbuddy-utils/internal/conversation"
	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/internal/logging"
	"jobbuddy-utils/internal/prompts"
	"jobbuddy-utils/pkg/models"
	"jobbuddy-utils/pkg/utils"
)

// Interview styles
const (
	StyleBehavioral = "behavioral"
	StyleTechnical  = "technical"
)

// MockInterviewer runs mock interview sessions against a candidate profile
// and a job listing. Sessions are stateless on the server: callers carry
// history and exchange counts, the interviewer enforces the state machine
// per request.
type MockInterviewer struct {
	gateway      Gateway
	defaultStyle string
	maxExchanges int
	logger       logging.Logger
}

func NewMockInterviewer(gateway Gateway, cfg *config.Config) *MockInterviewer {
	return &MockInterviewer{
		gateway:      gateway,
		defaultStyle: cfg.Interview.Style,
		maxExchanges: cfg.Interview.MaxExchanges,
		logger:       logging.GetGlobalLogger(),
	}
}

// Start opens a new session and returns the interviewer's introduction and
// first question. The opening turn is blocking so the caller gets a session
// ID and the question in one response.
func (m *MockInterviewer) Start(ctx context.Context, style, profile, listing string) (*conversation.InterviewSession, string, error) {
	style = m.resolveStyle(style)
	system, tmpl, err := m.renderPersona(style, profile, listing)
	if err != nil {
		return nil, "", err
	}

	session := conversation.NewInterviewSession(
		utils.GenerateSessionID(), style, prompts.InterviewConcludedMarker, m.maxExchanges)

	m.logger.Info("Starting mock interview", map[string]interface{}{
		"session_id":    session.ID(),
		"style":         style,
		"max_exchanges": m.maxExchanges,
	})

	question, err := completeText(ctx, m.gateway, tmpl, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: prompts.InterviewOpeningPrompt()},
		},
		Temperature: tmpl.Temperature,
	})
	if err != nil {
		return nil, "", err
	}

	if err := session.Begin(); err != nil {
		return nil, "", err
	}
	return session, question, nil
}

// Chat streams the interviewer's next turn. The returned session reflects
// the request's exchange count; once the stream is fully drained its state
// accounts for the new exchange, the terminal marker and the exchange cap.
// A request whose exchange count already meets the cap fails with
// conversation.ErrInterviewConcluded before any model call.
func (m *MockInterviewer) Chat(ctx context.Context, req models.InterviewChatRequest) (<-chan llm.Chunk, *conversation.InterviewSession, error) {
	style := m.resolveStyle(req.Style)
	system, tmpl, err := m.renderPersona(style, req.Profile, req.Listing)
	if err != nil {
		return nil, nil, err
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = utils.GenerateSessionID()
	}
	session := conversation.ResumeInterviewSession(
		sessionID, style, prompts.InterviewConcludedMarker, req.Exchanges, m.maxExchanges)
	if session.State() == conversation.StateConcluded {
		return nil, nil, conversation.ErrInterviewConcluded
	}

	messages, err := conversation.ToModelMessages(system, req.History)
	if err != nil {
		return nil, nil, err
	}

	inner, err := streamText(ctx, m.gateway, tmpl, llm.ChatRequest{
		Messages:    messages,
		Temperature: tmpl.Temperature,
	})
	if err != nil {
		return nil, nil, err
	}

	out := make(chan llm.Chunk)
	go func() {
		defer close(out)
		var reply strings.Builder
		for chunk := range inner {
			if chunk.Err == nil {
				reply.WriteString(chunk.Text)
			}
			out <- chunk
		}
		state, err := session.RecordExchange(reply.String())
		if err != nil {
			return
		}
		if state == conversation.StateConcluded {
			m.logger.Info("Mock interview concluded", map[string]interface{}{
				"session_id": session.ID(),
				"exchanges":  session.Exchanges(),
			})
		}
	}()

	return out, session, nil
}

// GenerateQuestions streams a preparation report: the questions the persona
// would ask for this profile and listing, with guidance per question.
func (m *MockInterviewer) GenerateQuestions(ctx context.Context, style, profile, listing string) (<-chan llm.Chunk, error) {
	system, tmpl, err := m.renderPersona(m.resolveStyle(style), profile, listing)
	if err != nil {
		return nil, err
	}

	return streamText(ctx, m.gateway, tmpl, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: prompts.InterviewQuestionsPrompt()},
		},
		Temperature: tmpl.Temperature,
	})
}

func (m *MockInterviewer) resolveStyle(style string) string {
	return utils.GetStringOrDefault(style, m.defaultStyle)
}

func (m *MockInterviewer) renderPersona(style, profile, listing string) (string, prompts.Template, error) {
	var templateID string
	switch style {
	case StyleBehavioral:
		templateID = prompts.TemplateInterviewerBehavioral
	case StyleTechnical:
		templateID = prompts.TemplateInterviewerTechnical
	default:
		return "", prompts.Template{}, fmt.Errorf("unsupported interview style: %s", style)
	}

	tmpl, _ := prompts.Lookup(templateID)
	system, err := prompts.Render(templateID, map[string]string{
		"candidate_profile": profile,
		"job_listing":       listing,
		"max_exchanges":     strconv.Itoa(m.maxExchanges),
		"concluded_marker":  prompts.InterviewConcludedMarker,
	})
	if err != nil {
		return "", prompts.Template{}, err
	}
	return system, tmpl, nil
}
