package models

// SummarizeRequest represents the request payload for summarizing a job posting
type SummarizeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ChatTurn is a single role-tagged turn of caller-maintained chat history.
// Callers only ever supply user and assistant turns; the system turn is
// injected by the conversation translator.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// CoachChatRequest represents a conversational career-coaching turn
type CoachChatRequest struct {
	SessionID string     `json:"session_id,omitempty"`
	Profile   string     `json:"profile" validate:"required"`
	History   []ChatTurn `json:"history" validate:"dive"`
}

// CoachRecommendRequest requests a one-shot career development report
type CoachRecommendRequest struct {
	Profile string `json:"profile" validate:"required"`
}

// InterviewStartRequest opens a mock interview session
type InterviewStartRequest struct {
	Style   string `json:"style,omitempty" validate:"omitempty,interview_style"`
	Profile string `json:"profile" validate:"required"`
	Listing string `json:"listing" validate:"required"`
}

// InterviewChatRequest represents one exchange of an ongoing mock interview
type InterviewChatRequest struct {
	SessionID string     `json:"session_id,omitempty"`
	Style     string     `json:"style,omitempty" validate:"omitempty,interview_style"`
	Profile   string     `json:"profile" validate:"required"`
	Listing   string     `json:"listing" validate:"required"`
	History   []ChatTurn `json:"history" validate:"required,min=1,dive"`
	Exchanges int        `json:"exchanges,omitempty" validate:"omitempty,min=0"`
}

// InterviewQuestionsRequest requests a pre-interview question report
type InterviewQuestionsRequest struct {
	Style   string `json:"style,omitempty" validate:"omitempty,interview_style"`
	Profile string `json:"profile" validate:"required"`
	Listing string `json:"listing" validate:"required"`
}
