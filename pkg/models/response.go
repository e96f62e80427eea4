package models

import (
	"encoding/json"
	"time"
)

// AnalyzeResponse represents the response from a resume analysis request
type AnalyzeResponse struct {
	Success        bool            `json:"success"`
	Resume         json.RawMessage `json:"resume,omitempty"`
	Error          string          `json:"error,omitempty"`
	ProcessingTime time.Duration   `json:"processing_time"`
	RequestID      string          `json:"request_id"`
}

// SummarizeResponse represents the response from a listing summarization request
type SummarizeResponse struct {
	Success        bool            `json:"success"`
	Listing        json.RawMessage `json:"listing,omitempty"`
	Error          string          `json:"error,omitempty"`
	ProcessingTime time.Duration   `json:"processing_time"`
	Engine         string          `json:"engine_used"`
	RequestID      string          `json:"request_id"`
}

// InterviewStartResponse carries the opening interviewer turn
type InterviewStartResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
	State     string `json:"state"`
	RequestID string `json:"request_id"`
}

// SessionHistoryResponse returns the stored history of one conversation session
type SessionHistoryResponse struct {
	SessionID string     `json:"session_id"`
	History   []ChatTurn `json:"history"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
