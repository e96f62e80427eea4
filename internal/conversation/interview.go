package conversation

import (
	"errors"
	"strings"
	"sync"
)

// InterviewState is the lifecycle phase of a mock interview session.
type InterviewState string

const (
	StateNotStarted InterviewState = "not_started"
	StateInProgress InterviewState = "in_progress"
	StateConcluded  InterviewState = "concluded"
)

// ErrInterviewConcluded is returned when a caller tries to continue a
// session that has already ended.
var ErrInterviewConcluded = errors.New("conversation: interview already concluded")

// InterviewSession tracks the state machine of one mock interview. A session
// starts in StateNotStarted, moves to StateInProgress on the first question,
// and reaches StateConcluded either when the interviewer emits its terminal
// marker or when the exchange cap is hit. Concluded is terminal.
type InterviewSession struct {
	mu           sync.Mutex
	id           string
	style        string
	state        InterviewState
	exchanges    int
	maxExchanges int
	marker       string
}

// NewInterviewSession creates a session in StateNotStarted. maxExchanges
// values below 1 are coerced to 1.
func NewInterviewSession(id, style, marker string, maxExchanges int) *InterviewSession {
	if maxExchanges < 1 {
		maxExchanges = 1
	}
	return &InterviewSession{
		id:           id,
		style:        style,
		state:        StateNotStarted,
		maxExchanges: maxExchanges,
		marker:       marker,
	}
}

// ResumeInterviewSession rebuilds a session that is already mid-flight, for
// callers that carry exchange counts across stateless requests.
func ResumeInterviewSession(id, style, marker string, exchanges, maxExchanges int) *InterviewSession {
	s := NewInterviewSession(id, style, marker, maxExchanges)
	if exchanges > 0 {
		s.state = StateInProgress
		s.exchanges = exchanges
	}
	if s.exchanges >= s.maxExchanges {
		s.state = StateConcluded
	}
	return s
}

func (s *InterviewSession) ID() string    { return s.id }
func (s *InterviewSession) Style() string { return s.style }

// State returns the current lifecycle phase.
func (s *InterviewSession) State() InterviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Exchanges returns the number of completed question-and-answer exchanges.
func (s *InterviewSession) Exchanges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exchanges
}

// Begin transitions NotStarted to InProgress. Beginning a concluded session
// is an error; beginning one already in progress is a no-op.
func (s *InterviewSession) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateConcluded {
		return ErrInterviewConcluded
	}
	s.state = StateInProgress
	return nil
}

// RecordExchange counts one completed exchange and inspects the
// interviewer's reply for the terminal marker. It returns the resulting
// state. Calling it on a concluded session returns ErrInterviewConcluded.
func (s *InterviewSession) RecordExchange(reply string) (InterviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateConcluded {
		return s.state, ErrInterviewConcluded
	}
	s.state = StateInProgress
	s.exchanges++
	if strings.Contains(reply, s.marker) || s.exchanges >= s.maxExchanges {
		s.state = StateConcluded
	}
	return s.state, nil
}
