package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marker = "[INTERVIEW CONCLUDED]"

func TestInterviewLifecycle(t *testing.T) {
	s := NewInterviewSession("session_1", "behavioral", marker, 3)
	assert.Equal(t, StateNotStarted, s.State())

	require.NoError(t, s.Begin())
	assert.Equal(t, StateInProgress, s.State())

	state, err := s.RecordExchange("Tell me about a conflict you resolved.")
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, state)
	assert.Equal(t, 1, s.Exchanges())
}

func TestInterviewConcludesOnMarker(t *testing.T) {
	s := NewInterviewSession("session_1", "behavioral", marker, 10)
	require.NoError(t, s.Begin())

	state, err := s.RecordExchange("Great session overall. " + marker)
	require.NoError(t, err)
	assert.Equal(t, StateConcluded, state)

	_, err = s.RecordExchange("one more question")
	assert.ErrorIs(t, err, ErrInterviewConcluded)
	assert.Error(t, s.Begin())
}

func TestInterviewConcludesAtExchangeCap(t *testing.T) {
	s := NewInterviewSession("session_1", "technical", marker, 2)
	require.NoError(t, s.Begin())

	state, err := s.RecordExchange("first question feedback")
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, state)

	state, err = s.RecordExchange("second question feedback")
	require.NoError(t, err)
	assert.Equal(t, StateConcluded, state)
	assert.Equal(t, 2, s.Exchanges())
}

func TestResumeInterviewSession(t *testing.T) {
	s := ResumeInterviewSession("session_1", "behavioral", marker, 4, 10)
	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 4, s.Exchanges())

	done := ResumeInterviewSession("session_2", "behavioral", marker, 10, 10)
	assert.Equal(t, StateConcluded, done.State())

	fresh := ResumeInterviewSession("session_3", "behavioral", marker, 0, 10)
	assert.Equal(t, StateNotStarted, fresh.State())
}
