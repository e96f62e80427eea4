// Package conversation translates transport-level chat histories into the
// message shape the LLM layer consumes, and tracks mock interview sessions.
package conversation

import (
	"fmt"

	"jobbuddy-utils/internal/llm"
	"jobbuddy-utils/pkg/models"
)

// UnknownRoleError reports a history turn whose role is neither "user" nor
// "assistant".
type UnknownRoleError struct {
	Index int
	Role  string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("conversation: turn %d has unknown role %q", e.Index, e.Role)
}

// ToModelMessages converts a rendered system prompt plus an ordered chat
// history into the provider message list. The system prompt always becomes
// the single leading system message; history order and roles are preserved.
func ToModelMessages(systemPrompt string, history []models.ChatTurn) ([]llm.Message, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: systemPrompt,
	})

	for i, turn := range history {
		var role llm.Role
		switch turn.Role {
		case "user":
			role = llm.RoleUser
		case "assistant":
			role = llm.RoleAssistant
		default:
			return nil, &UnknownRoleError{Index: i, Role: turn.Role}
		}
		messages = append(messages, llm.Message{
			Role:    role,
			Content: turn.Content,
		})
	}

	return messages, nil
}
