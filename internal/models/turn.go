// ABOUTME: ConversationTurn is one user or assistant message in a chat session
// ABOUTME: History is an ordered, append-only sequence owned by the session
package models

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single message in the session history.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTurn creates a turn stamped with the current time.
func NewTurn(role Role, text string) ConversationTurn {
	return ConversationTurn{
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}
