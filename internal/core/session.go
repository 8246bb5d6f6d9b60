// ABOUTME: ChatSession drives one turn of retrieval-augmented conversation
// ABOUTME: Owns the append-only history; Idle -> AwaitingReply -> Idle per turn
package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/youngerself/younger/internal/models"
)

// ErrGenerationFailed is returned when the generative service fails for one
// turn. The user's message stays in history, so a retry reuses the same
// prompt-assembly inputs.
var ErrGenerationFailed = errors.New("generation failed")

// SessionState is the chat session's turn state.
type SessionState string

const (
	StateIdle          SessionState = "idle"
	StateAwaitingReply SessionState = "awaiting_reply"
)

// ChatSession holds the turn-by-turn conversation and wires retrieval,
// prompt assembly, and generation together. A session is owned by a single
// caller; its history is never shared across sessions.
type ChatSession struct {
	id        string
	retriever *Retriever
	assembler *PromptAssembler
	generator Generator
	history   []models.ConversationTurn
	state     SessionState
}

// NewChatSession creates an idle session with empty history.
func NewChatSession(retriever *Retriever, assembler *PromptAssembler, generator Generator) *ChatSession {
	return &ChatSession{
		id:        "session_" + uuid.New().String()[:8],
		retriever: retriever,
		assembler: assembler,
		generator: generator,
		state:     StateIdle,
	}
}

// ID returns the session identifier.
func (s *ChatSession) ID() string { return s.id }

// State returns the current turn state.
func (s *ChatSession) State() SessionState { return s.state }

// History returns a copy of the conversation so far.
func (s *ChatSession) History() []models.ConversationTurn {
	out := make([]models.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

// Send processes one user message: append it to history, retrieve context,
// assemble the prompt, and submit it to the generative service. On success
// the reply is appended as the assistant turn and returned. On failure the
// user turn is retained and no assistant turn is added.
func (s *ChatSession) Send(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message cannot be empty")
	}
	if s.state != StateIdle {
		return "", fmt.Errorf("session %s is awaiting a reply", s.id)
	}

	s.state = StateAwaitingReply
	defer func() { s.state = StateIdle }()

	prior := s.History()
	s.history = append(s.history, models.NewTurn(models.RoleUser, message))

	results, err := s.retriever.Retrieve(ctx, message, 0)
	if err != nil {
		return "", fmt.Errorf("retrieving context: %w", err)
	}

	prompt := s.assembler.Assemble(prior, results, message)

	reply, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	s.history = append(s.history, models.NewTurn(models.RoleAssistant, reply))
	return reply, nil
}
