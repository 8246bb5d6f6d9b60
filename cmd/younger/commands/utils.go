// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates flag validation, engine wiring, and display helpers
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/youngerself/younger/internal/config"
	"github.com/youngerself/younger/internal/core"
	"github.com/youngerself/younger/internal/llm"
	"github.com/youngerself/younger/internal/storage"
)

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// oneLine collapses whitespace runs so chunk previews fit a table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// validatePositiveInt returns an error if n is not positive.
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// newClient builds the OpenAI client from config.
func newClient(cfg *config.Config) (*llm.Client, error) {
	client, err := llm.NewClient(&llm.ClientConfig{
		APIKey:          cfg.OpenAIKey,
		ChatModel:       cfg.ChatModel,
		EmbeddingModel:  cfg.EmbeddingModel,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Timeout:         cfg.Timeout,
		MaxRetries:      cfg.MaxRetries,
		RetryDelay:      cfg.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}
	return client, nil
}

// loadIndex loads the persisted index, verifying it matches the configured
// embedding model.
func loadIndex(cfg *config.Config, modelTag string) (*storage.VectorIndex, error) {
	if _, err := os.Stat(cfg.IndexPath); err != nil {
		return nil, fmt.Errorf("no index found at %s (run 'younger index' first): %w", cfg.IndexPath, err)
	}
	index, err := storage.Load(cfg.IndexPath, modelTag)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	return index, nil
}

// newSession wires a chat session over the loaded index and persona.
func newSession(cfg *config.Config, persona *config.PersonaConfig, index *storage.VectorIndex, client *llm.Client) *core.ChatSession {
	retriever := core.NewRetriever(index, client, cfg.TopK)
	assembler := core.NewPromptAssembler(persona.Persona, cfg.HistoryWindow, cfg.PromptBudget, cfg.SimilarityThreshold)
	return core.NewChatSession(retriever, assembler, client)
}
