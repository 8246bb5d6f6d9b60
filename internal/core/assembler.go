// ABOUTME: PromptAssembler renders the persona-conditioned prompt for one turn
// ABOUTME: Enforces the input budget by dropping old history, then weak chunks
package core

import (
	"fmt"
	"strings"

	"github.com/youngerself/younger/internal/models"
)

// Token approximation: 4 chars per token.
const charsPerToken = 4

// PromptAssembler combines the persona block, retrieved chunks, and recent
// conversation history into a single prompt. The persona block and the
// current user message are never dropped or truncated; under budget
// pressure the oldest history turns go first, then the lowest-similarity
// chunks.
type PromptAssembler struct {
	persona             models.Persona
	historyWindow       int
	budgetChars         int
	similarityThreshold float64
}

// NewPromptAssembler creates an assembler. budgetTokens is the generative
// service's input budget; threshold filters weak retrievals, keeping the
// single best chunk when nothing passes.
func NewPromptAssembler(persona models.Persona, historyWindow, budgetTokens int, threshold float64) *PromptAssembler {
	if historyWindow < 0 {
		historyWindow = 0
	}
	if budgetTokens <= 0 {
		budgetTokens = 4096
	}
	return &PromptAssembler{
		persona:             persona,
		historyWindow:       historyWindow,
		budgetChars:         budgetTokens * charsPerToken,
		similarityThreshold: threshold,
	}
}

// Assemble renders the prompt for one turn. history excludes the current
// user message; results are expected in descending similarity order.
func (pa *PromptAssembler) Assemble(history []models.ConversationTurn, results []models.ScoredChunk, userMessage string) string {
	personaSec := pa.personaBlock()
	currentSec := "CURRENT MESSAGE:\n" + userMessage + "\n"

	// Persona and the current message are untouchable even when they alone
	// exceed the budget.
	remaining := pa.budgetChars - len(personaSec) - len(currentSec)

	chunkSecs := pa.renderChunks(pa.filterResults(results), &remaining)
	histSecs := pa.renderHistory(history, &remaining)

	var sb strings.Builder
	sb.WriteString(personaSec)
	if len(chunkSecs) > 0 {
		sb.WriteString("YOUR MEMORIES (from your old writings):\n")
		for _, sec := range chunkSecs {
			sb.WriteString(sec)
		}
		sb.WriteString("\n")
	}
	if len(histSecs) > 0 {
		sb.WriteString("RECENT CONVERSATION:\n")
		for _, sec := range histSecs {
			sb.WriteString(sec)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(currentSec)
	return sb.String()
}

// personaBlock renders the static persona instruction section.
func (pa *PromptAssembler) personaBlock() string {
	var sb strings.Builder
	sb.WriteString("PERSONA:\n")
	if pa.persona.Name != "" {
		sb.WriteString(fmt.Sprintf("You are %s.\n", pa.persona.Name))
	}
	if pa.persona.Description != "" {
		sb.WriteString(pa.persona.Description)
		sb.WriteString("\n")
	}
	if pa.persona.Instruction != "" {
		sb.WriteString(pa.persona.Instruction)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// filterResults drops chunks below the similarity threshold. If nothing
// passes but something was retrieved, the single best chunk is kept so the
// persona always has at least some grounding.
func (pa *PromptAssembler) filterResults(results []models.ScoredChunk) []models.ScoredChunk {
	if len(results) == 0 {
		return nil
	}
	var kept []models.ScoredChunk
	for _, r := range results {
		if r.Score >= pa.similarityThreshold {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = results[:1]
	}
	return kept
}

// renderChunks renders retrieved chunks in descending similarity order,
// keeping as many of the strongest as fit the remaining budget. Each chunk
// is labeled with its source so provenance stays inspectable.
func (pa *PromptAssembler) renderChunks(results []models.ScoredChunk, remaining *int) []string {
	var secs []string
	for _, r := range results {
		sec := fmt.Sprintf("[%s#%d] (similarity %.2f)\n%s\n", r.Chunk.DocID, r.Chunk.Seq, r.Score, r.Chunk.Text)
		if len(sec) > *remaining {
			break
		}
		secs = append(secs, sec)
		*remaining -= len(sec)
	}
	return secs
}

// renderHistory keeps the newest turns inside the history window that still
// fit the remaining budget, returned in chronological order.
func (pa *PromptAssembler) renderHistory(history []models.ConversationTurn, remaining *int) []string {
	start := len(history) - pa.historyWindow
	if start < 0 {
		start = 0
	}
	window := history[start:]

	// Walk newest to oldest so the oldest turns are the first to go.
	var secs []string
	for i := len(window) - 1; i >= 0; i-- {
		turn := window[i]
		speaker := "You (now)"
		if turn.Role == models.RoleAssistant {
			speaker = "You (younger)"
		}
		sec := fmt.Sprintf("%s: %s\n", speaker, turn.Text)
		if len(sec) > *remaining {
			break
		}
		secs = append([]string{sec}, secs...)
		*remaining -= len(sec)
	}
	return secs
}
