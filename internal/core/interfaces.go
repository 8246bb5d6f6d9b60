// ABOUTME: Service contracts consumed by the indexing and chat core
// ABOUTME: Embedder and Generator are satisfied by the llm client and by test fakes
package core

import "context"

// Embedder maps text to fixed-length numeric vectors. Embedding is a pure
// function of the text for a fixed model version; ModelTag identifies that
// version so indexes built with one model are never queried with another.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	ModelTag() string
}

// Generator produces a completion for a fully assembled prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
