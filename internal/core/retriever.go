// ABOUTME: Retriever embeds a query and finds the most similar indexed chunks
// ABOUTME: Read-only over a loaded index; safe for concurrent use
package core

import (
	"context"
	"fmt"

	"github.com/youngerself/younger/internal/models"
	"github.com/youngerself/younger/internal/storage"
)

// Retriever serves top-k similarity queries against one loaded index. The
// index is treated as immutable, so a single Retriever may be shared by
// concurrent chat sessions.
type Retriever struct {
	index       *storage.VectorIndex
	embedder    Embedder
	defaultTopK int
}

// NewRetriever creates a retriever over the given index. A nil index is
// permitted and behaves as an empty one.
func NewRetriever(index *storage.VectorIndex, embedder Embedder, defaultTopK int) *Retriever {
	if defaultTopK <= 0 {
		defaultTopK = 5
	}
	return &Retriever{
		index:       index,
		embedder:    embedder,
		defaultTopK: defaultTopK,
	}
}

// Retrieve embeds the query and returns the k most similar chunks, highest
// similarity first. k <= 0 selects the configured default; k beyond the
// index size is clamped. An empty index yields an empty result, not an
// error; "no context available" is a valid state the caller must handle.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]models.ScoredChunk, error) {
	if k <= 0 {
		k = r.defaultTopK
	}
	if r.index.Len() == 0 {
		return nil, nil
	}

	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return r.index.Search(vector, k)
}
