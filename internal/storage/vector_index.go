// ABOUTME: Brute-force vector index with cosine similarity search
// ABOUTME: Entries are (chunk, vector) pairs; immutable once loaded
package storage

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/youngerself/younger/internal/models"
)

// ErrDimensionMismatch is returned when a vector's length differs from the
// index's established dimensionality. Mixing dimensions silently corrupts
// retrieval, so it is always rejected.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Entry pairs a chunk with its embedding vector.
type Entry struct {
	Chunk  models.Chunk `json:"chunk"`
	Vector []float64    `json:"vector"`
}

// VectorIndex holds all (chunk, vector) pairs for one corpus. It is built
// by a single writer and treated as read-only afterwards, so Search is safe
// for concurrent use without locking.
type VectorIndex struct {
	modelTag  string
	dimension int
	entries   []Entry
}

// New creates an empty index tagged with the embedding model that will
// produce its vectors. Dimensionality is established by the first Add.
func New(modelTag string) *VectorIndex {
	return &VectorIndex{modelTag: modelTag}
}

// Len returns the number of stored entries.
func (ix *VectorIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Dimension returns the established vector dimensionality, 0 if empty.
func (ix *VectorIndex) Dimension() int { return ix.dimension }

// ModelTag returns the embedding model identifier the index was built with.
func (ix *VectorIndex) ModelTag() string { return ix.modelTag }

// Entries returns the stored entries in insertion order.
func (ix *VectorIndex) Entries() []Entry {
	out := make([]Entry, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// Add appends chunk/vector pairs. The first vector establishes the index
// dimensionality; any vector that deviates fails the whole call with
// ErrDimensionMismatch and nothing is appended.
func (ix *VectorIndex) Add(chunks []models.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}

	dim := ix.dimension
	for i, v := range vectors {
		if len(v) == 0 {
			return fmt.Errorf("%w: empty vector for chunk %s", ErrDimensionMismatch, chunks[i].ChunkID)
		}
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return fmt.Errorf("%w: chunk %s has %d dimensions, index has %d", ErrDimensionMismatch, chunks[i].ChunkID, len(v), dim)
		}
	}

	ix.dimension = dim
	for i := range chunks {
		ix.entries = append(ix.entries, Entry{Chunk: chunks[i], Vector: vectors[i]})
	}
	return nil
}

// Search returns the k entries most similar to the query vector, ordered by
// non-increasing cosine similarity. Ties keep insertion order. k larger than
// the index size returns all entries. An empty index yields an empty result.
func (ix *VectorIndex) Search(query []float64, k int) ([]models.ScoredChunk, error) {
	if ix.Len() == 0 {
		return nil, nil
	}
	if len(query) != ix.dimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, index has %d", ErrDimensionMismatch, len(query), ix.dimension)
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	scored := make([]models.ScoredChunk, len(ix.entries))
	for i, e := range ix.entries {
		scored[i] = models.ScoredChunk{
			Chunk: e.Chunk,
			Score: cosineSimilarity(query, e.Vector),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}
	return scored, nil
}

// cosineSimilarity calculates cosine similarity between two vectors.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
