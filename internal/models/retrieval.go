// ABOUTME: ScoredChunk pairs a retrieved chunk with its similarity score
// ABOUTME: Retrieval results are ordered highest similarity first
package models

// ScoredChunk is one element of a retrieval result.
type ScoredChunk struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
}
