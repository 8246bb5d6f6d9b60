// ABOUTME: Chunk is a bounded contiguous span of one document's text
// ABOUTME: The unit of embedding and retrieval, with rune offsets into the source
package models

import "fmt"

// Chunk is derived from exactly one document. Start and End are rune
// offsets into the document text; Start includes the leading overlap
// repeated from the previous chunk.
type Chunk struct {
	ChunkID string `json:"chunk_id"`
	DocID   string `json:"doc_id"`
	Seq     int    `json:"seq"`
	Text    string `json:"text"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// NewChunk builds a chunk with its canonical "docID:seq" identifier.
func NewChunk(docID string, seq int, text string, start, end int) Chunk {
	return Chunk{
		ChunkID: fmt.Sprintf("%s:%d", docID, seq),
		DocID:   docID,
		Seq:     seq,
		Text:    text,
		Start:   start,
		End:     end,
	}
}
