// ABOUTME: Chunker splits documents into bounded, overlapping text spans
// ABOUTME: Prefers paragraph and sentence boundaries, falls back to rune windows
package core

import (
	"sort"
	"strings"
	"unicode"

	"github.com/youngerself/younger/internal/models"
)

// Chunker splits a document into chunks of at most maxLen runes, repeating
// the trailing overlap runes of each chunk at the start of the next so that
// context straddling a split point is not lost.
type Chunker struct {
	maxLen  int
	overlap int
}

// NewChunker creates a chunker. Non-positive maxLen falls back to 600 runes;
// an overlap that is negative or not smaller than maxLen is clamped.
func NewChunker(maxLen, overlap int) *Chunker {
	if maxLen <= 0 {
		maxLen = 600
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxLen {
		overlap = maxLen / 4
	}
	return &Chunker{maxLen: maxLen, overlap: overlap}
}

// Overlap returns the configured overlap length in runes.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits the document into an ordered sequence of chunks. The
// underlying spans are contiguous and cover every rune of the text; each
// chunk after the first additionally carries the previous chunk's trailing
// overlap. Empty or whitespace-only documents yield no chunks.
func (c *Chunker) Chunk(doc models.Document) []models.Chunk {
	if strings.TrimSpace(doc.Text) == "" {
		return nil
	}

	runes := []rune(doc.Text)
	spans := c.coreSpans(runes)

	chunks := make([]models.Chunk, 0, len(spans))
	for i, sp := range spans {
		start := sp.start
		if i > 0 {
			start -= c.overlap
			if start < spans[i-1].start {
				start = spans[i-1].start
			}
		}
		chunks = append(chunks, models.NewChunk(doc.ID, i, string(runes[start:sp.end]), start, sp.end))
	}
	return chunks
}

type span struct {
	start, end int
}

// coreSpans cuts [0, len(runes)) into contiguous spans of at most maxLen
// runes. Each cut lands on the farthest paragraph boundary inside the
// window, then the farthest sentence boundary, then a hard rune cut when no
// natural boundary exists.
func (c *Chunker) coreSpans(runes []rune) []span {
	paraBreaks, sentBreaks := findBreaks(runes)

	var spans []span
	n := len(runes)
	cur := 0
	for cur < n {
		limit := cur + c.maxLen
		if limit >= n {
			spans = append(spans, span{cur, n})
			break
		}
		cut := lastBreakIn(paraBreaks, cur, limit)
		if cut <= cur {
			cut = lastBreakIn(sentBreaks, cur, limit)
		}
		if cut <= cur {
			cut = limit
		}
		spans = append(spans, span{cur, cut})
		cur = cut
	}
	return spans
}

// findBreaks locates candidate cut points: after a run of blank-line
// newlines (paragraph break) and after sentence-ending punctuation followed
// by whitespace. Cut points are exclusive span ends.
func findBreaks(runes []rune) (paraBreaks, sentBreaks []int) {
	n := len(runes)
	for i := 0; i < n-1; i++ {
		if runes[i] == '\n' && runes[i+1] == '\n' {
			j := i + 1
			for j+1 < n && runes[j+1] == '\n' {
				j++
			}
			paraBreaks = append(paraBreaks, j+1)
			i = j
			continue
		}
		if isSentenceEnd(runes[i]) && unicode.IsSpace(runes[i+1]) {
			sentBreaks = append(sentBreaks, i+2)
		}
	}
	return paraBreaks, sentBreaks
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// lastBreakIn returns the largest break point b with cur < b <= limit, or 0
// when none exists in that window.
func lastBreakIn(breaks []int, cur, limit int) int {
	// First index with breaks[i] > limit; the candidate sits just before it.
	i := sort.SearchInts(breaks, limit+1) - 1
	if i < 0 || breaks[i] <= cur {
		return 0
	}
	return breaks[i]
}
