// ABOUTME: Document is a single source text loaded from the personal corpus
// ABOUTME: Immutable once read; the filename is its identifier
package models

import "time"

// Document is one file from the corpus directory. Text is never mutated
// after the document is read.
type Document struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	ModTime time.Time `json:"mod_time,omitempty"`
}
