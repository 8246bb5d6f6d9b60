// ABOUTME: JSON persistence for the vector index with format versioning
// ABOUTME: Save writes atomically; Load verifies format version and model tag
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FormatVersion identifies the on-disk index layout. Bump when the file
// format changes incompatibly.
const FormatVersion = 1

var (
	// ErrModelMismatch is returned when a loaded index was built with a
	// different embedding model than the one currently configured.
	ErrModelMismatch = errors.New("index was built with a different embedding model")

	// ErrUnsupportedIndexVersion is returned for index files written in an
	// unknown format version. Re-indexing is required.
	ErrUnsupportedIndexVersion = errors.New("unsupported index format version")
)

// indexFile is the serialized form of a VectorIndex.
type indexFile struct {
	FormatVersion int       `json:"format_version"`
	ModelTag      string    `json:"model_tag"`
	Dimension     int       `json:"dimension"`
	CreatedAt     time.Time `json:"created_at"`
	Entries       []Entry   `json:"entries"`
}

// Save serializes the full index to path. The write goes through a temp
// file and rename so a crash never leaves a half-written index behind.
func (ix *VectorIndex) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	file := indexFile{
		FormatVersion: FormatVersion,
		ModelTag:      ix.modelTag,
		Dimension:     ix.dimension,
		CreatedAt:     time.Now().UTC(),
		Entries:       ix.entries,
	}

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing index file: %w", err)
	}
	return nil
}

// Load restores an index from path. If expectedModelTag is non-empty and
// differs from the stored tag, Load fails with ErrModelMismatch: querying an
// index with vectors from another model silently degrades retrieval, so the
// mismatch must be surfaced, not papered over.
func Load(path, expectedModelTag string) (*VectorIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index file: %w", err)
	}

	var file indexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing index file %s: %w", path, err)
	}

	if file.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w: file has version %d, supported version is %d", ErrUnsupportedIndexVersion, file.FormatVersion, FormatVersion)
	}
	if expectedModelTag != "" && file.ModelTag != expectedModelTag {
		return nil, fmt.Errorf("%w: index built with %q, configured model is %q", ErrModelMismatch, file.ModelTag, expectedModelTag)
	}

	for _, e := range file.Entries {
		if len(e.Vector) != file.Dimension {
			return nil, fmt.Errorf("%w: entry %s has %d dimensions, header says %d", ErrDimensionMismatch, e.Chunk.ChunkID, len(e.Vector), file.Dimension)
		}
	}

	return &VectorIndex{
		modelTag:  file.ModelTag,
		dimension: file.Dimension,
		entries:   file.Entries,
	}, nil
}
