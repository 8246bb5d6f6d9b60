// ABOUTME: Indexer walks a document directory and builds the vector index
// ABOUTME: Parallel embedding batches, single-writer index construction
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/youngerself/younger/internal/models"
	"github.com/youngerself/younger/internal/storage"
)

// ErrEmptyCorpus is returned when an indexing run produced no chunks at
// all. The run is fatal; a partially unreadable corpus is not.
var ErrEmptyCorpus = errors.New("no documents could be indexed")

// Indexer builds a fresh vector index from a directory of plain-text files.
type Indexer struct {
	chunker   *Chunker
	embedder  Embedder
	batchSize int
	workers   int
}

// NewIndexer creates an indexer. Non-positive batchSize or workers fall
// back to 32 and 4.
func NewIndexer(chunker *Chunker, embedder Embedder, batchSize, workers int) *Indexer {
	if batchSize <= 0 {
		batchSize = 32
	}
	if workers <= 0 {
		workers = 4
	}
	return &Indexer{
		chunker:   chunker,
		embedder:  embedder,
		batchSize: batchSize,
		workers:   workers,
	}
}

// Build enumerates the documents in docsDir, chunks and embeds them, and
// returns a fully populated index. Individual unreadable documents are
// logged and skipped; Build fails only when nothing at all was indexed.
// Re-running on an unchanged corpus produces an equivalent index.
func (ix *Indexer) Build(ctx context.Context, docsDir string) (*storage.VectorIndex, error) {
	docs, err := readDocuments(docsDir)
	if err != nil {
		return nil, err
	}

	var chunks []models.Chunk
	for _, doc := range docs {
		chunks = append(chunks, ix.chunker.Chunk(doc)...)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCorpus, docsDir)
	}

	vectors, err := ix.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	index := storage.New(ix.embedder.ModelTag())
	if err := index.Add(chunks, vectors); err != nil {
		return nil, err
	}
	return index, nil
}

// readDocuments loads every regular file in dir as one document, using the
// filename as its identifier. Hidden files and subdirectories are ignored;
// read failures are logged and the file skipped.
func readDocuments(dir string) ([]models.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading document directory: %w", err)
	}

	var docs []models.Document
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("skipping document %s: %v", name, err)
			continue
		}

		doc := models.Document{ID: name, Text: string(data)}
		if info, err := entry.Info(); err == nil {
			doc.ModTime = info.ModTime()
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// embedChunks runs chunk batches through the embedder with a bounded worker
// pool. Results come back in corpus order; the first error cancels the rest.
func (ix *Indexer) embedChunks(ctx context.Context, chunks []models.Chunk) ([][]float64, error) {
	var batches [][]string
	for start := 0; start < len(chunks); start += ix.batchSize {
		end := start + ix.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		texts := make([]string, 0, end-start)
		for _, ch := range chunks[start:end] {
			texts = append(texts, ch.Text)
		}
		batches = append(batches, texts)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([][][]float64, len(batches))
	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	workers := ix.workers
	if workers > len(batches) {
		workers = len(batches)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bi := range jobs {
				vectors, err := ix.embedder.EmbedBatch(ctx, batches[bi])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					continue
				}
				results[bi] = vectors
			}
		}()
	}

	for bi := range batches {
		jobs <- bi
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("embedding corpus: %w", firstErr)
	}

	vectors := make([][]float64, 0, len(chunks))
	for _, batch := range results {
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}
