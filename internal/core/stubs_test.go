// ABOUTME: Shared test doubles for the core package
// ABOUTME: Deterministic embedder and scriptable generator
package core

import (
	"context"
	"hash/fnv"
)

// stubEmbedder returns fixed vectors for known texts and a deterministic
// hash-derived vector for everything else, so repeated runs over the same
// corpus always embed identically.
type stubEmbedder struct {
	vectors map[string][]float64
	dim     int
	err     error
	calls   int
}

func newStubEmbedder(dim int) *stubEmbedder {
	return &stubEmbedder{vectors: map[string][]float64{}, dim: dim}
}

func (s *stubEmbedder) vectorFor(text string) []float64 {
	if v, ok := s.vectors[text]; ok {
		return v
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()
	v := make([]float64, s.dim)
	for i := range v {
		seed = seed*6364136223846793005 + 1442695040888963407
		v[i] = float64(seed%1000)/1000.0 + 0.001
	}
	return v
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectorFor(text), nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = s.vectorFor(t)
	}
	return out, nil
}

func (s *stubEmbedder) ModelTag() string { return "stub-embedder" }

// stubGenerator replays a canned reply, or fails, and records the prompts it
// was handed.
type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}
