// ABOUTME: Tests for the MCP tool handlers
// ABOUTME: Tool argument handling and JSON response shapes, no live server
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/youngerself/younger/internal/core"
	"github.com/youngerself/younger/internal/models"
	"github.com/youngerself/younger/internal/storage"
)

type fixedEmbedder struct {
	vector []float64
}

func (f *fixedEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return f.vector, nil
}

func (f *fixedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range out {
		out[i] = f.vector
	}
	return out, nil
}

func (f *fixedEmbedder) ModelTag() string { return "fixed" }

type fixedGenerator struct {
	reply string
}

func (f *fixedGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return f.reply, nil
}

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	emb := &fixedEmbedder{vector: []float64{1, 0}}

	index := storage.New(emb.ModelTag())
	chunks := []models.Chunk{
		models.NewChunk("journal.txt", 0, "I love hiking in the mountains.", 0, 31),
	}
	if err := index.Add(chunks, [][]float64{{1, 0}}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	retriever := core.NewRetriever(index, emb, 5)
	assembler := core.NewPromptAssembler(models.Persona{Name: "Younger Self"}, 3, 4096, 0.0)
	session := core.NewChatSession(retriever, assembler, &fixedGenerator{reply: "sure thing"})

	return &Handlers{retriever: retriever, session: session, mu: &sync.Mutex{}}
}

func callRequest(name string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcpgo.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestRetrieveContext(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.RetrieveContext(context.Background(), callRequest("retrieve_context", map[string]any{
		"query": "outdoor activities",
	}))
	if err != nil {
		t.Fatalf("RetrieveContext() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("RetrieveContext() returned tool error: %s", textContent(t, result))
	}

	var response struct {
		Results []struct {
			ChunkID string  `json:"chunk_id"`
			DocID   string  `json:"doc_id"`
			Text    string  `json:"text"`
			Score   float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(response.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(response.Results))
	}
	if response.Results[0].ChunkID != "journal.txt:0" {
		t.Errorf("chunk_id = %q, want journal.txt:0", response.Results[0].ChunkID)
	}
}

func TestRetrieveContextMissingQuery(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.RetrieveContext(context.Background(), callRequest("retrieve_context", map[string]any{}))
	if err != nil {
		t.Fatalf("RetrieveContext() error = %v", err)
	}
	if !result.IsError {
		t.Error("missing query should produce a tool error")
	}
}

func TestAskYoungerSelf(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.AskYoungerSelf(context.Background(), callRequest("ask_younger_self", map[string]any{
		"question": "What do you do outdoors?",
	}))
	if err != nil {
		t.Fatalf("AskYoungerSelf() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("AskYoungerSelf() returned tool error: %s", textContent(t, result))
	}

	var response struct {
		Reply     string `json:"reply"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal([]byte(textContent(t, result)), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.Reply != "sure thing" {
		t.Errorf("reply = %q, want the generated reply", response.Reply)
	}
	if !strings.HasPrefix(response.SessionID, "session_") {
		t.Errorf("session_id = %q, want session_ prefix", response.SessionID)
	}
}

func TestAskYoungerSelfMissingQuestion(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.AskYoungerSelf(context.Background(), callRequest("ask_younger_self", map[string]any{}))
	if err != nil {
		t.Fatalf("AskYoungerSelf() error = %v", err)
	}
	if !result.IsError {
		t.Error("missing question should produce a tool error")
	}
}

func TestRegisterTools(t *testing.T) {
	server := mcpserver.NewMCPServer("test", "0.0.1")

	h := RegisterTools(server, nil, nil)
	if h == nil {
		t.Fatal("RegisterTools() returned nil handlers")
	}
}
