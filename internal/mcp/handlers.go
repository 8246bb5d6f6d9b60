// ABOUTME: MCP tool handler implementations for the younger-self server
// ABOUTME: Thin adapters from tool calls to the Retriever and ChatSession
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/youngerself/younger/internal/core"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	retriever *core.Retriever
	session   *core.ChatSession
	mu        *sync.Mutex // ChatSession is single-threaded; serialize Send calls
}

// RetrieveContext handles the retrieve_context tool.
func (h *Handlers) RetrieveContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	maxResults := request.GetInt("max_results", 5)

	results, err := h.retriever.Retrieve(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("retrieval failed: %v", err)), nil
	}

	chunks := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, map[string]interface{}{
			"chunk_id": r.Chunk.ChunkID,
			"doc_id":   r.Chunk.DocID,
			"seq":      r.Chunk.Seq,
			"text":     r.Chunk.Text,
			"score":    r.Score,
		})
	}

	response := map[string]interface{}{
		"results": chunks,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// AskYoungerSelf handles the ask_younger_self tool.
func (h *Handlers) AskYoungerSelf(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	h.mu.Lock()
	reply, err := h.session.Send(ctx, question)
	h.mu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chat turn failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"reply":      reply,
		"session_id": h.session.ID(),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
