// ABOUTME: MCP tool definitions and registration for the younger-self server
// ABOUTME: Exposes retrieval and persona chat over the Model Context Protocol
package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/youngerself/younger/internal/core"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, retriever *core.Retriever, session *core.ChatSession) *Handlers {
	handlers := &Handlers{
		retriever: retriever,
		session:   session,
		mu:        &sync.Mutex{},
	}

	// 1. retrieve_context - semantic search over the indexed corpus
	server.AddTool(mcp.Tool{
		Name:        "retrieve_context",
		Description: "Retrieve the chunks of the indexed personal writings most similar to a query.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query for retrieval",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of chunks to return (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RetrieveContext)

	// 2. ask_younger_self - one chat turn against the persona
	server.AddTool(mcp.Tool{
		Name:        "ask_younger_self",
		Description: "Ask the younger-self persona a question. The reply is grounded in retrieved writings and the running conversation.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to ask the persona",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskYoungerSelf)

	return handlers
}
