// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes retrieval and persona chat to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/youngerself/younger/internal/config"
	"github.com/youngerself/younger/internal/core"
	"github.com/youngerself/younger/internal/mcp"
)

// NewMCPCmd creates the MCP command.
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

Exposes the indexed corpus and the younger-self persona as MCP tools so
LLM agents can retrieve context or ask the persona directly.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  younger mcp

  # Configure in the host's MCP config:
  # {
  #   "mcpServers": {
  #     "younger": {
  #       "command": "younger",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server.
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	persona, err := config.LoadPersona(cfg.PersonaPath)
	if err != nil {
		return err
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - retrieval and chat tools will not work")
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	index, err := loadIndex(cfg, client.ModelTag())
	if err != nil {
		return err
	}

	retriever := core.NewRetriever(index, client, cfg.TopK)
	session := newSession(cfg, persona, index, client)

	server := mcpserver.NewMCPServer(
		"Younger Self",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, retriever, session)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Printf("younger MCP server starting on stdio (%d chunks indexed)...", index.Len())
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down...")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
