// ABOUTME: CLI command to build and persist the vector index
// ABOUTME: One-shot offline batch job over the document directory
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/youngerself/younger/internal/config"
	"github.com/youngerself/younger/internal/core"
)

var (
	indexDocsDir string
	indexOutPath string
	indexForce   bool
)

// NewIndexCmd creates the index command.
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index the document corpus",
		Long: `Index a directory of plain-text writings into the vector index.

Each file in the directory becomes one document, is split into chunks,
embedded, and written to the persisted index. Re-run with --force to
replace an existing index.

Examples:
  younger index
  younger index --docs exports/ --out storage/index.json
  younger index --force`,
		Args: cobra.NoArgs,
		RunE: runIndex,
	}

	cmd.Flags().StringVar(&indexDocsDir, "docs", "", "Directory containing documents to index")
	cmd.Flags().StringVar(&indexOutPath, "out", "", "Path for the persisted index")
	cmd.Flags().BoolVar(&indexForce, "force", false, "Replace an existing index")

	return cmd
}

func runIndex(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if indexDocsDir != "" {
		cfg.DocsDir = indexDocsDir
	}
	if indexOutPath != "" {
		cfg.IndexPath = indexOutPath
	}

	if _, err := os.Stat(cfg.IndexPath); err == nil && !indexForce {
		return fmt.Errorf("index already exists at %s (use --force to replace it)", cfg.IndexPath)
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	chunker := core.NewChunker(cfg.ChunkMaxLen, cfg.ChunkOverlap)
	indexer := core.NewIndexer(chunker, client, cfg.EmbedBatchSize, cfg.EmbedWorkers)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Indexing documents from %s...\n", cfg.DocsDir)
	}

	index, err := indexer.Build(cmd.Context(), cfg.DocsDir)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if err := index.Save(cfg.IndexPath); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Indexed %d chunks (%dD, model %s) to %s\n",
			index.Len(), index.Dimension(), index.ModelTag(), cfg.IndexPath)
	}
	return nil
}
