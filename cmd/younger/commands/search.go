// ABOUTME: CLI command to search the indexed corpus
// ABOUTME: Semantic retrieval with table or JSON output
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/youngerself/younger/internal/config"
	"github.com/youngerself/younger/internal/core"
)

var (
	searchLimit int
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the indexed writings",
		Long: `Search the indexed writings by semantic similarity.

Embeds the query with the same model used at index time and returns the
most similar chunks with their sources.

Examples:
  younger search "summer road trips"
  younger search --limit 10 "first job"
  younger search --format json "concerts"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	query := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
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
	results, err := retriever.Retrieve(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("searching index: %w", err)
	}

	if len(results) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No matching chunks for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tSOURCE\tPREVIEW\n")
		fmt.Fprintf(w, "-----\t------\t-------\n")

		for _, result := range results {
			fmt.Fprintf(w, "%.3f\t%s\t%s\n",
				result.Score,
				truncate(result.Chunk.ChunkID, 30),
				truncate(oneLine(result.Chunk.Text), 60))
		}
		w.Flush()

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(results))
		}
	}

	return nil
}
