// ABOUTME: CLI command for a one-shot question to the persona
// ABOUTME: Single retrieval-augmented turn without an interactive session
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/youngerself/younger/internal/config"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask your younger self one question",
		Long: `Ask the persona a single question and print the reply.

The question is answered in one retrieval-augmented turn; no history is
kept. Use 'younger chat' for a running conversation.

Examples:
  younger ask "What music were you into?"
  younger ask "How did you feel about school?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	question := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	persona, err := config.LoadPersona(cfg.PersonaPath)
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

	session := newSession(cfg, persona, index, client)
	reply, err := session.Send(cmd.Context(), question)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
