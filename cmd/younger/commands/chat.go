// ABOUTME: CLI command for an interactive chat session with the persona
// ABOUTME: REPL over stdin; history lives for the session and is then discarded
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/youngerself/younger/internal/config"
	"github.com/youngerself/younger/internal/core"
)

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat with your younger self.

Each message retrieves the most relevant old writings and conditions
the reply on them plus the recent conversation. Type 'exit' or 'quit'
(or press Ctrl-D) to leave; history is discarded when the session ends.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

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

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintf(out, "%s\n", persona.Chatbot.Title)
		if len(persona.Chatbot.Examples) > 0 {
			fmt.Fprintln(out, "Try asking:")
			for _, example := range persona.Chatbot.Examples {
				fmt.Fprintf(out, "  - %s\n", example)
			}
		}
		fmt.Fprintln(out)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply, err := session.Send(cmd.Context(), message)
		if err != nil {
			if errors.Is(err, core.ErrGenerationFailed) {
				// The user turn is retained, so the same question can be
				// retried without re-typing context.
				fmt.Fprintf(out, "(no reply: %v; try again)\n", err)
				continue
			}
			return err
		}

		fmt.Fprintf(out, "\n%s> %s\n\n", persona.Persona.Name, reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if !quiet {
		fmt.Fprintf(out, "\n%d turn(s) this session. Bye.\n", len(session.History()))
	}
	return nil
}
