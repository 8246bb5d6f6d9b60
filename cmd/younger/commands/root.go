// ABOUTME: Root command wiring for the younger CLI
// ABOUTME: Registers subcommands and the global output flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "younger",
		Short: "Chat with your younger self",
		Long: `younger indexes a directory of your old writings and lets you talk
to the person who wrote them.

Build the index once from a corpus of plain-text exports, then chat:
retrieval finds the writings most relevant to each message and the
persona answers in your younger voice, grounded in what you actually
wrote.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewIndexCmd(),
		NewSearchCmd(),
		NewAskCmd(),
		NewChatCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
