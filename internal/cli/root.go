// Package cli defines the holocron command tree. Collaborators (assistant
// client, page fetcher) are injected as package variables during application
// wiring.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/holocron/internal/assistant"
	"github.com/valter-silva-au/holocron/internal/repl"
)

// Assistant is the assistant client used by all commands.
// Set during application wiring.
var Assistant assistant.Client

// Fetcher retrieves article content for link-analysis sessions.
// Set during application wiring.
var Fetcher repl.PageFetcher

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "holocron",
	Short: "A learning assistant CLI backed by Claude Code",
	Long: `Holocron is your personal learning companion. Start an interactive
session to deep dive into topics, analyze articles, and generate TIL
entries or detailed knowledge base notes from the conversation.

Running holocron with no arguments starts interactive mode.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("holocron %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
