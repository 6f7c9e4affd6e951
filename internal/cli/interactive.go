package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/valter-silva-au/holocron/internal/config"
	"github.com/valter-silva-au/holocron/internal/repl"
)

// runInteractive launches the full interactive loop. First run without a
// config file drops into the setup wizard before the loop starts.
func runInteractive(ctx context.Context) error {
	cfg, err := ensureConfig()
	if err != nil {
		return err
	}

	printBanner(cfg)

	d := newDispatcher(cfg)
	return d.Run(ctx)
}

// ensureConfig loads the config, running first-time setup when none exists.
func ensureConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		return runSetup()
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newDispatcher wires the shared collaborators into an interactive loop
// reading from stdin.
func newDispatcher(cfg *config.Config) *repl.Dispatcher {
	return repl.New(Assistant, cfg, os.Stdin, os.Stdout, repl.Options{
		Render: renderMarkdown,
		Fetch:  Fetcher,
	})
}

func printBanner(cfg *config.Config) {
	fmt.Println(bannerStyle.Render("Holocron - your learning companion"))
	fmt.Println(ruleStyle.Render(strings.Repeat("─", 40)))
	fmt.Printf("TIL repo: %s\n", cfg.TILPath)
	if cfg.NotesPath != "" {
		fmt.Printf("Notes:    %s (%s)\n", cfg.NotesPath, cfg.NotesFormat)
	}
	fmt.Println()
	fmt.Printf("%s  start a deep dive on a topic\n", commandStyle.Render("/learn <topic>"))
	fmt.Printf("%s   analyze an article by URL\n", commandStyle.Render("/link <url>"))
	fmt.Printf("%s           save a TIL from the conversation\n", commandStyle.Render("/til"))
	fmt.Printf("%s          save a knowledge base note\n", commandStyle.Render("/note"))
	fmt.Printf("%s          leave\n", commandStyle.Render("/exit"))
	fmt.Println()
}
