// Package internal provides the App struct that wires the holocron
// components together and initializes the CLI layer.
package internal

import (
	"time"

	"github.com/valter-silva-au/holocron/internal/assistant"
	"github.com/valter-silva-au/holocron/internal/cli"
	"github.com/valter-silva-au/holocron/internal/fetch"
)

// App holds the service dependencies shared by every command.
type App struct {
	Assistant assistant.Client
}

// Options tune App construction.
type Options struct {
	// AssistantTimeout bounds a single assistant exchange. Zero uses the
	// client default.
	AssistantTimeout time.Duration
}

// NewApp creates the assistant client and page fetcher and wires them into
// the CLI package-level variables.
func NewApp(opts Options) *App {
	app := &App{}

	if opts.AssistantTimeout > 0 {
		app.Assistant = assistant.NewClientWithTimeout(opts.AssistantTimeout)
	} else {
		app.Assistant = assistant.NewClient()
	}

	cli.Assistant = app.Assistant
	cli.Fetcher = fetch.Page

	return app
}
