package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/holocron/internal"
	"github.com/valter-silva-au/holocron/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	app.NewApp(app.Options{})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
