package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/holocron/internal/config"
	"github.com/valter-silva-au/holocron/internal/storage"
)

var initArchiveDir string

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Scaffold a TIL repository",
	Long: `Create the TIL repository layout at the given path (default "."):
README with the entry index, the archive directory, and the slash-command
skill files. Existing files are left untouched, so re-running is safe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = config.ExpandHome(args[0])
		}

		result, err := storage.InitTILRepo(path, initArchiveDir)
		if err != nil {
			return fmt.Errorf("initializing TIL repo: %w", err)
		}

		for _, p := range result.Created {
			fmt.Printf("%s %s\n", successStyle.Render("created"), p)
		}
		for _, p := range result.Skipped {
			fmt.Printf("%s %s\n", dimStyle.Render("exists "), p)
		}
		fmt.Printf("\nTIL repository ready at %s\n", path)
		fmt.Println(dimStyle.Render("Point holocron at it with: holocron config --til-path " + path))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initArchiveDir, "archive-dir", config.DefaultArchiveDir, "directory within the repo for TIL entries")
	rootCmd.AddCommand(initCmd)
}
