package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/holocron/internal/config"
)

var (
	cfgTILPath     string
	cfgNotesPath   string
	cfgNotesFormat string
	cfgArchiveDir  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update holocron settings",
	Long: `With no flags, print the current configuration. With flags, update the
named settings and save. Paths may start with ~.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if errors.Is(err, config.ErrNotConfigured) {
			if !cmd.Flags().Changed("til-path") {
				return fmt.Errorf("holocron is not configured yet: run holocron to set up, or pass --til-path")
			}
			cfg = config.New("")
		} else if err != nil {
			return err
		}

		if !anyConfigFlagChanged(cmd) {
			return printConfig(cfg)
		}

		if cmd.Flags().Changed("til-path") {
			cfg.TILPath = config.ExpandHome(cfgTILPath)
		}
		if cmd.Flags().Changed("notes-path") {
			cfg.NotesPath = config.ExpandHome(cfgNotesPath)
		}
		if cmd.Flags().Changed("archive-dir") {
			cfg.ArchiveDir = cfgArchiveDir
		}
		if cmd.Flags().Changed("notes-format") {
			format, err := config.ParseNotesFormat(cfgNotesFormat)
			if err != nil {
				return err
			}
			cfg.NotesFormat = format
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println(successStyle.Render("Configuration saved."))
		return printConfig(cfg)
	},
}

func anyConfigFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"til-path", "notes-path", "notes-format", "archive-dir"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func printConfig(cfg *config.Config) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Printf("config file:  %s\n", path)
	fmt.Printf("til_path:     %s\n", cfg.TILPath)
	fmt.Printf("archive_dir:  %s\n", cfg.ArchiveDir)
	notesPath := cfg.NotesPath
	if notesPath == "" {
		notesPath = dimStyle.Render("(not set)")
	}
	fmt.Printf("notes_path:   %s\n", notesPath)
	fmt.Printf("notes_format: %s\n", cfg.NotesFormat)
	return nil
}

func init() {
	configCmd.Flags().StringVar(&cfgTILPath, "til-path", "", "root of the TIL repository")
	configCmd.Flags().StringVar(&cfgNotesPath, "notes-path", "", "root of the knowledge base for notes")
	configCmd.Flags().StringVar(&cfgNotesFormat, "notes-format", "", "note flavor: obsidian, logseq, or plain")
	configCmd.Flags().StringVar(&cfgArchiveDir, "archive-dir", "", "directory within the TIL repo for entries")
	rootCmd.AddCommand(configCmd)
}
