package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/holocron/internal/generate"
	"github.com/valter-silva-au/holocron/internal/session"
)

var learnCategory string

var learnCmd = &cobra.Command{
	Use:   "learn <topic>",
	Short: "Start a deep-dive learning session on a topic",
	Long: `Start a deep-dive session: the assistant explains the topic and the
shell stays open for follow-up questions. Use /til or /note inside the
session to capture what you learned.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		cfg, err := ensureConfig()
		if err != nil {
			return err
		}

		sess := session.NewDeepDive(topic, strings.ToLower(strings.TrimSpace(learnCategory)))
		fmt.Println(bannerStyle.Render(sess.Title()))

		d := newDispatcher(cfg)
		if err := d.StartSession(cmd.Context(), sess, generate.DeepDivePrompt(topic)); err != nil {
			return fmt.Errorf("starting deep dive: %w", err)
		}
		return d.Run(cmd.Context())
	},
}

func init() {
	learnCmd.Flags().StringVarP(&learnCategory, "category", "c", "", "TIL category for this session (e.g. git, rust)")
	rootCmd.AddCommand(learnCmd)
}
