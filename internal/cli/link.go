package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/holocron/internal/generate"
	"github.com/valter-silva-au/holocron/internal/session"
)

var linkCategory string

var linkCmd = &cobra.Command{
	Use:   "link <url>",
	Short: "Analyze an article by URL",
	Long: `Fetch an article, have the assistant summarize and discuss it, and keep
the shell open for follow-up questions. Use /til or /note inside the
session to capture the takeaways.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]

		cfg, err := ensureConfig()
		if err != nil {
			return err
		}

		sess := session.NewLink(url, strings.ToLower(strings.TrimSpace(linkCategory)))
		fmt.Println(bannerStyle.Render(sess.Title()))

		article := fetchArticleText(cmd.Context(), url)

		d := newDispatcher(cfg)
		if err := d.StartSession(cmd.Context(), sess, generate.LinkPrompt(url, article)); err != nil {
			return fmt.Errorf("starting link analysis: %w", err)
		}
		return d.Run(cmd.Context())
	},
}

// fetchArticleText pulls the page locally when a fetcher is wired, falling
// back to empty content so the assistant fetches the URL itself.
func fetchArticleText(ctx context.Context, url string) string {
	if Fetcher == nil {
		return ""
	}
	fmt.Println("Fetching article...")
	article, err := Fetcher(ctx, url)
	if err != nil {
		fmt.Printf("Could not fetch the article locally (%v); the assistant will fetch it instead.\n", err)
		return ""
	}
	return article.Markdown
}

func init() {
	linkCmd.Flags().StringVarP(&linkCategory, "category", "c", "", "TIL category for this session (e.g. git, rust)")
	rootCmd.AddCommand(linkCmd)
}
