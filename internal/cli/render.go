package cli

import (
	"github.com/charmbracelet/glamour"
)

// renderMarkdown pretty-prints markdown for terminal previews. On any
// renderer failure the raw markdown is returned unchanged.
func renderMarkdown(content string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
