package generate

import (
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ExtractTitle returns the first H1 heading of markdown content, or "".
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if title, ok := strings.CutPrefix(trimmed, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}

// frontMatter is the subset of note front-matter we read back.
type frontMatter struct {
	Title string `yaml:"title"`
}

// ExtractNoteTitle prefers the YAML front-matter title and falls back to the
// first H1 heading.
func ExtractNoteTitle(content string) string {
	if rest, ok := strings.CutPrefix(content, "---"); ok {
		if idx := strings.Index(rest, "\n---"); idx >= 0 {
			var fm frontMatter
			if err := yaml.Unmarshal([]byte(rest[:idx]), &fm); err == nil {
				if title := strings.TrimSpace(fm.Title); title != "" {
					return title
				}
			}
		}
	}
	return ExtractTitle(content)
}

// Slug lowercases a title and maps every non-alphanumeric run to a single
// underscore.
func Slug(title string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
		}
		lastUnderscore = true
	}
	return strings.Trim(b.String(), "_")
}

// Filename returns the slugified title with a .md suffix. An empty slug
// falls back to "untitled.md".
func Filename(title string) string {
	slug := Slug(title)
	if slug == "" {
		slug = "untitled"
	}
	return slug + ".md"
}
