package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// updateReadme maintains the TIL repository index: bumps the
// "N TILs & Counting" counter and inserts the new entry into its category
// section, creating the section (and its Categories link) when needed.
func updateReadme(repoRoot, archiveDir, category, filename, title string) error {
	readmePath := filepath.Join(repoRoot, "README.md")
	data, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("reading README.md: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	lines = bumpTILCount(lines)
	lines = addEntry(lines, archiveDir, category, filename, title)

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(readmePath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing README.md: %w", err)
	}
	return nil
}

// bumpTILCount increments the counter on a "N TILs & Counting" line.
func bumpTILCount(lines []string) []string {
	for i, line := range lines {
		if !strings.Contains(line, "TILs & Counting") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		lines[i] = fmt.Sprintf("%d TILs & Counting", n+1)
		break
	}
	return lines
}

func addEntry(lines []string, archiveDir, category, filename, title string) []string {
	entry := fmt.Sprintf("- [%s](%s/%s/%s)", title, archiveDir, category, filename)

	if idx, ok := findCategorySection(lines, category); ok {
		at := insertionPoint(lines, idx)
		return insertLine(lines, at, entry)
	}
	return addCategorySection(lines, category, entry)
}

// findCategorySection locates the "### <Category>" header line.
func findCategorySection(lines []string, category string) (int, bool) {
	want := "### " + strings.ToLower(category)
	for i, line := range lines {
		if strings.ToLower(strings.TrimSpace(line)) == want {
			return i, true
		}
	}
	return 0, false
}

// insertionPoint finds where a new entry goes inside a category section:
// after the existing entry list, before the next section or separator.
func insertionPoint(lines []string, categoryIdx int) int {
	i := categoryIdx + 1
	for i < len(lines) {
		line := lines[i]
		if strings.HasPrefix(line, "###") || strings.HasPrefix(line, "---") {
			break
		}
		if strings.HasPrefix(line, "- [") || strings.TrimSpace(line) == "" {
			i++
			continue
		}
		break
	}
	if i > 0 && strings.TrimSpace(lines[i-1]) == "" {
		return i - 1
	}
	return i
}

// addCategorySection appends a new category section at the end of the README
// and links it from the Categories list when one exists.
func addCategorySection(lines []string, category, entry string) []string {
	display := capitalizeFirst(category)

	if idx, ok := categoriesListEnd(lines); ok {
		link := fmt.Sprintf("* [%s](#%s)", display, strings.ToLower(category))
		lines = insertLine(lines, idx, link)
	}

	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	tail := []string{"", "### " + display, "", entry, ""}
	out := make([]string, 0, len(lines)+len(tail))
	out = append(out, lines[:end]...)
	out = append(out, tail...)
	out = append(out, lines[end:]...)
	return out
}

// categoriesListEnd returns the index just past the "### Categories" list.
func categoriesListEnd(lines []string) (int, bool) {
	inCategories := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "### Categories" {
			inCategories = true
			continue
		}
		if inCategories && (strings.HasPrefix(line, "---") || strings.HasPrefix(line, "###")) {
			return i, true
		}
	}
	return 0, false
}

func insertLine(lines []string, at int, line string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	out = append(out, lines[at:]...)
	return out
}

func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
