// Package storage persists generated artifacts into the configured TIL and
// notes repositories and scaffolds new TIL repos.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteTIL writes a TIL entry under <repoRoot>/<archiveDir>/<category>/ and
// updates the repository README index. It returns the path of the written
// file. Missing intermediate directories are created.
func WriteTIL(repoRoot, archiveDir, category, filename, content, title string) (string, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "misc"
	}

	categoryDir := filepath.Join(repoRoot, archiveDir, category)
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return "", fmt.Errorf("creating category directory %s: %w", categoryDir, err)
	}

	filename = sanitizeFilename(filename)
	path := filepath.Join(categoryDir, filename)
	if err := os.WriteFile(path, []byte(ensureTrailingNewline(content)), 0o644); err != nil {
		return "", fmt.Errorf("writing TIL file %s: %w", path, err)
	}

	if err := updateReadme(repoRoot, archiveDir, category, filename, title); err != nil {
		// The entry itself is written; the index failure is surfaced so
		// the user can fix the README by hand.
		return path, fmt.Errorf("updating README index: %w", err)
	}
	return path, nil
}

// WriteNote writes a note into the notes repository root, creating it if
// needed, and returns the path of the written file.
func WriteNote(notesPath, filename, content string) (string, error) {
	if err := os.MkdirAll(notesPath, 0o755); err != nil {
		return "", fmt.Errorf("creating notes directory %s: %w", notesPath, err)
	}

	path := filepath.Join(notesPath, sanitizeFilename(filename))
	if err := os.WriteFile(path, []byte(ensureTrailingNewline(content)), 0o644); err != nil {
		return "", fmt.Errorf("writing note file %s: %w", path, err)
	}
	return path, nil
}

func sanitizeFilename(filename string) string {
	if !strings.HasSuffix(filename, ".md") {
		filename += ".md"
	}
	return strings.ToLower(strings.ReplaceAll(filename, " ", "_"))
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
