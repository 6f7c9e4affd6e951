package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const readmeTemplate = `# Today I Learned

A collection of concise write-ups on things I learn day to day.

0 TILs & Counting

---

### Categories

---
`

const tilSkill = `# /til - Generate TIL Entry

Generate a "Today I Learned" markdown entry based on the current conversation.

## Format Requirements
- H1 title describing the action (e.g., "Update A Forked Repo", "Setup An MQTT Broker")
- Opening that explains the situation or problem ("If you want to...", "There are times when...")
- Step-by-step flow: prose explaining what to do, then a code block, then more prose
- One command per code block when walking through steps
- Concise but complete: 15-40 lines typically

## Style Guidelines
- Conversational, second-person tone ("you can", "let's", "we'll")
- Start with WHY or WHEN, not a definition
- Code blocks should be clean - put explanations in prose before/after, not as comments
- Avoid heavy H2 structure; use flowing prose with occasional H3 for distinct sections
- It's okay to end casually ("That's it!") or with a brief practical note
- Do NOT write like documentation or a cheat sheet

## Output Format
Return ONLY the markdown content. No preamble.
`

const noteSkill = `# /note - Generate Knowledge Base Note

Generate a comprehensive knowledge base note based on the current conversation. This is for personal knowledge management systems like Obsidian or Logseq.

## Format Requirements

### Frontmatter (YAML)
- title, date (YYYY-MM-DD), tags, aliases

### Content Structure
1. **Title** (H1) - Clear, descriptive title
2. **Overview** - 2-3 paragraph introduction explaining the concept
3. **Key Concepts** - Detailed breakdown of important ideas
4. **Examples** - Comprehensive code examples with explanations
5. **Common Patterns** - Typical use cases and patterns
6. **Gotchas & Tips** - Things to watch out for, best practices
7. **Session Q&A** (optional) - Key questions and answers from our conversation
8. **Related Topics** - Links to related concepts using [[wiki-link]] format
9. **Sources** (if from URL analysis) - Original sources consulted

## Style Guidelines
- Write in a teaching tone, as if explaining to a colleague
- Include plenty of code examples with annotations
- Be thorough - this is for deep understanding, not quick reference
- Target length: 100-300 lines

## Output Format
Return ONLY the markdown content for the note file, starting with the YAML frontmatter. Do not include any preamble or explanation.
`

// ScaffoldResult reports what InitTILRepo created and what it left alone.
type ScaffoldResult struct {
	Created []string
	Skipped []string
}

// InitTILRepo scaffolds a TIL repository: README, archive directory, and the
// .claude/commands skill files used by /til and /note. Safe to run on an
// existing repo; files that already exist are skipped, never overwritten.
func InitTILRepo(path, archiveDir string) (*ScaffoldResult, error) {
	result := &ScaffoldResult{}

	dirs := []string{
		path,
		filepath.Join(path, archiveDir),
		filepath.Join(path, ".claude", "commands"),
	}
	for _, dir := range dirs {
		existed, err := ensureDir(dir)
		if err != nil {
			return nil, err
		}
		if existed {
			result.Skipped = append(result.Skipped, dir)
		} else {
			result.Created = append(result.Created, dir)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(path, "README.md"), readmeTemplate},
		{filepath.Join(path, ".claude", "commands", "til.md"), tilSkill},
		{filepath.Join(path, ".claude", "commands", "note.md"), noteSkill},
	}
	for _, f := range files {
		existed, err := writeIfMissing(f.path, f.content)
		if err != nil {
			return nil, err
		}
		if existed {
			result.Skipped = append(result.Skipped, f.path)
		} else {
			result.Created = append(result.Created, f.path)
		}
	}

	return result, nil
}

// ensureDir creates dir if needed and reports whether it already existed.
func ensureDir(dir string) (existed bool, err error) {
	if info, statErr := os.Stat(dir); statErr == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return true, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return false, nil
}

// writeIfMissing writes content to path unless it already exists.
func writeIfMissing(path, content string) (existed bool, err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return true, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return false, nil
}
