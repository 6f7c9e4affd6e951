package generate

import "testing"

func TestExtractTitle(t *testing.T) {
	if got := ExtractTitle("# My Title\n\nSome content."); got != "My Title" {
		t.Errorf("ExtractTitle = %q", got)
	}
	if got := ExtractTitle("  # Trimmed Title  \n\nMore."); got != "Trimmed Title" {
		t.Errorf("ExtractTitle = %q", got)
	}
	if got := ExtractTitle("No heading here"); got != "" {
		t.Errorf("ExtractTitle = %q, want empty", got)
	}
	// H2 must not match.
	if got := ExtractTitle("## Subheading\n# Real Title"); got != "Real Title" {
		t.Errorf("ExtractTitle = %q", got)
	}
}

func TestExtractNoteTitle_FromFrontMatter(t *testing.T) {
	content := "---\ntitle: My Note Title\ndate: 2026-08-31\ntags: [test]\n---\n\n# Heading\n"
	if got := ExtractNoteTitle(content); got != "My Note Title" {
		t.Errorf("ExtractNoteTitle = %q", got)
	}
}

func TestExtractNoteTitle_QuotedFrontMatter(t *testing.T) {
	content := "---\ntitle: \"Quoted Title\"\n---\n"
	if got := ExtractNoteTitle(content); got != "Quoted Title" {
		t.Errorf("ExtractNoteTitle = %q", got)
	}
}

func TestExtractNoteTitle_FallsBackToH1(t *testing.T) {
	content := "---\ntitle:\n---\n# Fallback Title\n"
	if got := ExtractNoteTitle(content); got != "Fallback Title" {
		t.Errorf("ExtractNoteTitle = %q", got)
	}
	if got := ExtractNoteTitle("# Plain H1\nbody"); got != "Plain H1" {
		t.Errorf("ExtractNoteTitle = %q", got)
	}
}

func TestExtractNoteTitle_NoTitleAnywhere(t *testing.T) {
	if got := ExtractNoteTitle("just text"); got != "" {
		t.Errorf("ExtractNoteTitle = %q, want empty", got)
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Git Rebasing":       "git_rebasing",
		"How to Use --onto":  "how_to_use_onto",
		"What's New?":        "what_s_new",
		"Test & More":        "test_more",
		"  spaces  around  ": "spaces_around",
		"":                   "",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Git: The Basics"); got != "git_the_basics.md" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("!!!"); got != "untitled.md" {
		t.Errorf("Filename = %q", got)
	}
}
