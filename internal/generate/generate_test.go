package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/valter-silva-au/holocron/internal/assistant"
	"github.com/valter-silva-au/holocron/internal/session"
)

// fakeClient returns canned replies and records the prompts it saw.
type fakeClient struct {
	reply   string
	err     error
	asked   []string
	resumed []string
}

func (f *fakeClient) Ask(_ context.Context, prompt string, onText func(string)) (*assistant.Reply, error) {
	f.asked = append(f.asked, prompt)
	if f.err != nil {
		return nil, f.err
	}
	if onText != nil {
		onText(f.reply)
	}
	return &assistant.Reply{Text: f.reply}, nil
}

func (f *fakeClient) Resume(_ context.Context, sessionID, prompt string, onText func(string)) (*assistant.Reply, error) {
	f.resumed = append(f.resumed, sessionID)
	return f.Ask(context.Background(), prompt, onText)
}

func activeSession() *session.Session {
	s := session.NewDeepDive("git rebase", "git")
	s.Append(session.RoleUser, "how does rebase work?")
	s.Append(session.RoleAssistant, "it replays commits")
	return s
}

func TestTIL_EmptySessionShortCircuits(t *testing.T) {
	client := &fakeClient{reply: "# Should Not Happen"}

	_, err := TIL(context.Background(), client, session.NewDeepDive("x", ""), nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
	if len(client.asked) != 0 {
		t.Error("assistant must not be invoked for an empty session")
	}
}

func TestTIL_BuildsArtifact(t *testing.T) {
	client := &fakeClient{reply: "# Update A Forked Repo\n\nIf you have forked a repo...\n"}

	art, err := TIL(context.Background(), client, activeSession(), nil)
	if err != nil {
		t.Fatalf("TIL: %v", err)
	}

	if art.Kind != KindTIL {
		t.Errorf("Kind = %q, want til", art.Kind)
	}
	if art.Title != "Update A Forked Repo" {
		t.Errorf("Title = %q", art.Title)
	}
	if art.Filename != "update_a_forked_repo.md" {
		t.Errorf("Filename = %q", art.Filename)
	}
	if len(client.asked) != 1 {
		t.Fatalf("asked %d prompts, want 1", len(client.asked))
	}
	prompt := client.asked[0]
	if !strings.Contains(prompt, "how does rebase work?") {
		t.Error("generation prompt missing transcript context")
	}
	if !strings.Contains(prompt, "Today I Learned") {
		t.Error("generation prompt missing TIL instruction")
	}
}

func TestTIL_UntitledFallback(t *testing.T) {
	client := &fakeClient{reply: "no heading in this output"}

	art, err := TIL(context.Background(), client, activeSession(), nil)
	if err != nil {
		t.Fatalf("TIL: %v", err)
	}
	if art.Title != "Untitled TIL" {
		t.Errorf("Title = %q", art.Title)
	}
	if art.Filename != "untitled_til.md" {
		t.Errorf("Filename = %q", art.Filename)
	}
}

func TestTIL_ResumesKnownAssistantSession(t *testing.T) {
	client := &fakeClient{reply: "# Title"}
	sess := activeSession()
	sess.AssistantSessionID = "abc-123"

	if _, err := TIL(context.Background(), client, sess, nil); err != nil {
		t.Fatalf("TIL: %v", err)
	}
	if len(client.resumed) != 1 || client.resumed[0] != "abc-123" {
		t.Errorf("resumed = %v, want [abc-123]", client.resumed)
	}
}

func TestTIL_PropagatesAssistantError(t *testing.T) {
	client := &fakeClient{err: assistant.ErrNotInstalled}

	_, err := TIL(context.Background(), client, activeSession(), nil)
	if !errors.Is(err, assistant.ErrNotInstalled) {
		t.Fatalf("err = %v, want ErrNotInstalled", err)
	}
}

func TestNote_BuildsArtifactFromFrontMatter(t *testing.T) {
	client := &fakeClient{reply: "---\ntitle: Rust Ownership Deep Dive\ndate: 2026-08-31\n---\n\n# Rust Ownership\n"}

	art, err := Note(context.Background(), client, activeSession(), nil)
	if err != nil {
		t.Fatalf("Note: %v", err)
	}
	if art.Kind != KindNote {
		t.Errorf("Kind = %q, want note", art.Kind)
	}
	if art.Title != "Rust Ownership Deep Dive" {
		t.Errorf("Title = %q", art.Title)
	}
	if art.Filename != "rust_ownership_deep_dive.md" {
		t.Errorf("Filename = %q", art.Filename)
	}
}

func TestNote_EmptySessionShortCircuits(t *testing.T) {
	client := &fakeClient{reply: "ignored"}

	_, err := Note(context.Background(), client, session.NewLink("https://example.com", ""), nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
}

func TestNoteInstruction_SourcesOnlyInLinkMode(t *testing.T) {
	link := session.NewLink("https://example.com", "")
	link.Append(session.RoleUser, "q")
	deep := activeSession()

	if !strings.Contains(noteInstruction(link), "Sources section") {
		t.Error("link-mode note instruction must request sources")
	}
	if strings.Contains(noteInstruction(deep), "Sources section") {
		t.Error("deep-dive note instruction must not request sources")
	}
}

func TestLinkPrompt_EmbedsArticleWhenFetched(t *testing.T) {
	withArticle := LinkPrompt("https://example.com", "Extracted body text")
	if !strings.Contains(withArticle, "Extracted body text") {
		t.Error("prompt missing embedded article")
	}
	if strings.Contains(withArticle, "WebFetch") {
		t.Error("prompt should not ask for WebFetch when article is embedded")
	}

	withoutArticle := LinkPrompt("https://example.com", "")
	if !strings.Contains(withoutArticle, "WebFetch") {
		t.Error("prompt should fall back to WebFetch without a fetched article")
	}
}

func TestLinkPrompt_TruncatesHugeArticles(t *testing.T) {
	article := strings.Repeat("z", articleContextLimit*2)
	prompt := LinkPrompt("https://example.com", article)

	if strings.Contains(prompt, article) {
		t.Error("oversized article must be truncated")
	}
	if !strings.Contains(prompt, "[article truncated]") {
		t.Error("truncated article should be marked")
	}
}

func TestDeepDivePrompt(t *testing.T) {
	prompt := DeepDivePrompt("Rust ownership")
	if !strings.Contains(prompt, "Rust ownership") {
		t.Error("prompt missing topic")
	}
	for _, section := range []string{"Core concepts", "Practical examples", "Common use cases", "Common pitfalls"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
}
