// Package session holds the in-memory transcript of a learning session.
// Sessions live for the process lifetime only; generated artifacts are the
// sole durable output.
package session

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies who produced a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Mode identifies how a learning session was started.
type Mode string

const (
	// ModeDeepDive is an extended explanatory session on a topic.
	ModeDeepDive Mode = "deep_dive"

	// ModeLink analyzes an article or resource from a URL.
	ModeLink Mode = "link"
)

// Turn is a single transcript entry. Immutable once appended.
type Turn struct {
	Role Role
	Text string
	At   time.Time
}

// Truncation budgets for the generation context. Assistant answers are
// long; the generators only need enough of each to recall what was covered.
const (
	maxTurnContextChars  = 500
	maxTotalContextChars = 12000
)

// Session is an ordered, append-only conversation transcript plus the
// metadata needed to file its generated artifacts.
type Session struct {
	// Mode and Subject describe how the session started (topic or URL).
	Mode    Mode
	Subject string

	// Category is the TIL category, empty until chosen.
	Category string

	// AssistantSessionID is the CLI-side conversation ID, when known.
	// Follow-up and generation requests resume it to keep full context.
	AssistantSessionID string

	turns []Turn
}

// NewDeepDive starts a topic session.
func NewDeepDive(topic, category string) *Session {
	return &Session{Mode: ModeDeepDive, Subject: topic, Category: category}
}

// NewLink starts a URL-analysis session.
func NewLink(url, category string) *Session {
	return &Session{Mode: ModeLink, Subject: url, Category: category}
}

// Append records a turn at the end of the transcript.
func (s *Session) Append(role Role, text string) {
	s.turns = append(s.turns, Turn{Role: role, Text: text, At: time.Now()})
}

// Turns returns a copy of the transcript in append order.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Clear discards the transcript. Mode and category are kept.
func (s *Session) Clear() {
	s.turns = nil
}

// Empty reports whether no turns have been recorded.
func (s *Session) Empty() bool {
	return len(s.turns) == 0
}

// Title returns a human-readable description used in banners and the
// generation context.
func (s *Session) Title() string {
	switch s.Mode {
	case ModeLink:
		return "Link Analysis: " + s.Subject
	default:
		return "Deep Dive: " + s.Subject
	}
}

// Context renders the transcript for generation prompts. Each assistant
// turn is truncated to a per-turn budget, and the oldest turns are dropped
// once the total exceeds the overall budget so long sessions stay inside a
// reasonable prompt size.
func (s *Session) Context() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Learning Session: %s\n\n", s.Title())
	if s.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n\n", s.Category)
	}
	b.WriteString("Conversation Summary:\n")

	rendered := make([]string, 0, len(s.turns))
	for i, turn := range s.turns {
		text := turn.Text
		if turn.Role == RoleAssistant {
			text = truncate(text, maxTurnContextChars)
		}
		rendered = append(rendered, fmt.Sprintf("\n--- Turn %d (%s) ---\n%s\n", i+1, turn.Role, text))
	}

	// Drop oldest turns first when over budget. The newest turn is always
	// kept so a degenerate single-turn session still yields context.
	total := 0
	start := len(rendered)
	for i := len(rendered) - 1; i >= 0; i-- {
		if total+len(rendered[i]) > maxTotalContextChars && i < len(rendered)-1 {
			break
		}
		total += len(rendered[i])
		start = i
	}
	if start > 0 && start < len(rendered) {
		b.WriteString(fmt.Sprintf("\n[%d earlier turns omitted]\n", start))
	}
	for _, r := range rendered[start:] {
		b.WriteString(r)
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
