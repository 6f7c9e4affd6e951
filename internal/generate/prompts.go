package generate

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/holocron/internal/session"
)

// articleContextLimit caps how much fetched article text is embedded in the
// initial link prompt.
const articleContextLimit = 6000

// DeepDivePrompt builds the opening prompt for a topic session.
func DeepDivePrompt(topic string) string {
	return fmt.Sprintf(`I want to learn about: %s

Please explain this topic in technical detail. Cover:
1. Core concepts and how they work
2. Practical examples with code where applicable
3. Common use cases and best practices
4. Common pitfalls to avoid

Be thorough but focused. I'll ask follow-up questions to go deeper on specific aspects.`, topic)
}

// LinkPrompt builds the opening prompt for a URL-analysis session. When
// article text was fetched locally it is embedded so the analysis works even
// where the assistant cannot reach the network.
func LinkPrompt(url, article string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Please analyze this article/resource: %s

Provide:
1. A brief summary of the main points
2. Key technical concepts explained
3. Practical takeaways or code examples if applicable
4. Your assessment of what's most valuable to learn from this
`, url)

	if article != "" {
		if len(article) > articleContextLimit {
			article = article[:articleContextLimit] + "\n\n[article truncated]"
		}
		fmt.Fprintf(&b, `
Here is the extracted article content:

<article>
%s
</article>

Explain it thoroughly. I'll ask follow-up questions about specific parts.`, article)
	} else {
		b.WriteString(`
Use WebFetch to access the content, then explain it thoroughly. I'll ask follow-up questions about specific parts.`)
	}
	return b.String()
}

// tilInstruction is the fixed template asking for a concise TIL entry.
func tilInstruction(sess *session.Session) string {
	return fmt.Sprintf(`Based on our learning session, generate a TIL (Today I Learned) entry.

%s

Requirements:
- H1 title describing the action, then a short intro explaining when you'd need this
- Step-by-step prose with one command or snippet per code block
- End with one practical takeaway
- 10-30 lines, conversational second-person tone
- Return ONLY the markdown content, no preamble

The TIL should capture the most important, actionable learning from this session - something someone could quickly reference later.`, sess.Context())
}

// noteInstruction is the fixed template asking for a knowledge-base note.
func noteInstruction(sess *session.Session) string {
	var sources string
	if sess.Mode == session.ModeLink {
		sources = "\n- A Sources section listing the analyzed URL and anything else consulted"
	}
	return fmt.Sprintf(`Based on our learning session, generate a comprehensive knowledge base note.

%s

Include:
- YAML frontmatter with title, date, tags, and aliases
- An Overview section introducing the concept
- Detailed explanations with annotated code examples
- Key questions and answers from our conversation
- Related topics as [[wiki-link]] entries%s

The note is for a personal knowledge base, not a quick reference - be thorough. Return ONLY the markdown content, starting with the YAML frontmatter.`, sess.Context(), sources)
}
