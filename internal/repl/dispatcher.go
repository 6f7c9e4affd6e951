// Package repl implements the interactive command dispatcher: it reads
// lines, routes slash-commands and free-form conversation, and owns the
// session state for the process lifetime.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/valter-silva-au/holocron/internal/assistant"
	"github.com/valter-silva-au/holocron/internal/config"
	"github.com/valter-silva-au/holocron/internal/fetch"
	"github.com/valter-silva-au/holocron/internal/generate"
	"github.com/valter-silva-au/holocron/internal/session"
	"github.com/valter-silva-au/holocron/internal/storage"
)

// State is the dispatcher's position in the interactive loop.
type State int

const (
	StateIdle State = iota
	StateAwaitingAssistant
	StateAwaitingSave
	StateExiting
)

// PageFetcher retrieves article content for link-mode sessions. Nil disables
// local fetching and the assistant is asked to fetch the URL itself.
type PageFetcher func(ctx context.Context, url string) (*fetch.Article, error)

// Options customize a Dispatcher beyond its required collaborators.
type Options struct {
	// Render converts markdown to a terminal preview. Nil means no
	// re-rendering; the streamed text stands as the preview.
	Render func(string) string

	// Fetch retrieves article content for /link sessions.
	Fetch PageFetcher

	// Notify scopes an assistant call to user interrupts. The default
	// uses signal.NotifyContext with os.Interrupt, so Ctrl+C cancels an
	// in-flight request without leaving the loop, while at Idle the
	// default signal disposition ends the process like /exit.
	Notify func(context.Context) (context.Context, context.CancelFunc)
}

// Dispatcher runs the interactive loop. It owns the current session and
// config exclusively; no other goroutine touches them.
type Dispatcher struct {
	client assistant.Client
	cfg    *config.Config
	in     *bufio.Scanner
	out    io.Writer

	sess   *session.Session
	state  State
	render func(string) string
	fetch  PageFetcher
	notify func(context.Context) (context.Context, context.CancelFunc)
}

// New creates a Dispatcher reading lines from in and writing to out.
func New(client assistant.Client, cfg *config.Config, in io.Reader, out io.Writer, opts Options) *Dispatcher {
	d := &Dispatcher{
		client: client,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
		state:  StateIdle,
		render: opts.Render,
		fetch:  opts.Fetch,
		notify: opts.Notify,
	}
	if d.render == nil {
		d.render = func(s string) string { return s }
	}
	if d.notify == nil {
		d.notify = func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, os.Interrupt)
		}
	}
	return d
}

// State returns the dispatcher's current state.
func (d *Dispatcher) State() State { return d.state }

// Session returns the active session, or nil outside one.
func (d *Dispatcher) Session() *session.Session { return d.sess }

// StartSession begins a session before the loop runs, for the one-shot
// learn/link commands that fall through into interactive follow-up. The
// assistant error is returned unprinted so the command can exit non-zero.
func (d *Dispatcher) StartSession(ctx context.Context, sess *session.Session, initialPrompt string) error {
	d.sess = sess
	return d.send(ctx, initialPrompt)
}

// Run processes lines until /exit or end of input.
func (d *Dispatcher) Run(ctx context.Context) error {
	for d.state != StateExiting {
		fmt.Fprint(d.out, "holocron> ")
		line, ok := d.readLine()
		if !ok {
			break
		}
		if err := d.HandleLine(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// HandleLine routes one line of input. Errors returned here are fatal to the
// loop; everything recoverable is printed and swallowed so the loop
// continues (spec: failures inside interactive mode are non-fatal).
func (d *Dispatcher) HandleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	switch {
	case equalsAny(line, "/exit", "/quit"):
		fmt.Fprintln(d.out, "May the Force be with you.")
		d.state = StateExiting
		return nil

	case hasCommand(line, "/learn"), hasCommand(line, "/deep"):
		topic := commandArg(line)
		if topic == "" {
			fmt.Fprintln(d.out, "Please provide a topic: /learn <topic>")
			return nil
		}
		category := d.promptCategory()
		d.sess = session.NewDeepDive(topic, category)
		d.say(d.sess.Title())
		if err := d.send(ctx, generate.DeepDivePrompt(topic)); err != nil {
			d.reportAssistantError(err)
		}
		return nil

	case hasCommand(line, "/link"):
		url := commandArg(line)
		if url == "" {
			fmt.Fprintln(d.out, "Please provide a URL: /link <url>")
			return nil
		}
		category := d.promptCategory()
		d.sess = session.NewLink(url, category)
		d.say(d.sess.Title())
		if err := d.send(ctx, generate.LinkPrompt(url, d.fetchArticle(ctx, url))); err != nil {
			d.reportAssistantError(err)
		}
		return nil

	case equalsAny(line, "/til"):
		d.generateAndSave(ctx, generate.KindTIL)
		return nil

	case equalsAny(line, "/note"):
		d.generateAndSave(ctx, generate.KindNote)
		return nil

	case strings.HasPrefix(line, "/"):
		fmt.Fprintf(d.out, "Unknown command %s. Try /learn, /link, /til, /note, or /exit.\n", strings.Fields(line)[0])
		return nil
	}

	// Free-form conversation.
	if d.sess == nil {
		fmt.Fprintln(d.out, "Start a session with /learn <topic> or /link <url>")
		return nil
	}
	if err := d.send(ctx, line); err != nil {
		d.reportAssistantError(err)
	}
	return nil
}

// send forwards a prompt to the assistant, streaming the reply, and appends
// both turns on success. On failure the error is returned and nothing is
// appended, so the transcript never records a partial exchange.
func (d *Dispatcher) send(ctx context.Context, prompt string) error {
	d.state = StateAwaitingAssistant
	defer func() { d.state = StateIdle }()

	callCtx, stop := d.notify(ctx)
	defer stop()

	var reply *assistant.Reply
	var err error
	onText := func(chunk string) { fmt.Fprint(d.out, chunk) }

	if d.sess.AssistantSessionID != "" {
		reply, err = d.client.Resume(callCtx, d.sess.AssistantSessionID, prompt, onText)
	} else {
		reply, err = d.client.Ask(callCtx, prompt, onText)
	}
	fmt.Fprintln(d.out)

	if err != nil {
		return err
	}

	if reply.SessionID != "" {
		d.sess.AssistantSessionID = reply.SessionID
	}
	d.sess.Append(session.RoleUser, prompt)
	d.sess.Append(session.RoleAssistant, reply.Text)
	return nil
}

// generateAndSave runs an output generator and walks the save confirmation.
func (d *Dispatcher) generateAndSave(ctx context.Context, kind generate.Kind) {
	if d.sess == nil {
		fmt.Fprintln(d.out, "No active session. Start with /learn or /link first.")
		return
	}
	if kind == generate.KindNote && d.cfg.NotesPath == "" {
		fmt.Fprintln(d.out, "Notes path not configured. Run: holocron config --notes-path <path>")
		return
	}

	d.state = StateAwaitingAssistant
	callCtx, stop := d.notify(ctx)

	var art *generate.Artifact
	var err error
	onText := func(chunk string) { fmt.Fprint(d.out, chunk) }
	fmt.Fprintf(d.out, "Generating %s...\n", kind)
	if kind == generate.KindTIL {
		art, err = generate.TIL(callCtx, d.client, d.sess, onText)
	} else {
		art, err = generate.Note(callCtx, d.client, d.sess, onText)
	}
	stop()
	fmt.Fprintln(d.out)

	if err != nil {
		d.state = StateIdle
		if errors.Is(err, generate.ErrEmptySession) {
			fmt.Fprintln(d.out, "Nothing to summarize yet. Have a conversation first.")
			return
		}
		d.reportAssistantError(err)
		return
	}

	fmt.Fprintln(d.out, strings.Repeat("-", 40))
	fmt.Fprintln(d.out, d.render(art.Body))
	fmt.Fprintln(d.out, strings.Repeat("-", 40))

	d.confirmAndPersist(art)
	d.state = StateIdle
}

// confirmAndPersist owns the AwaitingSaveConfirmation state: yes writes
// exactly one file, no discards, a *.md answer overrides the filename, and
// an I/O failure re-prompts so the generated artifact is not lost.
func (d *Dispatcher) confirmAndPersist(art *generate.Artifact) {
	d.state = StateAwaitingSave

	if art.Kind == generate.KindTIL && d.sess.Category == "" {
		d.sess.Category = d.promptCategory()
	}

	for {
		fmt.Fprintf(d.out, "Save as %s? [y/n, or type another filename] ", d.suggestedPath(art))
		answer, ok := d.readLine()
		if !ok {
			return
		}
		answer = strings.TrimSpace(answer)

		switch {
		case equalsAny(answer, "n", "no"):
			fmt.Fprintf(d.out, "%s discarded.\n", strings.ToUpper(string(art.Kind)))
			return
		case strings.HasSuffix(answer, ".md"):
			art.Filename = answer
			continue
		case !equalsAny(answer, "y", "yes"):
			continue
		}

		path, err := d.persist(art)
		if err != nil {
			fmt.Fprintf(d.out, "Error saving %s: %v\n", art.Kind, err)
			fmt.Fprintln(d.out, "The content is still here - answer y to retry or n to discard.")
			continue
		}
		fmt.Fprintf(d.out, "Saved to %s\n", path)
		return
	}
}

func (d *Dispatcher) persist(art *generate.Artifact) (string, error) {
	if art.Kind == generate.KindTIL {
		return storage.WriteTIL(d.cfg.TILPath, d.cfg.ArchiveDir, d.sess.Category, art.Filename, art.Body, art.Title)
	}
	return storage.WriteNote(d.cfg.NotesPath, art.Filename, art.Body)
}

func (d *Dispatcher) suggestedPath(art *generate.Artifact) string {
	if art.Kind == generate.KindTIL {
		category := d.sess.Category
		if category == "" {
			category = "misc"
		}
		return category + "/" + art.Filename
	}
	return art.Filename
}

// fetchArticle pulls page content for a link session, degrading to an empty
// article on failure so the session still starts.
func (d *Dispatcher) fetchArticle(ctx context.Context, url string) string {
	if d.fetch == nil {
		return ""
	}
	fmt.Fprintln(d.out, "Fetching article...")
	article, err := d.fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(d.out, "Could not fetch the article locally (%v); the assistant will fetch it instead.\n", err)
		return ""
	}
	return article.Markdown
}

func (d *Dispatcher) promptCategory() string {
	fmt.Fprint(d.out, "Category for TIL (e.g. git, rust, sql; empty to decide later): ")
	line, ok := d.readLine()
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// reportAssistantError prints a user-facing message for every assistant
// failure variant. Nothing is swallowed, nothing is fatal.
func (d *Dispatcher) reportAssistantError(err error) {
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(d.out, "Request canceled.")
	case errors.Is(err, assistant.ErrTimeout):
		fmt.Fprintln(d.out, "Error: the assistant took too long to respond. Try again.")
	default:
		fmt.Fprintf(d.out, "Error: %v\n", err)
	}
}

func (d *Dispatcher) readLine() (string, bool) {
	if !d.in.Scan() {
		d.state = StateExiting
		return "", false
	}
	return d.in.Text(), true
}

func (d *Dispatcher) say(msg string) {
	fmt.Fprintf(d.out, "=== %s ===\n", msg)
}

func equalsAny(s string, options ...string) bool {
	for _, o := range options {
		if strings.EqualFold(s, o) {
			return true
		}
	}
	return false
}

// hasCommand reports whether line invokes cmd with an argument, e.g.
// "/learn rust" matches "/learn".
func hasCommand(line, cmd string) bool {
	return strings.EqualFold(line, cmd) || strings.HasPrefix(strings.ToLower(line), cmd+" ")
}

// commandArg returns everything after the command word.
func commandArg(line string) string {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
