// Package generate turns a session transcript into TIL and note markdown by
// delegating to the assistant with fixed instruction templates.
package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/valter-silva-au/holocron/internal/assistant"
	"github.com/valter-silva-au/holocron/internal/session"
)

// ErrEmptySession is returned when generation is requested before any
// conversation has happened.
var ErrEmptySession = errors.New("session has no conversation to summarize")

// Kind distinguishes the two artifact flavors.
type Kind string

const (
	KindTIL  Kind = "til"
	KindNote Kind = "note"
)

// Artifact is a generated markdown document plus the metadata needed to
// file it. It is discarded unless the user confirms the save.
type Artifact struct {
	Kind  Kind
	Title string
	Body  string

	// Filename is the slugified title with a .md suffix.
	Filename string
}

// TIL generates a TIL entry from the session. When the assistant session is
// known it is resumed so the generation sees the full conversation, not just
// the truncated context.
func TIL(ctx context.Context, client assistant.Client, sess *session.Session, onText func(string)) (*Artifact, error) {
	if sess.Empty() {
		return nil, ErrEmptySession
	}
	body, err := run(ctx, client, sess, tilInstruction(sess), onText)
	if err != nil {
		return nil, fmt.Errorf("generating TIL: %w", err)
	}
	title := ExtractTitle(body)
	if title == "" {
		title = "Untitled TIL"
	}
	return &Artifact{Kind: KindTIL, Title: title, Body: body, Filename: Filename(title)}, nil
}

// Note generates a knowledge-base note from the session.
func Note(ctx context.Context, client assistant.Client, sess *session.Session, onText func(string)) (*Artifact, error) {
	if sess.Empty() {
		return nil, ErrEmptySession
	}
	body, err := run(ctx, client, sess, noteInstruction(sess), onText)
	if err != nil {
		return nil, fmt.Errorf("generating note: %w", err)
	}
	title := ExtractNoteTitle(body)
	if title == "" {
		title = "Untitled Note"
	}
	return &Artifact{Kind: KindNote, Title: title, Body: body, Filename: Filename(title)}, nil
}

func run(ctx context.Context, client assistant.Client, sess *session.Session, prompt string, onText func(string)) (string, error) {
	var reply *assistant.Reply
	var err error
	if sess.AssistantSessionID != "" {
		reply, err = client.Resume(ctx, sess.AssistantSessionID, prompt, onText)
	} else {
		reply, err = client.Ask(ctx, prompt, onText)
	}
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}
