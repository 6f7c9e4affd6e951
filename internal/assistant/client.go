// Package assistant invokes the external claude CLI, streaming its
// stream-json output back to the caller. All reasoning happens in the
// external process; this package only manages the subprocess boundary.
package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single assistant request.
const DefaultTimeout = 5 * time.Minute

// Reply is the outcome of a successful assistant request.
type Reply struct {
	// Text is the full concatenated assistant response.
	Text string

	// SessionID identifies the CLI-side conversation so follow-up
	// requests can resume it. Empty if the CLI did not report one.
	SessionID string
}

// Client is the capability interface for talking to the assistant. Tests
// substitute a fake implementation returning canned replies or errors.
type Client interface {
	// Ask sends a fresh prompt. onText receives each text chunk as it
	// streams in; it may be nil.
	Ask(ctx context.Context, prompt string, onText func(string)) (*Reply, error)

	// Resume continues an existing assistant conversation.
	Resume(ctx context.Context, sessionID, prompt string, onText func(string)) (*Reply, error)
}

// cliClient shells out to the claude binary.
type cliClient struct {
	binary  string
	timeout time.Duration
}

// NewClient returns a Client backed by the claude CLI with the default
// request timeout.
func NewClient() Client {
	return &cliClient{binary: "claude", timeout: DefaultTimeout}
}

// NewClientWithTimeout returns a Client with a custom request timeout.
func NewClientWithTimeout(timeout time.Duration) Client {
	return &cliClient{binary: "claude", timeout: timeout}
}

func (c *cliClient) Ask(ctx context.Context, prompt string, onText func(string)) (*Reply, error) {
	args := []string{"--print", "--output-format", "stream-json", "--verbose", prompt}
	return c.run(ctx, args, onText)
}

func (c *cliClient) Resume(ctx context.Context, sessionID, prompt string, onText func(string)) (*Reply, error) {
	args := []string{"--print", "--output-format", "stream-json", "--verbose", "--resume", sessionID, prompt}
	return c.run(ctx, args, onText)
}

func (c *cliClient) run(ctx context.Context, args []string, onText func(string)) (*Reply, error) {
	if _, err := exec.LookPath(c.binary); err != nil {
		return nil, ErrNotInstalled
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", c.binary, err)
	}

	text, sessionID, parseErr := parseStream(stdout, onText)
	waitErr := cmd.Wait()

	// Deadline and cancellation take priority over the exit status the
	// kill produced.
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ctxErr
	}
	if parseErr != nil {
		return nil, parseErr
	}
	if waitErr != nil {
		return nil, classifyExit(waitErr, stderrBuf.String())
	}

	return &Reply{Text: text, SessionID: sessionID}, nil
}

// classifyExit maps a non-zero exit into the error taxonomy. Authentication
// failures get their own sentinel so callers can print actionable guidance.
func classifyExit(waitErr error, stderr string) error {
	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return fmt.Errorf("waiting for claude CLI: %w", waitErr)
	}
	if isAuthFailure(stderr) {
		return ErrNotAuthenticated
	}
	return &ExitError{Code: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr)}
}

func isAuthFailure(stderr string) bool {
	s := strings.ToLower(stderr)
	for _, marker := range []string{"not logged in", "please log in", "/login", "authentication", "unauthorized", "api key"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
