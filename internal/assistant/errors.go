package assistant

import (
	"errors"
	"fmt"
)

// Sentinel errors for assistant availability problems. The dispatcher prints
// these as user-facing messages and keeps the interactive loop alive.
var (
	// ErrNotInstalled means the claude binary was not found on PATH.
	ErrNotInstalled = errors.New("claude CLI not found on PATH (install it from https://docs.claude.com/claude-code)")

	// ErrNotAuthenticated means the CLI exists but has no valid login.
	ErrNotAuthenticated = errors.New("claude CLI is not authenticated (run 'claude' once and log in)")

	// ErrTimeout means the request exceeded the configured deadline.
	ErrTimeout = errors.New("assistant request timed out")
)

// ExitError reports a non-zero exit from the claude CLI that could not be
// classified as an authentication failure.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("claude CLI exited with code %d: %s", e.Code, e.Stderr)
	}
	return fmt.Sprintf("claude CLI exited with code %d", e.Code)
}
