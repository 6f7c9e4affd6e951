package assistant

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

func TestAsk_BinaryNotInstalled(t *testing.T) {
	c := &cliClient{binary: "holocron-no-such-binary", timeout: time.Second}

	_, err := c.Ask(context.Background(), "hello", nil)
	if !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("err = %v, want ErrNotInstalled", err)
	}
}

func TestClassifyExit_AuthFailure(t *testing.T) {
	// Produce a real *exec.ExitError to classify.
	cmd := exec.Command("sh", "-c", "exit 3")
	waitErr := cmd.Run()
	if waitErr == nil {
		t.Fatal("expected non-zero exit")
	}

	err := classifyExit(waitErr, "Error: not logged in. Run /login to authenticate.")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestClassifyExit_GenericFailure(t *testing.T) {
	cmd := exec.Command("sh", "-c", "exit 3")
	waitErr := cmd.Run()
	if waitErr == nil {
		t.Fatal("expected non-zero exit")
	}

	err := classifyExit(waitErr, "something unrelated broke")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("err = %v, want *ExitError", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if exitErr.Stderr != "something unrelated broke" {
		t.Errorf("Stderr = %q", exitErr.Stderr)
	}
}

func TestIsAuthFailure(t *testing.T) {
	positives := []string{
		"Not logged in",
		"please run /login first",
		"Authentication failed",
		"Invalid API key",
	}
	for _, s := range positives {
		if !isAuthFailure(s) {
			t.Errorf("isAuthFailure(%q) = false, want true", s)
		}
	}
	negatives := []string{"", "rate limit exceeded", "network unreachable"}
	for _, s := range negatives {
		if isAuthFailure(s) {
			t.Errorf("isAuthFailure(%q) = true, want false", s)
		}
	}
}

func TestExitError_Message(t *testing.T) {
	err := &ExitError{Code: 2, Stderr: "boom"}
	if got := err.Error(); got != "claude CLI exited with code 2: boom" {
		t.Errorf("Error() = %q", got)
	}

	bare := &ExitError{Code: 1}
	if got := bare.Error(); got != "claude CLI exited with code 1" {
		t.Errorf("Error() = %q", got)
	}
}
