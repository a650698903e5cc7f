package forge

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// stderr longer than this is cut before it lands in an error message
const maxStderr = 200

// Runner executes the gh CLI and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CommandError reports a gh invocation that exited non-zero or could not start.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := "gh " + strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return msg + ": " + e.Stderr
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns gh's exit status, or 1 if it never ran.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// GH is the Runner backed by the gh binary on PATH.
type GH struct {
	Dir string // working directory; "" for the current one
}

func (g GH) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Dir = g.Dir
	out, err := cmd.Output()
	if err != nil {
		ce := &CommandError{Args: args, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ce.Stderr = trimOutput(exitErr.Stderr)
		}
		return nil, ce
	}
	return out, nil
}

func trimOutput(b []byte) string {
	return ansi.Truncate(strings.TrimSpace(string(b)), maxStderr, "…")
}
