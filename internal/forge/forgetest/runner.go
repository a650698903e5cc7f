// Package forgetest provides a scripted stand-in for the gh CLI.
package forgetest

import (
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"time"

	"ghboard/internal/forge"
)

// Response is returned for any invocation whose argv starts with Match.
type Response struct {
	Match []string
	Out   string
	Err   error
}

// Runner replays canned gh output. Unmatched invocations fail like gh
// would on an unknown command. Safe for concurrent use.
type Runner struct {
	Responses []Response
	Delay     time.Duration // held while "running", to observe concurrency

	mu          sync.Mutex
	calls       [][]string
	inflight    int
	maxInflight int
}

// Reply appends a canned response and returns r for chaining.
func (r *Runner) Reply(out string, match ...string) *Runner {
	r.Responses = append(r.Responses, Response{Match: match, Out: out})
	return r
}

// Fail appends a failing response and returns r for chaining.
func (r *Runner) Fail(stderr string, match ...string) *Runner {
	r.Responses = append(r.Responses, Response{
		Match: match,
		Err: &forge.CommandError{
			Args:   match,
			Stderr: stderr,
			Err:    &exec.ExitError{},
		},
	})
	return r
}

func (r *Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, slices.Clone(args))
	r.inflight++
	r.maxInflight = max(r.maxInflight, r.inflight)
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inflight--
		r.mu.Unlock()
	}()

	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, resp := range r.Responses {
		if len(resp.Match) <= len(args) && slices.Equal(resp.Match, args[:len(resp.Match)]) {
			if resp.Err != nil {
				return nil, resp.Err
			}
			return []byte(resp.Out), nil
		}
	}
	return nil, &forge.CommandError{
		Args:   args,
		Stderr: fmt.Sprintf("unknown command %q", strings.Join(args, " ")),
		Err:    &exec.ExitError{},
	}
}

// Calls returns every argv seen so far.
func (r *Runner) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Called reports whether any invocation started with prefix.
func (r *Runner) Called(prefix ...string) bool {
	for _, c := range r.Calls() {
		if len(prefix) <= len(c) && slices.Equal(prefix, c[:len(prefix)]) {
			return true
		}
	}
	return false
}

// MaxInflight is the highest number of simultaneous Run calls observed.
func (r *Runner) MaxInflight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxInflight
}
