package forge

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"ghboard/internal/model"
)

// FetchParents looks up the parent issue of every number in issues, running
// at most fanOut gh calls at once. The result maps child → parent.
//
// A failed lookup, a 404 (no parent) and any output that is not a bare
// positive integer all mean "no parent"; they never fail the batch or
// cancel sibling lookups.
func (c *Client) FetchParents(ctx context.Context, repo model.Repo, issues []int, fanOut int) map[int]int {
	var (
		mu      sync.Mutex
		parents = make(map[int]int)
	)

	// errgroup.Group (not WithContext) so one failure cannot cancel the rest.
	var g errgroup.Group
	g.SetLimit(max(fanOut, 1))

	for _, n := range issues {
		g.Go(func() error {
			parent, ok := c.fetchParent(ctx, repo, n)
			if !ok {
				return nil
			}
			mu.Lock()
			parents[n] = parent
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return parents
}

func (c *Client) fetchParent(ctx context.Context, repo model.Repo, n int) (int, bool) {
	out, err := c.Runner.Run(ctx,
		"api", fmt.Sprintf("repos/%s/issues/%d/parent", repo.NameWithOwner(), n),
		"--jq", ".number",
	)
	if err != nil {
		c.log().Debug("parent lookup failed", slog.Int("issue", n), slog.String("error", err.Error()))
		return 0, false
	}
	return parseIssueNumber(out)
}

// parseIssueNumber accepts only a bare positive integer.
func parseIssueNumber(out []byte) (int, bool) {
	s := strings.TrimSpace(string(out))
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r < '0' || r > '9' }) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
