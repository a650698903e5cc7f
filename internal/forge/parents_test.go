package forge_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ghboard/internal/forge"
	"ghboard/internal/forge/forgetest"
	"ghboard/internal/model"
)

var acme = model.Repo{Owner: "acme", Name: "widgets"}

func parentPath(n int) string {
	return fmt.Sprintf("repos/acme/widgets/issues/%d/parent", n)
}

func TestFetchParents(t *testing.T) {
	runner := (&forgetest.Runner{}).
		Fail("gh: Not Found (HTTP 404)", "api", parentPath(20)).
		Reply("20\n", "api", parentPath(21)).
		Reply("null\n", "api", parentPath(22)).
		Reply("-3\n", "api", parentPath(23)).
		Reply("", "api", parentPath(24)).
		Reply("20\n", "api", parentPath(25))

	c := &forge.Client{Runner: runner}
	parents := c.FetchParents(context.Background(), acme, []int{20, 21, 22, 23, 24, 25, 26}, 8)

	assert.Equal(t, map[int]int{21: 20, 25: 20}, parents)
	assert.Len(t, runner.Calls(), 7)
}

func TestFetchParentsRespectsFanOut(t *testing.T) {
	runner := &forgetest.Runner{Delay: 20 * time.Millisecond}
	issues := make([]int, 0, 30)
	for n := 1; n <= 30; n++ {
		issues = append(issues, n)
		runner.Reply("100", "api", parentPath(n))
	}

	c := &forge.Client{Runner: runner}
	parents := c.FetchParents(context.Background(), acme, issues, 8)

	assert.Len(t, parents, 30)
	assert.LessOrEqual(t, runner.MaxInflight(), 8)
	assert.Greater(t, runner.MaxInflight(), 1)
}

func TestFetchParentsEmpty(t *testing.T) {
	runner := &forgetest.Runner{}

	c := &forge.Client{Runner: runner}
	assert.Empty(t, c.FetchParents(context.Background(), acme, nil, 8))
	assert.Empty(t, runner.Calls())
}

func TestFetchParentsLogsToClientLogger(t *testing.T) {
	runner := (&forgetest.Runner{}).Fail("HTTP 502: Bad Gateway", "api", parentPath(3))

	var logs bytes.Buffer
	c := &forge.Client{
		Runner: runner,
		Log:    slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	assert.Empty(t, c.FetchParents(context.Background(), acme, []int{3}, 1))
	assert.Contains(t, logs.String(), "parent lookup failed")
	assert.Contains(t, logs.String(), "issue=3")
	assert.Contains(t, logs.String(), "Bad Gateway")
}
