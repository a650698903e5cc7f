// Package app drives one run: fetch, cross-reference, render.
package app

import (
	"context"
	"log/slog"

	"ghboard/internal/config"
	"ghboard/internal/forge"
	"ghboard/internal/model"
	"ghboard/internal/render"
	"ghboard/internal/xref"
)

// Stages reported to the progress callback, in order.
const (
	StageIssues   = "Fetching issues"
	StagePRs      = "Fetching pull requests"
	StageBranches = "Fetching linked branches"
	StageRepo     = "Resolving repository"
	StageParents  = "Resolving sub-issues"
)

// Fetcher is the subset of forge.Client the driver needs.
type Fetcher interface {
	FetchIssues(ctx context.Context, limit int) ([]model.Issue, error)
	FetchPRs(ctx context.Context, limit int) ([]model.PR, error)
	FetchLinkedBranches(ctx context.Context, first, perIssue int) (map[int]string, error)
	FetchRepo(ctx context.Context) (model.Repo, error)
	FetchParents(ctx context.Context, repo model.Repo, issues []int, fanOut int) map[int]int
}

var _ Fetcher = (*forge.Client)(nil)

// App builds the board.
type App struct {
	Fetcher  Fetcher
	Config   config.Config
	Log      *slog.Logger
	Progress func(stage string) // optional
}

// New returns an App that talks to gh.
func New(cfg config.Config, log *slog.Logger) *App {
	return &App{
		Fetcher: forge.NewClient(log),
		Config:  cfg,
		Log:     log,
	}
}

// Build fetches everything and derives the cross-references. Issues, PRs
// and the repository identity are required; linked branches and
// sub-issues degrade to empty on failure.
func (a *App) Build(ctx context.Context) (render.Board, error) {
	a.stage(StageIssues)
	issues, err := a.Fetcher.FetchIssues(ctx, a.Config.IssueLimit)
	if err != nil {
		return render.Board{}, err
	}

	a.stage(StagePRs)
	prs, err := a.Fetcher.FetchPRs(ctx, a.Config.PRLimit)
	if err != nil {
		return render.Board{}, err
	}

	branches := map[int]string{}
	if len(issues) > 0 {
		a.stage(StageBranches)
		fetched, err := a.Fetcher.FetchLinkedBranches(ctx, a.Config.GraphQLPageSize, a.Config.BranchesPerIssue)
		if err != nil {
			a.log().Warn("linked branches unavailable", slog.String("error", err.Error()))
		} else {
			branches = fetched
		}
	}

	refs := xref.Build(branches, prs)

	a.stage(StageRepo)
	repo, err := a.Fetcher.FetchRepo(ctx)
	if err != nil {
		return render.Board{}, err
	}

	var tree xref.Tree
	if len(issues) > 0 {
		a.stage(StageParents)
		nums := make([]int, len(issues))
		for i, issue := range issues {
			nums[i] = issue.Number
		}
		parents := a.Fetcher.FetchParents(ctx, repo, nums, a.Config.ParentFanOut)
		a.log().Debug("sub-issues resolved", slog.Int("issues", len(nums)), slog.Int("with_parent", len(parents)))
		tree = xref.NewTree(parents)
	} else {
		tree = xref.NewTree(nil)
	}

	return render.Board{
		Repo:     repo,
		Issues:   issues,
		PRs:      prs,
		Branches: branches,
		Refs:     refs,
		Tree:     tree,
	}, nil
}

func (a *App) stage(name string) {
	a.log().Debug(name)
	if a.Progress != nil {
		a.Progress(name)
	}
}

func (a *App) log() *slog.Logger {
	if a.Log == nil {
		return slog.Default()
	}
	return a.Log
}
