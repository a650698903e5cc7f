// Package render assembles the issue and pull request tables.
package render

import (
	"slices"

	"ghboard/internal/model"
	"ghboard/internal/xref"
)

// Board is everything fetched and derived for one run.
type Board struct {
	Repo     model.Repo
	Issues   []model.Issue
	PRs      []model.PR
	Branches map[int]string // issue → linked branch
	Refs     xref.CrossRefs
	Tree     xref.Tree
}

// Group is the set of issues sharing a milestone.
type Group struct {
	Milestone string // "" for issues without one
	Issues    []model.Issue
}

// GroupByMilestone groups issues by milestone title, alphabetically, with
// the issues that have no milestone last.
func GroupByMilestone(issues []model.Issue) []Group {
	byTitle := make(map[string][]model.Issue)
	var titles []string
	var none []model.Issue

	for _, issue := range issues {
		if issue.Milestone == "" {
			none = append(none, issue)
			continue
		}
		if _, ok := byTitle[issue.Milestone]; !ok {
			titles = append(titles, issue.Milestone)
		}
		byTitle[issue.Milestone] = append(byTitle[issue.Milestone], issue)
	}
	slices.Sort(titles)

	groups := make([]Group, 0, len(titles)+1)
	for _, t := range titles {
		groups = append(groups, Group{Milestone: t, Issues: byTitle[t]})
	}
	if len(none) > 0 {
		groups = append(groups, Group{Issues: none})
	}
	return groups
}

type issueRow struct {
	issue model.Issue
	child bool
}

// orderIssues lays issues out parent-first: each issue whose parent is not
// in the group is followed by its children in the group, then any issue
// not yet placed (e.g. a grandchild) is appended. No issue appears twice.
func orderIssues(issues []model.Issue, tree xref.Tree) []issueRow {
	sorted := slices.Clone(issues)
	slices.SortFunc(sorted, func(a, b model.Issue) int { return a.Number - b.Number })

	byNumber := make(map[int]model.Issue, len(sorted))
	for _, issue := range sorted {
		byNumber[issue.Number] = issue
	}

	rows := make([]issueRow, 0, len(sorted))
	placed := make(map[int]bool, len(sorted))
	place := func(issue model.Issue, child bool) {
		if placed[issue.Number] {
			return
		}
		placed[issue.Number] = true
		rows = append(rows, issueRow{issue: issue, child: child})
	}

	for _, issue := range sorted {
		if placed[issue.Number] {
			continue
		}
		if parent, ok := tree.Parent[issue.Number]; ok {
			if _, inGroup := byNumber[parent]; inGroup {
				continue
			}
		}
		place(issue, false)
		for _, n := range tree.Children[issue.Number] {
			if child, ok := byNumber[n]; ok {
				place(child, true)
			}
		}
	}
	for _, issue := range sorted {
		place(issue, false)
	}
	return rows
}
