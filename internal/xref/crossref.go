// Package xref links issues to the pull requests that address them and
// arranges issues into their sub-issue hierarchy.
package xref

import (
	"maps"
	"regexp"
	"slices"
	"strconv"

	"ghboard/internal/model"
)

var (
	closingPattern = regexp.MustCompile(`(?i)(?:closes|fixes|resolves)\s+#(\d+)`)
	refsPattern    = regexp.MustCompile(`(?i)Refs:\s*((?:#\d+(?:\s*,\s*)?)+)`)
	numberPattern  = regexp.MustCompile(`#(\d+)`)
)

// CrossRefs maps issues to PRs and back.
type CrossRefs struct {
	IssueToPR  map[int]int   // when several PRs claim an issue, the highest-numbered wins
	PRToIssues map[int][]int // ascending; PRs linking nothing are absent
}

// Build links every PR to the issues it addresses: the issue whose linked
// branch is the PR's head branch, every "closes/fixes/resolves #N" in the
// body, and the numbers of the first "Refs: #N, #M" list. branches maps
// issue number → linked branch name. A branch linked to several issues
// belongs to the lowest-numbered one.
func Build(branches map[int]string, prs []model.PR) CrossRefs {
	branchToIssue := make(map[string]int, len(branches))
	for _, issue := range slices.Sorted(maps.Keys(branches)) {
		if _, taken := branchToIssue[branches[issue]]; !taken {
			branchToIssue[branches[issue]] = issue
		}
	}

	refs := CrossRefs{
		IssueToPR:  make(map[int]int),
		PRToIssues: make(map[int][]int),
	}

	ordered := slices.Clone(prs)
	slices.SortFunc(ordered, func(a, b model.PR) int { return a.Number - b.Number })

	for _, pr := range ordered {
		linked := make(map[int]struct{})
		if issue, ok := branchToIssue[pr.HeadBranch]; ok {
			linked[issue] = struct{}{}
		}
		for _, n := range BodyReferences(pr.Body) {
			linked[n] = struct{}{}
		}
		if len(linked) == 0 {
			continue
		}

		issues := make([]int, 0, len(linked))
		for n := range linked {
			refs.IssueToPR[n] = pr.Number
			issues = append(issues, n)
		}
		slices.Sort(issues)
		refs.PRToIssues[pr.Number] = issues
	}
	return refs
}

// BodyReferences returns the issue numbers a PR body closes or refers to,
// ascending and without duplicates. Malformed references are ignored.
func BodyReferences(body string) []int {
	var nums []int
	for _, m := range closingPattern.FindAllStringSubmatch(body, -1) {
		nums = appendNumber(nums, m[1])
	}
	if m := refsPattern.FindStringSubmatch(body); m != nil {
		for _, ref := range numberPattern.FindAllStringSubmatch(m[1], -1) {
			nums = appendNumber(nums, ref[1])
		}
	}
	slices.Sort(nums)
	return slices.Compact(nums)
}

func appendNumber(nums []int, digits string) []int {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return nums
	}
	return append(nums, n)
}
