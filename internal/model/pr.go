package model

import "time"

// Review decisions and review states as reported by GitHub.
const (
	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
	ReviewRequired         = "REVIEW_REQUIRED"
	ReviewCommented        = "COMMENTED"
)

// Review is one reviewer's most recent review on a PR.
type Review struct {
	Author string
	State  string // APPROVED, CHANGES_REQUESTED, COMMENTED, DISMISSED
}

// Check is a single CI result from a PR's status check rollup.
type Check struct {
	Name       string
	Conclusion string // "SUCCESS", "FAILURE", "ERROR", "" while running, ...
}

// PR holds pull request metadata fetched via gh pr list.
type PR struct {
	Number         int
	Title          string
	Author         string
	Assignees      []string
	Draft          bool
	ReviewDecision string // "" when the repo has no review rules
	HeadBranch     string
	BaseBranch     string
	Additions      int
	Deletions      int
	ChangedFiles   int
	Labels         []string
	Milestone      string
	CreatedAt      time.Time
	Body           string
	ReviewRequests []string // user logins or team names
	LatestReviews  []Review
	Checks         []Check
}
