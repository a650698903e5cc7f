package model

// Issue holds the fields of an open issue fetched via gh issue list.
type Issue struct {
	Number    int
	Title     string // may carry a "[BUG] "-style prefix
	State     string // "OPEN"
	Assignees []string
	Labels    []string // namespaced, e.g. "priority:high", "area:core"
	Milestone string   // "" when the issue has no milestone
}
