package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ghboard/internal/model"
)

const (
	issueFields = "number,title,state,assignees,labels,milestone"
	prFields    = "number,title,author,assignees,isDraft,reviewDecision," +
		"baseRefName,headRefName,additions,deletions,changedFiles," +
		"labels,milestone,createdAt,body," +
		"reviewRequests,latestReviews,statusCheckRollup"
)

// Client fetches issue tracker data through gh.
type Client struct {
	Runner Runner
	Log    *slog.Logger // nil means slog.Default()
}

// NewClient returns a Client that shells out to gh in the current directory.
func NewClient(log *slog.Logger) *Client {
	return &Client{Runner: GH{}, Log: log}
}

func (c *Client) log() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

type ghLogin struct {
	Login string `json:"login"`
}

type ghLabel struct {
	Name string `json:"name"`
}

type ghMilestone struct {
	Title string `json:"title"`
}

// ghIssue mirrors the fields we request from gh issue list.
type ghIssue struct {
	Number    int          `json:"number"`
	Title     string       `json:"title"`
	State     string       `json:"state"`
	Assignees []ghLogin    `json:"assignees"`
	Labels    []ghLabel    `json:"labels"`
	Milestone *ghMilestone `json:"milestone"`
}

// ghPR mirrors the fields we request from gh pr list.
type ghPR struct {
	Number         int          `json:"number"`
	Title          string       `json:"title"`
	Author         ghLogin      `json:"author"`
	Assignees      []ghLogin    `json:"assignees"`
	IsDraft        bool         `json:"isDraft"`
	ReviewDecision string       `json:"reviewDecision"` // "APPROVED", "CHANGES_REQUESTED", "REVIEW_REQUIRED", ""
	BaseRefName    string       `json:"baseRefName"`
	HeadRefName    string       `json:"headRefName"`
	Additions      int          `json:"additions"`
	Deletions      int          `json:"deletions"`
	ChangedFiles   int          `json:"changedFiles"`
	Labels         []ghLabel    `json:"labels"`
	Milestone      *ghMilestone `json:"milestone"`
	CreatedAt      time.Time    `json:"createdAt"`
	Body           string       `json:"body"`
	ReviewRequests []struct {
		Login string `json:"login"`
		Name  string `json:"name"` // set for team requests
	} `json:"reviewRequests"`
	LatestReviews []struct {
		Author ghLogin `json:"author"`
		State  string  `json:"state"`
	} `json:"latestReviews"`
	// StatusCheckRollup mixes CheckRun (name/conclusion) and
	// StatusContext (context/state) entries.
	StatusCheckRollup []struct {
		Name       string `json:"name"`
		Conclusion string `json:"conclusion"`
		Context    string `json:"context"`
		State      string `json:"state"`
	} `json:"statusCheckRollup"`
}

// FetchIssues lists up to limit open issues.
func (c *Client) FetchIssues(ctx context.Context, limit int) ([]model.Issue, error) {
	out, err := c.Runner.Run(ctx,
		"issue", "list",
		"--state", "open",
		"--limit", strconv.Itoa(limit),
		"--json", issueFields,
	)
	if err != nil {
		return nil, err
	}

	var raw []ghIssue
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parse gh issue list: %w", err)
	}

	issues := make([]model.Issue, 0, len(raw))
	for _, r := range raw {
		issue := model.Issue{
			Number:    r.Number,
			Title:     r.Title,
			State:     r.State,
			Assignees: logins(r.Assignees),
			Labels:    labelNames(r.Labels),
		}
		if r.Milestone != nil {
			issue.Milestone = r.Milestone.Title
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// FetchPRs lists up to limit open pull requests.
func (c *Client) FetchPRs(ctx context.Context, limit int) ([]model.PR, error) {
	out, err := c.Runner.Run(ctx,
		"pr", "list",
		"--state", "open",
		"--limit", strconv.Itoa(limit),
		"--json", prFields,
	)
	if err != nil {
		return nil, err
	}

	var raw []ghPR
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parse gh pr list: %w", err)
	}

	prs := make([]model.PR, 0, len(raw))
	for _, r := range raw {
		prs = append(prs, toPR(r))
	}
	return prs, nil
}

func toPR(r ghPR) model.PR {
	pr := model.PR{
		Number:         r.Number,
		Title:          r.Title,
		Author:         r.Author.Login,
		Assignees:      logins(r.Assignees),
		Draft:          r.IsDraft,
		ReviewDecision: r.ReviewDecision,
		HeadBranch:     r.HeadRefName,
		BaseBranch:     r.BaseRefName,
		Additions:      r.Additions,
		Deletions:      r.Deletions,
		ChangedFiles:   r.ChangedFiles,
		Labels:         labelNames(r.Labels),
		CreatedAt:      r.CreatedAt,
		Body:           r.Body,
	}
	if r.Milestone != nil {
		pr.Milestone = r.Milestone.Title
	}
	for _, rr := range r.ReviewRequests {
		who := rr.Login
		if who == "" {
			who = rr.Name
		}
		if who != "" {
			pr.ReviewRequests = append(pr.ReviewRequests, who)
		}
	}
	for _, lr := range r.LatestReviews {
		pr.LatestReviews = append(pr.LatestReviews, model.Review{
			Author: lr.Author.Login,
			State:  lr.State,
		})
	}
	for _, sc := range r.StatusCheckRollup {
		check := model.Check{Name: sc.Name, Conclusion: sc.Conclusion}
		if check.Name == "" {
			check.Name = sc.Context
		}
		if check.Conclusion == "" {
			check.Conclusion = statusContextConclusion(sc.State)
		}
		pr.Checks = append(pr.Checks, check)
	}
	return pr
}

// statusContextConclusion maps a legacy commit status state onto the
// CheckRun conclusion vocabulary.
func statusContextConclusion(state string) string {
	switch state {
	case "SUCCESS":
		return "SUCCESS"
	case "FAILURE", "ERROR":
		return state
	default:
		return "" // PENDING, EXPECTED, or a running check run
	}
}

// FetchRepo returns the owner and name of the current repository.
func (c *Client) FetchRepo(ctx context.Context) (model.Repo, error) {
	out, err := c.Runner.Run(ctx, "repo", "view", "--json", "owner,name,url")
	if err != nil {
		return model.Repo{}, err
	}

	var raw struct {
		Owner ghLogin `json:"owner"`
		Name  string  `json:"name"`
		URL   string  `json:"url"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		return model.Repo{}, fmt.Errorf("parse gh repo view: %w", err)
	}
	if raw.Owner.Login == "" || raw.Name == "" {
		return model.Repo{}, fmt.Errorf("gh repo view: missing owner or name")
	}

	return model.Repo{
		Owner: raw.Owner.Login,
		Name:  raw.Name,
		Host:  hostFromURL(raw.URL),
	}, nil
}

// hostFromURL extracts "github.com" from "https://github.com/o/r".
func hostFromURL(u string) string {
	rest, ok := strings.CutPrefix(u, "https://")
	if !ok {
		return ""
	}
	host, _, _ := strings.Cut(rest, "/")
	return host
}

func logins(in []ghLogin) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		if l.Login != "" {
			out = append(out, l.Login)
		}
	}
	return out
}

func labelNames(in []ghLabel) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		out = append(out, l.Name)
	}
	return out
}
