package format

import (
	"strings"

	"ghboard/internal/model"
)

// Assignees renders logins, or the placeholder when there are none.
func Assignees(logins []string) string {
	if len(logins) == 0 {
		return Placeholder
	}
	parts := make([]string, len(logins))
	for i, l := range logins {
		parts[i] = brightWhite.Render(l)
	}
	return strings.Join(parts, ", ")
}

// Author renders a PR author.
func Author(login string) string {
	if login == "" {
		return Placeholder
	}
	return brightWhite.Render(login)
}

const stateRequested = "REQUESTED"

type reviewer struct {
	login string
	state string
}

// reviewers merges latest reviews with pending requests. A recorded review
// wins over a request for the same person; order is reviews first.
func reviewers(pr model.PR) []reviewer {
	var out []reviewer
	seen := make(map[string]int)
	for _, r := range pr.LatestReviews {
		if r.Author == "" {
			continue
		}
		if i, ok := seen[r.Author]; ok {
			out[i].state = r.State
			continue
		}
		seen[r.Author] = len(out)
		out = append(out, reviewer{login: r.Author, state: r.State})
	}
	for _, login := range pr.ReviewRequests {
		if _, ok := seen[login]; ok || login == "" {
			continue
		}
		seen[login] = len(out)
		out = append(out, reviewer{login: login, state: stateRequested})
	}
	return out
}

// Reviewers renders each reviewer coloured by their review state;
// requested-only reviewers are shown as "?login".
func Reviewers(pr model.PR) string {
	rs := reviewers(pr)
	if len(rs) == 0 {
		return Placeholder
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		switch r.state {
		case model.ReviewApproved:
			parts[i] = green.Render(r.login)
		case model.ReviewChangesRequested:
			parts[i] = red.Render(r.login)
		case stateRequested:
			parts[i] = dimItalic.Render("?" + r.login)
		default:
			parts[i] = yellow.Render(r.login)
		}
	}
	return strings.Join(parts, " ")
}

// ReviewState picks the overall review state of a PR: the review decision,
// else the last individual review, else REVIEW_REQUIRED if anyone was asked.
func ReviewState(pr model.PR) string {
	if pr.ReviewDecision != "" {
		return pr.ReviewDecision
	}
	if n := len(pr.LatestReviews); n > 0 {
		return pr.LatestReviews[n-1].State
	}
	if len(pr.ReviewRequests) > 0 {
		return model.ReviewRequired
	}
	return ""
}

// Review renders the overall review state.
func Review(pr model.PR) string {
	switch state := ReviewState(pr); state {
	case model.ReviewApproved:
		return green.Render("approved")
	case model.ReviewChangesRequested:
		return red.Render("changes")
	case model.ReviewRequired:
		return yellow.Render("pending")
	case "":
		return Placeholder
	default:
		return dim.Render(strings.ToLower(state))
	}
}
