package format

import (
	"fmt"
	"strings"

	"ghboard/internal/model"
)

// CISummary buckets a PR's checks by outcome.
type CISummary struct {
	Total   int
	Passed  int
	Failed  []string // names of failing checks
	Pending int
}

// Summarize classifies every check. NEUTRAL and SKIPPED count as passed;
// anything without a conclusion yet is pending.
func Summarize(checks []model.Check) CISummary {
	s := CISummary{Total: len(checks)}
	for _, c := range checks {
		switch c.Conclusion {
		case "SUCCESS", "NEUTRAL", "SKIPPED":
			s.Passed++
		case "FAILURE", "ERROR", "TIMED_OUT", "CANCELLED", "STARTUP_FAILURE", "ACTION_REQUIRED":
			name := c.Name
			if name == "" {
				name = "?"
			}
			s.Failed = append(s.Failed, name)
		default:
			s.Pending++
		}
	}
	return s
}

// Text is the plain cell text, or "" when there are no checks.
func (s CISummary) Text() string {
	ratio := fmt.Sprintf("%d/%d", s.Passed, s.Total)
	switch {
	case s.Total == 0:
		return ""
	case len(s.Failed) > 0:
		return "✗ " + ratio + " " + strings.Join(s.Failed, ", ")
	case s.Pending > 0:
		return "⏳ " + ratio
	default:
		return "✓ " + ratio
	}
}

// CI renders the CI cell: failing check names, a pending count, or a clean
// pass count. No checks at all renders the placeholder.
func CI(checks []model.Check) string {
	s := Summarize(checks)
	text := s.Text()
	switch {
	case text == "":
		return Placeholder
	case len(s.Failed) > 0:
		return red.Render(text)
	case s.Pending > 0:
		return yellow.Render(text)
	default:
		return green.Render(text)
	}
}
