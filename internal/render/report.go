package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ruleTitleStyle = lipgloss.NewStyle().Bold(true)
	ruleLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	milestoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	noneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pullsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	countStyle     = lipgloss.NewStyle().Faint(true)
	emptyStyle     = lipgloss.NewStyle().Faint(true)
)

// Report renders the full board: one table per milestone, then the PRs.
func (r Renderer) Report(b Board) string {
	var sb strings.Builder

	sb.WriteString("\n")
	if len(b.Issues) == 0 {
		sb.WriteString(emptyStyle.Render("No open issues.") + "\n")
	} else {
		sb.WriteString(r.rule(fmt.Sprintf("Open Issues (%d)", len(b.Issues))) + "\n")
		for _, g := range GroupByMilestone(b.Issues) {
			sb.WriteString("\n")
			sb.WriteString(r.IssueTable(groupTitle(g), g.Issues, b) + "\n")
		}
	}

	sb.WriteString("\n")
	if len(b.PRs) == 0 {
		sb.WriteString(r.rule("Pull Requests") + "\n")
		sb.WriteString(emptyStyle.Render("No open pull requests.") + "\n")
	} else {
		sb.WriteString(r.rule(fmt.Sprintf("Open Pull Requests (%d)", len(b.PRs))) + "\n")
		sb.WriteString("\n")
		title := pullsStyle.Render("▸ Pull Requests") + "  " + countStyle.Render(fmt.Sprintf("(%d open)", len(b.PRs)))
		sb.WriteString(r.PRTable(title, b.PRs, b) + "\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

func groupTitle(g Group) string {
	count := countStyle.Render(fmt.Sprintf("(%d issues)", len(g.Issues)))
	if g.Milestone == "" {
		return noneStyle.Render("▸ No Milestone") + "  " + count
	}
	return milestoneStyle.Render("▸ Milestone "+g.Milestone) + "  " + count
}

// rule draws a full-width horizontal line with title centred in it.
func (r Renderer) rule(title string) string {
	return lipgloss.PlaceHorizontal(r.width(), lipgloss.Center,
		" "+ruleTitleStyle.Render(title)+" ",
		lipgloss.WithWhitespaceChars("─"),
		lipgloss.WithWhitespaceForeground(ruleLineStyle.GetForeground()),
	)
}
