package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"ghboard/internal/format"
	"ghboard/internal/model"
)

const (
	defaultWidth   = 80
	minTitleWidth  = 20
	minColumnWidth = 3
	cellPadding    = 2 // one space either side
)

// column indices into issueHeaders / pullHeaders
const (
	issueTitleCol = 2
	pullTitleCol  = 1
)

var (
	tableTitleStyle = lipgloss.NewStyle().Bold(true)
	borderStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
)

var (
	issueHeaders = []string{"#", "Type", "Title", "Assignee", "Branch", "PR", "Prio", "Scope", "Effort", "SemVer"}
	pullHeaders  = []string{"#", "Title", "Author", "Assignee", "Issues", "Branch", "CI", "Review", "Reviewer", "Delta"}

	// widest a cell may be in each column; 0 is uncapped
	issueCaps = []int{0, 0, 0, 14, 24, 0, 0, 9, 0, 0}
	pullCaps  = []int{0, 0, 12, 12, 10, 30, 14, 8, 12, 14}
)

// Renderer draws tables sized for a terminal.
type Renderer struct {
	Width int  // terminal columns; 0 means 80
	Links bool // emit OSC 8 hyperlinks on numbers
}

func (r Renderer) width() int {
	if r.Width <= 0 {
		return defaultWidth
	}
	return r.Width
}

func (r Renderer) link(url, text string) string {
	if !r.Links {
		return text
	}
	return format.Link(url, text)
}

// IssueTable renders one milestone group.
func (r Renderer) IssueTable(title string, issues []model.Issue, b Board) string {
	rows := make([][]string, 0, len(issues))
	for _, ir := range orderIssues(issues, b.Tree) {
		rows = append(rows, r.issueCells(ir, b))
	}
	headers := slices.Clone(issueHeaders)
	fitTable(headers, rows, issueCaps, issueTitleCol, r.width())

	return tableTitleStyle.Render(title) + "\n" +
		newTable(headers, rows, map[int]lipgloss.Position{
			0: lipgloss.Right,  // #
			5: lipgloss.Right,  // PR
			6: lipgloss.Center, // Prio
			8: lipgloss.Center, // Effort
			9: lipgloss.Center, // SemVer
		})
}

func (r Renderer) issueCells(ir issueRow, b Board) []string {
	issue := ir.issue
	num := issue.Number

	title := format.CleanTitle(issue.Title)
	switch {
	case ir.child:
		title = format.ChildStyle.Render("└ " + title)
	case b.Tree.HasChildren(num):
		title = format.ParentStyle.Render("▸ " + title)
	}

	var pr string
	if n, ok := b.Refs.IssueToPR[num]; ok {
		pr = format.PRRefStyle.Render(r.link(b.Repo.PullURL(n), "#"+strconv.Itoa(n)))
	}

	return []string{
		format.NumberStyle.Render(r.link(b.Repo.IssueURL(num), strconv.Itoa(num))),
		format.Type(issue.Labels, issue.Title),
		title,
		format.Assignees(issue.Assignees),
		format.DimStyle.Render(b.Branches[num]),
		pr,
		format.Label(issue.Labels, "priority:"),
		format.Scope(issue.Labels),
		format.Label(issue.Labels, "effort:"),
		format.Label(issue.Labels, "semver:"),
	}
}

// PRTable renders every open PR in ascending number order.
func (r Renderer) PRTable(title string, prs []model.PR, b Board) string {
	sorted := slices.Clone(prs)
	slices.SortFunc(sorted, func(x, y model.PR) int { return x.Number - y.Number })

	rows := make([][]string, 0, len(sorted))
	for _, pr := range sorted {
		rows = append(rows, r.pullCells(pr, b))
	}
	headers := slices.Clone(pullHeaders)
	fitTable(headers, rows, pullCaps, pullTitleCol, r.width())

	return tableTitleStyle.Render(title) + "\n" +
		newTable(headers, rows, map[int]lipgloss.Position{
			0: lipgloss.Right,  // #
			6: lipgloss.Center, // CI
			7: lipgloss.Center, // Review
			9: lipgloss.Right,  // Delta
		})
}

func (r Renderer) pullCells(pr model.PR, b Board) []string {
	title := format.CleanTitle(pr.Title)
	if pr.Draft {
		title += format.DimStyle.Italic(true).Render(" draft")
	}

	var issues []string
	for _, n := range b.Refs.PRToIssues[pr.Number] {
		issues = append(issues, format.IssueStyle.Render(r.link(b.Repo.IssueURL(n), "#"+strconv.Itoa(n))))
	}

	branch := format.DimStyle.Render(pr.HeadBranch) + " → " + format.DimStyle.Render(pr.BaseBranch)

	ci := format.CI(pr.Checks)
	if len(pr.Checks) > 0 {
		ci = r.link(b.Repo.ChecksURL(pr.Number), ci)
	}

	delta := format.AddStyle.Render(fmt.Sprintf("+%d", pr.Additions)) + " " +
		format.DelStyle.Render(fmt.Sprintf("-%d", pr.Deletions)) + " " +
		format.DimStyle.Render(fmt.Sprintf("%df", pr.ChangedFiles))

	return []string{
		format.NumberStyle.Render(r.link(b.Repo.PullURL(pr.Number), strconv.Itoa(pr.Number))),
		title,
		format.Author(pr.Author),
		format.Assignees(pr.Assignees),
		strings.Join(issues, " "),
		branch,
		ci,
		format.Review(pr),
		format.Reviewers(pr),
		delta,
	}
}

func newTable(headers []string, rows [][]string, align map[int]lipgloss.Position) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			if row == table.HeaderRow {
				s = headerStyle
			}
			if pos, ok := align[col]; ok {
				s = s.Align(pos)
			}
			return s
		})
	return t.String()
}

// fitTable truncates cells so the rendered table is at most width columns
// wide. Cells are first cut to their column cap. If that is not enough the
// title column gives way down to minTitleWidth, then the widest remaining
// column shrinks one cell at a time. The number column is never cut.
func fitTable(headers []string, rows [][]string, caps []int, titleCol, width int) {
	for _, row := range rows {
		for i, cell := range row {
			if caps[i] > 0 {
				row[i] = format.Truncate(cell, caps[i])
			}
		}
	}

	widths := columnWidths(headers, rows)
	over := tableWidth(widths) - width
	if over <= 0 {
		return
	}

	if cut := min(over, widths[titleCol]-minTitleWidth); cut > 0 {
		widths[titleCol] -= cut
		over -= cut
	}
	for over > 0 {
		widest := -1
		for i := 1; i < len(widths); i++ {
			if widths[i] > minColumnWidth && (widest < 0 || widths[i] > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		widths[widest]--
		over--
	}

	for i, h := range headers {
		headers[i] = format.Truncate(h, widths[i])
	}
	for _, row := range rows {
		for i, cell := range row {
			row[i] = format.Truncate(cell, widths[i])
		}
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}
	return widths
}

// tableWidth is the rendered width of a bordered, padded table.
func tableWidth(widths []int) int {
	total := len(widths) + 1 // vertical borders
	for _, w := range widths {
		total += w + cellPadding
	}
	return total
}
