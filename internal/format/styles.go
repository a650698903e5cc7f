// Package format turns issue and PR records into styled table cells.
package format

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	red           = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boldRed       = red.Bold(true)
	green         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellow        = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	blue          = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	cyan          = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	brightCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	brightMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	brightWhite   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dim           = lipgloss.NewStyle().Faint(true)
	dimItalic     = dim.Italic(true)
)

// Exported for the table assembler.
var (
	NumberStyle = cyan.Bold(true)
	ParentStyle = brightCyan
	ChildStyle  = dim
	DimStyle    = dim
	PRRefStyle  = green
	IssueStyle  = cyan
	AddStyle    = green
	DelStyle    = red
)

// Placeholder is the cell content for "nothing to show".
var Placeholder = dim.Render("—")

// LabelStyle returns the style for a namespaced label such as
// "priority:high". Unknown labels are dim.
func LabelStyle(label string) lipgloss.Style {
	switch label {
	case "priority:critical", "semver:major":
		return boldRed
	case "priority:high", "effort:large":
		return red
	case "priority:medium", "effort:medium", "semver:minor":
		return yellow
	case "priority:low":
		return dim
	case "priority:backlog":
		return dimItalic
	case "effort:small", "semver:patch":
		return green
	default:
		return dim
	}
}

// TypeStyle returns the style for an issue type such as "bug".
func TypeStyle(kind string) lipgloss.Style {
	switch kind {
	case "feature":
		return cyan
	case "bug":
		return boldRed
	case "discussion":
		return brightMagenta
	case "chore":
		return dim
	default:
		return lipgloss.NewStyle()
	}
}

// AreaStyle is used for every area: label.
func AreaStyle() lipgloss.Style { return blue }

// Link wraps text in an OSC 8 hyperlink to url.
func Link(url, text string) string {
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// Truncate shortens s to at most width cells, ending in "…" when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
