package format

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want, tag string
	}{
		{"[BUG] crash on start", "crash on start", "BUG"},
		{"[FEATURE]dark mode", "dark mode", "FEATURE"},
		{"[TASK]   tidy", "tidy", "TASK"},
		{"[bug] lower case stays", "[bug] lower case stays", ""},
		{"Fix [BUG] in middle", "Fix [BUG] in middle", ""},
		{"[IDEA] unknown tag", "[IDEA] unknown tag", ""},
		{"plain", "plain", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, CleanTitle(tc.in), tc.in)
		assert.Equal(t, tc.tag, TitleTag(tc.in), tc.in)
	}
}

func TestType(t *testing.T) {
	assert.Equal(t, "bug", ansi.Strip(Type(nil, "[BUG] crash")))
	assert.Equal(t, "feature", ansi.Strip(Type([]string{"area:ui", "feature"}, "[BUG] crash")))
	assert.Equal(t, "task", ansi.Strip(Type(nil, "[TASK] tidy")))
	assert.Equal(t, "", Type([]string{"priority:high"}, "no tag"))

	assert.Equal(t, boldRed, TypeStyle("bug"))
	assert.Equal(t, lipgloss.Color("1"), TypeStyle("bug").GetForeground())
	assert.True(t, TypeStyle("bug").GetBold())
}

func TestLabel(t *testing.T) {
	labels := []string{"area:core", "priority:high", "priority:low", "effort:small", "semver:minor"}

	assert.Equal(t, "high", ansi.Strip(Label(labels, "priority:")))
	assert.Equal(t, "small", ansi.Strip(Label(labels, "effort:")))
	assert.Equal(t, "minor", ansi.Strip(Label(labels, "semver:")))
	assert.Equal(t, "", Label(labels, "status:"))
}

func TestLabelStyle(t *testing.T) {
	assert.Equal(t, lipgloss.Color("1"), LabelStyle("priority:high").GetForeground())
	assert.True(t, LabelStyle("priority:critical").GetBold())
	assert.Equal(t, lipgloss.Color("3"), LabelStyle("priority:medium").GetForeground())
	assert.True(t, LabelStyle("priority:low").GetFaint())
	assert.True(t, LabelStyle("priority:backlog").GetItalic())
	assert.Equal(t, lipgloss.Color("2"), LabelStyle("semver:patch").GetForeground())

	// unmapped values fall back to dim rather than failing
	assert.True(t, LabelStyle("priority:someday").GetFaint())
}

func TestScope(t *testing.T) {
	assert.Equal(t, "core, cli", ansi.Strip(Scope([]string{"area:core", "bug", "area:cli"})))
	assert.Equal(t, "", Scope([]string{"bug"}))
}

func TestLinkAndTruncate(t *testing.T) {
	link := Link("https://github.com/acme/widgets/issues/1", "1")
	assert.Contains(t, link, "https://github.com/acme/widgets/issues/1")
	assert.Equal(t, "1", ansi.Strip(link))

	assert.Equal(t, "abc…", Truncate("abcdefgh", 4))
	assert.Equal(t, "abc", Truncate("abc", 4))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
