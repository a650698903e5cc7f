package format

import (
	"regexp"
	"strings"
)

var titleTag = regexp.MustCompile(`^\[(FEATURE|TASK|BUG|DISCUSSION|CHORE)\]\s*`)

// CleanTitle strips a leading "[BUG] "-style tag.
func CleanTitle(title string) string {
	return titleTag.ReplaceAllString(title, "")
}

// TitleTag returns the bracketed tag of a title ("BUG"), or "".
func TitleTag(title string) string {
	if m := titleTag.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return ""
}

var typeLabels = []string{"feature", "bug", "discussion", "chore", "task"}

// Type renders the issue type: the first type label, else the title tag.
func Type(labels []string, title string) string {
	for _, l := range labels {
		for _, kind := range typeLabels {
			if l == kind {
				return TypeStyle(kind).Render(kind)
			}
		}
	}
	if tag := TitleTag(title); tag != "" {
		kind := strings.ToLower(tag)
		return TypeStyle(kind).Render(kind)
	}
	return ""
}

// Label renders the value of the first label with the given prefix,
// e.g. "high" for prefix "priority:". It returns "" when none match.
func Label(labels []string, prefix string) string {
	for _, l := range labels {
		if val, ok := strings.CutPrefix(l, prefix); ok {
			return LabelStyle(l).Render(val)
		}
	}
	return ""
}

// Scope renders every area: label, comma separated.
func Scope(labels []string) string {
	var areas []string
	for _, l := range labels {
		if val, ok := strings.CutPrefix(l, "area:"); ok {
			areas = append(areas, AreaStyle().Render(val))
		}
	}
	return strings.Join(areas, ", ")
}
