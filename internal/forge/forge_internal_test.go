package forge

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTrimOutputKeepsShortStderr(t *testing.T) {
	assert.Equal(t, "HTTP 404: Not Found", trimOutput([]byte("  HTTP 404: Not Found\n")))
}

func TestTrimOutputCutsOnRuneBoundary(t *testing.T) {
	// the two-byte é straddles byte 200
	stderr := strings.Repeat("a", 199) + "é" + strings.Repeat("b", 50)

	got := trimOutput([]byte(stderr))

	assert.True(t, utf8.ValidString(got), "%q", got)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, ansi.StringWidth(got), maxStderr)
	assert.True(t, strings.HasPrefix(got, strings.Repeat("a", 199)))
}

func TestTrimOutputMultibyteOnly(t *testing.T) {
	got := trimOutput([]byte(strings.Repeat("ü", 300)))

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxStderr, utf8.RuneCountInString(got))
}
