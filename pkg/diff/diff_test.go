package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("same\ncontent\n", "same\ncontent\n", "a", "b"))
}

func TestUnifiedFillChange(t *testing.T) {
	t.Parallel()

	before := "<svg>\n<rect fill=\"#009dff\"/>\n<circle fill=\"#ffffff\"/>\n</svg>\n"
	after := "<svg>\n<rect fill=\"#ef4444\"/>\n<circle fill=\"#ffffff\"/>\n</svg>\n"

	out := Unified(before, after, "template", "recolored")

	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, "--- template\n+++ recolored\n"))
	assert.Contains(t, out, "-<rect fill=\"#009dff\"/>\n")
	assert.Contains(t, out, "+<rect fill=\"#ef4444\"/>\n")
	assert.Contains(t, out, " <circle fill=\"#ffffff\"/>\n")
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxLines+100; i++ {
		before.WriteString("old line\n")
		after.WriteString("new line\n")
	}

	out := Unified(before.String(), after.String(), "a", "b")

	assert.Contains(t, out, truncateMessage)
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), maxLines+5)
}

func TestChanged(t *testing.T) {
	t.Parallel()

	removed, added := Changed("one\ntwo\nthree\n", "one\n2\nthree\n")

	assert.Equal(t, []string{"two"}, removed)
	assert.Equal(t, []string{"2"}, added)
}
