package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestPlace_ReplacesCells(t *testing.T) {
	base := Canvas("", 10, 3)

	out := Place(base, "ab\ncd", 7, 1, 10)

	assert.Equal(t, []string{
		"          ",
		"       ab ",
		"       cd ",
	}, plainLines(out))
}

func TestPlace_SpacesAreOpaque(t *testing.T) {
	base := "xxxxxxxx"
	out := Place(base, "a  b", 2, 0, 8)
	assert.Equal(t, "xxa  bxx", ansi.Strip(out))
}

func TestPlace_ClipsAtEdges(t *testing.T) {
	base := Canvas("", 6, 2)

	out := Place(base, "abcdef\nghijkl\nmnopqr", 3, 1, 6)

	lines := plainLines(out)
	assert.Len(t, lines, 2, "rows below the base are dropped")
	assert.Equal(t, "   abc", lines[1])
}

func TestPlace_KeepsStyledLayer(t *testing.T) {
	box := lipgloss.NewStyle().Bold(true).Render("hi")
	out := Place("......", box, 1, 0, 6)

	assert.Equal(t, ".hi...", ansi.Strip(out))
	assert.Contains(t, out, box)
}

func TestPlace_WideCharacterAtEdge(t *testing.T) {
	base := "日本語"
	out := Place(base, "x", 1, 0, 6)

	assert.Equal(t, 6, ansi.StringWidth(out))
	assert.True(t, strings.HasPrefix(ansi.Strip(out), " x"))
}

func TestPlace_EmptyLayer(t *testing.T) {
	assert.Equal(t, "base", Place("base", "", 0, 0, 4))
}

func TestCenter(t *testing.T) {
	base := Canvas("", 7, 3)

	out := Center(base, "ab", 7, 3)

	assert.Equal(t, []string{
		"       ",
		"  ab   ",
		"       ",
	}, plainLines(out))
}

func TestCanvas_PadsBase(t *testing.T) {
	out := Canvas("a\nbb", 3, 3)
	assert.Equal(t, []string{"a  ", "bb ", "   "}, plainLines(out))
}
