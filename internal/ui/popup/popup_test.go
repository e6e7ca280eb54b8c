package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/sona/internal/ui/overlay"
)

func TestFrame_Render(t *testing.T) {
	out := ansi.Strip(Frame{Title: "Help", Body: "e  error\nw  warning", Footer: "esc close"}.Render(80))

	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "e  error")
	assert.Contains(t, out, "esc close")
	assert.True(t, strings.HasPrefix(out, "╭"), "rounded border")
}

func TestFrame_RespectsMaxWidth(t *testing.T) {
	out := Frame{Body: strings.Repeat("x", 100)}.Render(30)
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
}

func TestShow_CentersFrame(t *testing.T) {
	base := overlay.Canvas("", 40, 11)
	out := ansi.Strip(Show(base, Frame{Body: "hi"}, 40, 11))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 11)
	assert.Contains(t, lines[5], "hi")
}

func TestSized(t *testing.T) {
	var s Sized
	s.SetSize(10, 4)
	assert.Equal(t, 10, s.Width())
	assert.Equal(t, 4, s.Height())
}
