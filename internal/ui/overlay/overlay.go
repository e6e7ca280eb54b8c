// Package overlay draws floating layers (toasts, dialogs) over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws layer over base with its top-left corner at column x, row y.
// Every cell of the layer is opaque, including spaces, so styled boxes keep
// their background. Lines falling outside base are dropped and lines wider
// than width are clipped. Both strings may contain ANSI styling.
func Place(base, layer string, x, y, width int) string {
	if layer == "" || width <= 0 {
		return base
	}
	x = max(x, 0)

	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(layer, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		lw := ansi.StringWidth(line)
		if x >= width || lw == 0 {
			continue
		}
		end := min(x+lw, width)
		baseLines[row] = splice(baseLines[row], ansi.Cut(line, 0, end-x), x, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// Size returns the display width and height of a rendered block.
func Size(block string) (width, height int) {
	return lipgloss.Width(block), lipgloss.Height(block)
}

// Center draws layer in the middle of a width x height base.
func Center(base, layer string, width, height int) string {
	w, h := Size(layer)
	return Place(base, layer, max((width-w)/2, 0), max((height-h)/2, 0), width)
}

// Canvas returns height lines of width spaces, or base padded to that size.
func Canvas(base string, width, height int) string {
	lines := strings.Split(base, "\n")
	if base == "" {
		lines = nil
	}
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// splice replaces columns [start, end) of line with content.
// Wide characters cut in half at either edge become spaces.
func splice(line, content string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	prefix := ansi.Cut(line, 0, start)
	if pw := ansi.StringWidth(prefix); pw < start {
		prefix += strings.Repeat(" ", start-pw)
	}

	var suffix string
	if end < width {
		suffix = ansi.Cut(line, end, width)
		want := width - end
		switch sw := ansi.StringWidth(suffix); {
		case sw > want:
			suffix = " " + ansi.Cut(suffix, sw-want+1, sw)
		case sw < want:
			suffix = strings.Repeat(" ", want-sw) + suffix
		}
	}
	return prefix + content + suffix
}
