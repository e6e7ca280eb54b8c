// Package popup draws modal dialogs over the page.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sona/internal/ui/overlay"
	"github.com/llehouerou/sona/internal/ui/styles"
)

// Frame is the bordered box around a popup body.
type Frame struct {
	Title  string
	Body   string
	Footer string
	Width  int // inner width; 0 fits the content
}

// Render returns the framed box, not yet positioned.
func (f Frame) Render(maxWidth int) string {
	t := styles.T()

	inner := f.Width
	if inner == 0 {
		inner = max(lipgloss.Width(f.Body), lipgloss.Width(f.Title), lipgloss.Width(f.Footer))
	}
	// border and horizontal padding take 4 columns
	if maxWidth > 4 {
		inner = min(inner, maxWidth-4)
	}

	var parts []string
	if f.Title != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(inner, lipgloss.Center, t.S().Title.Render(f.Title)), "")
	}
	parts = append(parts, f.Body)
	if f.Footer != "" {
		parts = append(parts, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, t.S().Subtle.Render(f.Footer)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(parts, "\n"))
}

// Show draws the framed popup centered over base.
func Show(base string, f Frame, width, height int) string {
	return overlay.Center(base, f.Render(width), width, height)
}
