// Package toastview renders the toast queue as a stack of floating boxes.
//
// One box is drawn per record, oldest first, each separated by a blank
// line. Records whose kind has no style are skipped without leaving a gap.
package toastview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/overlay"
	"github.com/llehouerou/sona/internal/ui/render"
	"github.com/llehouerou/sona/internal/ui/styles"
)

// ErrInvalidCorner is returned by ParseCorner for unknown anchors.
var ErrInvalidCorner = errors.New("invalid toast corner")

// Corner is the screen corner the stack is anchored to.
type Corner string

const (
	TopRight    Corner = "top-right"
	TopLeft     Corner = "top-left"
	BottomRight Corner = "bottom-right"
	BottomLeft  Corner = "bottom-left"
)

// ParseCorner validates a corner name.
func ParseCorner(s string) (Corner, error) {
	switch c := Corner(strings.ToLower(strings.TrimSpace(s))); c {
	case TopRight, TopLeft, BottomRight, BottomLeft:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCorner, s)
}

const (
	DefaultWidth    = 40
	DefaultMaxLines = 3
	minWidth        = 10

	// distance from the screen edges
	marginX = 2
	marginY = 1
)

// Options controls the size and placement of the stack.
type Options struct {
	Width    int // box width including padding
	MaxLines int // message lines per box
	Corner   Corner
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	o.Width = max(o.Width, minWidth)
	if o.MaxLines <= 0 {
		o.MaxLines = DefaultMaxLines
	}
	if o.Corner == "" {
		o.Corner = TopRight
	}
	return o
}

// Box renders a single toast. ok is false when the kind has no style.
func Box(r toast.Record, opts Options) (string, bool) {
	opts = opts.normalized()
	style, ok := styles.T().Toast(r.Kind)
	if !ok {
		return "", false
	}
	inner := opts.Width - style.GetHorizontalPadding()
	lines := render.Wrap(r.Message, inner, opts.MaxLines)
	return style.Width(opts.Width).Render(strings.Join(lines, "\n")), true
}

// Stack renders the boxes for records, oldest on top.
func Stack(records []toast.Record, opts Options) string {
	boxes := make([]string, 0, len(records))
	for _, r := range records {
		if b, ok := Box(r, opts); ok {
			boxes = append(boxes, b)
		}
	}
	return strings.Join(boxes, "\n\n")
}

// Count returns how many of records produce a box.
func Count(records []toast.Record) int {
	n := 0
	for _, r := range records {
		if _, _, ok := styles.T().KindColors(r.Kind); ok {
			n++
		}
	}
	return n
}

// Overlay draws the stack over base, a view of width x height cells.
func Overlay(base string, records []toast.Record, opts Options, width, height int) string {
	opts = opts.normalized()
	stack := Stack(records, opts)
	if stack == "" {
		return base
	}
	w := lipgloss.Width(stack)
	h := lipgloss.Height(stack)

	x, y := marginX, marginY
	switch opts.Corner {
	case TopRight:
		x = width - w - marginX
	case BottomRight:
		x = width - w - marginX
		y = height - h - marginY
	case BottomLeft:
		y = height - h - marginY
	case TopLeft:
	}
	return overlay.Place(base, stack, max(x, 0), y, width)
}
