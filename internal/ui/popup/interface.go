package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn in a Frame over the page.
type Popup interface {
	// Init returns any initial command, such as a cursor blink.
	Init() tea.Cmd

	// Update handles a message while the popup has focus.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup body without the frame.
	View() string

	// SetSize sets the space available to the body.
	SetSize(width, height int)
}

// Sized stores the dimensions given to a popup. Embed it to satisfy the
// SetSize half of Popup.
type Sized struct {
	width, height int
}

// SetSize records the available space.
func (s *Sized) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the available width.
func (s Sized) Width() int { return s.width }

// Height returns the available height.
func (s Sized) Height() int { return s.height }
