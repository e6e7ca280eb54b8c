// Package compose provides the popup for writing a custom toast.
package compose

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/popup"
	"github.com/llehouerou/sona/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// SubmitMsg carries the composed toast.
type SubmitMsg struct {
	Kind    toast.Kind
	Message string
}

// CancelMsg reports that the prompt was dismissed.
type CancelMsg struct{}

const charLimit = 256

// Model is the compose popup: a kind selector and a text input.
type Model struct {
	popup.Sized
	input textinput.Model
	kind  int // index into toast.Kinds
}

// New returns a focused prompt with kind preselected.
func New(kind toast.Kind) *Model {
	ti := textinput.New()
	ti.Placeholder = "Message..."
	ti.CharLimit = charLimit
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{input: ti}
	for i, k := range toast.Kinds {
		if k == kind {
			m.kind = i
		}
	}
	return m
}

// Kind returns the selected kind.
func (m *Model) Kind() toast.Kind {
	return toast.Kinds[m.kind]
}

// Value returns the typed message.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type { //nolint:exhaustive // remaining keys go to the input
		case tea.KeyEnter:
			submit := SubmitMsg{Kind: m.Kind(), Message: m.input.Value()}
			return m, func() tea.Msg { return submit }
		case tea.KeyEsc:
			return m, func() tea.Msg { return CancelMsg{} }
		case tea.KeyTab:
			m.kind = (m.kind + 1) % len(toast.Kinds)
			return m, nil
		case tea.KeyShiftTab:
			m.kind = (m.kind + len(toast.Kinds) - 1) % len(toast.Kinds)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()

	kinds := make([]string, 0, len(toast.Kinds))
	for i, k := range toast.Kinds {
		label := " " + string(k) + " "
		if i == m.kind {
			if style, ok := t.Toast(k); ok {
				label = style.Padding(0).Render(label)
			}
		} else {
			label = t.S().Muted.Render(label)
		}
		kinds = append(kinds, label)
	}

	if w := m.Width(); w > 4 {
		m.input.Width = w - 4
	}

	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, kinds...),
		"",
		m.input.View(),
	}, "\n")
}

// Frame wraps the view for display.
func (m *Model) Frame() popup.Frame {
	return popup.Frame{
		Title:  "New toast",
		Body:   m.View(),
		Footer: "tab kind · enter send · esc cancel",
		Width:  m.Width(),
	}
}
