// Package helpbindings provides the popup listing the page's key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sona/internal/keymap"
	"github.com/llehouerou/sona/internal/ui/popup"
	"github.com/llehouerou/sona/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// CloseMsg asks the app to close the help popup.
type CloseMsg struct{}

var contextLabels = map[string]string{
	"toasts": "Toasts",
	"global": "Global",
}

// Model is the help popup.
type Model struct {
	popup.Sized
	bindings []keymap.Binding
}

// New creates a help popup over the given bindings.
func New(bindings []keymap.Binding) *Model {
	return &Model{bindings: bindings}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var sb strings.Builder
	for _, ctx := range keymap.Contexts {
		first := true
		for _, b := range m.bindings {
			if b.Context != ctx {
				continue
			}
			if first {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(headerStyle.Render(contextLabels[ctx]))
				sb.WriteString("\n")
				first = false
			}
			keys := strings.Join(b.Keys, ", ")
			sb.WriteString(t.S().Key.Render(keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))))
			sb.WriteString("  ")
			sb.WriteString(t.S().Base.Render(b.Description))
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Frame wraps the view for display.
func (m *Model) Frame() popup.Frame {
	return popup.Frame{
		Title:  "Key bindings",
		Body:   m.View(),
		Footer: "?/esc close",
	}
}
