package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/sona/internal/keymap"
	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/popup"
	"github.com/llehouerou/sona/internal/ui/render"
	"github.com/llehouerou/sona/internal/ui/styles"
	"github.com/llehouerou/sona/internal/ui/toastview"
)

var triggerLabels = map[toast.Kind]string{
	toast.KindError:   "Error",
	toast.KindWarning: "Warning",
	toast.KindInfo:    "Info",
	toast.KindSuccess: "Success",
}

var triggerActions = map[toast.Kind]keymap.Action{
	toast.KindError:   keymap.ActionToastError,
	toast.KindWarning: keymap.ActionToastWarning,
	toast.KindInfo:    keymap.ActionToastInfo,
	toast.KindSuccess: keymap.ActionToastSuccess,
}

// View renders the page, then the toasts, then any popup.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.renderPage())
	view = toastview.Overlay(view, m.Toasts.Snapshot(), m.toastOpts, m.Width, m.Height)

	if m.popup != nil {
		view = popup.Show(view, m.popup.Frame(), m.Width, m.Height)
	}
	return view
}

func (m Model) renderPage() string {
	t := styles.T()

	title := lipgloss.NewStyle().Bold(true).Render(styles.Gradient("Sona", t.Primary, t.Secondary))

	buttons := make([]string, 0, len(toast.Kinds))
	for _, k := range toast.Kinds {
		buttons = append(buttons, m.renderTrigger(k))
	}
	row := strings.Join(buttons, "  ")
	width := lipgloss.Width(row)

	status := render.Row(
		t.S().Muted.Render("shown "+humanize.Comma(int64(m.Shown))),
		t.S().Muted.Render("on screen "+humanize.Comma(int64(toastview.Count(m.Toasts.Snapshot())))),
		width,
	)

	hints := t.S().Subtle.Render(strings.Join([]string{
		m.hint(keymap.ActionCompose, "compose"),
		m.hint(keymap.ActionHelp, "help"),
		m.hint(keymap.ActionQuit, "quit"),
	}, " · "))

	body := strings.Join([]string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, title),
		"",
		row,
		"",
		status,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, hints),
	}, "\n")

	return t.S().Card.Render(body)
}

func (m Model) renderTrigger(k toast.Kind) string {
	t := styles.T()
	style, ok := t.Toast(k)
	if !ok {
		return ""
	}
	label := triggerLabels[k]
	if keys := m.Keys.KeysFor(triggerActions[k]); len(keys) > 0 {
		label = keys[0] + " " + label
	}
	return style.Render(label)
}

func (m Model) hint(action keymap.Action, label string) string {
	keys := m.Keys.KeysFor(action)
	if len(keys) == 0 {
		return label
	}
	return keys[0] + " " + label
}
