package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sona/internal/keymap"
	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/compose"
	"github.com/llehouerou/sona/internal/ui/helpbindings"
)

// triggerKinds maps the demo trigger actions to their kind.
var triggerKinds = map[keymap.Action]toast.Kind{
	keymap.ActionToastError:   toast.KindError,
	keymap.ActionToastWarning: toast.KindWarning,
	keymap.ActionToastInfo:    toast.KindInfo,
	keymap.ActionToastSuccess: toast.KindSuccess,
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(key)

	if kind, ok := triggerKinds[action]; ok {
		return m, addToastCmd(kind, m.Config.DemoMessage(kind))
	}

	switch action {
	case keymap.ActionQuit:
		m.Toasts.Unmount()
		return m, tea.Quit
	case keymap.ActionHelp:
		return m.openPopup(helpbindings.New(keymap.All))
	case keymap.ActionCompose:
		return m.openPopup(compose.New(toast.KindInfo))
	}
	return m, nil
}

func (m Model) openPopup(p framedPopup) (tea.Model, tea.Cmd) {
	p.SetSize(m.popupSize())
	m.popup = p
	return m, p.Init()
}
