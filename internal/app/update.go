package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sona/internal/errmsg"
	"github.com/llehouerou/sona/internal/logx"
	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/compose"
	"github.com/llehouerou/sona/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.popup != nil {
			m.popup.SetSize(m.popupSize())
		}
		return m, nil

	case toast.AddMsg:
		return m.handleAdd(msg)

	case toast.ExpireMsg:
		return m, m.Toasts.Update(msg)

	case compose.SubmitMsg:
		m.popup = nil
		if strings.TrimSpace(msg.Message) == "" {
			return m, nil
		}
		return m, addToastCmd(msg.Kind, msg.Message)

	case compose.CancelMsg, helpbindings.CloseMsg:
		m.popup = nil
		return m, nil

	case DesktopNotifiedMsg:
		m.log.Debug("desktop notification sent",
			logx.Uint64("toast", msg.ToastID),
			logx.Int("notify_id", int(msg.NotifyID)))
		return m, nil

	case DesktopNotifyFailedMsg:
		return m.handleNotifyFailed(msg)

	case tea.KeyMsg:
		if m.popup != nil && msg.Type != tea.KeyCtrlC {
			return m.updatePopup(msg)
		}
		return m.handleKey(msg.String())
	}

	if m.popup != nil {
		return m.updatePopup(msg)
	}
	return m, nil
}

func (m Model) handleAdd(msg toast.AddMsg) (tea.Model, tea.Cmd) {
	if !m.Toasts.Mounted() {
		return m, nil
	}
	r := m.Toasts.Add(msg.Kind, msg.Message)
	if !r.Kind.Valid() {
		return m, nil
	}
	m.Shown++
	return m, mirrorCmd(m.notifier, r, m.Toasts.Len(), m.Toasts.Interval())
}

func (m Model) handleNotifyFailed(msg DesktopNotifyFailedMsg) (tea.Model, tea.Cmd) {
	if m.notifier == nil {
		return m, nil
	}
	m.log.Warn("desktop notifications disabled", logx.Err(msg.Err))
	m.notifier = nil
	return m, addToastCmd(toast.KindError, errmsg.Format(errmsg.OpDesktopNotify, msg.Err))
}

func (m Model) updatePopup(msg tea.Msg) (tea.Model, tea.Cmd) {
	p, cmd := m.popup.Update(msg)
	if fp, ok := p.(framedPopup); ok {
		m.popup = fp
	}
	return m, cmd
}

func (m Model) popupSize() (width, height int) {
	return min(m.toastOpts.Width+10, max(m.Width-4, 0)), max(m.Height-4, 0)
}
