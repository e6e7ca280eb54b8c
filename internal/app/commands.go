package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sona/internal/notify"
	"github.com/llehouerou/sona/internal/toast"
)

// mirrorCmd sends r to the desktop. The notification lives as long as the
// toast: one expiry interval per record queued up to and including r.
func mirrorCmd(n notify.Notifier, r toast.Record, queued int, interval time.Duration) tea.Cmd {
	if n == nil {
		return nil
	}
	notif, ok := notify.FromToast(r, time.Duration(queued)*interval)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		id, err := n.Notify(notif)
		if err != nil {
			return DesktopNotifyFailedMsg{Err: err}
		}
		return DesktopNotifiedMsg{ToastID: r.ID, NotifyID: id}
	}
}

// addToastCmd posts a toast through the event loop.
func addToastCmd(kind toast.Kind, message string) tea.Cmd {
	return func() tea.Msg {
		return toast.AddMsg{Kind: kind, Message: message}
	}
}
