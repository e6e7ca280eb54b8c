// Package notify mirrors toasts as desktop notifications via D-Bus.
package notify

import (
	"time"

	"github.com/llehouerou/sona/internal/toast"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
	// Shutdown releases the bus connection.
	Shutdown() error
}

// FromToast builds the desktop notification for a toast. The
// notification expires together with the toast. ok is false for kinds
// that are not displayed.
func FromToast(r toast.Record, lifetime time.Duration) (Notification, bool) {
	n := Notification{
		Body:    r.Message,
		Timeout: int32(lifetime / time.Millisecond), //nolint:gosec // lifetimes are seconds
	}
	switch r.Kind {
	case toast.KindError:
		n.Title, n.Icon, n.Urgency = "Error", "dialog-error", UrgencyCritical
	case toast.KindWarning:
		n.Title, n.Icon, n.Urgency = "Warning", "dialog-warning", UrgencyNormal
	case toast.KindInfo:
		n.Title, n.Icon, n.Urgency = "Info", "dialog-information", UrgencyLow
	case toast.KindSuccess:
		n.Title, n.Icon, n.Urgency = "Success", "emblem-default", UrgencyLow
	default:
		return Notification{}, false
	}
	return n, true
}
