// Package app contains the demo page model and its messages.
package app

// DesktopNotifyFailedMsg reports that mirroring a toast to the desktop
// failed. The first failure turns mirroring off.
type DesktopNotifyFailedMsg struct {
	Err error
}

// DesktopNotifiedMsg carries the id the notification server assigned.
type DesktopNotifiedMsg struct {
	ToastID  uint64
	NotifyID uint32
}
