package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sona/internal/config"
	"github.com/llehouerou/sona/internal/errmsg"
	"github.com/llehouerou/sona/internal/keymap"
	"github.com/llehouerou/sona/internal/logx"
	"github.com/llehouerou/sona/internal/notify"
	"github.com/llehouerou/sona/internal/toast"
	"github.com/llehouerou/sona/internal/ui/popup"
	"github.com/llehouerou/sona/internal/ui/toastview"
)

// framedPopup is a popup that knows how to frame itself.
type framedPopup interface {
	popup.Popup
	Frame() popup.Frame
}

// Model is the root bubbletea model: the demo page with the toast stack
// drawn over it.
type Model struct {
	Toasts *toast.Store
	Keys   *keymap.Resolver
	Config *config.Config

	toastOpts toastview.Options
	notifier  notify.Notifier
	popup     framedPopup
	log       logx.Logger

	// Toasts queued before the loop starts, shown by Init.
	startup []toast.AddMsg

	// Number of toasts added since start.
	Shown int

	Width  int
	Height int
}

// Option configures a Model.
type Option func(*Model)

// WithNotifier mirrors every toast to the desktop through n.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Model) { m.notifier = n }
}

// WithLogger sets the model logger.
func WithLogger(l logx.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithStartupToast queues a toast to show once the store is mounted.
func WithStartupToast(kind toast.Kind, message string) Option {
	return func(m *Model) {
		m.startup = append(m.startup, toast.AddMsg{Kind: kind, Message: message})
	}
}

// New creates the root model around store. A nil cfg uses the defaults.
func New(cfg *config.Config, store *toast.Store, opts ...Option) Model {
	if cfg == nil {
		cfg = &config.Config{}
	}
	tc := cfg.GetToastConfig()

	m := Model{
		Toasts: store,
		Keys:   keymap.Default(),
		Config: cfg,
		toastOpts: toastview.Options{
			Width:    tc.Width,
			MaxLines: tc.MaxLines,
			Corner:   toastview.TopRight,
		},
	}
	for _, opt := range opts {
		opt(&m)
	}

	corner, err := toastview.ParseCorner(tc.Corner)
	if err != nil {
		m.log.Warn("bad toast corner", logx.String("corner", tc.Corner), logx.Err(err))
		m.startup = append(m.startup, toast.AddMsg{
			Kind:    toast.KindError,
			Message: errmsg.Format(errmsg.OpConfigCorner, err),
		})
	} else {
		m.toastOpts.Corner = corner
	}

	return m
}

// Init mounts the toast store and shows the startup toasts.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Toasts.Mount()}
	for _, msg := range m.startup {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Batch(cmds...)
}

// ToastOptions returns the options the toast stack is drawn with.
func (m Model) ToastOptions() toastview.Options {
	return m.toastOpts
}

// PopupOpen reports whether a popup has focus.
func (m Model) PopupOpen() bool {
	return m.popup != nil
}

// Mirroring reports whether toasts are sent to the desktop.
func (m Model) Mirroring() bool {
	return m.notifier != nil
}
