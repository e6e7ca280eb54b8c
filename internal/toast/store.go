package toast

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sona/internal/logx"
)

// DefaultInterval is the time between two expiry sweeps.
const DefaultInterval = 3 * time.Second

// AddMsg asks the store to append a toast.
type AddMsg struct {
	Kind    Kind
	Message string
}

// ExpireMsg is delivered by the expiry tick. Generation identifies the
// mount it belongs to; ticks from an earlier mount are ignored.
type ExpireMsg struct {
	Generation int
}

// Store owns the live toast queue. It must only be used from the
// goroutine running the bubbletea event loop; Mounted alone may be read
// from any goroutine.
type Store struct {
	queue      Queue
	ids        idSource
	interval   time.Duration
	now        func() time.Time
	log        logx.Logger
	mounted    atomic.Bool
	generation int
}

// Option configures a Store.
type Option func(*Store)

// WithInterval sets the expiry interval. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock replaces the clock used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logx.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore returns an empty, unmounted store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logx.String("component", "toast"))
	return s
}

// Add appends a toast to the tail of the queue and returns it.
// Kinds outside the recognized set are kept; the renderer skips them.
func (s *Store) Add(kind Kind, message string) Record {
	at := s.now()
	r := NewRecord(s.ids.next(at), kind, message, at)
	s.queue.Append(r)

	if !kind.Valid() {
		s.log.Debug("toast with unrecognized kind will not be shown",
			logx.Uint64("id", r.ID), logx.String("kind", string(kind)))
	} else {
		s.log.Debug("toast added",
			logx.Uint64("id", r.ID), logx.String("kind", string(kind)), logx.Int("queued", s.queue.Len()))
	}
	return r
}

// ExpireOldest removes the head of the queue, if any.
func (s *Store) ExpireOldest() (Record, bool) {
	r, ok := s.queue.PopHead()
	if ok {
		s.log.Debug("toast expired", logx.Uint64("id", r.ID), logx.Int("queued", s.queue.Len()))
	}
	return r, ok
}

// Mount starts the expiry loop and returns its first tick.
// Mounting an already mounted store does nothing.
func (s *Store) Mount() tea.Cmd {
	if s.mounted.Load() {
		return nil
	}
	s.mounted.Store(true)
	s.generation++
	s.log.Debug("store mounted", logx.Int("generation", s.generation))
	return s.tick()
}

// Unmount stops the expiry loop. A tick already scheduled is discarded
// when it arrives.
func (s *Store) Unmount() {
	if !s.mounted.Load() {
		return
	}
	s.mounted.Store(false)
	s.generation++
	s.log.Debug("store unmounted")
}

// Update handles store messages and returns the follow-up command.
func (s *Store) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AddMsg:
		if !s.mounted.Load() {
			s.log.Debug("toast dropped, store not mounted", logx.String("kind", string(msg.Kind)))
			return nil
		}
		s.Add(msg.Kind, msg.Message)
	case ExpireMsg:
		if !s.mounted.Load() || msg.Generation != s.generation {
			return nil
		}
		s.ExpireOldest()
		return s.tick()
	}
	return nil
}

// Send feeds msg straight into Update, which lets the store act as the
// façade's target without a running program. Commands are discarded.
func (s *Store) Send(msg tea.Msg) {
	_ = s.Update(msg)
}

// Snapshot returns the queued toasts, oldest first.
func (s *Store) Snapshot() []Record {
	return s.queue.Snapshot()
}

// Len returns the number of queued toasts.
func (s *Store) Len() int {
	return s.queue.Len()
}

// Mounted reports whether the expiry loop is running.
func (s *Store) Mounted() bool {
	return s.mounted.Load()
}

// Interval returns the expiry interval.
func (s *Store) Interval() time.Duration {
	return s.interval
}

func (s *Store) tick() tea.Cmd {
	gen := s.generation
	return tea.Tick(s.interval, func(_ time.Time) tea.Msg {
		return ExpireMsg{Generation: gen}
	})
}
