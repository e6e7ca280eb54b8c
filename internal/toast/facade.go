package toast

import (
	"errors"
	"reflect"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrNotMounted is returned when a toast is triggered with no store
	// registered, or while the registered store is not mounted.
	ErrNotMounted = errors.New("toast: no store mounted")
	// ErrAlreadyMounted is returned by Init when a store is already registered.
	ErrAlreadyMounted = errors.New("toast: store already mounted")
)

// Sender delivers messages to the event loop owning a Store.
// *tea.Program and *Store both satisfy it.
type Sender interface {
	Send(msg tea.Msg)
}

// Registry holds the currently registered store and the sender that
// reaches its event loop. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	store  *Store
	sender Sender
}

// Init registers store, reached through via. A nil via sends straight to
// the store, for use without a running program. Triggers fail with
// ErrNotMounted until the store is mounted.
func (r *Registry) Init(store *Store, via Sender) error {
	if store == nil {
		return errors.New("toast: nil store")
	}
	if isNil(via) {
		via = store
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.store != nil {
		return ErrAlreadyMounted
	}
	r.store = store
	r.sender = via
	return nil
}

// Teardown unregisters the current store. Later triggers fail with
// ErrNotMounted until Init is called again.
func (r *Registry) Teardown() {
	r.mu.Lock()
	r.store = nil
	r.sender = nil
	r.mu.Unlock()
}

// Mounted reports whether a store is registered and mounted.
func (r *Registry) Mounted() bool {
	return r.current() != nil
}

// Toaster returns a façade bound to r.
func (r *Registry) Toaster() Toaster {
	return Toaster{registry: r}
}

// current returns the sender when the registered store is mounted.
func (r *Registry) current() Sender {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.store == nil || !r.store.Mounted() {
		return nil
	}
	return r.sender
}

// isNil also catches typed nil pointers such as a nil *tea.Program.
func isNil(s Sender) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Toaster triggers toasts on whatever store is registered at call time.
// The zero value has no registry and always returns ErrNotMounted.
type Toaster struct {
	registry *Registry
}

// Add triggers a toast of the given kind.
func (t Toaster) Add(kind Kind, message string) error {
	if t.registry == nil {
		return ErrNotMounted
	}
	s := t.registry.current()
	if s == nil {
		return ErrNotMounted
	}
	s.Send(AddMsg{Kind: kind, Message: message})
	return nil
}

func (t Toaster) Error(message string) error   { return t.Add(KindError, message) }
func (t Toaster) Warning(message string) error { return t.Add(KindWarning, message) }
func (t Toaster) Info(message string) error    { return t.Add(KindInfo, message) }
func (t Toaster) Success(message string) error { return t.Add(KindSuccess, message) }

var defaultRegistry Registry

// Init registers the process-wide store, reached through via.
func Init(store *Store, via Sender) error { return defaultRegistry.Init(store, via) }

// Teardown unregisters the process-wide store.
func Teardown() { defaultRegistry.Teardown() }

// Default returns the façade bound to the process-wide registry.
func Default() Toaster { return defaultRegistry.Toaster() }

func Add(kind Kind, message string) error { return Default().Add(kind, message) }
func Error(message string) error          { return Default().Error(message) }
func Warning(message string) error        { return Default().Warning(message) }
func Info(message string) error           { return Default().Info(message) }
func Success(message string) error        { return Default().Success(message) }
