// Package toast holds the notification store behind the toast widget and
// the façade used to trigger toasts from anywhere in the program.
//
// # Store
//
// A Store owns an ordered queue of Records. Add appends to the tail; a
// periodic expiry tick removes the head. Both run on the bubbletea event
// loop, so the queue needs no locking:
//
//	store := toast.NewStore()
//	cmd := store.Mount()   // first expiry tick
//	...
//	case toast.ExpireMsg:
//	    cmd = store.Update(msg)
//
// Unmount invalidates any tick still in flight.
//
// # Façade
//
// Once the store and the program reaching it are registered, any goroutine
// can raise a toast:
//
//	if err := toast.Init(store, program); err != nil { ... }
//	defer toast.Teardown()
//
//	toast.Success("Settings saved")
//
// Calls made while nothing is registered, or while the registered store is
// not mounted, return ErrNotMounted. Nothing is buffered.
package toast
