//go:build windows

// Package stderr is a no-op on Windows, where the console is not shared
// with the alt screen in the same way.
package stderr

import "os"

// Messages never receives on Windows.
var Messages = make(chan string)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Messages.
func Stop() {
	close(Messages)
}
