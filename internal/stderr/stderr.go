//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe while the UI runs.
// Anything written to stderr (by this process or by libraries writing to
// the descriptor directly) would otherwise be drawn over the alt screen;
// captured lines are forwarded as error toasts instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
	"time"
)

const messageBuffer = 100

// drainTimeout bounds how long Stop waits for the reader to see EOF.
const drainTimeout = time.Second

// Messages receives captured stderr lines. Start replaces it with a fresh
// channel; it is closed once capture has stopped.
var Messages = make(chan string, messageBuffer)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	readerDone chan struct{}
	started    bool
)

// Start begins capturing stderr. Call it before the UI takes the terminal.
// On error nothing is redirected and the program can carry on.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	out := make(chan string, messageBuffer)
	Messages = out
	done := make(chan struct{})
	readerDone = done

	go func() {
		// The reader is the only sender, so it owns the close.
		defer close(done)
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case out <- line:
			default:
				// drop rather than block the writer
			}
		}
	}()

	return nil
}

// WriteOriginal writes to the real stderr, bypassing capture.
func WriteOriginal(msg string) {
	if started {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for the reader to close
// Messages.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// With fd 2 restored, pipeWrite holds the last write end: closing it
	// lets the reader drain and see EOF.
	pipeWrite.Close()
	select {
	case <-readerDone:
	case <-time.After(drainTimeout):
		// Another process still holds the write end; unblock the reader.
		pipeRead.Close()
		<-readerDone
	}
	pipeRead.Close()

	started = false
}
