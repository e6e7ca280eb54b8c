package stderr

// Reporter receives captured lines. toast.Toaster satisfies it.
type Reporter interface {
	Error(message string) error
}

// Forward sends every line from lines to r until lines is closed. Lines
// that r rejects are written to the original stderr.
func Forward(lines <-chan string, r Reporter) {
	for line := range lines {
		if err := r.Error(line); err != nil {
			WriteOriginal(line + "\n")
		}
	}
}
