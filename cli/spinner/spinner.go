// Package spinner animates a small text spinner on stderr while a
// blocking network call runs.
package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"|", "/", "-", "\\"}

// Interval is the delay between frame updates.
const Interval = 200 * time.Millisecond

// Start begins animating the message on w and returns a stop function
// that halts the animation and clears the line. When w is not a terminal
// the message is printed once and the stop function is a no-op, so piped
// output stays clean.
func Start(w io.Writer, message string) func() {
	if !isTerminal(w) {
		fmt.Fprintf(w, "%s...\n", message)
		return func() {}
	}

	var mu sync.Mutex
	done := false

	go func() {
		for i := 0; ; i++ {
			mu.Lock()
			if done {
				mu.Unlock()
				return
			}
			mu.Unlock()

			fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], message)
			time.Sleep(Interval)
		}
	}()

	return func() {
		mu.Lock()
		done = true
		mu.Unlock()
		fmt.Fprint(w, "\r\033[K")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
