package terminal

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

const (
	// ClearScreenSeq moves the cursor home and clears the whole screen.
	ClearScreenSeq = "\x1b[H\x1b[2J"
	// ClearLineSeq clears from the cursor to the end of the line.
	ClearLineSeq = "\x1b[K"
)

// Clearer knows how to clear the display.
type Clearer interface {
	Clear() error
}

// ClearerFunc is a helper to use functions as Clearers.
type ClearerFunc func() error

func (f ClearerFunc) Clear() error { return f() }

// NoopClearer doesn't clear anything.
const NoopClearer = noopClearer(0)

type noopClearer int

func (noopClearer) Clear() error { return nil }

// ANSIClearer clears a terminal using ANSI escape sequences.
type ANSIClearer struct {
	w       io.Writer
	enabled bool
}

// NewANSIClearer returns a clearer for the writer. If the writer is not a terminal
// the clearer doesn't write anything, so redirected output stays readable.
func NewANSIClearer(w io.Writer) *ANSIClearer {
	return &ANSIClearer{w: w, enabled: IsTerminal(w)}
}

// Clear clears the screen.
func (a *ANSIClearer) Clear() error {
	if !a.enabled {
		return nil
	}

	if _, err := fmt.Fprint(a.w, ClearScreenSeq); err != nil {
		return fmt.Errorf("could not clear screen: %w", err)
	}
	return nil
}

// IsTerminal returns true if the writer is backed by a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
