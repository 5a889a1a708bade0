// File: internal/ui/term.go
// Brief: Terminal helpers shared with the CLI.

package ui

import (
	"io"

	"golang.org/x/term"
)

// TerminalWidth reports the column count of the terminal behind w, or false
// when w is not a terminal.
func TerminalWidth(w io.Writer) (int, bool) {
	type fdProvider interface {
		Fd() uintptr
	}
	if v, ok := w.(fdProvider); ok {
		if cols, _, err := term.GetSize(int(v.Fd())); err == nil {
			return cols, true
		}
	}
	return 0, false
}

// IsTerminal reports whether w is attached to a terminal. Used to decide
// the auto color mode.
func IsTerminal(w io.Writer) bool {
	type fdProvider interface {
		Fd() uintptr
	}
	if v, ok := w.(fdProvider); ok {
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}
