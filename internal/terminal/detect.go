// Package terminal reports whether the process is attached to a TTY.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both terminals, which is
// what a confirmation prompt needs.
func IsInteractive() bool {
	return isTerminalFn(int(os.Stdin.Fd())) && isTerminalFn(int(os.Stdout.Fd()))
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file attached to a terminal. Buffers and
// other writers are never terminals.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return isTerminalFn(int(f.Fd()))
}
