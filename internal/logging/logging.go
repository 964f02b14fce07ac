// Package logging builds the diagnostic logger shared by every command.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every diagnostic line.
const Prefix = "pypippark"

// New returns a logger writing to w. verbose enables debug output; quiet drops
// everything below errors. verbose wins when both are set.
func New(w io.Writer, verbose bool, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// Discard returns a logger that writes nowhere.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
