// Package shell starts an interactive sub-shell inside the environment.
package shell

import (
	"context"
	"io"
	"strings"

	"github.com/conn-castle/pypippark/internal/proc"
)

// DefaultProgram is used when neither the config nor $SHELL names a shell.
const DefaultProgram = "/bin/sh"

// Resolve picks the shell program: configured wins over envShell, then DefaultProgram.
func Resolve(configured string, envShell string) string {
	if program := strings.TrimSpace(configured); program != "" {
		return program
	}
	if program := strings.TrimSpace(envShell); program != "" {
		return program
	}
	return DefaultProgram
}

// Session describes one sub-shell.
type Session struct {
	Program string
	Env     []string
	Dir     string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Launch runs the session's shell attached to the caller's streams and waits for it to exit.
// A non-zero shell exit surfaces as the *exec.ExitError from runner.
//
// Cancelling ctx does not stop the shell. The terminal delivers Ctrl+C to the
// shell itself, and an interactive shell ignores it.
func Launch(ctx context.Context, runner proc.Runner, session Session) error {
	return runner.Run(context.WithoutCancel(ctx), proc.Command{
		Path:   session.Program,
		Env:    session.Env,
		Dir:    session.Dir,
		Stdin:  session.Stdin,
		Stdout: session.Stdout,
		Stderr: session.Stderr,
	})
}
