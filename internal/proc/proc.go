// Package proc spawns child processes and maps their failures to exit codes.
package proc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// interruptGrace is how long a cancelled child gets to exit after SIGINT before it is killed.
const interruptGrace = 5 * time.Second

// Command describes one child process invocation.
type Command struct {
	Path   string
	Args   []string
	Env    []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for status output.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Runner starts commands and waits for them to finish.
type Runner interface {
	// Run streams the child's output to the command's writers.
	Run(ctx context.Context, cmd Command) error
	// Output captures the child's stdout; stderr still goes to cmd.Stderr.
	Output(ctx context.Context, cmd Command) ([]byte, error)
}

// Exec implements Runner with os/exec.
type Exec struct{}

// Run starts cmd and waits for it.
func (Exec) Run(ctx context.Context, cmd Command) error {
	return build(ctx, cmd).Run()
}

// Output starts cmd, waits for it, and returns what it wrote to stdout.
func (Exec) Output(ctx context.Context, cmd Command) ([]byte, error) {
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := build(ctx, cmd).Run()
	return stdout.Bytes(), err
}

func build(ctx context.Context, cmd Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Env = cmd.Env
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr
	c.Cancel = func() error {
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = interruptGrace
	return c
}

// ExitCode returns the exit status a parent should report for err, and whether
// err came from a child process at all. Children killed by a signal map to
// 128+signal, the shell convention; other non-positive codes map to 1.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal()), true
	}
	code := exitErr.ExitCode()
	if code <= 0 {
		code = 1
	}
	return code, true
}
