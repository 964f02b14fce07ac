// Package venv creates the managed virtual environment, repairs its ownership
// when elevated runs left it unwritable, and builds the activated process
// environment for child processes.
package venv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/pypippark/internal/logging"
	"github.com/conn-castle/pypippark/internal/messages"
)

const (
	binDirName     = "bin"
	pythonExecName = "python3"
	pipExecName    = "pip"
)

// ErrNotWritable is returned when the environment cannot be written and the
// caller lacks the privileges to repair it.
var ErrNotWritable = errors.New(messages.VenvNotWritable)

// Env describes a usable virtual environment.
type Env struct {
	Root   string
	BinDir string
	Python string
	Pip    string
}

// Layout returns the conventional executable paths inside root.
func Layout(root string) Env {
	binDir := filepath.Join(root, binDirName)
	return Env{
		Root:   root,
		BinDir: binDir,
		Python: filepath.Join(binDir, pythonExecName),
		Pip:    filepath.Join(binDir, pipExecName),
	}
}

// Options configures a Bootstrapper.
type Options struct {
	// Root is the environment directory.
	Root string
	// Python is the interpreter used to create the environment.
	Python string
	// Status receives user-facing progress lines; nil discards them.
	Status io.Writer
	// Prefix is prepended to every status line.
	Prefix string
	// Stdout and Stderr receive the output of child processes.
	Stdout io.Writer
	Stderr io.Writer
	// Logger receives diagnostics; nil discards them.
	Logger *log.Logger
}

// Bootstrapper ensures the environment exists and is writable.
type Bootstrapper struct {
	sys  System
	opts Options
}

// New returns a Bootstrapper for opts using sys for OS access.
func New(sys System, opts Options) *Bootstrapper {
	if opts.Status == nil {
		opts.Status = io.Discard
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Bootstrapper{sys: sys, opts: opts}
}

// Ensure creates the environment if it is missing, repairs ownership when it is
// not writable and the caller is root, and returns the environment layout.
func (b *Bootstrapper) Ensure(ctx context.Context) (Env, error) {
	if strings.TrimSpace(b.opts.Root) == "" {
		return Env{}, errors.New(messages.VenvRootRequired)
	}
	root, err := filepath.Abs(b.opts.Root)
	if err != nil {
		return Env{}, fmt.Errorf(messages.VenvResolveRootFmt, b.opts.Root, err)
	}

	lock, err := lockCreation(ctx, b.sys, root)
	if err != nil {
		return Env{}, err
	}
	err = b.create(ctx, root)
	lock.release()
	if err != nil {
		return Env{}, err
	}

	if !b.sys.Writable(root) {
		if b.sys.Geteuid() != 0 {
			return Env{}, fmt.Errorf(messages.VenvNotWritableFmt, ErrNotWritable, root)
		}
		if err := b.repairOwnership(root); err != nil {
			return Env{}, err
		}
	}

	env := Layout(root)
	b.opts.Logger.Debug(messages.VenvReady, "root", env.Root, "python", env.Python, "pip", env.Pip)
	return env, nil
}

// create runs the environment-creation tool when root is absent.
func (b *Bootstrapper) create(ctx context.Context, root string) error {
	info, err := b.sys.Stat(root)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf(messages.VenvRootNotDirFmt, root)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.VenvStatRootFmt, root, err)
	}

	python, err := b.sys.LookPath(b.opts.Python)
	if err != nil {
		return fmt.Errorf(messages.VenvPythonNotFoundFmt, b.opts.Python, err)
	}
	b.status(messages.VenvCreatingFmt, root)
	args := []string{"-m", "venv", root}
	b.opts.Logger.Debug(messages.LogRunningCommand, "cmd", python, "args", args)
	if err := b.sys.Run(ctx, python, args, b.opts.Stdout, b.opts.Stderr); err != nil {
		return fmt.Errorf(messages.VenvCreateFailedFmt, root, err)
	}
	return nil
}

func (b *Bootstrapper) status(format string, args ...any) {
	_, _ = fmt.Fprintf(b.opts.Status, b.opts.Prefix+format+"\n", args...)
}
