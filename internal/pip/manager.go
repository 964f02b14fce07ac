// Package pip drives the environment's package manager and interpreter.
package pip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/conn-castle/pypippark/internal/logging"
	"github.com/conn-castle/pypippark/internal/messages"
	"github.com/conn-castle/pypippark/internal/proc"
	"github.com/conn-castle/pypippark/internal/venv"
)

// ErrNoPackages is returned when a package verb is called without package names.
var ErrNoPackages = errors.New(messages.DispatchNoPackages)

// Options configures a Manager.
type Options struct {
	// Env is the bootstrapped environment.
	Env venv.Env
	// Environ is the inherited process environment the overlay is built from.
	Environ []string
	// Status receives status lines; nil discards them.
	Status io.Writer
	Prefix string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Manager runs pip and python inside one environment.
type Manager struct {
	runner  proc.Runner
	opts    Options
	success *color.Color
}

// UpdateResult reports what Update upgraded.
type UpdateResult struct {
	Outdated []string
}

// NewManager returns a Manager that spawns children through runner.
func NewManager(runner proc.Runner, opts Options) *Manager {
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
	return &Manager{runner: runner, opts: opts, success: color.New(color.FgGreen)}
}

// Install installs pkgs with pip.
func (m *Manager) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return ErrNoPackages
	}
	if err := m.run(ctx, m.pip(append([]string{"install"}, pkgs...)...)); err != nil {
		return fmt.Errorf(messages.PipInstallFailedFmt, err)
	}
	m.done(messages.PipInstalledFmt, strings.Join(pkgs, ", "), m.opts.Env.Root)
	m.status(messages.PipDeactivated)
	return nil
}

// List prints the installed packages.
func (m *Manager) List(ctx context.Context) error {
	if err := m.run(ctx, m.pip("list")); err != nil {
		return fmt.Errorf(messages.PipListFailedFmt, err)
	}
	m.status(messages.PipListedFmt, m.opts.Env.Root)
	return nil
}

// Remove uninstalls pkgs without prompting.
func (m *Manager) Remove(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return ErrNoPackages
	}
	if err := m.run(ctx, m.pip(append([]string{"uninstall", "-y"}, pkgs...)...)); err != nil {
		return fmt.Errorf(messages.PipRemoveFailedFmt, err)
	}
	m.done(messages.PipRemovedFmt, strings.Join(pkgs, ", "), m.opts.Env.Root)
	return nil
}

// Update upgrades pip itself, then every outdated package in a single pip call.
func (m *Manager) Update(ctx context.Context) (UpdateResult, error) {
	m.status(messages.PipUpgradingSelf)
	if err := m.run(ctx, m.python("-m", "pip", "install", "--upgrade", "pip")); err != nil {
		return UpdateResult{}, fmt.Errorf(messages.PipSelfUpgradeFmt, err)
	}

	m.status(messages.PipCheckingOutdated)
	query := m.pip("list", "--outdated", "--format=json")
	m.opts.Logger.Debug(messages.LogRunningCommand, "cmd", query.String())
	out, err := m.runner.Output(ctx, query)
	if err != nil {
		return UpdateResult{}, fmt.Errorf(messages.PipOutdatedFailedFmt, err)
	}
	names, err := ParseOutdated(out)
	if err != nil {
		return UpdateResult{}, fmt.Errorf(messages.PipParseOutdatedFmt, err)
	}
	if len(names) == 0 {
		m.done(messages.PipUpToDate)
		return UpdateResult{}, nil
	}

	m.status(messages.PipUpgradingFmt, len(names), strings.Join(names, ", "))
	if err := m.run(ctx, m.pip(append([]string{"install", "--upgrade"}, names...)...)); err != nil {
		return UpdateResult{}, fmt.Errorf(messages.PipUpgradeFailedFmt, err)
	}
	m.done(messages.PipUpdatedFmt, strings.Join(names, ", "))
	return UpdateResult{Outdated: names}, nil
}

// RunScript runs script with the environment's interpreter.
// The caller validates that script exists.
func (m *Manager) RunScript(ctx context.Context, script string, args []string) error {
	if err := m.run(ctx, m.python(append([]string{script}, args...)...)); err != nil {
		return fmt.Errorf(messages.PipScriptFailedFmt, script, err)
	}
	m.status(messages.PipScriptFinishedFmt, script)
	return nil
}

func (m *Manager) pip(args ...string) proc.Command {
	return m.command(m.opts.Env.Pip, args)
}

func (m *Manager) python(args ...string) proc.Command {
	return m.command(m.opts.Env.Python, args)
}

func (m *Manager) command(path string, args []string) proc.Command {
	return proc.Command{
		Path:   path,
		Args:   args,
		Env:    venv.Activate(m.opts.Env.Root, m.opts.Environ),
		Stdin:  m.opts.Stdin,
		Stdout: m.opts.Stdout,
		Stderr: m.opts.Stderr,
	}
}

func (m *Manager) run(ctx context.Context, cmd proc.Command) error {
	m.status(messages.PipRunningFmt, cmd.String())
	m.opts.Logger.Debug(messages.LogRunningCommand, "cmd", cmd.Path, "args", cmd.Args)
	return m.runner.Run(ctx, cmd)
}

func (m *Manager) status(format string, args ...any) {
	_, _ = fmt.Fprintf(m.opts.Status, m.opts.Prefix+format+"\n", args...)
}

func (m *Manager) done(format string, args ...any) {
	_, _ = m.success.Fprintf(m.opts.Status, format+"\n", args...)
}
