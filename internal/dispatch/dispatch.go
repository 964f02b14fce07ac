// Package dispatch runs the user-facing verbs against the managed environment.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/pypippark/internal/config"
	"github.com/conn-castle/pypippark/internal/doctor"
	"github.com/conn-castle/pypippark/internal/logging"
	"github.com/conn-castle/pypippark/internal/messages"
	"github.com/conn-castle/pypippark/internal/pip"
	"github.com/conn-castle/pypippark/internal/proc"
	"github.com/conn-castle/pypippark/internal/prompt"
	"github.com/conn-castle/pypippark/internal/shell"
	"github.com/conn-castle/pypippark/internal/shellrc"
	"github.com/conn-castle/pypippark/internal/venv"
)

// EnvShell names the variable holding the user's login shell.
const EnvShell = "SHELL"

var (
	// ErrNoPackages is returned when install or remove gets no package names.
	ErrNoPackages = pip.ErrNoPackages
	// ErrScriptNotFound is returned when run names a path that is not a regular file.
	ErrScriptNotFound = errors.New(messages.DispatchScriptNotFound)
)

// Bootstrapper ensures the environment exists before a verb uses it.
type Bootstrapper interface {
	Ensure(ctx context.Context) (venv.Env, error)
}

// Options wires a Dispatcher to the host. Zero values select the real implementations.
type Options struct {
	// Root is the resolved environment directory.
	Root string

	System       System
	Bootstrapper Bootstrapper
	Runner       proc.Runner
	RC           shellrc.System
	Doctor       doctor.System
	Confirmer    prompt.Confirmer

	// Status receives user-facing status lines; nil discards them.
	Status io.Writer
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Dispatcher maps verbs onto bootstrap, pip, and the shell.
type Dispatcher struct {
	cfg  *config.Config
	opts Options
}

// New returns a Dispatcher for cfg. cfg must already be validated.
func New(cfg *config.Config, opts Options) (*Dispatcher, error) {
	if cfg == nil {
		return nil, errors.New(messages.DispatchConfigRequired)
	}
	if opts.Root == "" {
		return nil, errors.New(messages.VenvRootRequired)
	}
	if opts.System == nil {
		opts.System = RealSystem{}
	}
	if opts.Runner == nil {
		opts.Runner = proc.Exec{}
	}
	if opts.RC == nil {
		opts.RC = shellrc.RealSystem{}
	}
	if opts.Doctor == nil {
		opts.Doctor = doctor.RealSystem{}
	}
	if opts.Confirmer == nil {
		opts.Confirmer = prompt.NewHuhUI()
	}
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
	if opts.Bootstrapper == nil {
		opts.Bootstrapper = venv.New(venv.RealSystem{}, venv.Options{
			Root:   opts.Root,
			Python: cfg.Venv.Python,
			Status: opts.Status,
			Prefix: cfg.Output.Prefix,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
			Logger: opts.Logger,
		})
	}
	return &Dispatcher{cfg: cfg, opts: opts}, nil
}

// Install installs pkgs into the environment.
func (d *Dispatcher) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return ErrNoPackages
	}
	m, err := d.manager(ctx)
	if err != nil {
		return err
	}
	return m.Install(ctx, pkgs)
}

// List prints the installed packages.
func (d *Dispatcher) List(ctx context.Context) error {
	m, err := d.manager(ctx)
	if err != nil {
		return err
	}
	return m.List(ctx)
}

// Remove uninstalls pkgs.
func (d *Dispatcher) Remove(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return ErrNoPackages
	}
	m, err := d.manager(ctx)
	if err != nil {
		return err
	}
	return m.Remove(ctx, pkgs)
}

// Update upgrades pip and then every outdated package.
func (d *Dispatcher) Update(ctx context.Context) (pip.UpdateResult, error) {
	m, err := d.manager(ctx)
	if err != nil {
		return pip.UpdateResult{}, err
	}
	return m.Update(ctx)
}

// Run executes script with the environment's interpreter. The script is checked
// before anything is created or spawned.
func (d *Dispatcher) Run(ctx context.Context, script string, args []string) error {
	info, err := d.opts.System.Stat(script)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.DispatchScriptNotFoundFmt, ErrScriptNotFound, script)
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf(messages.DispatchScriptNotFileFmt, ErrScriptNotFound, script)
	}
	m, err := d.manager(ctx)
	if err != nil {
		return err
	}
	return m.RunScript(ctx, script, args)
}

// Shell starts an interactive shell inside the environment and returns when it exits.
func (d *Dispatcher) Shell(ctx context.Context) error {
	env, err := d.ensure(ctx)
	if err != nil {
		return err
	}
	program := shell.Resolve(d.cfg.Shell.Program, d.opts.System.Getenv(EnvShell))
	d.status(messages.ShellStartingFmt, program)
	d.opts.Logger.Debug(messages.LogRunningCommand, "cmd", program)
	err = shell.Launch(ctx, d.opts.Runner, shell.Session{
		Program: program,
		Env:     venv.Activate(env.Root, d.opts.System.Environ()),
		Stdin:   d.opts.Stdin,
		Stdout:  d.opts.Stdout,
		Stderr:  d.opts.Stderr,
	})
	if err != nil {
		return fmt.Errorf(messages.ShellFailedFmt, program, err)
	}
	d.status(messages.ShellExitedFmt, program)
	return nil
}

// Doctor runs the health checks without creating or modifying anything.
func (d *Dispatcher) Doctor() []doctor.Result {
	env := venv.Layout(d.opts.Root)
	in := doctor.Inputs{
		Python:  d.cfg.Venv.Python,
		Env:     env,
		PathEnv: d.opts.System.Getenv(venv.EnvPath),
	}
	if target, line, err := d.rcTarget(env.BinDir); err == nil {
		in.RCTarget = target
		in.RCLine = line
	} else {
		d.opts.Logger.Debug(messages.DispatchRCPatchFailed, "err", err)
	}
	return doctor.Run(d.opts.Doctor, in)
}

// Root returns the environment directory the Dispatcher manages.
func (d *Dispatcher) Root() string {
	return d.opts.Root
}

// manager bootstraps the environment and returns a pip manager bound to it.
func (d *Dispatcher) manager(ctx context.Context) (*pip.Manager, error) {
	env, err := d.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return pip.NewManager(d.opts.Runner, pip.Options{
		Env:     env,
		Environ: d.opts.System.Environ(),
		Status:  d.opts.Status,
		Prefix:  d.cfg.Output.Prefix,
		Stdin:   d.opts.Stdin,
		Stdout:  d.opts.Stdout,
		Stderr:  d.opts.Stderr,
		Logger:  d.opts.Logger,
	}), nil
}

// ensure bootstraps the environment and, when configured, patches the shell
// startup file. Patch failures are logged and never fail the verb.
func (d *Dispatcher) ensure(ctx context.Context) (venv.Env, error) {
	env, err := d.opts.Bootstrapper.Ensure(ctx)
	if err != nil {
		return venv.Env{}, err
	}
	if d.cfg.Shell.PatchRC {
		if err := d.patchRC(env.BinDir); err != nil {
			d.opts.Logger.Warn(messages.DispatchRCPatchFailed, "err", err)
		}
	}
	return env, nil
}

func (d *Dispatcher) patchRC(binDir string) error {
	target, line, err := d.rcTarget(binDir)
	if err != nil {
		return err
	}
	changed, err := shellrc.Ensure(d.opts.RC, target, line)
	if err != nil {
		return err
	}
	if changed {
		d.opts.Logger.Info(messages.DispatchRCPatched, "file", target.Path)
	}
	return nil
}

// rcTarget resolves the startup file and the line it should carry.
func (d *Dispatcher) rcTarget(binDir string) (shellrc.Target, string, error) {
	var target shellrc.Target
	if configured := d.cfg.Shell.RCFile; configured != "" {
		path, err := config.ExpandPath(configured)
		if err != nil {
			return shellrc.Target{}, "", fmt.Errorf(messages.DispatchRCFileFmt, configured, err)
		}
		target = shellrc.Target{Path: path, Flavor: shellrc.FlavorFor(path)}
	} else {
		home, err := d.opts.System.HomeDir()
		if err != nil {
			return shellrc.Target{}, "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
		}
		target, err = shellrc.Detect(d.opts.System.Getenv(EnvShell), home)
		if err != nil {
			return shellrc.Target{}, "", err
		}
	}
	line, err := shellrc.Line(target.Flavor, binDir)
	if err != nil {
		return shellrc.Target{}, "", err
	}
	return target, line, nil
}

func (d *Dispatcher) status(format string, args ...any) {
	_, _ = fmt.Fprintf(d.opts.Status, d.cfg.Output.Prefix+format+"\n", args...)
}
