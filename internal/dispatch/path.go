package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/pypippark/internal/messages"
	"github.com/conn-castle/pypippark/internal/prompt"
	"github.com/conn-castle/pypippark/internal/shellrc"
	"github.com/conn-castle/pypippark/internal/venv"
)

// PathOptions controls the path verb.
type PathOptions struct {
	// DryRun prints the pending change as a unified diff and writes nothing.
	DryRun bool
	// Yes skips the confirmation prompt.
	Yes bool
}

// Path adds the environment's bin directory to the user's shell startup file.
// Unlike the automatic patch_rc behavior, failures here are returned.
func (d *Dispatcher) Path(ctx context.Context, opts PathOptions) error {
	if opts.DryRun {
		return d.previewPath()
	}

	env, err := d.opts.Bootstrapper.Ensure(ctx)
	if err != nil {
		return err
	}
	target, line, err := d.rcTarget(env.BinDir)
	if err != nil {
		return err
	}
	present, err := shellrc.Contains(d.opts.RC, target, line)
	if err != nil {
		return err
	}
	if present {
		_, _ = fmt.Fprintf(d.opts.Stdout, messages.PathNoChangeFmt, target.Path, env.BinDir)
		return nil
	}

	confirmer := d.opts.Confirmer
	if opts.Yes {
		confirmer = prompt.Static(true)
	}
	confirmed := true
	err = confirmer.Confirm(fmt.Sprintf(messages.PathConfirmFmt, line, target.Path), &confirmed)
	if errors.Is(err, prompt.ErrAborted) {
		confirmed = false
	} else if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(d.opts.Stdout, messages.PathDeclined)
		return nil
	}

	if _, err := shellrc.Ensure(d.opts.RC, target, line); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(d.opts.Stdout, messages.PathUpdatedFmt, target.Path)
	return nil
}

// previewPath prints the diff without bootstrapping the environment.
func (d *Dispatcher) previewPath() error {
	env := venv.Layout(d.opts.Root)
	target, line, err := d.rcTarget(env.BinDir)
	if err != nil {
		return err
	}
	diff, pending, err := shellrc.Preview(d.opts.RC, target, line)
	if err != nil {
		return err
	}
	if !pending {
		_, _ = fmt.Fprintf(d.opts.Stdout, messages.PathNoChangeFmt, target.Path, env.BinDir)
		return nil
	}
	_, _ = fmt.Fprint(d.opts.Stdout, diff)
	return nil
}
