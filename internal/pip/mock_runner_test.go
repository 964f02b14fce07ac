package pip

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/pypippark/internal/proc"
)

var errNotMocked = errors.New("testRunner: method not mocked")

// testRunner records every command and delegates to the mock functions.
// Both methods fail fast when unmocked; tests never spawn real pip.
type testRunner struct {
	RunFunc    func(ctx context.Context, cmd proc.Command) error
	OutputFunc func(ctx context.Context, cmd proc.Command) ([]byte, error)

	calls []proc.Command
}

func (r *testRunner) Run(ctx context.Context, cmd proc.Command) error {
	r.calls = append(r.calls, cmd)
	if r.RunFunc != nil {
		return r.RunFunc(ctx, cmd)
	}
	return fmt.Errorf("%w: Run", errNotMocked)
}

func (r *testRunner) Output(ctx context.Context, cmd proc.Command) ([]byte, error) {
	r.calls = append(r.calls, cmd)
	if r.OutputFunc != nil {
		return r.OutputFunc(ctx, cmd)
	}
	return nil, fmt.Errorf("%w: Output", errNotMocked)
}

func argv(cmds []proc.Command) [][]string {
	out := make([][]string, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, append([]string{cmd.Path}, cmd.Args...))
	}
	return out
}
