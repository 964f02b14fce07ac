package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/pypippark/internal/proc"
	"github.com/conn-castle/pypippark/internal/venv"
)

var errNotMocked = errors.New("not mocked")

// testSystem falls back to RealSystem for Stat and Environ; HomeDir and Getenv
// must be mocked so tests never read the developer's home or shell.
type testSystem struct {
	RealSystem

	StatFunc    func(name string) (os.FileInfo, error)
	GetenvFunc  func(key string) string
	EnvironFunc func() []string
	HomeDirFunc func() (string, error)
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Getenv(key string) string {
	if s.GetenvFunc != nil {
		return s.GetenvFunc(key)
	}
	return ""
}

func (s *testSystem) Environ() []string {
	if s.EnvironFunc != nil {
		return s.EnvironFunc()
	}
	return s.RealSystem.Environ()
}

func (s *testSystem) HomeDir() (string, error) {
	if s.HomeDirFunc != nil {
		return s.HomeDirFunc()
	}
	return "", fmt.Errorf("%w: HomeDir", errNotMocked)
}

// testBootstrapper returns a fixed environment and counts calls.
type testBootstrapper struct {
	env   venv.Env
	err   error
	calls int
}

func (b *testBootstrapper) Ensure(context.Context) (venv.Env, error) {
	b.calls++
	return b.env, b.err
}

// testRunner records commands; unmocked methods fail fast.
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

// testConfirmer answers with answer or err and records the question.
type testConfirmer struct {
	answer bool
	err    error
	asked  []string
}

func (c *testConfirmer) Confirm(title string, value *bool) error {
	c.asked = append(c.asked, title)
	if c.err != nil {
		return c.err
	}
	*value = c.answer
	return nil
}
