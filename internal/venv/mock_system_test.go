package venv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// errNotMocked is returned when a testSystem method with side effects is called without a mock.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Run, LookPath and Lchown fail fast when unmocked. Stat, WalkDir, Getenv,
// Writable and the id getters fall back to RealSystem so tests can use
// t.TempDir() fixtures directly.
type testSystem struct {
	RealSystem

	StatFunc     func(name string) (os.FileInfo, error)
	WritableFunc func(path string) bool
	GeteuidFunc  func() int
	GetuidFunc   func() int
	GetgidFunc   func() int
	GetenvFunc   func(key string) string
	LookPathFunc func(file string) (string, error)
	RunFunc      func(ctx context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error
	LchownFunc   func(name string, uid int, gid int) error
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) Writable(path string) bool {
	if s.WritableFunc != nil {
		return s.WritableFunc(path)
	}
	return s.RealSystem.Writable(path)
}

func (s *testSystem) Geteuid() int {
	if s.GeteuidFunc != nil {
		return s.GeteuidFunc()
	}
	return s.RealSystem.Geteuid()
}

func (s *testSystem) Getuid() int {
	if s.GetuidFunc != nil {
		return s.GetuidFunc()
	}
	return s.RealSystem.Getuid()
}

func (s *testSystem) Getgid() int {
	if s.GetgidFunc != nil {
		return s.GetgidFunc()
	}
	return s.RealSystem.Getgid()
}

func (s *testSystem) Getenv(key string) string {
	if s.GetenvFunc != nil {
		return s.GetenvFunc(key)
	}
	return s.RealSystem.Getenv(key)
}

func (s *testSystem) LookPath(file string) (string, error) {
	if s.LookPathFunc != nil {
		return s.LookPathFunc(file)
	}
	return "", fmt.Errorf("%w: LookPath", errNotMocked)
}

func (s *testSystem) Run(ctx context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error {
	if s.RunFunc != nil {
		return s.RunFunc(ctx, name, args, stdout, stderr)
	}
	return fmt.Errorf("%w: Run", errNotMocked)
}

func (s *testSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return s.RealSystem.WalkDir(root, fn)
}

func (s *testSystem) Lchown(name string, uid int, gid int) error {
	if s.LchownFunc != nil {
		return s.LchownFunc(name, uid, gid)
	}
	return fmt.Errorf("%w: Lchown", errNotMocked)
}
