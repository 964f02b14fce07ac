package doctor

import (
	"errors"
	"fmt"
	"os"
)

var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System. LookPath fails fast when unmocked; the
// filesystem methods fall back to RealSystem so t.TempDir() fixtures work.
type testSystem struct {
	RealSystem

	LookPathFunc func(file string) (string, error)
	StatFunc     func(name string) (os.FileInfo, error)
	WritableFunc func(path string) bool
	ReadFileFunc func(name string) ([]byte, error)
}

func (s *testSystem) LookPath(file string) (string, error) {
	if s.LookPathFunc != nil {
		return s.LookPathFunc(file)
	}
	return "", fmt.Errorf("%w: LookPath(%s)", errNotMocked, file)
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

func (s *testSystem) ReadFile(name string) ([]byte, error) {
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}
