package shellrc

import (
	"os"
	"path/filepath"

	"github.com/conn-castle/pypippark/internal/fsutil"
)

// System is the minimal filesystem interface needed to patch rc files.
type System interface {
	ReadFile(name string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	EvalSymlinks(path string) (string, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the host filesystem.
type RealSystem struct{}

// ReadFile reads the named file.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file info for name, following symlinks.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// EvalSymlinks returns path with every symlink resolved.
func (RealSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to path atomically.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}
