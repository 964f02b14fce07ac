package venv

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/pypippark/internal/proc"
)

// System abstracts the OS operations the bootstrapper needs.
// Other packages (pip, shellrc, dispatch) define their own System interfaces.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Writable(path string) bool
	Geteuid() int
	Getuid() int
	Getgid() int
	Getenv(key string) string
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	Lchown(name string, uid int, gid int) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Writable reports whether the calling process may write to path, using access(2).
func (RealSystem) Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// Geteuid returns the effective user id.
func (RealSystem) Geteuid() int {
	return os.Geteuid()
}

// Getuid returns the real user id.
func (RealSystem) Getuid() int {
	return os.Getuid()
}

// Getgid returns the real group id.
func (RealSystem) Getgid() int {
	return os.Getgid()
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// LookPath searches PATH for an executable named file.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes name with args, forwarding output, and waits for it to exit.
func (RealSystem) Run(ctx context.Context, name string, args []string, stdout io.Writer, stderr io.Writer) error {
	return proc.Exec{}.Run(ctx, proc.Command{Path: name, Args: args, Stdout: stdout, Stderr: stderr})
}

// WalkDir walks the file tree rooted at root.
func (RealSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Lchown changes the numeric uid and gid of name without following symlinks.
func (RealSystem) Lchown(name string, uid int, gid int) error {
	return os.Lchown(name, uid, gid)
}
