package doctor

import (
	"os"

	"github.com/conn-castle/pypippark/internal/shellrc"
	"github.com/conn-castle/pypippark/internal/venv"
)

// System is the view of the host the checks need. Only the read methods are
// called; the write methods come with shellrc.System.
type System interface {
	shellrc.System
	LookPath(file string) (string, error)
	Writable(path string) bool
}

// RealSystem implements System on the host.
type RealSystem struct {
	shellrc.RealSystem
	host venv.RealSystem
}

// LookPath searches PATH for file.
func (s RealSystem) LookPath(file string) (string, error) {
	return s.host.LookPath(file)
}

// Stat returns file info for name.
func (s RealSystem) Stat(name string) (os.FileInfo, error) {
	return s.host.Stat(name)
}

// Writable reports whether path is writable by the calling process.
func (s RealSystem) Writable(path string) bool {
	return s.host.Writable(path)
}
