package dispatch

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// System abstracts the process state the Dispatcher reads.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Getenv(key string) string
	Environ() []string
	HomeDir() (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns file info for name.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// HomeDir returns the current user's home directory.
func (RealSystem) HomeDir() (string, error) {
	return homedir.Dir()
}
