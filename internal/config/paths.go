package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/pypippark/internal/messages"
)

// Locator supplies the process facts a location policy depends on.
type Locator struct {
	HomeDir    func() (string, error)
	Executable func() (string, error)
	Getwd      func() (string, error)
}

// DefaultLocator resolves locations against the running process.
func DefaultLocator() Locator {
	return Locator{
		HomeDir:    homedir.Dir,
		Executable: os.Executable,
		Getwd:      os.Getwd,
	}
}

// VenvRoot returns the absolute environment root selected by c.Venv.
func (c *Config) VenvRoot(loc Locator) (string, error) {
	switch c.Venv.Location {
	case LocationSystem:
		return SystemVenvPath, nil
	case LocationHome:
		home, err := loc.HomeDir()
		if err != nil {
			return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
		}
		return filepath.Join(home, "."+appName, "venv"), nil
	case LocationExecutable:
		exe, err := loc.Executable()
		if err != nil {
			return "", fmt.Errorf(messages.ConfigResolveExecFmt, err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Join(filepath.Dir(exe), ExecutableVenvDir), nil
	case LocationCwd:
		cwd, err := loc.Getwd()
		if err != nil {
			return "", fmt.Errorf(messages.ConfigResolveCwdFmt, err)
		}
		return filepath.Join(cwd, CwdVenvDir), nil
	case LocationCustom:
		return ExpandPath(c.Venv.Path)
	default:
		return "", fmt.Errorf(messages.ConfigLocationInvalidFmt, c.Source, c.Venv.Location)
	}
}

// ExpandPath expands a leading ~ and returns an absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return abs, nil
}
