package venv

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvVirtualEnv, EnvPath, and EnvPythonHome name the variables the overlay rewrites.
const (
	EnvVirtualEnv = "VIRTUAL_ENV"
	EnvPath       = "PATH"
	EnvPythonHome = "PYTHONHOME"
)

// Activate returns a copy of base as seen from inside the environment at root.
// VIRTUAL_ENV is set to root, root/bin is prepended to PATH, and PYTHONHOME is
// dropped so the environment's interpreter resolves its own standard library.
// base is never modified.
func Activate(root string, base []string) []string {
	env := make([]string, 0, len(base)+2)
	current := ""
	for _, entry := range base {
		key, value, _ := strings.Cut(entry, "=")
		switch key {
		case EnvPath:
			current = value
		case EnvPythonHome, EnvVirtualEnv:
		default:
			env = append(env, entry)
		}
	}

	path := filepath.Join(root, binDirName)
	if current != "" {
		path += string(os.PathListSeparator) + current
	}
	return append(env, EnvVirtualEnv+"="+root, EnvPath+"="+path)
}

// Lookup returns the value bound to key in env. The last binding wins, as it
// does for os/exec.
func Lookup(env []string, key string) (string, bool) {
	for i := len(env) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(env[i], "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}
