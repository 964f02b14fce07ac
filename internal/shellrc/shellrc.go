// Package shellrc puts the environment's bin directory on the user's PATH by
// appending one line to their shell startup file.
package shellrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/pypippark/internal/messages"
)

// Flavor selects the syntax of the PATH line.
type Flavor int

const (
	// FlavorPOSIX covers sh, bash, zsh, and anything unrecognized.
	FlavorPOSIX Flavor = iota
	// FlavorFish is the fish shell.
	FlavorFish
)

const rcFilePerm = 0o644

// Target is the startup file to patch.
type Target struct {
	Path   string
	Flavor Flavor
}

// Detect chooses the startup file from the basename of shellPath.
func Detect(shellPath string, home string) (Target, error) {
	if home == "" {
		return Target{}, errors.New(messages.ShellRCHomeRequired)
	}
	switch filepath.Base(shellPath) {
	case "zsh":
		return Target{Path: filepath.Join(home, ".zshrc"), Flavor: FlavorPOSIX}, nil
	case "bash":
		return Target{Path: filepath.Join(home, ".bashrc"), Flavor: FlavorPOSIX}, nil
	case "fish":
		return Target{Path: filepath.Join(home, ".config", "fish", "config.fish"), Flavor: FlavorFish}, nil
	default:
		return Target{Path: filepath.Join(home, ".profile"), Flavor: FlavorPOSIX}, nil
	}
}

// FlavorFor guesses the flavor of an explicitly configured rc file.
func FlavorFor(path string) Flavor {
	if filepath.Ext(path) == ".fish" {
		return FlavorFish
	}
	return FlavorPOSIX
}

// Line returns the PATH line for flavor.
func Line(flavor Flavor, binDir string) (string, error) {
	if binDir == "" {
		return "", errors.New(messages.ShellRCBinDirRequired)
	}
	if flavor == FlavorFish {
		return "fish_add_path -m " + binDir, nil
	}
	return fmt.Sprintf("export PATH=\"%s:$PATH\"", binDir), nil
}

// Contains reports whether the target already holds line.
func Contains(sys System, target Target, line string) (bool, error) {
	current, err := read(sys, target.Path)
	if err != nil {
		return false, err
	}
	return strings.Contains(current, line), nil
}

// Ensure appends line to the target unless it is already present.
// It reports whether the file changed.
func Ensure(sys System, target Target, line string) (bool, error) {
	current, err := read(sys, target.Path)
	if err != nil {
		return false, err
	}
	if strings.Contains(current, line) {
		return false, nil
	}

	path, perm, err := resolve(sys, target.Path)
	if err != nil {
		return false, err
	}
	dir := filepath.Dir(path)
	if err := sys.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf(messages.ShellRCCreateDirFmt, dir, err)
	}
	if err := sys.WriteFileAtomic(path, []byte(appendLine(current, line)), perm); err != nil {
		return false, fmt.Errorf(messages.ShellRCWriteFailedFmt, path, err)
	}
	return true, nil
}

// resolve follows symlinks to the file a write must replace and returns the
// mode it already has. A missing file gets rcFilePerm.
func resolve(sys System, path string) (string, os.FileMode, error) {
	dest, err := sys.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, rcFilePerm, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf(messages.ShellRCResolveFailedFmt, path, err)
	}
	info, err := sys.Stat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return dest, rcFilePerm, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf(messages.ShellRCResolveFailedFmt, path, err)
	}
	return dest, info.Mode().Perm(), nil
}

// Preview returns a unified diff of the change Ensure would make.
// The bool is false when the line is already present and the diff is empty.
func Preview(sys System, target Target, line string) (string, bool, error) {
	current, err := read(sys, target.Path)
	if err != nil {
		return "", false, err
	}
	if strings.Contains(current, line) {
		return "", false, nil
	}
	diff := udiff.Unified(
		fmt.Sprintf(messages.ShellRCDiffCurrentFmt, target.Path),
		fmt.Sprintf(messages.ShellRCDiffProposedFmt, target.Path),
		current,
		appendLine(current, line),
	)
	return diff, true, nil
}

func read(sys System, path string) (string, error) {
	data, err := sys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf(messages.ShellRCReadFailedFmt, path, err)
	}
	return string(data), nil
}

func appendLine(current string, line string) string {
	if current != "" && !strings.HasSuffix(current, "\n") {
		current += "\n"
	}
	return current + line + "\n"
}
