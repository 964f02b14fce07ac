package shellrc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSystem struct {
	RealSystem
	ReadFileFunc        func(name string) ([]byte, error)
	WriteFileAtomicFunc func(filename string, data []byte, perm os.FileMode) error
}

func (s testSystem) ReadFile(name string) ([]byte, error) {
	if s.ReadFileFunc != nil {
		return s.ReadFileFunc(name)
	}
	return s.RealSystem.ReadFile(name)
}

func (s testSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if s.WriteFileAtomicFunc != nil {
		return s.WriteFileAtomicFunc(filename, data, perm)
	}
	return s.RealSystem.WriteFileAtomic(filename, data, perm)
}

func TestDetect(t *testing.T) {
	home := "/home/ada"
	tests := []struct {
		shell  string
		want   string
		flavor Flavor
	}{
		{shell: "/bin/zsh", want: "/home/ada/.zshrc"},
		{shell: "/usr/bin/bash", want: "/home/ada/.bashrc"},
		{shell: "/usr/local/bin/fish", want: "/home/ada/.config/fish/config.fish", flavor: FlavorFish},
		{shell: "/bin/dash", want: "/home/ada/.profile"},
		{shell: "", want: "/home/ada/.profile"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			target, err := Detect(tt.shell, home)
			require.NoError(t, err)
			assert.Equal(t, tt.want, target.Path)
			assert.Equal(t, tt.flavor, target.Flavor)
		})
	}
}

func TestDetectRequiresHome(t *testing.T) {
	_, err := Detect("/bin/zsh", "")
	require.Error(t, err)
}

func TestFlavorFor(t *testing.T) {
	assert.Equal(t, FlavorFish, FlavorFor("/x/config.fish"))
	assert.Equal(t, FlavorPOSIX, FlavorFor("/x/.zshrc"))
}

func TestLine(t *testing.T) {
	line, err := Line(FlavorPOSIX, "/opt/venv/bin")
	require.NoError(t, err)
	assert.Equal(t, `export PATH="/opt/venv/bin:$PATH"`, line)

	line, err = Line(FlavorFish, "/opt/venv/bin")
	require.NoError(t, err)
	assert.Equal(t, "fish_add_path -m /opt/venv/bin", line)

	_, err = Line(FlavorPOSIX, "")
	require.Error(t, err)
}

func TestEnsureTwiceWritesOnce(t *testing.T) {
	target := Target{Path: filepath.Join(t.TempDir(), ".bashrc")}
	require.NoError(t, os.WriteFile(target.Path, []byte("alias ll='ls -l'"), 0o644))
	line := `export PATH="/opt/venv/bin:$PATH"`

	changed, err := Ensure(RealSystem{}, target, line)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = Ensure(RealSystem{}, target, line)
	require.NoError(t, err)
	assert.False(t, changed)

	data, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), line))
	assert.Equal(t, "alias ll='ls -l'\n"+line+"\n", string(data))
}

func TestEnsureWritesThroughSymlinkAndKeepsMode(t *testing.T) {
	home := t.TempDir()
	dotfiles := filepath.Join(t.TempDir(), "dotfiles", "bashrc")
	require.NoError(t, os.MkdirAll(filepath.Dir(dotfiles), 0o755))
	require.NoError(t, os.WriteFile(dotfiles, []byte("alias ll='ls -l'\n"), 0o600))
	link := filepath.Join(home, ".bashrc")
	require.NoError(t, os.Symlink(dotfiles, link))
	line := `export PATH="/opt/venv/bin:$PATH"`

	changed, err := Ensure(RealSystem{}, Target{Path: link}, line)
	require.NoError(t, err)
	assert.True(t, changed)

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink)

	data, err := os.ReadFile(dotfiles)
	require.NoError(t, err)
	assert.Equal(t, "alias ll='ls -l'\n"+line+"\n", string(data))

	info, err = os.Stat(dotfiles)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnsureNewFileGetsDefaultMode(t *testing.T) {
	var gotPerm os.FileMode
	sys := testSystem{
		WriteFileAtomicFunc: func(_ string, _ []byte, perm os.FileMode) error {
			gotPerm = perm
			return nil
		},
	}
	_, err := Ensure(sys, Target{Path: filepath.Join(t.TempDir(), ".profile")}, "line")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(rcFilePerm), gotPerm)
}

func TestEnsureCreatesMissingFileAndDir(t *testing.T) {
	target := Target{Path: filepath.Join(t.TempDir(), ".config", "fish", "config.fish"), Flavor: FlavorFish}

	changed, err := Ensure(RealSystem{}, target, "fish_add_path -m /opt/venv/bin")
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, "fish_add_path -m /opt/venv/bin\n", string(data))

	ok, err := Contains(RealSystem{}, target, "fish_add_path -m /opt/venv/bin")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnsureReadError(t *testing.T) {
	sys := testSystem{ReadFileFunc: func(string) ([]byte, error) { return nil, errors.New("boom") }}
	_, err := Ensure(sys, Target{Path: "/x/.zshrc"}, "line")
	require.ErrorContains(t, err, "boom")
}

func TestEnsureWriteError(t *testing.T) {
	sys := testSystem{
		WriteFileAtomicFunc: func(string, []byte, os.FileMode) error { return errors.New("read-only") },
	}
	target := Target{Path: filepath.Join(t.TempDir(), ".zshrc")}
	_, err := Ensure(sys, target, "line")
	require.ErrorContains(t, err, "read-only")
}

func TestPreview(t *testing.T) {
	target := Target{Path: filepath.Join(t.TempDir(), ".zshrc")}
	require.NoError(t, os.WriteFile(target.Path, []byte("setopt autocd\n"), 0o644))
	line := `export PATH="/opt/venv/bin:$PATH"`

	diff, pending, err := Preview(RealSystem{}, target, line)
	require.NoError(t, err)
	assert.True(t, pending)
	assert.Contains(t, diff, "(current)")
	assert.Contains(t, diff, "(proposed)")
	assert.Contains(t, diff, "+"+line)

	data, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, "setopt autocd\n", string(data))

	_, err = Ensure(RealSystem{}, target, line)
	require.NoError(t, err)
	diff, pending, err = Preview(RealSystem{}, target, line)
	require.NoError(t, err)
	assert.False(t, pending)
	assert.Empty(t, diff)
}
