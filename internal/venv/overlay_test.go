package venv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate(t *testing.T) {
	root := "/opt/venv"
	bin := filepath.Join(root, "bin")
	sep := string(os.PathListSeparator)

	tests := []struct {
		name     string
		base     []string
		wantPath string
	}{
		{
			name:     "prepends to existing path",
			base:     []string{"PATH=/usr/bin" + sep + "/bin", "HOME=/home/ada"},
			wantPath: bin + sep + "/usr/bin" + sep + "/bin",
		},
		{
			name:     "missing path",
			base:     []string{"HOME=/home/ada"},
			wantPath: bin,
		},
		{
			name:     "empty path",
			base:     []string{"PATH="},
			wantPath: bin,
		},
		{
			name:     "strips pythonhome",
			base:     []string{"PYTHONHOME=/usr", "PATH=/bin", "PYTHONHOME=/other"},
			wantPath: bin + sep + "/bin",
		},
		{
			name:     "replaces stale virtual env",
			base:     []string{"VIRTUAL_ENV=/old", "PATH=/old/bin" + sep + "/bin"},
			wantPath: bin + sep + "/old/bin" + sep + "/bin",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Activate(root, tt.base)

			value, ok := Lookup(env, EnvVirtualEnv)
			require.True(t, ok)
			assert.Equal(t, root, value)

			path, ok := Lookup(env, EnvPath)
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, bin, strings.Split(path, sep)[0])

			_, ok = Lookup(env, EnvPythonHome)
			assert.False(t, ok)

			pathEntries := 0
			for _, entry := range env {
				if strings.HasPrefix(entry, EnvPath+"=") {
					pathEntries++
				}
			}
			assert.Equal(t, 1, pathEntries)
		})
	}
}

func TestActivateDoesNotModifyBase(t *testing.T) {
	base := []string{"PATH=/bin", "PYTHONHOME=/usr", "VIRTUAL_ENV=/old"}
	snapshot := append([]string(nil), base...)

	_ = Activate("/opt/venv", base)
	_ = Activate("/opt/venv", base)

	assert.Equal(t, snapshot, base)
}

func TestActivateKeepsUnrelatedVariables(t *testing.T) {
	env := Activate("/opt/venv", []string{"HOME=/home/ada", "LANG=C.UTF-8", "PATH=/bin"})
	value, ok := Lookup(env, "HOME")
	require.True(t, ok)
	assert.Equal(t, "/home/ada", value)
	value, ok = Lookup(env, "LANG")
	require.True(t, ok)
	assert.Equal(t, "C.UTF-8", value)
}

func TestActivateUsesLastPathBinding(t *testing.T) {
	env := Activate("/opt/venv", []string{"PATH=/first", "PATH=/second"})
	path, ok := Lookup(env, EnvPath)
	require.True(t, ok)
	assert.Equal(t, "/opt/venv/bin"+string(os.PathListSeparator)+"/second", path)
}

func TestLookup(t *testing.T) {
	env := []string{"KEY=old", "NOVAL", "KEY=new", "EMPTY="}
	if value, ok := Lookup(env, "KEY"); !ok || value != "new" {
		t.Fatalf("expected KEY=new, got %q", value)
	}
	if value, ok := Lookup(env, "EMPTY"); !ok || value != "" {
		t.Fatalf("expected EMPTY to be set and empty, got %q, %v", value, ok)
	}
	if _, ok := Lookup(env, "NOVAL"); ok {
		t.Fatal("expected entry without '=' to be ignored")
	}
	if _, ok := Lookup(env, "MISSING"); ok {
		t.Fatal("expected missing key to return false")
	}
}
