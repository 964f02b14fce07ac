// Package testutil writes executable stand-ins for the interpreter and pip.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteScript writes an executable /bin/sh script with body and returns its path.
// t is the active test; dir is the output directory; name is the file name.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// WriteStubWithExit writes an executable that exits with exitCode and returns its path.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// pipStub keeps installed package names one per line in $VIRTUAL_ENV/installed.txt.
// Flags are ignored, so "install --upgrade pip" records pip itself.
// $PIPSTUB_OUTDATED, when set, is printed for "list --outdated".
const pipStub = `db="$VIRTUAL_ENV/installed.txt"
echo "pip $*" >> "$VIRTUAL_ENV/calls.txt"
cmd="$1"
shift
case "$cmd" in
install)
  for p in "$@"; do
    case "$p" in
    -*) ;;
    *) grep -qx "$p" "$db" 2>/dev/null || echo "$p" >> "$db" ;;
    esac
  done
  ;;
uninstall)
  for p in "$@"; do
    case "$p" in
    -*) ;;
    *) grep -vx "$p" "$db" > "$db.tmp" 2>/dev/null; mv "$db.tmp" "$db" ;;
    esac
  done
  ;;
list)
  if [ "$1" = "--outdated" ]; then
    echo "${PIPSTUB_OUTDATED:-[]}"
    exit 0
  fi
  echo "Package    Version"
  echo "---------- -------"
  if [ -f "$db" ]; then
    while read -r name; do echo "$name 1.0"; done < "$db"
  fi
  ;;
*)
  echo "unknown pip command $cmd" >&2
  exit 2
  ;;
esac
`

// WritePythonStub writes a fake interpreter named python3 into dir and returns its path.
//
// "-m venv ROOT" creates ROOT/bin with a copy of the interpreter and a pip stub,
// "-m pip ARGS" forwards to that pip, and anything else runs its arguments with /bin/sh.
func WritePythonStub(t *testing.T, dir string) string {
	t.Helper()
	body := `if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  root="$3"
  mkdir -p "$root/bin" || exit 1
  cp "$0" "$root/bin/python3" || exit 1
  cat > "$root/bin/pip" <<'PIPSTUB'
#!/bin/sh
` + pipStub + `PIPSTUB
  chmod 755 "$root/bin/pip"
  exit 0
fi
if [ "$1" = "-m" ] && [ "$2" = "pip" ]; then
  shift 2
  exec "$(dirname "$0")/pip" "$@"
fi
exec /bin/sh "$@"
`
	return WriteScript(t, dir, "python3", body)
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
