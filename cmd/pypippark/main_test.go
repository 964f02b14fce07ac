package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute(context.Background(), []string{"pypippark", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainHelp(t *testing.T) {
	var out bytes.Buffer
	if err := execute(context.Background(), []string{"pypippark", "--help"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, verb := range []string{"install", "list", "remove", "update", "run", "shell", "path", "doctor"} {
		if !strings.Contains(out.String(), verb) {
			t.Fatalf("expected %q in help output, got %q", verb, out.String())
		}
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute(context.Background(), []string{"pypippark", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"pypippark", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"pypippark", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"pypippark", "--version"}
	main()
}

func stubExecute(t *testing.T, err error) {
	t.Helper()
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func(context.Context, []string, io.Writer, io.Writer) error { return err }
}

func TestRunMainSilentExit(t *testing.T) {
	stubExecute(t, &SilentExitError{Code: 3})

	var out bytes.Buffer
	code := 0
	runMain([]string{"pypippark"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainForwardsChildExitCode(t *testing.T) {
	childErr := exec.Command("/bin/sh", "-c", "exit 42").Run()
	stubExecute(t, childErr)

	var out bytes.Buffer
	code := 0
	runMain([]string{"pypippark"}, &out, &out, func(c int) { code = c })
	if code != 42 {
		t.Fatalf("expected exit 42, got %d", code)
	}
}

func TestRunMainChildKilledBySignal(t *testing.T) {
	childErr := exec.Command("/bin/sh", "-c", "kill -TERM $$").Run()
	stubExecute(t, childErr)

	var out bytes.Buffer
	code := 0
	runMain([]string{"pypippark"}, &out, &out, func(c int) { code = c })
	if code != 128+15 {
		t.Fatalf("expected exit 143, got %d", code)
	}
}

func TestRunMainPlainError(t *testing.T) {
	stubExecute(t, errors.New("boom"))

	var out bytes.Buffer
	code := 0
	runMain([]string{"pypippark"}, &out, &out, func(c int) { code = c })
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	if got := versionString(); got != "1.2.3" {
		t.Fatalf("expected bare version, got %q", got)
	}

	Commit, BuildDate = "abc123", "2026-01-02"
	if got := versionString(); got != "1.2.3 (commit abc123, built 2026-01-02)" {
		t.Fatalf("unexpected version string %q", got)
	}
}
