package venv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/pypippark/internal/messages"
)

var (
	flockFn    = unix.Flock
	mkdirAllFn = os.MkdirAll
	openLockFn = func(path string) (*os.File, error) {
		return os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	}

	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
)

// lockPath returns the lock file guarding creation of root. It lives beside
// root, so its location is fixed before root exists.
func lockPath(root string) string {
	name := "." + strings.TrimPrefix(filepath.Base(root), ".") + ".lock"
	return filepath.Join(filepath.Dir(root), name)
}

// creationLock is an exclusive flock held on a root's lock file.
type creationLock struct {
	file *os.File
}

// lockCreation waits up to lockWaitTimeout for the creation lock of root.
// A caller that cannot create the lock file gets a nil lock when root already
// exists, since it could not create root either.
func lockCreation(ctx context.Context, sys System, root string) (*creationLock, error) {
	path := lockPath(root)
	if err := mkdirAllFn(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.VenvOpenLockFmt, path, err)
	}
	file, err := openLockFn(path)
	if err != nil {
		if readOnly(err) && isDir(sys, root) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.VenvOpenLockFmt, path, err)
	}

	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return &creationLock{file: file}, nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) {
			_ = file.Close()
			return nil, fmt.Errorf(messages.VenvLockFmt, path, err)
		}
		if !time.Now().Before(deadline) {
			_ = file.Close()
			return nil, fmt.Errorf(messages.VenvLockTimeoutFmt, path, lockWaitTimeout)
		}
		select {
		case <-ctx.Done():
			_ = file.Close()
			return nil, ctx.Err()
		case <-time.After(lockPollEvery):
		}
	}
}

// release drops the lock. The lock file stays so every run agrees on it.
func (l *creationLock) release() {
	if l == nil {
		return
	}
	_ = flockFn(int(l.file.Fd()), unix.LOCK_UN)
	_ = l.file.Close()
}

func readOnly(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, unix.EROFS)
}

func isDir(sys System, path string) bool {
	info, err := sys.Stat(path)
	return err == nil && info.IsDir()
}
