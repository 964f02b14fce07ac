// Package fsutil holds small filesystem helpers.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/pypippark/internal/messages"
)

var (
	createTempFn = os.CreateTemp
	renameFn     = os.Rename
)

// WriteFileAtomic writes data to a temp file in the target directory and renames it
// over path, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := createTempFn(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, dir, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf(messages.FsutilWriteTempFmt, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf(messages.FsutilSyncTempFmt, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilCloseTempFmt, tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilChmodTempFmt, tmpName, err)
	}
	if err := renameFn(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf(messages.FsutilRenameFmt, tmpName, path, err)
	}
	return nil
}
