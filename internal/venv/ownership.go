package venv

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/conn-castle/pypippark/internal/messages"
)

// EnvSudoUID and EnvSudoGID identify the user who invoked sudo.
const (
	EnvSudoUID = "SUDO_UID"
	EnvSudoGID = "SUDO_GID"
)

// Owner is the numeric identity ownership is repaired to.
type Owner struct {
	UID int
	GID int
}

// InvokingOwner returns the non-elevated identity behind the current process:
// SUDO_UID/SUDO_GID when set, otherwise the real uid and gid.
func InvokingOwner(sys System) (Owner, error) {
	owner := Owner{UID: sys.Getuid(), GID: sys.Getgid()}
	if raw := strings.TrimSpace(sys.Getenv(EnvSudoUID)); raw != "" {
		uid, err := strconv.Atoi(raw)
		if err != nil {
			return Owner{}, fmt.Errorf(messages.VenvInvalidSudoIDFmt, EnvSudoUID, raw, err)
		}
		owner.UID = uid
	}
	if raw := strings.TrimSpace(sys.Getenv(EnvSudoGID)); raw != "" {
		gid, err := strconv.Atoi(raw)
		if err != nil {
			return Owner{}, fmt.Errorf(messages.VenvInvalidSudoIDFmt, EnvSudoGID, raw, err)
		}
		owner.GID = gid
	}
	return owner, nil
}

// repairOwnership hands the whole tree at root to the invoking user.
// Callers must have checked that the process runs with euid 0. There is no rollback.
func (b *Bootstrapper) repairOwnership(root string) error {
	owner, err := InvokingOwner(b.sys)
	if err != nil {
		return err
	}
	b.opts.Logger.Warn(messages.VenvRepairOwnershipLog, "path", root, "uid", owner.UID, "gid", owner.GID)
	b.status(messages.VenvRepairOwnershipFmt, root, owner.UID, owner.GID)

	err = b.sys.WalkDir(root, func(path string, _ fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		return b.sys.Lchown(path, owner.UID, owner.GID)
	})
	if err != nil {
		return fmt.Errorf(messages.VenvRepairFailedFmt, root, err)
	}
	return nil
}
