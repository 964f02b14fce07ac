package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/pypippark/internal/messages"
	"github.com/conn-castle/pypippark/internal/shellrc"
	"github.com/conn-castle/pypippark/internal/venv"
)

// Inputs are the resolved settings the checks examine.
type Inputs struct {
	// Python is the interpreter used to create the environment.
	Python string
	Env    venv.Env
	// PathEnv is the caller's PATH.
	PathEnv  string
	RCTarget shellrc.Target
	RCLine   string
}

// Run executes every check in report order.
func Run(sys System, in Inputs) []Result {
	var results []Result
	results = append(results, CheckInterpreter(sys, in.Python))
	envResult, exists := CheckEnvironment(sys, in.Env.Root)
	results = append(results, envResult)
	results = append(results, CheckAccess(sys, in.Env.Root))
	if exists {
		results = append(results, CheckExecutables(sys, in.Env)...)
	}
	results = append(results, CheckPath(in.PathEnv, in.Env.BinDir))
	results = append(results, CheckShellRC(sys, in.RCTarget, in.RCLine))
	return results
}

// CheckInterpreter verifies that the creation interpreter resolves.
func CheckInterpreter(sys System, python string) Result {
	path, err := sys.LookPath(python)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInterpreter,
			Message:        fmt.Sprintf(messages.DoctorInterpreterMissingFmt, python),
			Recommendation: messages.DoctorInterpreterRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameInterpreter,
		Message:   fmt.Sprintf(messages.DoctorInterpreterFoundFmt, python, path),
	}
}

// CheckEnvironment verifies the root is a directory. A missing root is only a
// warning because the first bootstrapping verb creates it. The bool reports
// whether the environment exists.
func CheckEnvironment(sys System, root string) (Result, bool) {
	info, err := sys.Stat(root)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameEnvironment,
			Message:        fmt.Sprintf(messages.DoctorEnvMissingFmt, root),
			Recommendation: messages.DoctorEnvMissingRecommend,
		}, false
	}
	if !info.IsDir() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameEnvironment,
			Message:        fmt.Sprintf(messages.DoctorEnvNotDirFmt, root),
			Recommendation: messages.DoctorEnvNotDirRecommend,
		}, false
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameEnvironment,
		Message:   fmt.Sprintf(messages.DoctorEnvExistsFmt, root),
	}, true
}

// CheckAccess verifies the root, or the directory it would be created in, is writable.
func CheckAccess(sys System, root string) Result {
	target := nearestExisting(sys, root)
	if !sys.Writable(target) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameAccess,
			Message:        fmt.Sprintf(messages.DoctorAccessDeniedFmt, target),
			Recommendation: fmt.Sprintf(messages.DoctorAccessRecommendFmt, target),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameAccess,
		Message:   fmt.Sprintf(messages.DoctorAccessOKFmt, target),
	}
}

// CheckExecutables verifies the environment's python and pip exist.
func CheckExecutables(sys System, env venv.Env) []Result {
	results := make([]Result, 0, 2)
	for _, path := range []string{env.Python, env.Pip} {
		if _, err := sys.Stat(path); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameExecutables,
				Message:        fmt.Sprintf(messages.DoctorExecutableMissingFmt, path),
				Recommendation: messages.DoctorExecutableRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameExecutables,
			Message:   fmt.Sprintf(messages.DoctorExecutableFoundFmt, path),
		})
	}
	return results
}

// CheckPath verifies binDir is an entry of pathEnv.
func CheckPath(pathEnv string, binDir string) Result {
	want := filepath.Clean(binDir)
	for _, entry := range filepath.SplitList(pathEnv) {
		if entry != "" && filepath.Clean(entry) == want {
			return Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNamePath,
				Message:   fmt.Sprintf(messages.DoctorPathOKFmt, binDir),
			}
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNamePath,
		Message:        fmt.Sprintf(messages.DoctorPathMissingFmt, binDir),
		Recommendation: messages.DoctorPathRecommend,
	}
}

// CheckShellRC verifies the startup file already carries line.
func CheckShellRC(sys System, target shellrc.Target, line string) Result {
	ok, err := shellrc.Contains(sys, target, line)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameShellRC,
			Message:        fmt.Sprintf(messages.DoctorShellRCFailedFmt, target.Path, err),
			Recommendation: messages.DoctorPathRecommend,
		}
	}
	if !ok {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameShellRC,
			Message:        fmt.Sprintf(messages.DoctorShellRCMissingFmt, target.Path),
			Recommendation: messages.DoctorPathRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameShellRC,
		Message:   fmt.Sprintf(messages.DoctorShellRCOKFmt, target.Path),
	}
}

func nearestExisting(sys System, path string) string {
	current := path
	for {
		if _, err := sys.Stat(current); err == nil || !errors.Is(err, fs.ErrNotExist) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return current
		}
		current = parent
	}
}
