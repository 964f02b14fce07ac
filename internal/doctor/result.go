// Package doctor inspects the interpreter, the environment, and the PATH setup
// without changing anything.
package doctor

// Status is the outcome of one check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of the doctor report.
type Result struct {
	CheckName      string
	Status         Status
	Message        string
	Recommendation string
}

// Failed reports whether any result is a failure.
func Failed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}
