package messages

// Virtual environment bootstrap messages.
const (
	VenvRootRequired       = "virtual environment root is required"
	VenvResolveRootFmt     = "resolve %s: %w"
	VenvRootNotDirFmt      = "%s exists but is not a directory; move or remove it and retry"
	VenvStatRootFmt        = "check %s: %w"
	VenvPythonNotFoundFmt  = "python interpreter %q not found on PATH: %w"
	VenvCreatingFmt        = "Creating virtualenv at %q"
	VenvCreateFailedFmt    = "create virtualenv at %s: %w"
	VenvNotWritable        = "virtual environment is not writable"
	VenvNotWritableFmt     = "%w: permission denied on %q; fix its permissions or run once with sudo so ownership can be repaired"
	VenvRepairOwnershipFmt = "Adjusting ownership of %q -> %d:%d"
	VenvRepairOwnershipLog = "repairing virtualenv ownership; this cannot be undone"
	VenvRepairFailedFmt    = "repair ownership of %s: %w"
	VenvInvalidSudoIDFmt   = "invalid %s %q: %w"
	VenvReady              = "virtualenv ready"

	VenvOpenLockFmt    = "open lock %s: %w"
	VenvLockFmt        = "lock %s: %w"
	VenvLockTimeoutFmt = "timed out waiting for lock %s after %s"
)

// LogRunningCommand is the debug log message emitted before spawning a child process.
const LogRunningCommand = "running command"
