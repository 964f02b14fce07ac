package messages

// Shell startup file messages.
const (
	ShellRCReadFailedFmt    = "read %s: %w"
	ShellRCResolveFailedFmt = "resolve %s: %w"
	ShellRCWriteFailedFmt   = "write %s: %w"
	ShellRCCreateDirFmt     = "create %s: %w"
	ShellRCHomeRequired     = "home directory is required to locate the shell startup file"
	ShellRCBinDirRequired   = "bin directory is required"
	ShellRCDiffCurrentFmt   = "%s (current)"
	ShellRCDiffProposedFmt  = "%s (proposed)"
)
