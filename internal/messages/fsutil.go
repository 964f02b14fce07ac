package messages

// Atomic file write messages.
const (
	FsutilCreateTempFmt = "create temp file in %s: %w"
	FsutilWriteTempFmt  = "write temp file %s: %w"
	FsutilSyncTempFmt   = "sync temp file %s: %w"
	FsutilCloseTempFmt  = "close temp file %s: %w"
	FsutilChmodTempFmt  = "chmod temp file %s: %w"
	FsutilRenameFmt     = "rename %s to %s: %w"
)
