package messages

// Package-manager and interpreter invocation messages.
const (
	PipRunningFmt        = "▶️ %s"
	PipInstalledFmt      = "✅ Installed %s into %s"
	PipRemovedFmt        = "✅ Removed %s from %s"
	PipListedFmt         = "🔚 Listed packages in %s"
	PipDeactivated       = "🔚 Deactivated venv (returned to system environment)"
	PipUpgradingSelf     = "Upgrading pip"
	PipCheckingOutdated  = "Checking for outdated packages"
	PipUpToDate          = "✅ All packages are up to date"
	PipUpgradingFmt      = "Upgrading %d package(s): %s"
	PipUpdatedFmt        = "✅ Updated %s"
	PipScriptFinishedFmt = "🔚 Finished running %q"

	PipInstallFailedFmt  = "pip install failed: %w"
	PipListFailedFmt     = "pip list failed: %w"
	PipRemoveFailedFmt   = "pip uninstall failed: %w"
	PipSelfUpgradeFmt    = "upgrade pip failed: %w"
	PipOutdatedFailedFmt = "list outdated packages failed: %w"
	PipUpgradeFailedFmt  = "upgrade packages failed: %w"
	PipParseOutdatedFmt  = "parse outdated packages: %w"
	PipScriptFailedFmt   = "script %s failed: %w"

	DispatchNoPackages        = "no packages specified"
	DispatchScriptNotFound    = "script not found"
	DispatchScriptNotFoundFmt = "%w: %s"
	DispatchScriptNotFileFmt  = "%w: %s is not a regular file"
	DispatchConfigRequired    = "dispatcher config is required"
	DispatchRCPatchFailed     = "could not update shell startup file; continuing"
	DispatchRCPatched         = "added the virtualenv to the shell startup file"
	DispatchRCFileFmt         = "resolve shell startup file %s: %w"

	ShellStartingFmt = "Starting %s with the virtualenv activated (exit to return)"
	ShellExitedFmt   = "🔚 Left %s"
	ShellFailedFmt   = "shell %s failed: %w"
)
