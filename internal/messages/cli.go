package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse         = "pypippark"
	RootShort       = "Manage a single Python virtual environment"
	RootLong        = "pypippark keeps one Python virtual environment at a well-known location and installs,\nlists, removes and updates packages inside it. Scripts and interactive shells can be\nstarted with the environment activated."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig   = "Path to the config file (default $XDG_CONFIG_HOME/pypippark/config.toml)"
	FlagVenv     = "Virtual environment root (implies --location custom)"
	FlagLocation = "Where the environment lives: system, home, executable, cwd or custom"
	FlagPython   = "Interpreter used to create the environment"
	FlagQuiet    = "Suppress status lines"
	FlagVerbose  = "Enable debug logging on stderr"
	FlagNoColor  = "Disable coloured output"

	InstallUse   = "install <package>..."
	InstallShort = "Install packages into the environment"

	ListUse   = "list"
	ListShort = "List packages installed in the environment"

	RemoveUse   = "remove <package>..."
	RemoveShort = "Remove packages from the environment"

	UpdateUse   = "update"
	UpdateShort = "Upgrade pip and every outdated package"

	RunUse   = "run <script> [args...]"
	RunShort = "Run a Python script inside the environment"

	ShellUse   = "shell"
	ShellShort = "Start an interactive shell with the environment activated"

	PathUse         = "path"
	PathShort       = "Add the environment's bin directory to PATH in your shell startup file"
	PathFlagDryRun  = "Show the change without writing it"
	PathFlagYes     = "Do not ask for confirmation"
	PathConfirmFmt  = "Append %q to %s?"
	PathDeclined    = "Shell startup file left unchanged."
	PathNoChangeFmt = "%s already puts %s on PATH\n"
	PathUpdatedFmt  = "Updated %s; open a new shell to pick up the change\n"

	// PromptRequiresTerminal is returned when a confirmation is needed without a TTY.
	PromptRequiresTerminal = "confirmation requires an interactive terminal; re-run with --yes"
	// PromptAborted is returned when the user dismisses a prompt with Esc or Ctrl+C.
	PromptAborted = "prompt aborted"
)
