package messages

// Config messages for loading and validating configuration.
const (
	ConfigEnvPath = "PYPIPPARK_CONFIG"
	ConfigEnvVenv = "PYPIPPARK_VENV"

	ConfigReadFailedFmt       = "read config %s: %w"
	ConfigInvalidFmt          = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s has unrecognized keys: %w"
	ConfigResolveHomeFmt      = "resolve home dir: %w"
	ConfigExpandPathFmt       = "expand %s: %w"
	ConfigResolveExecFmt      = "resolve executable path: %w"
	ConfigResolveCwdFmt       = "resolve working directory: %w"

	ConfigLocationInvalidFmt   = "%s: venv.location %q must be one of system, home, executable, cwd or custom"
	ConfigCustomPathMissingFmt = "%s: venv.path is required when venv.location is \"custom\""
	ConfigPythonRequiredFmt    = "%s: venv.python must not be empty"
	ConfigColorInvalidFmt      = "%s: output.color %q must be one of auto, always or never"

	ConfigLoadedMsg   = "loaded config"
	ConfigDefaultsMsg = "no config file; using defaults"
	VenvResolvedMsg   = "resolved virtualenv root"
)
