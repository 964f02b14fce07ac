// Package config loads the pypippark configuration file and resolves where the
// virtual environment lives.
package config

// Location values accepted by venv.location.
const (
	LocationSystem     = "system"
	LocationHome       = "home"
	LocationExecutable = "executable"
	LocationCwd        = "cwd"
	LocationCustom     = "custom"
)

// Color values accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	// SystemVenvPath is the system-wide environment root.
	SystemVenvPath = "/usr/local/bin/pypippark-dep"
	// ExecutableVenvDir is the environment directory name used next to the binary.
	ExecutableVenvDir = "pypippark-dep"
	// CwdVenvDir is the environment directory name used in the working directory.
	CwdVenvDir = ".venv"
	// DefaultPython is the interpreter used to create the environment.
	DefaultPython = "python3"
	// DefaultPrefix is prepended to status lines.
	DefaultPrefix = "> "

	appName = "pypippark"
)

// Config is the full pypippark configuration.
type Config struct {
	Venv   VenvConfig   `toml:"venv"`
	Shell  ShellConfig  `toml:"shell"`
	Output OutputConfig `toml:"output"`

	// Source is the file the config was read from; empty when defaults were used.
	Source string `toml:"-"`
}

// VenvConfig selects the environment root and the interpreter that creates it.
type VenvConfig struct {
	Location string `toml:"location"`
	Path     string `toml:"path"`
	Python   string `toml:"python"`
}

// ShellConfig controls shell startup file patching and the shell verb.
type ShellConfig struct {
	PatchRC bool   `toml:"patch_rc"`
	RCFile  string `toml:"rc_file"`
	Program string `toml:"program"`
}

// OutputConfig controls status line rendering.
type OutputConfig struct {
	Prefix string `toml:"prefix"`
	Color  string `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Venv: VenvConfig{
			Location: LocationSystem,
			Python:   DefaultPython,
		},
		Output: OutputConfig{
			Prefix: DefaultPrefix,
			Color:  ColorAuto,
		},
	}
}
