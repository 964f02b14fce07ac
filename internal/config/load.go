package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pypippark/internal/messages"
)

// ErrConfigValidation wraps validation failures so callers can tell them apart
// from TOML syntax and filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

// EnvConfigPath and EnvVenv name the environment variables read by the config layer.
const (
	EnvConfigPath = messages.ConfigEnvPath
	EnvVenv       = messages.ConfigEnvVenv
)

// Overrides carries command-line values that take precedence over the environment and the file.
type Overrides struct {
	Venv     string
	Location string
	Python   string
}

// DefaultPath returns the config file location: $PYPIPPARK_CONFIG, else
// $XDG_CONFIG_HOME/pypippark/config.toml, else ~/.config/pypippark/config.toml.
// The boolean reports whether the path was named explicitly by the environment.
func DefaultPath(getenv func(string) string) (string, bool, error) {
	if explicit := strings.TrimSpace(getenv(EnvConfigPath)); explicit != "" {
		path, err := ExpandPath(explicit)
		return path, true, err
	}
	if xdg := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, appName, "config.toml"), false, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", false, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), false, nil
}

// Load reads the config at path. A missing file yields defaults unless explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML data over the defaults and validates the result.
// source is used in error messages and recorded as Config.Source.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	cfg.Source = source
	return cfg, nil
}

// decodeStrict re-decodes the TOML data rejecting keys the schema does not know.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// ApplyOverrides layers PYPIPPARK_VENV and then the command-line overrides onto c
// and re-validates. A venv path from either source forces the custom location.
func (c *Config) ApplyOverrides(o Overrides, getenv func(string) string) error {
	if venv := strings.TrimSpace(getenv(EnvVenv)); venv != "" {
		c.Venv.Location = LocationCustom
		c.Venv.Path = venv
	}
	if location := strings.TrimSpace(o.Location); location != "" {
		c.Venv.Location = location
	}
	if venv := strings.TrimSpace(o.Venv); venv != "" {
		c.Venv.Location = LocationCustom
		c.Venv.Path = venv
	}
	if python := strings.TrimSpace(o.Python); python != "" {
		c.Venv.Python = python
	}
	source := c.Source
	if source == "" {
		source = "config"
	}
	if err := c.Validate(source); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return nil
}
