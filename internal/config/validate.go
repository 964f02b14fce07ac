package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/pypippark/internal/messages"
)

var validLocations = map[string]struct{}{
	LocationSystem:     {},
	LocationHome:       {},
	LocationExecutable: {},
	LocationCwd:        {},
	LocationCustom:     {},
}

var validColors = map[string]struct{}{
	ColorAuto:   {},
	ColorAlways: {},
	ColorNever:  {},
}

// Validate ensures the config is complete and consistent.
// source names the config origin in error messages.
func (c *Config) Validate(source string) error {
	if _, ok := validLocations[c.Venv.Location]; !ok {
		return fmt.Errorf(messages.ConfigLocationInvalidFmt, source, c.Venv.Location)
	}
	if c.Venv.Location == LocationCustom && strings.TrimSpace(c.Venv.Path) == "" {
		return fmt.Errorf(messages.ConfigCustomPathMissingFmt, source)
	}
	if strings.TrimSpace(c.Venv.Python) == "" {
		return fmt.Errorf(messages.ConfigPythonRequiredFmt, source)
	}
	if _, ok := validColors[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigColorInvalidFmt, source, c.Output.Color)
	}
	return nil
}
