package pip

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
)

// versionSeparator splits a freeze-format line into name and version.
const versionSeparator = "=="

type outdatedEntry struct {
	Name string `json:"name"`
}

// ParseOutdated extracts package names from `pip list --outdated` output.
// Both the JSON format and the freeze format (name==version per line) are
// accepted; duplicate names are dropped and order is preserved.
func ParseOutdated(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var entries []outdatedEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name)
		}
		return dedupe(names), nil
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, _, _ := strings.Cut(line, versionSeparator)
		names = append(names, strings.TrimSpace(name))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dedupe(names), nil
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
