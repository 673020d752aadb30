package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// testConfigPath, when set, replaces ConfigPath() as the file Save and
// LoadFrom("") use during tests, so they never touch the real user config
// file. ConfigPath itself is unaffected.
var testConfigPath string

// SetTestConfigPath redirects Save (and the Save* helpers below) to path,
// for use in tests only.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }

func savePath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	return ConfigPath()
}

// Save writes cfg to the config file, merging it over whatever unrecognized
// top-level keys (e.g. from a newer version of gitkeeper) the file already
// has, rather than clobbering them.
func Save(cfg *Config) error {
	path := savePath()
	if path == "" {
		return os.ErrNotExist
	}

	merged := map[string]json.RawMessage{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &merged)
	}

	encoded, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	var managed map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &managed); err != nil {
		return err
	}
	for k, v := range managed {
		merged[k] = v
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveTheme sets the theme name in config, clears any theme overrides, and
// saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = nil
	return Save(cfg)
}

// SaveThemeWithOverrides saves a theme name and full overrides map to config.
func SaveThemeWithOverrides(themeName string, overrides map[string]interface{}) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = overrides
	return Save(cfg)
}
