package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/gitkeeper"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary, kept separate from
// Config so fields added in newer versions of a saved config file don't
// clobber defaults for fields an older file never wrote.
type rawConfig struct {
	UI     rawUIConfig  `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
	Git    rawGitConfig `json:"git"`
	Debug  *bool        `json:"debug"`
}

type rawUIConfig struct {
	ShowFooter *bool       `json:"showFooter"`
	ShowClock  *bool       `json:"showClock"`
	Theme      ThemeConfig `json:"theme"`
}

type rawGitConfig struct {
	MaxGraphCommits int    `json:"maxGraphCommits"`
	DefaultRemote   string `json:"defaultRemote"`
}

// Load loads configuration from the default location
// (~/.config/gitkeeper/config.json).
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path. If path is empty, the
// default location is used. A missing file is not an error: Default() is
// returned as-is.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = savePath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ShowClock != nil {
		cfg.UI.ShowClock = *raw.UI.ShowClock
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	if raw.UI.Theme.Overrides != nil {
		for k, v := range raw.UI.Theme.Overrides {
			cfg.UI.Theme.Overrides[k] = v
		}
	}

	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	if raw.Git.MaxGraphCommits != 0 {
		cfg.Git.MaxGraphCommits = raw.Git.MaxGraphCommits
	}
	if raw.Git.DefaultRemote != "" {
		cfg.Git.DefaultRemote = raw.Git.DefaultRemote
	}

	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file, or "" if the home
// directory can't be determined.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// LogPath returns the path gitkeeper's log file is written to, or "" when
// the home directory can't be determined.
func LogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, "gitkeeper.log")
}
