package config

// Config is the root configuration structure for gitkeeper.
type Config struct {
	UI     UIConfig     `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
	Git    GitConfig    `json:"git"`
	Debug  bool         `json:"debug,omitempty"`
}

// KeymapConfig holds key binding overrides read from the config file. No
// other package reads them: internal/tui's key bindings are fixed.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	ShowClock  bool        `json:"showClock"`
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string                 `json:"name"`
	Overrides map[string]interface{} `json:"overrides,omitempty"` // user customizations on top
}

// GitConfig configures how gitkeeper talks to the repository.
type GitConfig struct {
	// MaxGraphCommits is loaded and validated here; graph loading uses the
	// fixed appstate.MaxCommits and does not read it.
	MaxGraphCommits int `json:"maxGraphCommits"`
	// DefaultRemote is loaded and validated here; push, pull and fetch run
	// plain git commands and do not read it.
	DefaultRemote string `json:"defaultRemote"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowFooter: true,
			ShowClock:  true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]interface{}),
			},
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		Git: GitConfig{
			MaxGraphCommits: 200,
			DefaultRemote:   "origin",
		},
	}
}

// Validate checks the configuration for errors, clamping anything
// out-of-range back to its default rather than failing to start.
func (c *Config) Validate() error {
	if c.Git.MaxGraphCommits <= 0 {
		c.Git.MaxGraphCommits = 200
	}
	if c.Git.DefaultRemote == "" {
		c.Git.DefaultRemote = "origin"
	}
	return nil
}
