// Package theme resolves the effective color theme from on-disk config and
// applies it to internal/styles's package-level style variables.
package theme

import (
	"github.com/polysim/gitkeeper/internal/config"
	"github.com/polysim/gitkeeper/internal/styles"
)

// ResolvedTheme is the fully-determined theme configuration for this run: a
// named base palette plus any per-key user overrides on top of it.
type ResolvedTheme struct {
	BaseName  string
	Overrides map[string]interface{}
}

// ResolveTheme determines the effective theme from cfg.UI.Theme, falling
// back to "default" if none is configured.
func ResolveTheme(cfg *config.Config) ResolvedTheme {
	resolved := ResolvedTheme{
		BaseName:  cfg.UI.Theme.Name,
		Overrides: cfg.UI.Theme.Overrides,
	}
	if resolved.BaseName == "" {
		resolved.BaseName = "default"
	}
	return resolved
}

// ApplyResolved applies r to internal/styles's current palette: the named
// base theme, then any per-key overrides layered on top.
func ApplyResolved(r ResolvedTheme) {
	if len(r.Overrides) > 0 {
		styles.ApplyThemeWithGenericOverrides(r.BaseName, r.Overrides)
		return
	}
	styles.ApplyTheme(r.BaseName)
}
