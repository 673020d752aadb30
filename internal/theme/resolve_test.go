package theme

import (
	"testing"

	"github.com/polysim/gitkeeper/internal/config"
	"github.com/polysim/gitkeeper/internal/styles"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want ResolvedTheme
	}{
		{
			name: "named theme",
			cfg: &config.Config{
				UI: config.UIConfig{Theme: config.ThemeConfig{Name: "dracula"}},
			},
			want: ResolvedTheme{BaseName: "dracula"},
		},
		{
			name: "empty base name defaults to default",
			cfg: &config.Config{
				UI: config.UIConfig{Theme: config.ThemeConfig{Name: ""}},
			},
			want: ResolvedTheme{BaseName: "default"},
		},
		{
			name: "overrides propagated",
			cfg: &config.Config{
				UI: config.UIConfig{Theme: config.ThemeConfig{
					Name:      "default",
					Overrides: map[string]interface{}{"primary": "#ff0000"},
				}},
			},
			want: ResolvedTheme{
				BaseName:  "default",
				Overrides: map[string]interface{}{"primary": "#ff0000"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTheme(tt.cfg)
			if got.BaseName != tt.want.BaseName {
				t.Errorf("BaseName = %q, want %q", got.BaseName, tt.want.BaseName)
			}
			if len(got.Overrides) != len(tt.want.Overrides) {
				t.Errorf("Overrides len = %d, want %d", len(got.Overrides), len(tt.want.Overrides))
			}
			for k, wantV := range tt.want.Overrides {
				if gotV, ok := got.Overrides[k]; !ok || gotV != wantV {
					t.Errorf("Overrides[%q] = %v, want %v", k, gotV, wantV)
				}
			}
		})
	}
}

func TestApplyResolved(t *testing.T) {
	t.Run("no overrides applies base theme", func(t *testing.T) {
		ApplyResolved(ResolvedTheme{BaseName: "dracula"})
		if got := styles.GetCurrentThemeName(); got != "dracula" {
			t.Errorf("theme = %q, want %q", got, "dracula")
		}
	})

	t.Run("with overrides applies base plus overrides", func(t *testing.T) {
		ApplyResolved(ResolvedTheme{
			BaseName:  "default",
			Overrides: map[string]interface{}{"primary": "#ff0000"},
		})
		if got := styles.GetCurrentThemeName(); got != "default" {
			t.Errorf("theme = %q, want %q", got, "default")
		}
		th := styles.GetCurrentTheme()
		if th.Colors.Primary != "#ff0000" {
			t.Errorf("primary = %q, want %q", th.Colors.Primary, "#ff0000")
		}
	})
}
