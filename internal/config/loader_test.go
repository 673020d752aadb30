package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.UI.ShowFooter {
		t.Error("footer should be shown by default")
	}
	if cfg.UI.Theme.Name != "default" {
		t.Errorf("got theme %q, want 'default'", cfg.UI.Theme.Name)
	}
	if cfg.Git.MaxGraphCommits != 200 {
		t.Errorf("got max graph commits %d, want 200", cfg.Git.MaxGraphCommits)
	}
	if cfg.Git.DefaultRemote != "origin" {
		t.Errorf("got default remote %q, want 'origin'", cfg.Git.DefaultRemote)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"ui": {
			"showFooter": false
		},
		"git": {
			"maxGraphCommits": 500
		}
	}`)

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.UI.ShowFooter {
		t.Error("showFooter should be false")
	}
	if cfg.Git.MaxGraphCommits != 500 {
		t.Errorf("got max graph commits %d, want 500", cfg.Git.MaxGraphCommits)
	}
	// Default values should still be present.
	if cfg.Git.DefaultRemote != "origin" {
		t.Errorf("got default remote %q, want 'origin' (default)", cfg.Git.DefaultRemote)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{invalid`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input  string
		expect string
	}{
		{"~/.config/gitkeeper", filepath.Join(home, ".config/gitkeeper")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tc := range tests {
		got := ExpandPath(tc.input)
		if got != tc.expect {
			t.Errorf("ExpandPath(%q) = %q, want %q", tc.input, got, tc.expect)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Git.MaxGraphCommits = -1
	cfg.Git.DefaultRemote = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	if cfg.Git.MaxGraphCommits != 200 {
		t.Errorf("got %d, want 200 after validation", cfg.Git.MaxGraphCommits)
	}
	if cfg.Git.DefaultRemote != "origin" {
		t.Errorf("got %q, want 'origin' after validation", cfg.Git.DefaultRemote)
	}
}

func TestLoadFrom_KeymapOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"keymap": {
			"overrides": {"quit": "ctrl+q"}
		}
	}`)

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Keymap.Overrides["quit"] != "ctrl+q" {
		t.Errorf("got override %q, want 'ctrl+q'", cfg.Keymap.Overrides["quit"])
	}
}
