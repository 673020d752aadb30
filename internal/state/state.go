// Package state persists small user-interface preferences across runs: the
// preferred diff rendering mode, pane widths, and the last view mode and
// selection visited in each repository, keyed by the repository's working
// directory so preferences for one repo don't leak into another.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	DiffMode  string `json:"diffMode"`            // "unified" or "side-by-side"
	ShowGraph bool   `json:"showGraph"`           // Show the commit graph column in the Graph view
	WrapDiffs bool   `json:"wrapDiffs,omitempty"` // Soft-wrap long diff lines instead of truncating

	// Pane width preferences (percentage of total width, 0 = use default)
	GraphSidebarWidth   int `json:"graphSidebarWidth,omitempty"`
	StagingSidebarWidth int `json:"stagingSidebarWidth,omitempty"`
	BranchesListWidth   int `json:"branchesListWidth,omitempty"`

	// Per-repository state, keyed by the repository's working directory.
	Repo map[string]RepoState `json:"repo,omitempty"`
}

// RepoState holds persistent per-repository state: the last view mode
// visited and the last selection within it, so reopening a repository
// restores roughly where the user left off.
type RepoState struct {
	LastView         string `json:"lastView,omitempty"`         // "graph", "staging", "branches", ...
	SelectedCommit   string `json:"selectedCommit,omitempty"`   // Commit ID last selected in the Graph view
	SelectedBranch   string `json:"selectedBranch,omitempty"`   // Branch name last selected in the Branches view
	DetailPaneScroll int    `json:"detailPaneScroll,omitempty"` // Scroll offset of the commit detail pane
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "gitkeeper"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{
		DiffMode:  "unified", // default
		ShowGraph: true,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetDiffMode returns the saved diff mode.
func GetDiffMode() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.DiffMode == "" {
		return "unified"
	}
	return current.DiffMode
}

// SetDiffMode saves the diff mode preference.
func SetDiffMode(mode string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.DiffMode = mode
	mu.Unlock()
	return Save()
}

// GetShowGraph returns whether the commit graph column is enabled.
func GetShowGraph() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return true
	}
	return current.ShowGraph
}

// SetShowGraph saves the commit graph column preference.
func SetShowGraph(enabled bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ShowGraph = enabled
	mu.Unlock()
	return Save()
}

// GetWrapDiffs returns whether diff lines should soft-wrap.
func GetWrapDiffs() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return false
	}
	return current.WrapDiffs
}

// SetWrapDiffs saves the diff-wrapping preference.
func SetWrapDiffs(enabled bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.WrapDiffs = enabled
	mu.Unlock()
	return Save()
}

// GetGraphSidebarWidth returns the saved Graph view sidebar width.
// Returns 0 if no preference is saved (use default).
func GetGraphSidebarWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.GraphSidebarWidth
}

// SetGraphSidebarWidth saves the Graph view sidebar width.
func SetGraphSidebarWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.GraphSidebarWidth = width
	mu.Unlock()
	return Save()
}

// GetStagingSidebarWidth returns the saved Staging view sidebar width.
// Returns 0 if no preference is saved (use default).
func GetStagingSidebarWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.StagingSidebarWidth
}

// SetStagingSidebarWidth saves the Staging view sidebar width.
func SetStagingSidebarWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.StagingSidebarWidth = width
	mu.Unlock()
	return Save()
}

// GetBranchesListWidth returns the saved Branches view list width.
// Returns 0 if no preference is saved (use default).
func GetBranchesListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.BranchesListWidth
}

// SetBranchesListWidth saves the Branches view list width.
func SetBranchesListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.BranchesListWidth = width
	mu.Unlock()
	return Save()
}

// GetRepoState returns the saved state for a given repository working
// directory.
func GetRepoState(workdir string) RepoState {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.Repo == nil {
		return RepoState{}
	}
	return current.Repo[workdir]
}

// SetRepoState saves the state for a given repository working directory.
func SetRepoState(workdir string, rs RepoState) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	if current.Repo == nil {
		current.Repo = make(map[string]RepoState)
	}
	current.Repo[workdir] = rs
	mu.Unlock()
	return Save()
}
