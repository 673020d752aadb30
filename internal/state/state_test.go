package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func withTempState(t *testing.T) {
	t.Helper()
	originalPath := path
	originalCurrent := current
	t.Cleanup(func() {
		path = originalPath
		current = originalCurrent
	})
}

func TestInit(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()

	if err := InitWithDir(filepath.Join(tmpDir, ".config", "gitkeeper")); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}

	if current == nil {
		t.Fatal("current state should be initialized")
	}
	if current.DiffMode != "unified" {
		t.Errorf("default DiffMode = %q, want unified", current.DiffMode)
	}
	if !current.ShowGraph {
		t.Error("default ShowGraph should be true")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()
	path = filepath.Join(tmpDir, "nonexistent", "state.json")

	if err := Load(); err != nil {
		t.Fatalf("Load() for non-existent file should return nil, got %v", err)
	}
	if current == nil {
		t.Fatal("current should be initialized with defaults")
	}
	if current.DiffMode != "unified" {
		t.Errorf("default DiffMode = %q, want unified", current.DiffMode)
	}
}

func TestLoad_ExistingFile(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()
	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	testState := State{DiffMode: "side-by-side"}
	data, _ := json.Marshal(testState)
	if err := os.WriteFile(stateFile, data, 0644); err != nil {
		t.Fatalf("failed to write test state file: %v", err)
	}

	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if current.DiffMode != "side-by-side" {
		t.Errorf("DiffMode = %q, want side-by-side", current.DiffMode)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()
	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	if err := os.WriteFile(stateFile, []byte("invalid json"), 0644); err != nil {
		t.Fatalf("failed to write invalid JSON: %v", err)
	}

	if err := Load(); err == nil {
		t.Error("Load() should return error for invalid JSON")
	}
}

func TestSave(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()
	stateFile := filepath.Join(tmpDir, "config", "gitkeeper", "state.json")
	path = stateFile
	current = &State{DiffMode: "side-by-side"}

	if err := Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		t.Fatalf("failed to read saved state: %v", err)
	}
	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to unmarshal saved state: %v", err)
	}
	if loaded.DiffMode != "side-by-side" {
		t.Errorf("saved DiffMode = %q, want side-by-side", loaded.DiffMode)
	}
}

func TestSave_CreateDirectories(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()
	path = filepath.Join(tmpDir, "a", "b", "c", "state.json")
	current = &State{DiffMode: "unified"}

	if err := Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected state file to exist: %v", err)
	}
}

func TestSave_NilCurrent(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = nil

	if err := Save(); err != nil {
		t.Errorf("Save() with nil current should be a no-op, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() with nil current should not write a file")
	}
}

func TestGetDiffMode_Default(t *testing.T) {
	withTempState(t)
	current = nil
	if got := GetDiffMode(); got != "unified" {
		t.Errorf("GetDiffMode() = %q, want unified", got)
	}
}

func TestGetDiffMode_Set(t *testing.T) {
	withTempState(t)
	current = &State{DiffMode: "side-by-side"}
	if got := GetDiffMode(); got != "side-by-side" {
		t.Errorf("GetDiffMode() = %q, want side-by-side", got)
	}
}

func TestSetDiffMode(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = &State{DiffMode: "unified"}

	if err := SetDiffMode("side-by-side"); err != nil {
		t.Fatalf("SetDiffMode() failed: %v", err)
	}
	if current.DiffMode != "side-by-side" {
		t.Errorf("DiffMode = %q, want side-by-side", current.DiffMode)
	}
}

func TestSetDiffMode_InitializesNilState(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = nil

	if err := SetDiffMode("side-by-side"); err != nil {
		t.Fatalf("SetDiffMode() failed: %v", err)
	}
	if current == nil || current.DiffMode != "side-by-side" {
		t.Error("SetDiffMode() should initialize current state")
	}
}

func TestGetShowGraph_Default(t *testing.T) {
	withTempState(t)
	current = nil
	if !GetShowGraph() {
		t.Error("GetShowGraph() should default to true")
	}
}

func TestSetShowGraph(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = &State{ShowGraph: true}

	if err := SetShowGraph(false); err != nil {
		t.Fatalf("SetShowGraph() failed: %v", err)
	}
	if current.ShowGraph {
		t.Error("ShowGraph should be false after SetShowGraph(false)")
	}
}

func TestGetWrapDiffs_Default(t *testing.T) {
	withTempState(t)
	current = nil
	if GetWrapDiffs() {
		t.Error("GetWrapDiffs() should default to false")
	}
}

func TestSetWrapDiffs(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = &State{}

	if err := SetWrapDiffs(true); err != nil {
		t.Fatalf("SetWrapDiffs() failed: %v", err)
	}
	if !current.WrapDiffs {
		t.Error("WrapDiffs should be true after SetWrapDiffs(true)")
	}
}

func TestPaneWidths(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = &State{}

	if got := GetGraphSidebarWidth(); got != 0 {
		t.Errorf("GetGraphSidebarWidth() default = %d, want 0", got)
	}
	if err := SetGraphSidebarWidth(40); err != nil {
		t.Fatalf("SetGraphSidebarWidth() failed: %v", err)
	}
	if got := GetGraphSidebarWidth(); got != 40 {
		t.Errorf("GetGraphSidebarWidth() = %d, want 40", got)
	}

	if err := SetStagingSidebarWidth(35); err != nil {
		t.Fatalf("SetStagingSidebarWidth() failed: %v", err)
	}
	if got := GetStagingSidebarWidth(); got != 35 {
		t.Errorf("GetStagingSidebarWidth() = %d, want 35", got)
	}

	if err := SetBranchesListWidth(25); err != nil {
		t.Fatalf("SetBranchesListWidth() failed: %v", err)
	}
	if got := GetBranchesListWidth(); got != 25 {
		t.Errorf("GetBranchesListWidth() = %d, want 25", got)
	}
}

func TestGetRepoState_Default(t *testing.T) {
	withTempState(t)
	current = nil
	if got := GetRepoState("/some/repo"); got != (RepoState{}) {
		t.Errorf("GetRepoState() = %+v, want zero value", got)
	}
}

func TestGetRepoState_EmptyMap(t *testing.T) {
	withTempState(t)
	current = &State{}
	if got := GetRepoState("/some/repo"); got != (RepoState{}) {
		t.Errorf("GetRepoState() = %+v, want zero value", got)
	}
}

func TestSetAndGetRepoState(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = &State{}

	rs := RepoState{LastView: "staging", SelectedCommit: "abc123"}
	if err := SetRepoState("/repo/a", rs); err != nil {
		t.Fatalf("SetRepoState() failed: %v", err)
	}

	got := GetRepoState("/repo/a")
	if got != rs {
		t.Errorf("GetRepoState() = %+v, want %+v", got, rs)
	}

	// A different working directory is unaffected.
	if got := GetRepoState("/repo/b"); got != (RepoState{}) {
		t.Errorf("GetRepoState(/repo/b) = %+v, want zero value", got)
	}
}

func TestSetRepoState_InitializesNilState(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = nil

	if err := SetRepoState("/repo/a", RepoState{LastView: "graph"}); err != nil {
		t.Fatalf("SetRepoState() failed: %v", err)
	}
	if current == nil || current.Repo["/repo/a"].LastView != "graph" {
		t.Error("SetRepoState() should initialize current state and its map")
	}
}

func TestRoundTrip(t *testing.T) {
	withTempState(t)
	tmpDir := t.TempDir()
	path = filepath.Join(tmpDir, "state.json")
	current = &State{}

	_ = SetDiffMode("side-by-side")
	_ = SetShowGraph(false)
	_ = SetGraphSidebarWidth(42)
	_ = SetRepoState("/repo/a", RepoState{LastView: "branches", SelectedBranch: "main"})

	// Reload from disk into a fresh in-memory state.
	current = nil
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if GetDiffMode() != "side-by-side" {
		t.Errorf("DiffMode after round trip = %q, want side-by-side", GetDiffMode())
	}
	if GetShowGraph() {
		t.Error("ShowGraph after round trip should be false")
	}
	if GetGraphSidebarWidth() != 42 {
		t.Errorf("GraphSidebarWidth after round trip = %d, want 42", GetGraphSidebarWidth())
	}
	if rs := GetRepoState("/repo/a"); rs.LastView != "branches" || rs.SelectedBranch != "main" {
		t.Errorf("RepoState after round trip = %+v", rs)
	}
}

func TestConcurrentAccess(t *testing.T) {
	withTempState(t)
	path = filepath.Join(t.TempDir(), "state.json")
	current = &State{DiffMode: "unified"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = GetDiffMode()
		}()
		go func() {
			defer wg.Done()
			_ = SetGraphSidebarWidth(10)
		}()
	}
	wg.Wait()
}
