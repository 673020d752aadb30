// Package appstate aggregates the application's in-memory state: the
// active view, its per-view sub-state, the shared caches, and the transient
// UI bits (flash messages, pending confirmations) that sit above them.
package appstate

import (
	"time"

	"github.com/polysim/gitkeeper/internal/appview"
	"github.com/polysim/gitkeeper/internal/conflict"
	"github.com/polysim/gitkeeper/internal/diffcache"
	"github.com/polysim/gitkeeper/internal/filter"
	"github.com/polysim/gitkeeper/internal/graph"
	"github.com/polysim/gitkeeper/internal/selection"
	"github.com/polysim/gitkeeper/internal/vcs"
)

// MaxCommits bounds how many commits a single graph load pulls in.
const MaxCommits = 200

// flashDuration is how long a flash message stays visible before it's
// considered expired.
const flashDuration = 3 * time.Second

// StagingState holds the Staging view's panels, commit-message editor and
// current diff preview.
type StagingState struct {
	Unstaged       selection.Selection[vcs.StatusEntry]
	Staged         selection.Selection[vcs.StatusEntry]
	Focus          appview.StagingFocus
	CommitMessage  string
	CursorPosition int
	IsCommitting   bool
	IsAmending     bool
	CurrentDiff    *vcs.FileDiff
	DiffScroll     int
}

// SelectedFile returns whichever panel has focus's selected entry.
func (s *StagingState) SelectedFile() (vcs.StatusEntry, bool) {
	switch s.Focus {
	case appview.FocusUnstaged:
		return s.Unstaged.SelectedItem()
	case appview.FocusStaged:
		return s.Staged.SelectedItem()
	default:
		var zero vcs.StatusEntry
		return zero, false
	}
}

// CycleFocus advances focus Unstaged -> Staged -> Diff -> Unstaged.
func (s *StagingState) CycleFocus() {
	switch s.Focus {
	case appview.FocusUnstaged:
		s.Focus = appview.FocusStaged
	case appview.FocusStaged:
		s.Focus = appview.FocusDiff
	default:
		s.Focus = appview.FocusUnstaged
	}
}

// InputAction identifies which text-prompt flow the Branches view's single
// input field currently belongs to.
type InputAction int

const (
	InputNone InputAction = iota
	InputCreateBranch
	InputCreateWorktree
	InputRenameBranch
	InputSaveStash
)

// BranchesState holds the Branches/Worktrees/Stashes view.
type BranchesState struct {
	Section         appview.BranchesSection
	Focus           appview.BranchesFocus
	LocalBranches   selection.Selection[vcs.Branch]
	RemoteBranches  selection.Selection[vcs.Branch]
	ShowRemote      bool
	Worktrees       selection.Selection[vcs.Worktree]
	Stashes         selection.Selection[vcs.Stash]
	StashFileDiff   []string
	InputText       string
	InputCursor     int
	InputAction     InputAction
}

// SelectedBranch returns the selected entry from whichever of
// local/remote is currently shown.
func (b *BranchesState) SelectedBranch() (vcs.Branch, bool) {
	if b.ShowRemote {
		return b.RemoteBranches.SelectedItem()
	}
	return b.LocalBranches.SelectedItem()
}

// SearchState holds the fuzzy commit/branch search overlay.
type SearchState struct {
	Active  bool
	Query   string
	Cursor  int
	Type    SearchType
	Results []SearchResult
	Index   int
}

// SearchType selects what a query matches against.
type SearchType int

const (
	SearchCommits SearchType = iota
	SearchBranches
	SearchFiles
)

// SearchResult is one match surfaced by the search overlay.
type SearchResult struct {
	Label    string
	GraphRow int
}

// BlameState holds the optional inline blame overlay for the Graph view.
type BlameState struct {
	Path  string
	Lines []vcs.BlameLine
}

// MergePickerState drives the branch picker shown before starting a merge.
type MergePickerState struct {
	Branches selection.Selection[vcs.Branch]
}

// ConfirmKind identifies which destructive operation a PendingConfirmation
// describes.
type ConfirmKind int

const (
	ConfirmNone ConfirmKind = iota
	ConfirmDiscardFile
	ConfirmDiscardAll
	ConfirmDeleteBranch
	ConfirmWorktreeRemove
	ConfirmStashDrop
	ConfirmAbortMerge
	ConfirmCherryPick
	ConfirmMergeBranch
)

// PendingConfirmation describes a destructive operation awaiting an
// explicit confirm/cancel action, and carries whatever target data the
// eventual confirm handler needs to carry it out.
type PendingConfirmation struct {
	Kind         ConfirmKind
	Prompt       string
	Path         string       // DiscardFile
	BranchName   string       // DeleteBranch, MergeBranch
	WorktreePath string       // WorktreeRemove
	StashIndex   int          // StashDrop
	CommitID     vcs.CommitID // CherryPick
}

// GraphViewState holds the Graph view's row selection and per-commit detail
// panel.
type GraphViewState struct {
	Rows             selection.Selection[graph.Row]
	FileSelectedIndex int
	CommitFiles       []vcs.DiffFile
	SelectedFileDiff  *vcs.FileDiff
	DiffScrollOffset  int
}

// State is the complete application state: one instance lives for the
// lifetime of the program and is mutated in place by the dispatcher.
type State struct {
	Repo     vcs.Repository
	RepoPath string

	CurrentBranch string

	ViewMode         appview.Mode
	PreviousViewMode appview.Mode
	HasPreviousView  bool
	Dirty            bool

	Graph          GraphViewState
	BottomLeftMode appview.BottomLeftMode
	Focus          appview.FocusPanel

	StatusEntries []vcs.StatusEntry
	Branches      []vcs.Branch

	Staging  StagingState
	BranchesView BranchesState
	Blame    *BlameState
	Conflicts *conflict.State
	Search   SearchState
	MergePicker *MergePickerState

	FlashMessage    string
	FlashSetAt      time.Time
	HasFlash        bool
	PendingConfirm  *PendingConfirmation
	ShowBranchPanel bool
	ShouldQuit      bool

	DiffCache *diffcache.Cache

	GraphFilter filter.Graph
	FilterPopup filter.PopupState

	// Clipboard is the system-clipboard port; nil in tests that don't
	// exercise copy-to-clipboard.
	Clipboard Clipboard
}

// Clipboard abstracts the system clipboard so the dispatcher never imports
// a concrete clipboard implementation directly.
type Clipboard interface {
	Copy(text string) error
}

// New builds a fresh State for a just-opened repository.
func New(repo vcs.Repository, repoPath string) *State {
	s := &State{
		Repo:      repo,
		RepoPath:  repoPath,
		ViewMode:  appview.Graph,
		Dirty:     true,
		DiffCache: diffcache.New(50),
	}
	return s
}

// MarkDirty schedules a refresh on the next event-loop tick and drops any
// cached working-directory diffs, since they may now be stale.
func (s *State) MarkDirty() {
	s.Dirty = true
	s.DiffCache.ClearWorkingDirectory()
}

// MarkClean clears the dirty flag after a refresh completes.
func (s *State) MarkClean() { s.Dirty = false }

// SetFlash records a flash message with the current time as its start.
func (s *State) SetFlash(message string, now time.Time) {
	s.FlashMessage = message
	s.FlashSetAt = now
	s.HasFlash = true
}

// ClearFlash removes any active flash message.
func (s *State) ClearFlash() {
	s.HasFlash = false
	s.FlashMessage = ""
}

// ExpireFlash clears the flash message once it's older than three seconds.
func (s *State) ExpireFlash(now time.Time) {
	if s.HasFlash && now.Sub(s.FlashSetAt) > flashDuration {
		s.ClearFlash()
	}
}

// RequestConfirm arms a pending destructive-action confirmation, to be
// carried out (or dropped) only once the user explicitly confirms or
// cancels it.
func (s *State) RequestConfirm(p PendingConfirmation) {
	s.PendingConfirm = &p
}

// ClearConfirm discards any pending confirmation without acting on it.
func (s *State) ClearConfirm() {
	s.PendingConfirm = nil
}

// SelectedCommit returns the commit of the currently selected graph row, if
// any.
func (s *State) SelectedCommit() (vcs.Commit, bool) {
	row, ok := s.Graph.Rows.SelectedItem()
	if !ok {
		var zero vcs.Commit
		return zero, false
	}
	return row.Node.Commit, true
}

// EnterView switches to mode, remembering the previous mode so Help can
// return to wherever it was opened from.
func (s *State) EnterView(mode appview.Mode) {
	if s.ViewMode != appview.Help {
		s.PreviousViewMode = s.ViewMode
		s.HasPreviousView = true
	}
	s.ViewMode = mode
}

// LeaveHelp returns to whatever view Help was opened from.
func (s *State) LeaveHelp() {
	if s.HasPreviousView {
		s.ViewMode = s.PreviousViewMode
	} else {
		s.ViewMode = appview.Graph
	}
}
