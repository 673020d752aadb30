// Package appview holds the small enumerations shared across the action,
// appstate, conflict, and dispatch packages to describe which top-level
// view, panel, and focus target is active. Kept separate from appstate so
// internal/action can reference a view mode without importing the (much
// larger) state aggregate and creating an import cycle.
package appview

// Mode is the top-level view the user is looking at.
type Mode int

const (
	Graph Mode = iota
	Help
	Staging
	Branches
	Conflicts
)

// BottomLeftMode selects what the lower-left panel of the Graph view shows.
type BottomLeftMode int

const (
	CommitFiles BottomLeftMode = iota
	WorkingDir
)

// FocusPanel is the panel with keyboard focus in the Graph view.
type FocusPanel int

const (
	FocusGraph FocusPanel = iota
	FocusFiles
	FocusDetail
)

// StagingFocus is the panel with keyboard focus in the Staging view.
type StagingFocus int

const (
	FocusUnstaged StagingFocus = iota
	FocusStaged
	FocusDiff
	FocusCommitMessage
)

// BranchesSection is the active list within the Branches view.
type BranchesSection int

const (
	SectionBranches BranchesSection = iota
	SectionWorktrees
	SectionStashes
)

// BranchesFocus is the panel with keyboard focus in the Branches view.
type BranchesFocus int

const (
	BranchesFocusList BranchesFocus = iota
	BranchesFocusDetail
	BranchesFocusInput
)

// Conflict resolution granularity and panel focus live in internal/conflict
// itself, since nothing outside that package and internal/dispatch needs
// to name them.
