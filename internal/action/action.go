// Package action defines the closed set of user-triggered actions the
// dispatcher understands. Actions are grouped by domain (navigation, git,
// staging, branch, conflict, search, edit) as the primary, typed surface;
// a parallel set of legacy flat variants exists purely as a migration path
// for older keybinding tables and forwards 1:1 onto the typed variants.
package action

import "github.com/polysim/gitkeeper/internal/appview"

// NavigationAction moves the cursor or scroll position within the
// currently focused list or diff viewport.
type NavigationAction int

const (
	MoveUp NavigationAction = iota
	MoveDown
	PageUp
	PageDown
	GoTop
	GoBottom
	FileUp
	FileDown
	ScrollDiffUp
	ScrollDiffDown
)

// GitAction performs a remote/porcelain git operation or opens one of its
// prompts.
type GitAction int

const (
	Push GitAction = iota
	Pull
	Fetch
	CherryPick
	AmendCommit
	OpenBlame
	CloseBlame
	JumpToBlameCommit
	CommitPrompt
	StashPrompt
	MergePrompt
	BranchList
)

// StagingAction manipulates the index and the in-progress commit message.
type StagingAction int

const (
	StageFile StagingAction = iota
	UnstageFile
	StageAll
	UnstageAll
	SwitchFocus
	StartCommitMessage
	ConfirmCommit
	CancelCommit
	DiscardFile
	DiscardAll
	StashSelectedFile
	StashUnstagedFiles
)

// BranchAction operates on branches, worktrees and stashes from the
// Branches view.
type BranchAction int

const (
	Checkout BranchAction = iota
	Create
	Delete
	Rename
	ToggleRemote
	WorktreeCreate
	WorktreeRemove
	StashApply
	StashPop
	StashDrop
	StashSave
	NextSection
	PrevSection
	ConfirmInput
	CancelInput
)

// SearchAction drives the commit/branch fuzzy-search overlay.
type SearchAction int

const (
	Open SearchAction = iota
	Close
	ChangeType
	NextResult
	PreviousResult
)

// EditAction edits a single-line text input (commit message, branch name
// input, search query).
type EditAction struct {
	Kind EditKind
	Char rune // set only when Kind == EditInsertChar
}

// EditKind enumerates the operations EditAction can carry.
type EditKind int

const (
	EditInsertChar EditKind = iota
	EditDeleteCharBefore
	EditCursorLeft
	EditCursorRight
)

// ConflictAction drives the three-level (file/hunk/line) conflict
// resolver. See internal/conflict for the state machine these mutate.
type ConflictAction int

const (
	ConflictPreviousFile ConflictAction = iota
	ConflictNextFile
	ConflictPreviousSection
	ConflictNextSection
	ConflictSwitchPanelForward
	ConflictSwitchPanelReverse
	ConflictAcceptOursFile
	ConflictAcceptTheirsFile
	ConflictAcceptOursBlock
	ConflictAcceptTheirsBlock
	ConflictAcceptBoth
	ConflictStartEdit
	ConflictConfirmEdit
	ConflictCancelEdit
	ConflictMarkResolved
	ConflictFinalizeMerge
	ConflictAbortMerge
	ConflictSetModeFile
	ConflictSetModeBlock
	ConflictSetModeLine
	ConflictToggleLine
	ConflictLineUp
	ConflictLineDown
	ConflictResultScrollUp
	ConflictResultScrollDown
	ConflictEditInsertChar
	ConflictEditBackspace
	ConflictEditDelete
	ConflictEditCursorUp
	ConflictEditCursorDown
	ConflictEditCursorLeft
	ConflictEditCursorRight
	ConflictEditNewline
	// ConflictActivate is mode-dependent: in file mode it applies the
	// ours/theirs choice under the focused panel, in block mode it toggles
	// the focused section's resolution, and it is a no-op in line mode
	// (ToggleLine/MarkResolved cover that case directly).
	ConflictActivate
	// ConflictLeaveView returns to the Staging view without aborting the
	// in-progress merge.
	ConflictLeaveView
	ConflictEnterResolve
)

// ConflictChar carries the rune for ConflictEditInsertChar; zero for every
// other ConflictAction.
type ConflictChar struct {
	Action ConflictAction
	Char   rune
}

// Action is the closed, typed sum of every action the application can
// dispatch. Exactly one domain field (or one of the bare variants) is set
// per value; Kind says which.
type Action struct {
	Kind Kind

	Navigation NavigationAction
	Git        GitAction
	Staging    StagingAction
	Branch     BranchAction
	Conflict   ConflictChar
	Search     SearchAction
	Edit       EditAction
	ViewMode   appview.Mode

	// Legacy is left at its zero value by FromLegacy, which returns the
	// plain typed Action, and dispatch never reads it.
	Legacy Legacy
}

// Kind discriminates which field of Action is populated.
type Kind int

const (
	KindQuit Kind = iota
	KindRefresh
	KindNavigation
	KindGit
	KindStaging
	KindBranch
	KindConflict
	KindSearch
	KindEdit
	KindSwitchView
	KindToggleHelp
	KindCopyToClipboard
	KindSelect
	KindSwitchBottomMode
	KindCloseBranchPanel
	KindConfirmAction
	KindCancelAction
	KindMergePickerUp
	KindMergePickerDown
	KindMergePickerConfirm
	KindMergePickerCancel
	KindNone
)

// Quit requests application shutdown.
func Quit() Action { return Action{Kind: KindQuit} }

// Refresh marks application state dirty, forcing a reload from the
// repository on the next loop tick.
func Refresh() Action { return Action{Kind: KindRefresh} }

// Nav wraps a NavigationAction.
func Nav(a NavigationAction) Action { return Action{Kind: KindNavigation, Navigation: a} }

// GitA wraps a GitAction.
func GitA(a GitAction) Action { return Action{Kind: KindGit, Git: a} }

// Stage wraps a StagingAction.
func Stage(a StagingAction) Action { return Action{Kind: KindStaging, Staging: a} }

// Br wraps a BranchAction.
func Br(a BranchAction) Action { return Action{Kind: KindBranch, Branch: a} }

// Conf wraps a ConflictAction, optionally carrying a rune for
// ConflictEditInsertChar.
func Conf(a ConflictAction, ch rune) Action {
	return Action{Kind: KindConflict, Conflict: ConflictChar{Action: a, Char: ch}}
}

// Srch wraps a SearchAction.
func Srch(a SearchAction) Action { return Action{Kind: KindSearch, Search: a} }

// Ed wraps an EditAction.
func Ed(a EditAction) Action { return Action{Kind: KindEdit, Edit: a} }

// SwitchView requests a view-mode change.
func SwitchView(m appview.Mode) Action { return Action{Kind: KindSwitchView, ViewMode: m} }

// None is the no-op action, returned when an input event carries no
// dispatchable action.
func None() Action { return Action{Kind: KindNone} }

// CopyToClipboard copies whatever the currently focused panel has
// selected (a commit hash, a file path, ...) to the system clipboard.
func CopyToClipboard() Action { return Action{Kind: KindCopyToClipboard} }

// Select activates whatever the currently focused list has selected: a
// candidate branch in the merge picker, a search result, and so on.
func Select() Action { return Action{Kind: KindSelect} }

// SwitchBottomMode toggles which panel occupies the Graph view's bottom
// pane (commit files vs. diff preview).
func SwitchBottomMode() Action { return Action{Kind: KindSwitchBottomMode} }

// CloseBranchPanel dismisses the overlay branch panel without navigating
// away from the current view.
func CloseBranchPanel() Action { return Action{Kind: KindCloseBranchPanel} }

// ConfirmPending carries out whatever destructive operation is currently
// awaiting confirmation.
func ConfirmPending() Action { return Action{Kind: KindConfirmAction} }

// CancelPending discards whatever destructive operation is currently
// awaiting confirmation, without carrying it out.
func CancelPending() Action { return Action{Kind: KindCancelAction} }

// MergePickerUp moves the merge branch picker's selection up.
func MergePickerUp() Action { return Action{Kind: KindMergePickerUp} }

// MergePickerDown moves the merge branch picker's selection down.
func MergePickerDown() Action { return Action{Kind: KindMergePickerDown} }

// MergePickerConfirm starts a merge of the picker's selected branch into
// the current branch.
func MergePickerConfirm() Action { return Action{Kind: KindMergePickerConfirm} }

// MergePickerCancel dismisses the merge branch picker without merging.
func MergePickerCancel() Action { return Action{Kind: KindMergePickerCancel} }
