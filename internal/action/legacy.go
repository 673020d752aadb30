package action

import "github.com/polysim/gitkeeper/internal/appview"

// Legacy is the flat, ungrouped action variant set kept for backward
// compatibility with older keybinding tables. Every Legacy value maps onto
// exactly one typed Action via FromLegacy; nothing in the dispatcher
// branches on Legacy directly.
type Legacy int

const (
	LegacyNone Legacy = iota

	LegacyMoveUp
	LegacyMoveDown
	LegacyPageUp
	LegacyPageDown
	LegacyGoTop
	LegacyGoBottom
	LegacyFileUp
	LegacyFileDown
	LegacyDiffScrollUp
	LegacyDiffScrollDown

	LegacyGitPush
	LegacyGitPull
	LegacyGitFetch
	LegacyCherryPick
	LegacyAmendCommit
	LegacyOpenBlame
	LegacyCloseBlame
	LegacyJumpToBlameCommit
	LegacyCommitPrompt
	LegacyStashPrompt
	LegacyMergePrompt
	LegacyBranchList

	LegacyStageFile
	LegacyUnstageFile
	LegacyStageAll
	LegacyUnstageAll
	LegacySwitchStagingFocus
	LegacyStartCommitMessage
	LegacyConfirmCommit
	LegacyCancelCommitMessage
	LegacyDiscardFile
	LegacyDiscardAll
	LegacyStashSelectedFile
	LegacyStashUnstagedFiles

	LegacyBranchCheckout
	LegacyBranchCreate
	LegacyBranchDelete
	LegacyBranchRename
	LegacyToggleRemoteBranches
	LegacyWorktreeCreate
	LegacyWorktreeRemove
	LegacyStashApply
	LegacyStashPop
	LegacyStashDrop
	LegacyStashSave
	LegacyNextSection
	LegacyPrevSection
	LegacyConfirmInput
	LegacyCancelInput

	LegacyOpenSearch
	LegacyCloseSearch
	LegacyChangeSearchType
	LegacyNextSearchResult
	LegacyPrevSearchResult

	LegacyInsertChar
	LegacyDeleteChar
	LegacyMoveCursorLeft
	LegacyMoveCursorRight

	LegacySwitchToGraph
	LegacySwitchToStaging
	LegacySwitchToBranches
	LegacySwitchToConflicts

	LegacyConflictPrevFile
	LegacyConflictNextFile
	LegacyConflictPrevSection
	LegacyConflictNextSection
	LegacyConflictSwitchPanelForward
	LegacyConflictSwitchPanelReverse
	LegacyConflictFileChooseOurs
	LegacyConflictFileChooseTheirs
	LegacyConflictChooseBoth
	LegacyConflictFinalize
	LegacyConflictAbort
	LegacyConflictLeaveView
	LegacyConflictEnterResolve
	LegacyConflictSetModeFile
	LegacyConflictSetModeBlock
	LegacyConflictSetModeLine
	LegacyConflictToggleLine
	LegacyConflictLineUp
	LegacyConflictLineDown
	LegacyConflictResultScrollUp
	LegacyConflictResultScrollDown
	LegacyConflictStartEditing
	LegacyConflictStopEditing
	LegacyConflictEditInsertChar
	LegacyConflictEditBackspace
	LegacyConflictEditDelete
	LegacyConflictEditCursorUp
	LegacyConflictEditCursorDown
	LegacyConflictEditCursorLeft
	LegacyConflictEditCursorRight
	LegacyConflictEditNewline
	LegacyConflictResolveFile

	LegacyCopyToClipboard
	LegacySelect
	LegacySwitchBottomMode
	LegacyCloseBranchPanel
	LegacyConfirmAction
	LegacyCancelAction
	LegacyMergePickerUp
	LegacyMergePickerDown
	LegacyMergePickerConfirm
	LegacyMergePickerCancel
)

// FromLegacy translates a flat legacy variant into its typed equivalent.
// Character-carrying variants take ch; it is ignored otherwise.
func FromLegacy(l Legacy, ch rune) Action {
	switch l {
	case LegacyMoveUp:
		return Nav(MoveUp)
	case LegacyMoveDown:
		return Nav(MoveDown)
	case LegacyPageUp:
		return Nav(PageUp)
	case LegacyPageDown:
		return Nav(PageDown)
	case LegacyGoTop:
		return Nav(GoTop)
	case LegacyGoBottom:
		return Nav(GoBottom)
	case LegacyFileUp:
		return Nav(FileUp)
	case LegacyFileDown:
		return Nav(FileDown)
	case LegacyDiffScrollUp:
		return Nav(ScrollDiffUp)
	case LegacyDiffScrollDown:
		return Nav(ScrollDiffDown)

	case LegacyGitPush:
		return GitA(Push)
	case LegacyGitPull:
		return GitA(Pull)
	case LegacyGitFetch:
		return GitA(Fetch)
	case LegacyCherryPick:
		return GitA(CherryPick)
	case LegacyAmendCommit:
		return GitA(AmendCommit)
	case LegacyOpenBlame:
		return GitA(OpenBlame)
	case LegacyCloseBlame:
		return GitA(CloseBlame)
	case LegacyJumpToBlameCommit:
		return GitA(JumpToBlameCommit)
	case LegacyCommitPrompt:
		return GitA(CommitPrompt)
	case LegacyStashPrompt:
		return GitA(StashPrompt)
	case LegacyMergePrompt:
		return GitA(MergePrompt)
	case LegacyBranchList:
		return GitA(BranchList)

	case LegacyStageFile:
		return Stage(StageFile)
	case LegacyUnstageFile:
		return Stage(UnstageFile)
	case LegacyStageAll:
		return Stage(StageAll)
	case LegacyUnstageAll:
		return Stage(UnstageAll)
	case LegacySwitchStagingFocus:
		return Stage(SwitchFocus)
	case LegacyStartCommitMessage:
		return Stage(StartCommitMessage)
	case LegacyConfirmCommit:
		return Stage(ConfirmCommit)
	case LegacyCancelCommitMessage:
		return Stage(CancelCommit)
	case LegacyDiscardFile:
		return Stage(DiscardFile)
	case LegacyDiscardAll:
		return Stage(DiscardAll)
	case LegacyStashSelectedFile:
		return Stage(StashSelectedFile)
	case LegacyStashUnstagedFiles:
		return Stage(StashUnstagedFiles)

	case LegacyBranchCheckout:
		return Br(Checkout)
	case LegacyBranchCreate:
		return Br(Create)
	case LegacyBranchDelete:
		return Br(Delete)
	case LegacyBranchRename:
		return Br(Rename)
	case LegacyToggleRemoteBranches:
		return Br(ToggleRemote)
	case LegacyWorktreeCreate:
		return Br(WorktreeCreate)
	case LegacyWorktreeRemove:
		return Br(WorktreeRemove)
	case LegacyStashApply:
		return Br(StashApply)
	case LegacyStashPop:
		return Br(StashPop)
	case LegacyStashDrop:
		return Br(StashDrop)
	case LegacyStashSave:
		return Br(StashSave)
	case LegacyNextSection:
		return Br(NextSection)
	case LegacyPrevSection:
		return Br(PrevSection)
	case LegacyConfirmInput:
		return Br(ConfirmInput)
	case LegacyCancelInput:
		return Br(CancelInput)

	case LegacyOpenSearch:
		return Srch(Open)
	case LegacyCloseSearch:
		return Srch(Close)
	case LegacyChangeSearchType:
		return Srch(ChangeType)
	case LegacyNextSearchResult:
		return Srch(NextResult)
	case LegacyPrevSearchResult:
		return Srch(PreviousResult)

	case LegacyInsertChar:
		return Ed(EditAction{Kind: EditInsertChar, Char: ch})
	case LegacyDeleteChar:
		return Ed(EditAction{Kind: EditDeleteCharBefore})
	case LegacyMoveCursorLeft:
		return Ed(EditAction{Kind: EditCursorLeft})
	case LegacyMoveCursorRight:
		return Ed(EditAction{Kind: EditCursorRight})

	case LegacySwitchToGraph:
		return SwitchView(appview.Graph)
	case LegacySwitchToStaging:
		return SwitchView(appview.Staging)
	case LegacySwitchToBranches:
		return SwitchView(appview.Branches)
	case LegacySwitchToConflicts:
		return SwitchView(appview.Conflicts)

	case LegacyConflictPrevFile:
		return Conf(ConflictPreviousFile, 0)
	case LegacyConflictNextFile:
		return Conf(ConflictNextFile, 0)
	case LegacyConflictPrevSection:
		return Conf(ConflictPreviousSection, 0)
	case LegacyConflictNextSection:
		return Conf(ConflictNextSection, 0)
	case LegacyConflictSwitchPanelForward:
		return Conf(ConflictSwitchPanelForward, 0)
	case LegacyConflictSwitchPanelReverse:
		return Conf(ConflictSwitchPanelReverse, 0)
	case LegacyConflictFileChooseOurs:
		return Conf(ConflictAcceptOursFile, 0)
	case LegacyConflictFileChooseTheirs:
		return Conf(ConflictAcceptTheirsFile, 0)
	case LegacyConflictChooseBoth:
		return Conf(ConflictAcceptBoth, 0)
	case LegacyConflictFinalize:
		return Conf(ConflictFinalizeMerge, 0)
	case LegacyConflictAbort:
		return Conf(ConflictAbortMerge, 0)
	case LegacyConflictLeaveView:
		return Conf(ConflictLeaveView, 0)
	case LegacyConflictEnterResolve:
		return Conf(ConflictEnterResolve, 0)
	case LegacyConflictSetModeFile:
		return Conf(ConflictSetModeFile, 0)
	case LegacyConflictSetModeBlock:
		return Conf(ConflictSetModeBlock, 0)
	case LegacyConflictSetModeLine:
		return Conf(ConflictSetModeLine, 0)
	case LegacyConflictToggleLine:
		return Conf(ConflictToggleLine, 0)
	case LegacyConflictLineUp:
		return Conf(ConflictLineUp, 0)
	case LegacyConflictLineDown:
		return Conf(ConflictLineDown, 0)
	case LegacyConflictResultScrollUp:
		return Conf(ConflictResultScrollUp, 0)
	case LegacyConflictResultScrollDown:
		return Conf(ConflictResultScrollDown, 0)
	case LegacyConflictStartEditing:
		return Conf(ConflictStartEdit, 0)
	case LegacyConflictStopEditing:
		return Conf(ConflictCancelEdit, 0)
	case LegacyConflictEditInsertChar:
		return Conf(ConflictEditInsertChar, ch)
	case LegacyConflictEditBackspace:
		return Conf(ConflictEditBackspace, 0)
	case LegacyConflictEditDelete:
		return Conf(ConflictEditDelete, 0)
	case LegacyConflictEditCursorUp:
		return Conf(ConflictEditCursorUp, 0)
	case LegacyConflictEditCursorDown:
		return Conf(ConflictEditCursorDown, 0)
	case LegacyConflictEditCursorLeft:
		return Conf(ConflictEditCursorLeft, 0)
	case LegacyConflictEditCursorRight:
		return Conf(ConflictEditCursorRight, 0)
	case LegacyConflictEditNewline:
		return Conf(ConflictEditNewline, 0)
	case LegacyConflictResolveFile:
		return Conf(ConflictMarkResolved, 0)

	case LegacyCopyToClipboard:
		return CopyToClipboard()
	case LegacySelect:
		return Select()
	case LegacySwitchBottomMode:
		return SwitchBottomMode()
	case LegacyCloseBranchPanel:
		return CloseBranchPanel()
	case LegacyConfirmAction:
		return ConfirmPending()
	case LegacyCancelAction:
		return CancelPending()
	case LegacyMergePickerUp:
		return MergePickerUp()
	case LegacyMergePickerDown:
		return MergePickerDown()
	case LegacyMergePickerConfirm:
		return MergePickerConfirm()
	case LegacyMergePickerCancel:
		return MergePickerCancel()

	default:
		return None()
	}
}
