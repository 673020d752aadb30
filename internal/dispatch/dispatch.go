// Package dispatch routes a decoded action.Action onto the application
// state, one small per-domain handler per action.Kind, mirroring the
// teacher's modular handler-per-domain event processing.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/polysim/gitkeeper/internal/action"
	"github.com/polysim/gitkeeper/internal/appstate"
	"github.com/polysim/gitkeeper/internal/appview"
	"github.com/polysim/gitkeeper/internal/conflict"
	"github.com/polysim/gitkeeper/internal/selection"
	"github.com/polysim/gitkeeper/internal/vcs"
)

// Now returns the current time; swapped out in tests so flash-message
// timestamps are deterministic.
var Now = time.Now

// Dispatch routes act onto state, calling through state.Repo for anything
// that touches the repository. It never blocks past a single git
// invocation; callers running inside the event loop are expected to call
// this from the same goroutine that owns state.
func Dispatch(ctx context.Context, s *appstate.State, act action.Action) error {
	switch act.Kind {
	case action.KindQuit:
		s.ShouldQuit = true
	case action.KindRefresh:
		s.MarkDirty()
	case action.KindNavigation:
		dispatchNavigation(s, act.Navigation)
	case action.KindGit:
		return dispatchGit(ctx, s, act.Git)
	case action.KindStaging:
		return dispatchStaging(ctx, s, act.Staging)
	case action.KindBranch:
		return dispatchBranch(ctx, s, act.Branch)
	case action.KindConflict:
		return dispatchConflict(ctx, s, act.Conflict)
	case action.KindSearch:
		dispatchSearch(s, act.Search)
	case action.KindEdit:
		dispatchEdit(s, act.Edit)
	case action.KindSwitchView:
		if act.ViewMode == appview.Help {
			s.EnterView(appview.Help)
		} else if s.ViewMode == appview.Help {
			s.LeaveHelp()
		} else {
			s.EnterView(act.ViewMode)
		}
	case action.KindToggleHelp:
		if s.ViewMode == appview.Help {
			s.LeaveHelp()
		} else {
			s.EnterView(appview.Help)
		}
	case action.KindCopyToClipboard:
		return dispatchCopyToClipboard(s)
	case action.KindSelect:
		dispatchSelect(ctx, s)
	case action.KindSwitchBottomMode:
		if s.BottomLeftMode == appview.CommitFiles {
			s.BottomLeftMode = appview.WorkingDir
		} else {
			s.BottomLeftMode = appview.CommitFiles
		}
	case action.KindCloseBranchPanel:
		s.ShowBranchPanel = false
	case action.KindConfirmAction:
		return dispatchConfirmPending(ctx, s)
	case action.KindCancelAction:
		s.ClearConfirm()
	case action.KindMergePickerUp:
		if s.MergePicker != nil {
			s.MergePicker.Branches.SelectPrevious()
		}
	case action.KindMergePickerDown:
		if s.MergePicker != nil {
			s.MergePicker.Branches.SelectNext()
		}
	case action.KindMergePickerConfirm:
		return dispatchMergePickerConfirm(ctx, s)
	case action.KindMergePickerCancel:
		s.MergePicker = nil
	case action.KindNone:
		// no-op
	}
	return nil
}

// dispatchCopyToClipboard copies whatever the active view's focused panel
// has selected to the system clipboard.
func dispatchCopyToClipboard(s *appstate.State) error {
	if s.Clipboard == nil {
		return nil
	}
	var text string
	switch s.ViewMode {
	case appview.Graph:
		if commit, ok := s.SelectedCommit(); ok {
			text = string(commit.ID)
		}
	case appview.Staging:
		if entry, ok := s.Staging.SelectedFile(); ok {
			text = entry.Path
		}
	case appview.Branches:
		if b, ok := s.BranchesView.SelectedBranch(); ok {
			text = b.Name
		}
	}
	if text == "" {
		return nil
	}
	if err := s.Clipboard.Copy(text); err != nil {
		s.SetFlash(fmt.Sprintf("copy failed: %v", err), Now())
		return nil
	}
	s.SetFlash("copied "+text, Now())
	return nil
}

// dispatchSelect activates whatever the currently focused list has
// selected; today that's only the merge branch picker.
func dispatchSelect(ctx context.Context, s *appstate.State) {
	if s.MergePicker != nil {
		_ = dispatchMergePickerConfirm(ctx, s)
	}
}

func dispatchMergePickerConfirm(ctx context.Context, s *appstate.State) error {
	if s.MergePicker == nil {
		return nil
	}
	branch, ok := s.MergePicker.Branches.SelectedItem()
	s.MergePicker = nil
	if !ok {
		return nil
	}
	s.RequestConfirm(appstate.PendingConfirmation{
		Kind:       appstate.ConfirmMergeBranch,
		Prompt:     fmt.Sprintf("merge %s into %s?", branch.Name, s.CurrentBranch),
		BranchName: branch.Name,
	})
	return nil
}

// dispatchConfirmPending carries out whatever destructive operation is
// currently armed, per the confirmation protocol: nothing actually
// mutates the repository until this fires.
func dispatchConfirmPending(ctx context.Context, s *appstate.State) error {
	p := s.PendingConfirm
	if p == nil {
		return nil
	}
	s.PendingConfirm = nil

	switch p.Kind {
	case appstate.ConfirmDiscardFile:
		if err := s.Repo.DiscardFile(ctx, p.Path); err != nil {
			s.SetFlash(fmt.Sprintf("discard failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case appstate.ConfirmDiscardAll:
		if err := s.Repo.DiscardAll(ctx); err != nil {
			s.SetFlash(fmt.Sprintf("discard all failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case appstate.ConfirmDeleteBranch:
		if err := s.Repo.DeleteBranch(ctx, p.BranchName, true); err != nil {
			s.SetFlash(fmt.Sprintf("delete failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case appstate.ConfirmWorktreeRemove:
		if err := s.Repo.RemoveWorktree(ctx, p.WorktreePath, true); err != nil {
			s.SetFlash(fmt.Sprintf("worktree remove failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case appstate.ConfirmStashDrop:
		if err := s.Repo.StashDrop(ctx, p.StashIndex); err != nil {
			s.SetFlash(fmt.Sprintf("stash drop failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case appstate.ConfirmAbortMerge:
		r := &conflict.Resolver{Repo: s.Repo, State: s.Conflicts}
		if err := r.AbortMerge(ctx); err != nil {
			s.SetFlash(fmt.Sprintf("abort failed: %v", err), Now())
			return nil
		}
		s.Conflicts = nil
		s.ViewMode = appview.Graph
		s.MarkDirty()
	case appstate.ConfirmCherryPick:
		result, err := s.Repo.CherryPick(ctx, p.CommitID)
		if err != nil {
			s.SetFlash(fmt.Sprintf("cherry-pick failed: %v", err), Now())
			return nil
		}
		handleMergeResult(ctx, s, result, s.CurrentBranch, string(p.CommitID), "cherry-pick")
	case appstate.ConfirmMergeBranch:
		result, err := s.Repo.MergeBranch(ctx, p.BranchName)
		if err != nil {
			s.SetFlash(fmt.Sprintf("merge failed: %v", err), Now())
			return nil
		}
		handleMergeResult(ctx, s, result, s.CurrentBranch, p.BranchName, "merge")
	}
	return nil
}

// handleMergeResult surfaces a merge/cherry-pick/pull outcome: a flash
// message for up-to-date or success, or a populated Conflicts view for
// conflicts.
func handleMergeResult(ctx context.Context, s *appstate.State, result vcs.MergeResult, ours, theirs, operation string) {
	switch result.Outcome {
	case vcs.MergeUpToDate:
		s.SetFlash("already up to date", Now())
	case vcs.MergeSuccess:
		s.SetFlash(operation+" succeeded", Now())
		s.MarkDirty()
	case vcs.MergeConflicts:
		files, err := conflict.BuildFiles(ctx, s.Repo, result.ConflictedPath)
		if err != nil {
			s.SetFlash(fmt.Sprintf("%s produced conflicts but could not be loaded: %v", operation, err), Now())
			return
		}
		s.Conflicts = conflict.NewFromOperation(files, ours, theirs, operation)
		s.ViewMode = appview.Conflicts
		s.MarkDirty()
	}
}

func dispatchNavigation(s *appstate.State, a action.NavigationAction) {
	switch a {
	case action.MoveUp:
		s.Graph.Rows.SelectPrevious()
	case action.MoveDown:
		s.Graph.Rows.SelectNext()
	case action.PageUp:
		s.Graph.Rows.PageUp()
	case action.PageDown:
		s.Graph.Rows.PageDown()
	case action.GoTop:
		s.Graph.Rows.SelectFirst()
	case action.GoBottom:
		s.Graph.Rows.SelectLast()
	case action.ScrollDiffUp:
		if s.Graph.DiffScrollOffset > 0 {
			s.Graph.DiffScrollOffset--
		}
	case action.ScrollDiffDown:
		s.Graph.DiffScrollOffset++
	}
}

func dispatchGit(ctx context.Context, s *appstate.State, a action.GitAction) error {
	switch a {
	case action.Push:
		if err := s.Repo.Push(ctx); err != nil {
			s.SetFlash(fmt.Sprintf("push failed: %v", err), Now())
			return nil
		}
		s.SetFlash("pushed", Now())
	case action.Pull:
		result, err := s.Repo.Pull(ctx)
		if err != nil {
			s.SetFlash(fmt.Sprintf("pull failed: %v", err), Now())
			return nil
		}
		theirs := "origin/" + s.CurrentBranch
		handleMergeResult(ctx, s, result, s.CurrentBranch, theirs, "pull")
	case action.Fetch:
		if err := s.Repo.Fetch(ctx); err != nil {
			s.SetFlash(fmt.Sprintf("fetch failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
		s.SetFlash("fetched", Now())
	case action.CherryPick:
		commit, ok := s.SelectedCommit()
		if !ok {
			return nil
		}
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:     appstate.ConfirmCherryPick,
			Prompt:   fmt.Sprintf("cherry-pick %s onto %s?", commit.ID.Short(), s.CurrentBranch),
			CommitID: commit.ID,
		})
	case action.AmendCommit:
		if _, err := s.Repo.AmendCommit(ctx, s.Staging.CommitMessage); err != nil {
			s.SetFlash(fmt.Sprintf("amend failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.MergePrompt:
		var candidates []vcs.Branch
		for _, b := range s.Branches {
			if !b.IsHead && !b.IsRemote {
				candidates = append(candidates, b)
			}
		}
		s.MergePicker = &appstate.MergePickerState{Branches: *selection.WithItems(candidates)}
	case action.BranchList:
		s.EnterView(appview.Branches)
	case action.CommitPrompt:
		s.Staging.IsCommitting = true
	case action.StashPrompt:
		// handled by the input flow in the Branches view once its input
		// action is set to InputSaveStash
	case action.OpenBlame:
		// populated by the caller once the selected file's path is known
	case action.CloseBlame:
		s.Blame = nil
	}
	return nil
}

func dispatchStaging(ctx context.Context, s *appstate.State, a action.StagingAction) error {
	st := &s.Staging
	switch a {
	case action.StageFile:
		entry, ok := st.SelectedFile()
		if !ok {
			return nil
		}
		if err := s.Repo.StageFile(ctx, entry.Path); err != nil {
			s.SetFlash(fmt.Sprintf("stage failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.UnstageFile:
		entry, ok := st.SelectedFile()
		if !ok {
			return nil
		}
		if err := s.Repo.UnstageFile(ctx, entry.Path); err != nil {
			s.SetFlash(fmt.Sprintf("unstage failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.StageAll:
		if err := s.Repo.StageAll(ctx); err != nil {
			s.SetFlash(fmt.Sprintf("stage all failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.UnstageAll:
		if err := s.Repo.UnstageAll(ctx); err != nil {
			s.SetFlash(fmt.Sprintf("unstage all failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.SwitchFocus:
		st.CycleFocus()
	case action.StartCommitMessage:
		st.IsCommitting = true
		st.CommitMessage = ""
		st.CursorPosition = 0
	case action.ConfirmCommit:
		if st.CommitMessage == "" {
			return nil
		}
		var err error
		if st.IsAmending {
			_, err = s.Repo.AmendCommit(ctx, st.CommitMessage)
		} else {
			_, err = s.Repo.Commit(ctx, st.CommitMessage)
		}
		if err != nil {
			s.SetFlash(fmt.Sprintf("commit failed: %v", err), Now())
			return nil
		}
		st.IsCommitting = false
		st.IsAmending = false
		st.CommitMessage = ""
		s.MarkDirty()
	case action.CancelCommit:
		st.IsCommitting = false
		st.CommitMessage = ""
	case action.DiscardFile:
		entry, ok := st.SelectedFile()
		if !ok {
			return nil
		}
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:   appstate.ConfirmDiscardFile,
			Prompt: fmt.Sprintf("discard changes to %s?", entry.Path),
			Path:   entry.Path,
		})
	case action.DiscardAll:
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:   appstate.ConfirmDiscardAll,
			Prompt: "discard all working tree changes?",
		})
	case action.StashSelectedFile:
		entry, ok := st.SelectedFile()
		if !ok {
			return nil
		}
		if err := s.Repo.StashSave(ctx, "stash "+entry.Path, true); err != nil {
			s.SetFlash(fmt.Sprintf("stash failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.StashUnstagedFiles:
		if err := s.Repo.StashSave(ctx, "", false); err != nil {
			s.SetFlash(fmt.Sprintf("stash failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	}
	return nil
}

func dispatchBranch(ctx context.Context, s *appstate.State, a action.BranchAction) error {
	bv := &s.BranchesView
	switch a {
	case action.Checkout:
		b, ok := bv.SelectedBranch()
		if !ok {
			return nil
		}
		if err := s.Repo.CheckoutBranch(ctx, b.Name); err != nil {
			s.SetFlash(fmt.Sprintf("checkout failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.Create:
		bv.InputAction = appstate.InputCreateBranch
		bv.Focus = appview.BranchesFocusInput
		bv.InputText = ""
	case action.Delete:
		b, ok := bv.SelectedBranch()
		if !ok {
			return nil
		}
		if b.IsHead {
			s.SetFlash("cannot delete the current branch", Now())
			return nil
		}
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:       appstate.ConfirmDeleteBranch,
			Prompt:     fmt.Sprintf("delete branch %s?", b.Name),
			BranchName: b.Name,
		})
	case action.Rename:
		bv.InputAction = appstate.InputRenameBranch
		bv.Focus = appview.BranchesFocusInput
		if b, ok := bv.SelectedBranch(); ok {
			bv.InputText = b.Name
		}
	case action.ToggleRemote:
		bv.ShowRemote = !bv.ShowRemote
	case action.WorktreeCreate:
		bv.InputAction = appstate.InputCreateWorktree
		bv.Focus = appview.BranchesFocusInput
		bv.InputText = ""
	case action.WorktreeRemove:
		wt, ok := bv.Worktrees.SelectedItem()
		if !ok {
			return nil
		}
		if wt.IsMain {
			s.SetFlash("cannot remove the main worktree", Now())
			return nil
		}
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:         appstate.ConfirmWorktreeRemove,
			Prompt:       fmt.Sprintf("remove worktree %s?", wt.Path),
			WorktreePath: wt.Path,
		})
	case action.StashApply:
		stash, ok := bv.Stashes.SelectedItem()
		if !ok {
			return nil
		}
		if err := s.Repo.StashApply(ctx, stash.Index); err != nil {
			s.SetFlash(fmt.Sprintf("stash apply failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.StashPop:
		stash, ok := bv.Stashes.SelectedItem()
		if !ok {
			return nil
		}
		if err := s.Repo.StashPop(ctx, stash.Index); err != nil {
			s.SetFlash(fmt.Sprintf("stash pop failed: %v", err), Now())
			return nil
		}
		s.MarkDirty()
	case action.StashDrop:
		stash, ok := bv.Stashes.SelectedItem()
		if !ok {
			return nil
		}
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:       appstate.ConfirmStashDrop,
			Prompt:     fmt.Sprintf("drop stash@{%d}?", stash.Index),
			StashIndex: stash.Index,
		})
	case action.StashSave:
		bv.InputAction = appstate.InputSaveStash
		bv.Focus = appview.BranchesFocusInput
		bv.InputText = ""
	case action.NextSection:
		bv.Section = nextBranchesSection(bv.Section)
	case action.PrevSection:
		bv.Section = prevBranchesSection(bv.Section)
	case action.ConfirmInput:
		return confirmBranchInput(ctx, s)
	case action.CancelInput:
		bv.InputAction = appstate.InputNone
		bv.InputText = ""
		bv.Focus = appview.BranchesFocusList
	}
	return nil
}

func nextBranchesSection(sec appview.BranchesSection) appview.BranchesSection {
	switch sec {
	case appview.SectionBranches:
		return appview.SectionWorktrees
	case appview.SectionWorktrees:
		return appview.SectionStashes
	default:
		return appview.SectionBranches
	}
}

func prevBranchesSection(sec appview.BranchesSection) appview.BranchesSection {
	switch sec {
	case appview.SectionStashes:
		return appview.SectionWorktrees
	case appview.SectionWorktrees:
		return appview.SectionBranches
	default:
		return appview.SectionStashes
	}
}

func confirmBranchInput(ctx context.Context, s *appstate.State) error {
	bv := &s.BranchesView
	text := bv.InputText
	inputAction := bv.InputAction
	bv.InputAction = appstate.InputNone
	bv.InputText = ""
	bv.Focus = appview.BranchesFocusList
	if text == "" {
		return nil
	}
	var err error
	switch inputAction {
	case appstate.InputCreateBranch:
		err = s.Repo.CreateBranch(ctx, text)
	case appstate.InputCreateWorktree:
		err = s.Repo.CreateWorktree(ctx, text, text, text)
	case appstate.InputRenameBranch:
		if b, ok := bv.SelectedBranch(); ok {
			err = s.Repo.RenameBranch(ctx, b.Name, text)
		}
	case appstate.InputSaveStash:
		err = s.Repo.StashSave(ctx, text, true)
	}
	if err != nil {
		s.SetFlash(fmt.Sprintf("operation failed: %v", err), Now())
		return nil
	}
	s.MarkDirty()
	return nil
}

func dispatchSearch(s *appstate.State, a action.SearchAction) {
	switch a {
	case action.Open:
		s.Search.Active = true
		s.Search.Query = ""
		s.Search.Cursor = 0
	case action.Close:
		s.Search.Active = false
	case action.ChangeType:
		s.Search.Type = (s.Search.Type + 1) % 3
	case action.NextResult:
		if len(s.Search.Results) > 0 {
			s.Search.Index = (s.Search.Index + 1) % len(s.Search.Results)
		}
	case action.PreviousResult:
		if n := len(s.Search.Results); n > 0 {
			s.Search.Index = (s.Search.Index - 1 + n) % n
		}
	}
}

func dispatchEdit(s *appstate.State, a action.EditAction) {
	// The generic single-line edit actions apply to whichever text field is
	// currently active: the commit message, a Branches-view input, or the
	// search query. Exactly one of these is active at a time.
	switch {
	case s.Staging.IsCommitting:
		applyEdit(a, &s.Staging.CommitMessage, &s.Staging.CursorPosition)
	case s.BranchesView.InputAction != appstate.InputNone:
		applyEdit(a, &s.BranchesView.InputText, &s.BranchesView.InputCursor)
	case s.Search.Active:
		applyEdit(a, &s.Search.Query, &s.Search.Cursor)
	}
}

func applyEdit(a action.EditAction, text *string, cursor *int) {
	runes := []rune(*text)
	switch a.Kind {
	case action.EditInsertChar:
		if *cursor < 0 || *cursor > len(runes) {
			return
		}
		runes = append(runes[:*cursor], append([]rune{a.Char}, runes[*cursor:]...)...)
		*text = string(runes)
		*cursor++
	case action.EditDeleteCharBefore:
		if *cursor <= 0 || *cursor > len(runes) {
			return
		}
		runes = append(runes[:*cursor-1], runes[*cursor:]...)
		*text = string(runes)
		*cursor--
	case action.EditCursorLeft:
		if *cursor > 0 {
			*cursor--
		}
	case action.EditCursorRight:
		if *cursor < len(runes) {
			*cursor++
		}
	}
}

func dispatchConflict(ctx context.Context, s *appstate.State, cc action.ConflictChar) error {
	if s.Conflicts == nil {
		return nil
	}
	cs := s.Conflicts
	r := &conflict.Resolver{Repo: s.Repo, State: cs}

	report := func(flash string, err error) error {
		if err != nil {
			s.SetFlash(flash, Now())
			return nil
		}
		if flash != "" {
			s.SetFlash(flash, Now())
		}
		if allResolved(cs) {
			s.ViewMode = appview.Staging
		}
		return nil
	}

	switch cc.Action {
	case action.ConflictPreviousFile:
		cs.PreviousFile()
	case action.ConflictNextFile:
		cs.NextFile()
	case action.ConflictPreviousSection:
		cs.PreviousSection()
	case action.ConflictNextSection:
		cs.NextSection()
	case action.ConflictSwitchPanelForward:
		cs.SwitchPanel()
	case action.ConflictSwitchPanelReverse:
		cs.SwitchPanelReverse()
	case action.ConflictAcceptOursFile:
		return report(r.AcceptOursFile(ctx))
	case action.ConflictAcceptTheirsFile:
		return report(r.AcceptTheirsFile(ctx))
	case action.ConflictAcceptOursBlock:
		return report(r.AcceptOursBlock(ctx))
	case action.ConflictAcceptTheirsBlock:
		return report(r.AcceptTheirsBlock(ctx))
	case action.ConflictAcceptBoth:
		return report(r.AcceptBoth(ctx))
	case action.ConflictStartEdit:
		r.StartEdit()
	case action.ConflictConfirmEdit:
		return report(r.ConfirmEdit(ctx))
	case action.ConflictCancelEdit:
		cs.CancelEdit()
	case action.ConflictMarkResolved:
		return report(r.MarkResolved(ctx))
	case action.ConflictFinalizeMerge:
		if !allResolved(cs) {
			s.SetFlash("cannot finalize: not every file is resolved", Now())
			return nil
		}
		message := "Merge: " + cs.OperationDescription
		if cs.OperationDescription == "" {
			message = "merge resolution"
		}
		if _, err := r.FinalizeMerge(ctx, message); err != nil {
			s.SetFlash(fmt.Sprintf("finalize failed: %v", err), Now())
			return nil
		}
		s.Conflicts = nil
		s.ViewMode = appview.Graph
		s.MarkDirty()
	case action.ConflictAbortMerge:
		s.RequestConfirm(appstate.PendingConfirmation{
			Kind:   appstate.ConfirmAbortMerge,
			Prompt: "abort the in-progress merge and discard all resolutions?",
		})
	case action.ConflictSetModeFile:
		cs.SetModeFile()
	case action.ConflictSetModeBlock:
		if flash, ok := cs.SetModeBlock(); !ok {
			s.SetFlash(flash, Now())
		}
	case action.ConflictSetModeLine:
		if flash, ok := cs.SetModeLine(); !ok {
			s.SetFlash(flash, Now())
		}
	case action.ConflictToggleLine:
		cs.ToggleLine()
	case action.ConflictLineUp:
		cs.LineUp()
	case action.ConflictLineDown:
		cs.LineDown()
	case action.ConflictResultScrollUp:
		cs.ResultScrollUp()
	case action.ConflictResultScrollDown:
		cs.ResultScrollDown()
	case action.ConflictEditInsertChar:
		cs.EditInsertChar(cc.Char)
	case action.ConflictEditBackspace:
		cs.EditBackspace()
	case action.ConflictEditDelete:
		cs.EditDelete()
	case action.ConflictEditCursorUp:
		cs.EditCursorUp()
	case action.ConflictEditCursorDown:
		cs.EditCursorDown()
	case action.ConflictEditCursorLeft:
		cs.EditCursorLeft()
	case action.ConflictEditCursorRight:
		cs.EditCursorRight()
	case action.ConflictEditNewline:
		cs.EditNewline()
	case action.ConflictActivate, action.ConflictEnterResolve:
		return report(r.Activate(ctx))
	case action.ConflictLeaveView:
		s.ViewMode = appview.Staging
	}
	return nil
}

func allResolved(cs *conflict.State) bool {
	for _, f := range cs.Files {
		if !f.IsResolved {
			return false
		}
	}
	return true
}
