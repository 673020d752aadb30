// Package tui is the bubbletea terminal-port adapter: it decodes key events
// into action.Action values, drives the dispatcher and refresh cycle, and
// renders appstate.State.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/polysim/gitkeeper/internal/action"
	"github.com/polysim/gitkeeper/internal/appview"
)

// DecodeKey maps a key event onto an Action given the active view and
// whether a text field currently has focus. Context-specific bindings are
// checked before the global ones, mirroring the teacher's
// most-specific-context-wins keymap resolution.
func DecodeKey(mode appview.Mode, editing bool, msg tea.KeyMsg) action.Action {
	if editing {
		if a, ok := decodeTextInput(msg); ok {
			return a
		}
	}

	switch mode {
	case appview.Graph:
		if a, ok := decodeGraphKey(msg); ok {
			return a
		}
	case appview.Staging:
		if a, ok := decodeStagingKey(msg); ok {
			return a
		}
	case appview.Branches:
		if a, ok := decodeBranchesKey(msg); ok {
			return a
		}
	case appview.Conflicts:
		if a, ok := decodeConflictKey(msg); ok {
			return a
		}
	}

	return decodeGlobalKey(msg)
}

func decodeTextInput(msg tea.KeyMsg) (action.Action, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return action.Ed(action.EditAction{Kind: action.EditInsertChar, Char: msg.Runes[0]}), true
		}
	case tea.KeySpace:
		return action.Ed(action.EditAction{Kind: action.EditInsertChar, Char: ' '}), true
	case tea.KeyBackspace:
		return action.Ed(action.EditAction{Kind: action.EditDeleteCharBefore}), true
	case tea.KeyLeft:
		return action.Ed(action.EditAction{Kind: action.EditCursorLeft}), true
	case tea.KeyRight:
		return action.Ed(action.EditAction{Kind: action.EditCursorRight}), true
	}
	return action.Action{}, false
}

func decodeGlobalKey(msg tea.KeyMsg) action.Action {
	switch msg.String() {
	case "q", "ctrl+c":
		return action.Quit()
	case "r":
		return action.Refresh()
	case "1":
		return action.SwitchView(appview.Graph)
	case "2":
		return action.SwitchView(appview.Staging)
	case "3":
		return action.SwitchView(appview.Branches)
	case "?":
		return action.Action{Kind: action.KindToggleHelp}
	}
	return action.None()
}

func decodeGraphKey(msg tea.KeyMsg) (action.Action, bool) {
	switch msg.String() {
	case "j", "down":
		return action.Nav(action.MoveDown), true
	case "k", "up":
		return action.Nav(action.MoveUp), true
	case "pgdown":
		return action.Nav(action.PageDown), true
	case "pgup":
		return action.Nav(action.PageUp), true
	case "g":
		return action.Nav(action.GoTop), true
	case "G":
		return action.Nav(action.GoBottom), true
	case "J":
		return action.Nav(action.ScrollDiffDown), true
	case "K":
		return action.Nav(action.ScrollDiffUp), true
	case "p":
		return action.GitA(action.Push), true
	case "P":
		return action.GitA(action.Pull), true
	case "f":
		return action.GitA(action.Fetch), true
	case "m":
		return action.GitA(action.MergePrompt), true
	case "b":
		return action.GitA(action.BranchList), true
	case "c":
		return action.GitA(action.CherryPick), true
	case "B":
		return action.GitA(action.OpenBlame), true
	}
	return action.Action{}, false
}

func decodeStagingKey(msg tea.KeyMsg) (action.Action, bool) {
	switch msg.String() {
	case "j", "down":
		return action.Nav(action.MoveDown), true
	case "k", "up":
		return action.Nav(action.MoveUp), true
	case "tab":
		return action.Stage(action.SwitchFocus), true
	case "s":
		return action.Stage(action.StageFile), true
	case "u":
		return action.Stage(action.UnstageFile), true
	case "S":
		return action.Stage(action.StageAll), true
	case "U":
		return action.Stage(action.UnstageAll), true
	case "c":
		return action.Stage(action.StartCommitMessage), true
	case "enter":
		return action.Stage(action.ConfirmCommit), true
	case "esc":
		return action.Stage(action.CancelCommit), true
	case "D":
		return action.Stage(action.DiscardFile), true
	case "z":
		return action.Stage(action.StashSelectedFile), true
	}
	return action.Action{}, false
}

func decodeBranchesKey(msg tea.KeyMsg) (action.Action, bool) {
	switch msg.String() {
	case "j", "down":
		return action.Nav(action.MoveDown), true
	case "k", "up":
		return action.Nav(action.MoveUp), true
	case "enter":
		return action.Br(action.Checkout), true
	case "n":
		return action.Br(action.Create), true
	case "d":
		return action.Br(action.Delete), true
	case "R":
		return action.Br(action.Rename), true
	case "w":
		return action.Br(action.ToggleRemote), true
	case "tab":
		return action.Br(action.NextSection), true
	case "shift+tab":
		return action.Br(action.PrevSection), true
	case "esc":
		return action.Br(action.CancelInput), true
	}
	return action.Action{}, false
}

func decodeConflictKey(msg tea.KeyMsg) (action.Action, bool) {
	switch msg.String() {
	case "j", "down":
		return action.Conf(action.ConflictNextSection, 0), true
	case "k", "up":
		return action.Conf(action.ConflictPreviousSection, 0), true
	case "tab":
		return action.Conf(action.ConflictNextFile, 0), true
	case "shift+tab":
		return action.Conf(action.ConflictPreviousFile, 0), true
	case "left", "right":
		return action.Conf(action.ConflictSwitchPanelForward, 0), true
	case "o":
		return action.Conf(action.ConflictAcceptOursBlock, 0), true
	case "t":
		return action.Conf(action.ConflictAcceptTheirsBlock, 0), true
	case "a":
		return action.Conf(action.ConflictAcceptBoth, 0), true
	case "enter":
		return action.Conf(action.ConflictActivate, 0), true
	case "e":
		return action.Conf(action.ConflictStartEdit, 0), true
	case "1":
		return action.Conf(action.ConflictSetModeFile, 0), true
	case "2":
		return action.Conf(action.ConflictSetModeBlock, 0), true
	case "3":
		return action.Conf(action.ConflictSetModeLine, 0), true
	case " ":
		return action.Conf(action.ConflictToggleLine, 0), true
	case "ctrl+s":
		return action.Conf(action.ConflictFinalizeMerge, 0), true
	case "esc":
		return action.Conf(action.ConflictLeaveView, 0), true
	}
	return action.Action{}, false
}
