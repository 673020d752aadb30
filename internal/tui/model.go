package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/polysim/gitkeeper/internal/action"
	"github.com/polysim/gitkeeper/internal/appstate"
	"github.com/polysim/gitkeeper/internal/appview"
	"github.com/polysim/gitkeeper/internal/config"
	"github.com/polysim/gitkeeper/internal/dispatch"
	"github.com/polysim/gitkeeper/internal/eventloop"
	"github.com/polysim/gitkeeper/internal/state"
)

// tickMsg is sent on each event-loop wakeup, at whatever interval
// eventloop.TickIntervalMillis currently wants.
type tickMsg time.Time

// tickCmd schedules the next tickMsg after the adaptive interval for s.
func tickCmd(s *appstate.State) tea.Cmd {
	d := time.Duration(eventloop.TickIntervalMillis(s)) * time.Millisecond
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the root Bubble Tea model: it wraps the application state and
// drives the dispatcher, the refresh cycle and the renderer.
type Model struct {
	ctx   context.Context
	state *appstate.State
	cfg   *config.Config

	width, height int
	ready         bool
}

// New builds the root model for an already-opened repository.
func New(ctx context.Context, s *appstate.State, cfg *config.Config) Model {
	return Model{ctx: ctx, state: s, cfg: cfg}
}

// Init kicks off the first refresh and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd(m.state))
}

// refreshCmd runs a single refresh pass and reports any error as a flash
// message rather than failing the program.
func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		if err := eventloop.Refresh(m.ctx, m.state); err != nil {
			return refreshErrMsg{err}
		}
		return nil
	}
}

type refreshErrMsg struct{ err error }

// isEditing reports whether the active view currently has a text input
// focused, so key decoding routes runes to it instead of to bindings.
func (m Model) isEditing() bool {
	switch m.state.ViewMode {
	case appview.Staging:
		return m.state.Staging.IsCommitting
	case appview.Branches:
		return m.state.BranchesView.InputAction != appstate.InputNone
	case appview.Conflicts:
		return m.state.Conflicts != nil && m.state.Conflicts.IsEditing
	}
	return false
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.applyLayout()
		return m, nil

	case tea.KeyMsg:
		act := DecodeKey(m.state.ViewMode, m.isEditing(), msg)
		if act.Kind == action.KindNone {
			return m, nil
		}
		if err := dispatch.Dispatch(m.ctx, m.state, act); err != nil {
			m.state.SetFlash(err.Error(), eventloop.Now())
		}
		if m.state.ShouldQuit {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.state.Dirty {
			cmd = m.refreshCmd()
		}
		return m, cmd

	case refreshErrMsg:
		if msg.err != nil {
			m.state.SetFlash(msg.err.Error(), eventloop.Now())
		}
		return m, nil

	case tickMsg:
		m.state.ExpireFlash(eventloop.Now())
		var cmd tea.Cmd
		if m.state.Dirty {
			cmd = m.refreshCmd()
		}
		return m, tea.Batch(cmd, tickCmd(m.state))
	}

	return m, nil
}

// applyLayout resizes the selection viewports to match the current
// terminal dimensions, leaving room for the header, tab bar and footer.
func (m *Model) applyLayout() {
	body := m.height - headerHeight - footerHeight
	if body < 1 {
		body = 1
	}
	m.state.Graph.Rows.SetVisibleHeight(body)
	m.state.Staging.Unstaged.SetVisibleHeight(body / 2)
	m.state.Staging.Staged.SetVisibleHeight(body / 2)
	m.state.BranchesView.LocalBranches.SetVisibleHeight(body)
	m.state.BranchesView.RemoteBranches.SetVisibleHeight(body)
	m.state.BranchesView.Worktrees.SetVisibleHeight(body)
	m.state.BranchesView.Stashes.SetVisibleHeight(body)
	if m.state.MergePicker != nil {
		m.state.MergePicker.Branches.SetVisibleHeight(body)
	}
}

// SaveState persists the user's last view and selection for this
// repository, called by the CLI entry point as the program is about to
// exit.
func (m Model) SaveState() {
	rs := state.RepoState{LastView: viewName(m.state.ViewMode)}
	if c, ok := m.state.SelectedCommit(); ok {
		rs.SelectedCommit = string(c.ID)
	}
	if b, ok := m.state.BranchesView.SelectedBranch(); ok {
		rs.SelectedBranch = b.Name
	}
	_ = state.SetRepoState(m.state.RepoPath, rs)
}

func viewName(mode appview.Mode) string {
	switch mode {
	case appview.Staging:
		return "staging"
	case appview.Branches:
		return "branches"
	case appview.Conflicts:
		return "conflicts"
	case appview.Help:
		return "help"
	default:
		return "graph"
	}
}

// RestoreView sets s's initial view mode from a previously persisted
// RepoState, so reopening a repository returns to roughly where the user
// left off. Unknown or empty view names leave s at its default (Graph).
func RestoreView(s *appstate.State, rs state.RepoState) {
	switch rs.LastView {
	case "staging":
		s.ViewMode = appview.Staging
	case "branches":
		s.ViewMode = appview.Branches
	case "conflicts":
		s.ViewMode = appview.Conflicts
	case "help":
		s.ViewMode = appview.Help
	}
}
