// Package eventloop drives the adaptive-timeout refresh cycle: reloading
// repository data into appstate.State whenever it's marked dirty, and
// picking a shorter poll interval while a flash message is visible so it
// disappears close to on time.
package eventloop

import (
	"context"
	"time"

	"github.com/polysim/gitkeeper/internal/appstate"
	"github.com/polysim/gitkeeper/internal/graph"
	"github.com/polysim/gitkeeper/internal/selection"
	"github.com/polysim/gitkeeper/internal/vcs"
)

// Now returns the current time; swapped out in tests for determinism.
var Now = time.Now

// FlashTickInterval is how often the loop wakes up while a flash message is
// showing, so it disappears close to on time.
const FlashTickInterval = 100

// IdleTickInterval is how often the loop wakes up otherwise.
const IdleTickInterval = 250

// TickIntervalMillis returns the poll interval the event loop should use
// for its next wait, in milliseconds.
func TickIntervalMillis(s *appstate.State) int {
	if s.HasFlash {
		return FlashTickInterval
	}
	return IdleTickInterval
}

// Refresh reloads branch, graph, status and commit-file data from the
// repository and clears the dirty flag. With a nil s.Repo it only clears
// the dirty flag (used in tests that don't exercise the repository).
func Refresh(ctx context.Context, s *appstate.State) error {
	if s.Repo == nil {
		s.MarkClean()
		return nil
	}

	if branch, err := s.Repo.CurrentBranch(ctx); err == nil {
		s.CurrentBranch = branch
	}

	commits, err := s.Repo.LogAllRefs(ctx, appstate.MaxCommits)
	if err != nil {
		commits = nil
	}
	filtered := s.GraphFilter.FilterCommits(commits)
	rows := graph.Build(filtered)
	prevIndex := s.Graph.Rows.SelectedIndex()
	s.Graph.Rows = *selection.WithItems(rows)
	if prevIndex < len(rows) {
		s.Graph.Rows.Select(prevIndex)
	} else if len(rows) > 0 {
		s.Graph.Rows.SelectLast()
	}

	entries, err := s.Repo.Status(ctx)
	if err != nil {
		entries = nil
	}
	s.StatusEntries = entries
	splitStatus(s, entries)

	if row, ok := s.Graph.Rows.SelectedItem(); ok {
		files, err := s.Repo.CommitFiles(ctx, row.Node.ID)
		if err == nil {
			s.Graph.CommitFiles = files
			if s.Graph.FileSelectedIndex >= len(files) {
				s.Graph.FileSelectedIndex = 0
			}
		}
	} else {
		s.Graph.CommitFiles = nil
		s.Graph.FileSelectedIndex = 0
	}

	branches, err := s.Repo.Branches(ctx)
	if err == nil {
		s.Branches = branches
	}

	s.ExpireFlash(Now())
	s.MarkClean()
	return nil
}

func splitStatus(s *appstate.State, entries []vcs.StatusEntry) {
	var staged, unstaged []vcs.StatusEntry
	for _, e := range entries {
		if e.IsStaged() {
			staged = append(staged, e)
		}
		if e.IsUnstaged() {
			unstaged = append(unstaged, e)
		}
	}
	s.Staging.Staged.SetItems(staged)
	s.Staging.Unstaged.SetItems(unstaged)
}
