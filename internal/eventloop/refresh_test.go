package eventloop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysim/gitkeeper/internal/appstate"
	"github.com/polysim/gitkeeper/internal/vcs"
)

type fakeRepo struct {
	vcs.Repository
	branch  string
	commits []vcs.Commit
	status  []vcs.StatusEntry
}

func (f *fakeRepo) CurrentBranch(ctx context.Context) (string, error) { return f.branch, nil }
func (f *fakeRepo) LogAllRefs(ctx context.Context, max int) ([]vcs.Commit, error) {
	return f.commits, nil
}
func (f *fakeRepo) Status(ctx context.Context) ([]vcs.StatusEntry, error) { return f.status, nil }
func (f *fakeRepo) CommitFiles(ctx context.Context, id vcs.CommitID) ([]vcs.DiffFile, error) {
	return nil, nil
}
func (f *fakeRepo) Branches(ctx context.Context) ([]vcs.Branch, error) { return nil, nil }

func TestRefreshPopulatesStateFromRepository(t *testing.T) {
	repo := &fakeRepo{
		branch: "main",
		commits: []vcs.Commit{
			{ID: "c2", Parents: []vcs.CommitID{"c1"}},
			{ID: "c1"},
		},
		status: []vcs.StatusEntry{
			{Path: "a.go", Staged: vcs.StatusModified},
			{Path: "b.go", Worktree: vcs.StatusModified},
		},
	}
	s := appstate.New(repo, "/repo")

	require.NoError(t, Refresh(context.Background(), s))

	assert.Equal(t, "main", s.CurrentBranch)
	assert.Equal(t, 2, s.Graph.Rows.Len())
	assert.False(t, s.Dirty)
	assert.Equal(t, 1, s.Staging.Staged.Len())
	assert.Equal(t, 1, s.Staging.Unstaged.Len())
}

func TestRefreshWithoutRepoOnlyClearsDirty(t *testing.T) {
	s := appstate.New(nil, "/repo")
	require.NoError(t, Refresh(context.Background(), s))
	assert.False(t, s.Dirty)
}

func TestTickIntervalMillisShortensWhileFlashActive(t *testing.T) {
	s := appstate.New(nil, "/repo")
	assert.Equal(t, IdleTickInterval, TickIntervalMillis(s))
	s.SetFlash("saved", Now())
	assert.Equal(t, FlashTickInterval, TickIntervalMillis(s))
}
