package appstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysim/gitkeeper/internal/appview"
	"github.com/polysim/gitkeeper/internal/diffcache"
	"github.com/polysim/gitkeeper/internal/vcs"
)

func TestNewStateStartsDirtyOnGraphView(t *testing.T) {
	s := New(nil, "/repo")
	assert.True(t, s.Dirty)
	assert.Equal(t, appview.Graph, s.ViewMode)
	assert.NotNil(t, s.DiffCache)
}

func TestMarkDirtyClearsWorkingDirectoryCache(t *testing.T) {
	s := New(nil, "/repo")
	s.MarkClean()
	assert.False(t, s.Dirty)
	s.DiffCache.Insert(diffcache.Key{Commit: vcs.Zero, Path: "a.go"}, vcs.FileDiff{})
	s.MarkDirty()
	assert.True(t, s.Dirty)
	assert.Equal(t, 0, s.DiffCache.Len())
}

func TestFlashMessageLifecycle(t *testing.T) {
	s := New(nil, "/repo")
	start := time.Now()
	s.SetFlash("saved", start)
	assert.True(t, s.HasFlash)
	assert.Equal(t, "saved", s.FlashMessage)

	s.ExpireFlash(start.Add(time.Second))
	assert.True(t, s.HasFlash, "not yet expired")

	s.ExpireFlash(start.Add(4 * time.Second))
	assert.False(t, s.HasFlash, "expired after three seconds")
}

func TestEnterViewRemembersPreviousForHelp(t *testing.T) {
	s := New(nil, "/repo")
	s.EnterView(appview.Staging)
	s.EnterView(appview.Help)
	assert.Equal(t, appview.Help, s.ViewMode)

	s.LeaveHelp()
	assert.Equal(t, appview.Staging, s.ViewMode)
}

func TestLeaveHelpFallsBackToGraphWithNoPriorView(t *testing.T) {
	s := New(nil, "/repo")
	s.ViewMode = appview.Help
	s.LeaveHelp()
	assert.Equal(t, appview.Graph, s.ViewMode)
}

func TestStagingCycleFocus(t *testing.T) {
	var st StagingState
	assert.Equal(t, appview.FocusUnstaged, st.Focus)
	st.CycleFocus()
	assert.Equal(t, appview.FocusStaged, st.Focus)
	st.CycleFocus()
	assert.Equal(t, appview.FocusDiff, st.Focus)
	st.CycleFocus()
	assert.Equal(t, appview.FocusUnstaged, st.Focus)
}

func TestRequestConfirmArmsAndClearConfirmDisarms(t *testing.T) {
	s := New(nil, "/repo")
	assert.Nil(t, s.PendingConfirm)

	s.RequestConfirm(PendingConfirmation{Kind: ConfirmDiscardFile, Path: "a.txt"})
	require.NotNil(t, s.PendingConfirm)
	assert.Equal(t, ConfirmDiscardFile, s.PendingConfirm.Kind)
	assert.Equal(t, "a.txt", s.PendingConfirm.Path)

	s.ClearConfirm()
	assert.Nil(t, s.PendingConfirm)
}
