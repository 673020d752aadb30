package conflict

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysim/gitkeeper/internal/vcs"
)

type fakeRepo struct {
	vcs.Repository
	written         map[string]string
	finalized       bool
	aborted         bool
	resolvedSpecial map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{written: map[string]string{}, resolvedSpecial: map[string]bool{}}
}

func (f *fakeRepo) WriteResolvedFile(ctx context.Context, path string, content []byte) error {
	f.written[path] = string(content)
	return nil
}

func (f *fakeRepo) ResolveSpecialFile(ctx context.Context, path string, ours bool) (bool, error) {
	f.resolvedSpecial[path] = ours
	return !ours, nil
}

func (f *fakeRepo) FinalizeMerge(ctx context.Context, message string) (vcs.CommitID, error) {
	f.finalized = true
	return vcs.CommitID("abc1234"), nil
}

func (f *fakeRepo) AbortMerge(ctx context.Context) error {
	f.aborted = true
	return nil
}

func twoFileState() *State {
	return New([]File{
		{
			Path: "a.txt",
			Sections: []Section{
				{Ours: []string{"ours1"}, Theirs: []string{"theirs1"}},
				{Ours: []string{"ours2"}, Theirs: []string{"theirs2"}},
			},
		},
		{
			Path: "b.txt",
			Sections: []Section{
				{Ours: []string{"b-ours"}, Theirs: []string{"b-theirs"}},
			},
		},
	})
}

func TestFileNavigationClampsAndResetsCursor(t *testing.T) {
	s := twoFileState()
	s.PreviousFile()
	assert.Equal(t, 0, s.FileSelected)

	s.SectionSelected = 1
	s.NextFile()
	assert.Equal(t, 1, s.FileSelected)
	assert.Equal(t, 0, s.SectionSelected)

	s.NextFile()
	assert.Equal(t, 1, s.FileSelected, "stays on last file")
}

func TestSectionNavigation(t *testing.T) {
	s := twoFileState()
	assert.Equal(t, 0, s.SectionSelected)
	s.NextSection()
	assert.Equal(t, 1, s.SectionSelected)
	s.NextSection()
	assert.Equal(t, 1, s.SectionSelected, "clamped at last section")
	s.PreviousSection()
	assert.Equal(t, 0, s.SectionSelected)
}

func TestSwitchPanelCycles(t *testing.T) {
	s := twoFileState()
	assert.Equal(t, FocusFileList, s.PanelFocus)
	s.SwitchPanel()
	assert.Equal(t, FocusOurs, s.PanelFocus)
	s.SwitchPanel()
	assert.Equal(t, FocusTheirs, s.PanelFocus)
	s.SwitchPanel()
	assert.Equal(t, FocusResult, s.PanelFocus)
	s.SwitchPanel()
	assert.Equal(t, FocusFileList, s.PanelFocus)

	s.SwitchPanelReverse()
	assert.Equal(t, FocusResult, s.PanelFocus)
}

func TestSetModeBlockRefusedForDeletionConflict(t *testing.T) {
	s := New([]File{{Path: "d.txt", Type: DeletedByUs}})
	flash, ok := s.SetModeBlock()
	assert.False(t, ok)
	assert.Contains(t, flash, "unavailable")
	assert.Equal(t, ModeFile, s.Mode)
}

func TestToggleLineTracksPerLineInclusion(t *testing.T) {
	s := twoFileState()
	s.Mode = ModeLine
	s.PanelFocus = FocusOurs
	s.ToggleLine()
	sec := s.currentSection()
	require.NotNil(t, sec.LineLevel)
	assert.True(t, sec.LineLevel.OursLinesIncluded[0])
	assert.True(t, sec.LineLevel.Touched)

	s.ToggleLine()
	assert.False(t, sec.LineLevel.OursLinesIncluded[0])
}

func TestLineUpDownSpillsAcrossSections(t *testing.T) {
	s := twoFileState()
	s.PanelFocus = FocusOurs
	s.LineDown()
	assert.Equal(t, 1, s.SectionSelected, "single-line ours hunk spills to next section")
	s.LineUp()
	assert.Equal(t, 0, s.SectionSelected)
}

func TestResultScrollClampsAtZero(t *testing.T) {
	s := twoFileState()
	s.ResultScrollUp()
	assert.Equal(t, 0, s.ResultScroll)
	s.ResultScrollDown()
	s.ResultScrollDown()
	s.ResultScrollUp()
	assert.Equal(t, 1, s.ResultScroll)
}

func TestEditBufferInsertBackspaceDelete(t *testing.T) {
	s := &State{EditBuffer: []string{"helo"}, EditCursorLine: 0, EditCursorCol: 3}
	s.EditInsertChar('l')
	assert.Equal(t, "hello", s.EditBuffer[0])
	assert.Equal(t, 4, s.EditCursorCol)

	s.EditBackspace()
	assert.Equal(t, "helo", s.EditBuffer[0])
	assert.Equal(t, 3, s.EditCursorCol)

	s.EditCursorCol = 0
	s.EditDelete()
	assert.Equal(t, "elo", s.EditBuffer[0])
}

func TestEditBackspaceMergesWithPreviousLine(t *testing.T) {
	s := &State{EditBuffer: []string{"foo", "bar"}, EditCursorLine: 1, EditCursorCol: 0}
	s.EditBackspace()
	require.Len(t, s.EditBuffer, 1)
	assert.Equal(t, "foobar", s.EditBuffer[0])
	assert.Equal(t, 0, s.EditCursorLine)
	assert.Equal(t, 3, s.EditCursorCol)
}

func TestEditNewlineSplitsLine(t *testing.T) {
	s := &State{EditBuffer: []string{"hello world"}, EditCursorLine: 0, EditCursorCol: 5}
	s.EditNewline()
	require.Len(t, s.EditBuffer, 2)
	assert.Equal(t, "hello", s.EditBuffer[0])
	assert.Equal(t, " world", s.EditBuffer[1])
	assert.Equal(t, 1, s.EditCursorLine)
	assert.Equal(t, 0, s.EditCursorCol)
}

func TestEditCursorLeftRightWrapAcrossLines(t *testing.T) {
	s := &State{EditBuffer: []string{"ab", "cd"}, EditCursorLine: 1, EditCursorCol: 0}
	s.EditCursorLeft()
	assert.Equal(t, 0, s.EditCursorLine)
	assert.Equal(t, 2, s.EditCursorCol)

	s.EditCursorRight()
	assert.Equal(t, 1, s.EditCursorLine)
	assert.Equal(t, 0, s.EditCursorCol)
}

func TestAcceptOursFileWritesAndAdvances(t *testing.T) {
	repo := newFakeRepo()
	s := twoFileState()
	r := &Resolver{Repo: repo, State: s}

	flash, err := r.AcceptOursFile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, flash, "ours")
	assert.True(t, s.Files[0].IsResolved)
	assert.Equal(t, "ours1\nours2", repo.written["a.txt"])
	assert.Equal(t, 1, s.FileSelected, "advanced to next unresolved file")
}

func TestAcceptBlockOnlyWritesOnceAllSectionsResolved(t *testing.T) {
	repo := newFakeRepo()
	s := twoFileState()
	r := &Resolver{Repo: repo, State: s}

	flash, err := r.AcceptOursBlock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flash, "first hunk alone shouldn't finalize the file")
	assert.False(t, s.Files[0].IsResolved)

	s.NextSection()
	flash, err = r.AcceptTheirsBlock(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, flash)
	assert.True(t, s.Files[0].IsResolved)
	assert.Equal(t, "ours1\ntheirs2", repo.written["a.txt"])
}

func TestAcceptBothKeepsBothSides(t *testing.T) {
	s := New([]File{{Path: "c.txt", Sections: []Section{{Ours: []string{"o"}, Theirs: []string{"t"}}}}})
	repo := newFakeRepo()
	r := &Resolver{Repo: repo, State: s}

	_, err := r.AcceptBoth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "o\nt", repo.written["c.txt"])
}

func TestStartEditSeedsBufferFromResolvedContent(t *testing.T) {
	s := twoFileState()
	s.Files[0].Sections[0].Resolution = Ours
	s.Files[0].Sections[1].Resolution = Theirs
	r := &Resolver{Repo: newFakeRepo(), State: s}

	r.StartEdit()
	assert.True(t, s.IsEditing)
	assert.Equal(t, []string{"ours1", "theirs2"}, s.EditBuffer)
	assert.Equal(t, 0, s.EditCursorLine)
	assert.Equal(t, 0, s.EditCursorCol)
}

func TestConfirmEditWritesBufferAndResolves(t *testing.T) {
	s := twoFileState()
	repo := newFakeRepo()
	r := &Resolver{Repo: repo, State: s}
	s.IsEditing = true
	s.EditBuffer = []string{"hand edited"}

	flash, err := r.ConfirmEdit(context.Background())
	require.NoError(t, err)
	assert.Contains(t, flash, "saved")
	assert.Equal(t, "hand edited", repo.written["a.txt"])
	assert.True(t, s.Files[0].IsResolved)
	assert.False(t, s.IsEditing)
}

func TestMarkResolvedRefusesWhenSectionsIncomplete(t *testing.T) {
	s := twoFileState()
	r := &Resolver{Repo: newFakeRepo(), State: s}
	flash, err := r.MarkResolved(context.Background())
	require.NoError(t, err)
	assert.Contains(t, flash, "not every hunk")
	assert.False(t, s.Files[0].IsResolved)
}

func TestActivateInFileModeAppliesFocusedSide(t *testing.T) {
	s := twoFileState()
	s.PanelFocus = FocusTheirs
	repo := newFakeRepo()
	r := &Resolver{Repo: repo, State: s}

	flash, err := r.Activate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, flash, "theirs")
	assert.Equal(t, "theirs1\ntheirs2", repo.written["a.txt"])
}

func TestActivateInBlockModeTogglesResolutionOnAndOff(t *testing.T) {
	s := twoFileState()
	s.Mode = ModeBlock
	s.PanelFocus = FocusOurs
	r := &Resolver{Repo: newFakeRepo(), State: s}

	_, err := r.Activate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Ours, s.currentSection().Resolution)

	_, err = r.Activate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Unresolved, s.currentSection().Resolution, "pressing again on the same side deselects")
}

func TestActivateInLineModeIsNoOp(t *testing.T) {
	s := twoFileState()
	s.Mode = ModeLine
	s.PanelFocus = FocusOurs
	r := &Resolver{Repo: newFakeRepo(), State: s}

	flash, err := r.Activate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flash)
	assert.Equal(t, Unresolved, s.currentSection().Resolution)
}

func TestFinalizeAndAbortMergeDelegateToRepo(t *testing.T) {
	repo := newFakeRepo()
	r := &Resolver{Repo: repo, State: twoFileState()}

	id, err := r.FinalizeMerge(context.Background(), "merge branch")
	require.NoError(t, err)
	assert.Equal(t, vcs.CommitID("abc1234"), id)
	assert.True(t, repo.finalized)

	require.NoError(t, r.AbortMerge(context.Background()))
	assert.True(t, repo.aborted)
}

func TestAdvanceToNextUnresolvedWraps(t *testing.T) {
	s := twoFileState()
	s.Files[0].IsResolved = true
	s.Files[1].IsResolved = false
	s.FileSelected = 1
	s.advanceToNextUnresolved()
	assert.Equal(t, 1, s.FileSelected, "stays put when no other unresolved file exists")

	s.Files = append(s.Files, File{Path: "c.txt"})
	s.advanceToNextUnresolved()
	assert.Equal(t, 2, s.FileSelected)
}

func TestAcceptOursFileOnTreeConflictDelegatesToResolveSpecialFile(t *testing.T) {
	repo := newFakeRepo()
	s := New([]File{{Path: "deleted.txt", Type: DeletedByThem}})
	r := &Resolver{Repo: repo, State: s}

	flash, err := r.AcceptOursFile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, flash, "ours")
	assert.True(t, repo.resolvedSpecial["deleted.txt"])
	assert.True(t, s.Files[0].IsResolved)
}

func TestAcceptBothRefusedForTreeConflict(t *testing.T) {
	repo := newFakeRepo()
	s := New([]File{{Path: "both-added.txt", Type: BothAdded}})
	r := &Resolver{Repo: repo, State: s}

	flash, err := r.AcceptBoth(context.Background())
	require.NoError(t, err)
	assert.Contains(t, flash, "not applicable")
	assert.False(t, s.Files[0].IsResolved)
}

func TestSplitConflictMarkersAssignsContextWithoutDuplication(t *testing.T) {
	merged := strings.Join([]string{
		"package main",
		"<<<<<<< ours",
		"const a = 1",
		"=======",
		"const a = 2",
		">>>>>>> theirs",
		"",
		"func shared() {}",
		"",
		"<<<<<<< ours",
		"const b = 1",
		"=======",
		"const b = 2",
		">>>>>>> theirs",
		"// trailing",
	}, "\n")

	sections := splitConflictMarkers(merged)
	require.Len(t, sections, 2)
	assert.Equal(t, []string{"package main"}, sections[0].ContextBefore)
	assert.Equal(t, []string{"const a = 1"}, sections[0].Ours)
	assert.Equal(t, []string{"const a = 2"}, sections[0].Theirs)
	assert.Equal(t, []string{"", "func shared() {}", ""}, sections[0].ContextAfter)
	assert.Empty(t, sections[1].ContextBefore, "shared context belongs to the previous section only")
	assert.Equal(t, []string{"const b = 1"}, sections[1].Ours)
	assert.Equal(t, []string{"const b = 2"}, sections[1].Theirs)
	assert.Equal(t, []string{"// trailing"}, sections[1].ContextAfter)
}

func TestBuildFilesClassifiesTreeConflictsAndTextConflicts(t *testing.T) {
	repo := &buildFilesFakeRepo{
		kinds: map[string]vcs.ConflictKind{
			"gone.txt":  vcs.ConflictDeletedByUs,
			"text.txt":  vcs.ConflictBothModified,
		},
		merged: map[string]string{
			"text.txt": "<<<<<<< ours\nmine\n=======\ntheirs\n>>>>>>> theirs\n",
		},
	}

	files, err := BuildFiles(context.Background(), repo, []string{"gone.txt", "text.txt"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, DeletedByUs, files[0].Type)
	assert.Empty(t, files[0].Sections)
	assert.Equal(t, Normal, files[1].Type)
	require.Len(t, files[1].Sections, 1)
	assert.Equal(t, []string{"mine"}, files[1].Sections[0].Ours)
	assert.Equal(t, []string{"theirs"}, files[1].Sections[0].Theirs)
}

type buildFilesFakeRepo struct {
	vcs.Repository
	kinds  map[string]vcs.ConflictKind
	merged map[string]string
}

func (f *buildFilesFakeRepo) ConflictKind(ctx context.Context, path string) (vcs.ConflictKind, error) {
	return f.kinds[path], nil
}

func (f *buildFilesFakeRepo) ConflictedFileContent(ctx context.Context, path string) (ours, theirs, merged []byte, err error) {
	return nil, nil, []byte(f.merged[path]), nil
}
