package gitcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysim/gitkeeper/internal/vcs"
)

func TestParseLogSplitsRecordsAndFields(t *testing.T) {
	r := &Repository{}
	raw := "abc123\x1fdef456\x1fJane\x1fjane@example.com\x1f1700000000\x1fHEAD -> main\x1fFix bug\n\x1e"
	commits := r.parseLog(raw)
	require.Len(t, commits, 1)
	c := commits[0]
	assert.Equal(t, vcs.CommitID("abc123"), c.ID)
	assert.Equal(t, []vcs.CommitID{"def456"}, c.Parents)
	assert.Equal(t, "Jane", c.Author)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Equal(t, []string{"HEAD -> main"}, c.Refs)
	assert.Equal(t, "Fix bug", c.Message)
}

func TestExtractStashBranch(t *testing.T) {
	assert.Equal(t, "main", extractStashBranch("WIP on main: abc123 fix"))
	assert.Equal(t, "feature", extractStashBranch("On feature: my message"))
	assert.Equal(t, "", extractStashBranch("no prefix here"))
}

func TestParseUnifiedDiffClassifiesLinesAndTracksLineNumbers(t *testing.T) {
	raw := "@@ -1,2 +1,3 @@\n context line\n-removed line\n+added line\n+another added\n"
	diff := parseUnifiedDiff("file.txt", raw)
	require.Len(t, diff.Hunks, 1)
	lines := diff.Hunks[0].Lines
	require.Len(t, lines, 4)
	assert.Equal(t, vcs.DiffContext, lines[0].Kind)
	assert.Equal(t, vcs.DiffRemove, lines[1].Kind)
	assert.Equal(t, vcs.DiffAdd, lines[2].Kind)
	assert.Equal(t, 1, lines[0].OldNo)
	assert.Equal(t, 1, lines[0].NewNo)
}

func TestParseUnifiedDiffDetectsBinary(t *testing.T) {
	diff := parseUnifiedDiff("image.png", "Binary files a/image.png and b/image.png differ\n")
	assert.True(t, diff.Binary)
	assert.Empty(t, diff.Hunks)
}

func TestStatusCodeMapsPorcelainLetters(t *testing.T) {
	assert.Equal(t, vcs.StatusAdded, statusCode('A'))
	assert.Equal(t, vcs.StatusModified, statusCode('M'))
	assert.Equal(t, vcs.StatusDeleted, statusCode('D'))
	assert.Equal(t, vcs.StatusUntracked, statusCode('?'))
	assert.Equal(t, vcs.StatusUnmodified, statusCode(' '))
}

func TestFirstNumberParsesHunkRanges(t *testing.T) {
	assert.Equal(t, 12, firstNumber("12,5"))
	assert.Equal(t, 1, firstNumber("+1"))
}
