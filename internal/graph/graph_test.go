package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysim/gitkeeper/internal/vcs"
)

func TestBuildLinearHistoryStaysInColumnZero(t *testing.T) {
	commits := []vcs.Commit{
		{ID: "c3", Parents: []vcs.CommitID{"c2"}},
		{ID: "c2", Parents: []vcs.CommitID{"c1"}},
		{ID: "c1", Parents: nil},
	}

	rows := Build(commits)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 0, row.Node.Column, "linear history must never branch out of column 0")
	}
	assert.NotNil(t, rows[0].Connection)
	assert.Nil(t, rows[2].Connection, "the last row has no connection to a further row")
}

func TestBuildMergeOpensAndClosesSecondColumn(t *testing.T) {
	// m is a merge of feature (f1) into main, whose own parent is base.
	commits := []vcs.Commit{
		{ID: "m", Parents: []vcs.CommitID{"base", "f1"}},
		{ID: "f1", Parents: []vcs.CommitID{"base"}},
		{ID: "base", Parents: nil},
	}

	rows := Build(commits)
	require.Len(t, rows, 3)

	// the merge commit's connection row must reserve a second column for
	// the side branch it just pulled in.
	require.NotNil(t, rows[0].Connection)
	assert.True(t, len(rows[0].Connection.Cells) >= 2)

	// f1 is laid out in the column the merge opened for it.
	assert.Equal(t, 1, rows[1].Node.Column)

	// both branch tips converge back onto base's column.
	assert.Equal(t, 0, rows[2].Node.Column)
}

func TestDetermineColorIndexReusesBranchColor(t *testing.T) {
	commits := []vcs.Commit{
		{ID: "c2", Parents: []vcs.CommitID{"c1"}, Refs: []string{"main"}},
		{ID: "c1", Refs: []string{"main"}},
	}
	rows := Build(commits)
	assert.Equal(t, rows[0].Node.ColorIndex, rows[1].Node.ColorIndex)
}
