// Package graph lays out a commit DAG into fixed-width columns with lane
// colors and connector glyphs, the way `git log --graph` draws its ASCII
// art but computed ahead of render time so the TUI can paint it cell by
// cell.
package graph

import "github.com/polysim/gitkeeper/internal/vcs"

// EdgeType classifies one drawn segment within a graph cell.
type EdgeType int

const (
	// Vertical is a continuous vertical line (│).
	Vertical EdgeType = iota
	// ForkRight is a curve branching right from a commit (╭─).
	ForkRight
	// ForkLeft is a curve branching left from a commit (─╮).
	ForkLeft
	// MergeFromRight is an incoming curve from the right (╰─).
	MergeFromRight
	// MergeFromLeft is an incoming curve from the left (─╯).
	MergeFromLeft
	// Horizontal is a horizontal pass-through segment (─).
	Horizontal
)

// Cell is one column's drawn segment on a row.
type Cell struct {
	Edge       EdgeType
	ColorIndex int
}

// ConnectionRow is the inter-row connector line drawn between a commit and
// the next one below it.
type ConnectionRow struct {
	Cells []*Cell // nil entries mean "nothing drawn in this column"
}

// Node is a commit enriched with its graph placement.
type Node struct {
	vcs.Commit
	Column     int
	ColorIndex int
}

// Row is one rendered line of the graph: a commit node, the cells drawn on
// its own row, and the connector row leading to the next commit.
type Row struct {
	Node       Node
	Cells      []*Cell
	Connection *ConnectionRow // nil for the last row
}

type columnState struct {
	expectedID  vcs.CommitID
	hasExpected bool
	colorIndex  int
}

// Build lays out commits (already topologically/time sorted, most recent
// first, as returned by a Repository's Log) into graph rows.
func Build(commits []vcs.Commit) []Row {
	rows := make([]Row, 0, len(commits))

	var activeColumns []columnState
	branchColors := make(map[string]int)
	nextColorIndex := 0

	for idx, c := range commits {
		id := c.ID

		column := findOrAssignColumn(&activeColumns, id)

		refs := c.Refs

		colorIndex := determineColorIndex(column, refs, branchColors, &nextColorIndex, activeColumns)

		if column < len(activeColumns) {
			activeColumns[column].colorIndex = colorIndex
		}

		node := Node{Commit: c, Column: column, ColorIndex: colorIndex}

		cells := buildCommitCells(column, activeColumns)

		if column < len(activeColumns) {
			activeColumns[column].hasExpected = false
		}

		assignments := assignParentColumns(&activeColumns, column, c, colorIndex)

		var connection *ConnectionRow
		if idx+1 < len(commits) {
			cr := buildConnectionRow(activeColumns, assignments)
			connection = &cr
		}

		rows = append(rows, Row{Node: node, Cells: cells, Connection: connection})
	}

	return rows
}

func buildCommitCells(commitCol int, active []columnState) []*Cell {
	numCols := len(active)
	if commitCol+1 > numCols {
		numCols = commitCol + 1
	}
	cells := make([]*Cell, numCols)
	for col := 0; col < numCols; col++ {
		switch {
		case col == commitCol:
			cells[col] = nil
		case col < len(active) && active[col].hasExpected:
			cells[col] = &Cell{Edge: Vertical, ColorIndex: active[col].colorIndex}
		default:
			cells[col] = nil
		}
	}
	return cells
}

type parentAssignment struct {
	fromCol, toCol, colorIndex int
}

func assignParentColumns(active *[]columnState, commitCol int, c vcs.Commit, commitColor int) []parentAssignment {
	var assignments []parentAssignment

	for i, parentID := range c.Parents {
		if i == 0 {
			for len(*active) <= commitCol {
				*active = append(*active, columnState{})
			}
			(*active)[commitCol].expectedID = parentID
			(*active)[commitCol].hasExpected = true
			(*active)[commitCol].colorIndex = commitColor
			assignments = append(assignments, parentAssignment{commitCol, commitCol, commitColor})
		} else {
			parentCol := assignNewColumn(active, parentID)
			(*active)[parentCol].colorIndex = commitColor
			assignments = append(assignments, parentAssignment{commitCol, parentCol, commitColor})
		}
	}

	return assignments
}

func buildConnectionRow(active []columnState, assignments []parentAssignment) ConnectionRow {
	numCols := len(active)
	cells := make([]*Cell, numCols)

	for col, state := range active {
		if state.hasExpected {
			cells[col] = &Cell{Edge: Vertical, ColorIndex: state.colorIndex}
		}
	}

	for _, a := range assignments {
		if a.fromCol == a.toCol {
			continue
		}
		if a.toCol > a.fromCol {
			cells[a.fromCol] = &Cell{Edge: MergeFromRight, ColorIndex: a.colorIndex}
			for col := a.fromCol + 1; col < a.toCol; col++ {
				cells[col] = &Cell{Edge: Horizontal, ColorIndex: a.colorIndex}
			}
			cells[a.toCol] = &Cell{Edge: ForkRight, ColorIndex: a.colorIndex}
		} else {
			cells[a.fromCol] = &Cell{Edge: MergeFromLeft, ColorIndex: a.colorIndex}
			for col := a.toCol + 1; col < a.fromCol; col++ {
				cells[col] = &Cell{Edge: Horizontal, ColorIndex: a.colorIndex}
			}
			cells[a.toCol] = &Cell{Edge: ForkLeft, ColorIndex: a.colorIndex}
		}
	}

	return ConnectionRow{Cells: cells}
}

func determineColorIndex(column int, refs []string, branchColors map[string]int, nextColorIndex *int, active []columnState) int {
	if len(refs) > 0 {
		first := refs[0]
		if color, ok := branchColors[first]; ok {
			return color
		}
		color := *nextColorIndex
		branchColors[first] = color
		*nextColorIndex++
		return color
	}

	if column < len(active) {
		if active[column].colorIndex > 0 || column == 0 {
			return active[column].colorIndex
		}
	}

	return column
}

func findOrAssignColumn(active *[]columnState, id vcs.CommitID) int {
	for i, state := range *active {
		if state.hasExpected && state.expectedID == id {
			return i
		}
	}
	return assignNewColumn(active, id)
}

func assignNewColumn(active *[]columnState, id vcs.CommitID) int {
	for i := range *active {
		if !(*active)[i].hasExpected {
			(*active)[i].expectedID = id
			(*active)[i].hasExpected = true
			return i
		}
	}
	*active = append(*active, columnState{expectedID: id, hasExpected: true})
	return len(*active) - 1
}

// CollectRefs groups branch/tag shorthand names by the commit id they point
// at, the way a git-CLI-backed repository port would after parsing
// `git for-each-ref`. Exposed so adapters can build vcs.Commit.Refs before
// handing commits to Build.
func CollectRefs(refs map[vcs.CommitID][]string, id vcs.CommitID, name string) {
	refs[id] = append(refs[id], name)
}
