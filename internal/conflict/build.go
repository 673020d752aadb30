package conflict

import (
	"context"
	"strings"

	"github.com/polysim/gitkeeper/internal/vcs"
)

// BuildFiles fetches the three-way content of every path in paths and
// turns it into the File list a Resolver operates on: a tree-conflict Type
// and no sections for deleted-by-us/them/both-added paths, or a Normal
// file split into Sections at each run of conflict markers otherwise.
func BuildFiles(ctx context.Context, repo vcs.Repository, paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		kind, err := repo.ConflictKind(ctx, path)
		if err != nil {
			kind = vcs.ConflictBothModified
		}
		if kind != vcs.ConflictBothModified {
			files = append(files, File{Path: path, Type: treeConflictType(kind)})
			continue
		}
		_, _, merged, err := repo.ConflictedFileContent(ctx, path)
		if err != nil {
			continue
		}
		files = append(files, File{
			Path:     path,
			Type:     Normal,
			Sections: splitConflictMarkers(string(merged)),
		})
	}
	return files, nil
}

func treeConflictType(kind vcs.ConflictKind) Type {
	switch kind {
	case vcs.ConflictDeletedByUs:
		return DeletedByUs
	case vcs.ConflictDeletedByThem:
		return DeletedByThem
	case vcs.ConflictBothAdded:
		return BothAdded
	default:
		return Normal
	}
}

const (
	markerOurs   = "<<<<<<<"
	markerSplit  = "======="
	markerTheirs = ">>>>>>>"
)

// splitConflictMarkers parses git's in-file conflict-marker format into
// Sections, assigning shared context between two markers to the preceding
// section's ContextAfter rather than duplicating it onto the next
// section's ContextBefore.
func splitConflictMarkers(merged string) []Section {
	lines := strings.Split(strings.TrimSuffix(merged, "\n"), "\n")

	var sections []Section
	var pending []string // context lines seen since the last section closed
	var i int
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], markerOurs) {
			pending = append(pending, lines[i])
			i++
			continue
		}

		sections = append(sections, Section{})
		cur := &sections[len(sections)-1]
		if len(sections) == 1 {
			cur.ContextBefore = pending
		} else {
			sections[len(sections)-2].ContextAfter = pending
		}
		pending = nil
		i++ // skip <<<<<<<

		for i < len(lines) && !strings.HasPrefix(lines[i], markerSplit) {
			cur.Ours = append(cur.Ours, lines[i])
			i++
		}
		i++ // skip =======
		for i < len(lines) && !strings.HasPrefix(lines[i], markerTheirs) {
			cur.Theirs = append(cur.Theirs, lines[i])
			i++
		}
		i++ // skip >>>>>>>
	}
	if len(sections) == 0 {
		return nil
	}
	sections[len(sections)-1].ContextAfter = pending
	return sections
}
