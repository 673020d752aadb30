// Package gitcli implements vcs.Repository by shelling out to the git CLI,
// the same approach every example repo in this module's lineage takes for
// talking to git (none use a CGo or pure-Go git binding).
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/polysim/gitkeeper/internal/vcs"
)

// Repository is a vcs.Repository backed by an on-disk git working tree.
type Repository struct {
	root string
}

// Open discovers the git repository containing path and returns a
// Repository rooted at its working tree.
func Open(ctx context.Context, path string) (*Repository, error) {
	out, err := run(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vcs.ErrRepoNotFound, err)
	}
	root := strings.TrimSpace(out)
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &Repository{root: abs}, nil
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

func (r *Repository) git(ctx context.Context, args ...string) (string, error) {
	return run(ctx, r.root, args...)
}

// RootDir returns the working tree root this repository was opened at.
func (r *Repository) RootDir() string { return r.root }

// CurrentBranch returns HEAD's shorthand name.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

const logFormat = "%H%x1f%P%x1f%an%x1f%ae%x1f%ct%x1f%D%x1f%B%x1e"

func (r *Repository) parseLog(out string) []vcs.Commit {
	var commits []vcs.Commit
	for _, rec := range strings.Split(out, "\x1e") {
		rec = strings.TrimPrefix(rec, "\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}
		fields := strings.Split(rec, "\x1f")
		if len(fields) < 7 {
			continue
		}
		var parents []vcs.CommitID
		for _, p := range strings.Fields(fields[1]) {
			parents = append(parents, vcs.CommitID(p))
		}
		sec, _ := strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
		var refs []string
		if d := strings.TrimSpace(fields[5]); d != "" {
			for _, ref := range strings.Split(d, ",") {
				refs = append(refs, strings.TrimSpace(ref))
			}
		}
		commits = append(commits, vcs.Commit{
			ID:        vcs.CommitID(fields[0]),
			Parents:   parents,
			Author:    fields[2],
			Email:     fields[3],
			Timestamp: time.Unix(sec, 0),
			Refs:      refs,
			Message:   strings.TrimRight(fields[6], "\n"),
		})
	}
	return commits
}

// Log returns up to maxCount commits reachable from HEAD, newest first.
func (r *Repository) Log(ctx context.Context, maxCount int) ([]vcs.Commit, error) {
	out, err := r.git(ctx, "log", fmt.Sprintf("--max-count=%d", maxCount), "--date-order", "--pretty=format:"+logFormat, "HEAD")
	if err != nil {
		return nil, err
	}
	return r.parseLog(out), nil
}

// LogAllRefs returns up to maxCount commits reachable from any local ref.
func (r *Repository) LogAllRefs(ctx context.Context, maxCount int) ([]vcs.Commit, error) {
	out, err := r.git(ctx, "log", fmt.Sprintf("--max-count=%d", maxCount), "--date-order", "--pretty=format:"+logFormat, "--all")
	if err != nil {
		return nil, err
	}
	return r.parseLog(out), nil
}

func statusCode(b byte) vcs.FileStatus {
	switch b {
	case 'A':
		return vcs.StatusAdded
	case 'M':
		return vcs.StatusModified
	case 'D':
		return vcs.StatusDeleted
	case 'R':
		return vcs.StatusRenamed
	case '?':
		return vcs.StatusUntracked
	case 'U':
		return vcs.StatusConflicted
	default:
		return vcs.StatusUnmodified
	}
}

// Status returns the working tree's current status, including untracked
// files and merge conflicts.
func (r *Repository) Status(ctx context.Context) ([]vcs.StatusEntry, error) {
	out, err := r.git(ctx, "status", "--porcelain=v1", "-uall")
	if err != nil {
		return nil, err
	}
	var entries []vcs.StatusEntry
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 3 {
			continue
		}
		staged, worktree := line[0], line[1]
		path := strings.TrimSpace(line[3:])
		entry := vcs.StatusEntry{Path: path}
		if staged == 'U' || worktree == 'U' || (staged == 'A' && worktree == 'A') || (staged == 'D' && worktree == 'D') {
			entry.Staged = vcs.StatusConflicted
			entry.Worktree = vcs.StatusConflicted
		} else {
			entry.Staged = statusCode(staged)
			entry.Worktree = statusCode(worktree)
		}
		if staged == 'R' {
			if parts := strings.SplitN(path, " -> ", 2); len(parts) == 2 {
				entry.OldPath, entry.Path = parts[0], parts[1]
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Branches returns every local and remote-tracking branch.
func (r *Repository) Branches(ctx context.Context) ([]vcs.Branch, error) {
	out, err := r.git(ctx, "branch", "-a", "--format=%(refname:short)%09%(HEAD)%09%(upstream:short)")
	if err != nil {
		return nil, err
	}
	var branches []vcs.Branch
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		if strings.Contains(name, "HEAD ->") {
			continue
		}
		b := vcs.Branch{
			Name:     name,
			IsHead:   fields[1] == "*",
			IsRemote: strings.HasPrefix(name, "remotes/"),
		}
		if len(fields) > 2 {
			b.Upstream = fields[2]
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// CreateBranch creates a new branch at HEAD without switching to it.
func (r *Repository) CreateBranch(ctx context.Context, name string) error {
	_, err := r.git(ctx, "branch", name)
	return err
}

// CheckoutBranch switches the working tree to branch name.
func (r *Repository) CheckoutBranch(ctx context.Context, name string) error {
	_, err := r.git(ctx, "checkout", name)
	return err
}

// DeleteBranch deletes a local branch, forcing if force is set.
func (r *Repository) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := r.git(ctx, "branch", flag, name)
	return err
}

// RenameBranch renames oldName to newName.
func (r *Repository) RenameBranch(ctx context.Context, oldName, newName string) error {
	_, err := r.git(ctx, "branch", "-m", oldName, newName)
	return err
}

// Stashes lists every stash entry, newest first.
func (r *Repository) Stashes(ctx context.Context) ([]vcs.Stash, error) {
	out, err := r.git(ctx, "stash", "list", "--pretty=format:%gd%x1f%H%x1f%ct%x1f%s")
	if err != nil {
		return nil, err
	}
	var stashes []vcs.Stash
	scanner := bufio.NewScanner(strings.NewReader(out))
	idx := 0
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\x1f")
		if len(fields) < 4 {
			continue
		}
		sec, _ := strconv.ParseInt(fields[2], 10, 64)
		branch := extractStashBranch(fields[3])
		files, _ := r.stashFiles(ctx, idx)
		stashes = append(stashes, vcs.Stash{
			Index:     idx,
			Message:   fields[3],
			Branch:    branch,
			Timestamp: time.Unix(sec, 0),
			ID:        vcs.CommitID(fields[1]),
			Files:     files,
		})
		idx++
	}
	return stashes, nil
}

// extractStashBranch pulls the branch name out of git's default
// "WIP on <branch>: ..." / "On <branch>: ..." stash message.
func extractStashBranch(message string) string {
	for _, prefix := range []string{"WIP on ", "On "} {
		if rest, ok := strings.CutPrefix(message, prefix); ok {
			if idx := strings.Index(rest, ":"); idx != -1 {
				return rest[:idx]
			}
		}
	}
	return ""
}

func (r *Repository) stashFiles(ctx context.Context, index int) ([]vcs.StashFile, error) {
	out, err := r.git(ctx, "stash", "show", "--name-status", fmt.Sprintf("stash@{%d}", index))
	if err != nil {
		return nil, err
	}
	var files []vcs.StashFile
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		files = append(files, vcs.StashFile{Path: fields[1], Status: statusCode(fields[0][0])})
	}
	return files, nil
}

// StashSave stashes the working tree, including untracked files when
// requested.
func (r *Repository) StashSave(ctx context.Context, message string, includeUntracked bool) error {
	args := []string{"stash", "push"}
	if includeUntracked {
		args = append(args, "-u")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	_, err := r.git(ctx, args...)
	return err
}

// StashApply applies the stash at index without dropping it.
func (r *Repository) StashApply(ctx context.Context, index int) error {
	_, err := r.git(ctx, "stash", "apply", fmt.Sprintf("stash@{%d}", index))
	return err
}

// StashPop applies and drops the stash at index.
func (r *Repository) StashPop(ctx context.Context, index int) error {
	_, err := r.git(ctx, "stash", "pop", fmt.Sprintf("stash@{%d}", index))
	return err
}

// StashDrop drops the stash at index without applying it.
func (r *Repository) StashDrop(ctx context.Context, index int) error {
	_, err := r.git(ctx, "stash", "drop", fmt.Sprintf("stash@{%d}", index))
	return err
}

// StashFileDiff returns the diff of one file within a stash entry.
func (r *Repository) StashFileDiff(ctx context.Context, stash vcs.CommitID, path string) (vcs.FileDiff, error) {
	out, err := r.git(ctx, "stash", "show", "-p", string(stash), "--", path)
	if err != nil {
		return vcs.FileDiff{}, err
	}
	return parseUnifiedDiff(path, out), nil
}

// Worktrees lists every linked worktree, the main one first.
func (r *Repository) Worktrees(ctx context.Context) ([]vcs.Worktree, error) {
	out, err := r.git(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	var worktrees []vcs.Worktree
	var cur vcs.Worktree
	first := true
	flush := func() {
		if cur.Path != "" {
			cur.IsMain = first
			worktrees = append(worktrees, cur)
			first = false
			cur = vcs.Worktree{}
		}
	}
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			cur.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch "):
			cur.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case line == "locked":
			cur.IsLocked = true
		}
	}
	flush()
	return worktrees, nil
}

// CreateWorktree adds a new linked worktree at path. When branch is
// non-empty it is created there with -b (git fails if it already exists);
// otherwise name is checked out at path.
func (r *Repository) CreateWorktree(ctx context.Context, name, path, branch string) error {
	args := []string{"worktree", "add"}
	if branch != "" {
		args = append(args, "-b", branch, path)
	} else {
		args = append(args, path, name)
	}
	_, err := r.git(ctx, args...)
	return err
}

// RemoveWorktree removes the worktree with the given name/path.
func (r *Repository) RemoveWorktree(ctx context.Context, name string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, name)
	_, err := r.git(ctx, args...)
	return err
}

// CommitFiles lists the per-file diffstat of a commit against its first
// parent.
func (r *Repository) CommitFiles(ctx context.Context, id vcs.CommitID) ([]vcs.DiffFile, error) {
	out, err := r.git(ctx, "diff-tree", "--no-commit-id", "--numstat", "-r", "--find-renames", string(id))
	if err != nil {
		return nil, err
	}
	var files []vcs.DiffFile
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		add, _ := strconv.Atoi(fields[0])
		del, _ := strconv.Atoi(fields[1])
		files = append(files, vcs.DiffFile{Path: fields[2], Additions: add, Deletions: del, Status: vcs.StatusModified})
	}
	return files, nil
}

// FileDiff returns the full diff of one file at commit id against its
// first parent.
func (r *Repository) FileDiff(ctx context.Context, id vcs.CommitID, path string) (vcs.FileDiff, error) {
	out, err := r.git(ctx, "show", "--pretty=format:", string(id), "--", path)
	if err != nil {
		return vcs.FileDiff{}, err
	}
	return parseUnifiedDiff(path, out), nil
}

// WorkingTreeDiff returns the diff of path between the index/HEAD and the
// working tree (staged=true compares index against HEAD instead).
func (r *Repository) WorkingTreeDiff(ctx context.Context, path string, staged bool) (vcs.FileDiff, error) {
	args := []string{"diff"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--", path)
	out, err := r.git(ctx, args...)
	if err != nil {
		return vcs.FileDiff{}, err
	}
	return parseUnifiedDiff(path, out), nil
}

// Blame attributes each line of path to the commit that last touched it.
func (r *Repository) Blame(ctx context.Context, path string) ([]vcs.BlameLine, error) {
	out, err := r.git(ctx, "blame", "--porcelain", "--", path)
	if err != nil {
		return nil, err
	}
	var lines []vcs.BlameLine
	var curCommit vcs.CommitID
	var curAuthor string
	lineNo := 0
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "author "):
			curAuthor = strings.TrimPrefix(line, "author ")
		case strings.HasPrefix(line, "\t"):
			lineNo++
			lines = append(lines, vcs.BlameLine{Commit: curCommit, Author: curAuthor, LineNo: lineNo, Text: line[1:]})
		default:
			if fields := strings.Fields(line); len(fields) > 0 && len(fields[0]) == 40 {
				curCommit = vcs.CommitID(fields[0])
			}
		}
	}
	return lines, nil
}

// StageFile adds path to the index.
func (r *Repository) StageFile(ctx context.Context, path string) error {
	_, err := r.git(ctx, "add", "--", path)
	return err
}

// UnstageFile removes path from the index without touching the working
// tree.
func (r *Repository) UnstageFile(ctx context.Context, path string) error {
	_, err := r.git(ctx, "restore", "--staged", "--", path)
	return err
}

// StageAll adds every pending change, including untracked files.
func (r *Repository) StageAll(ctx context.Context) error {
	_, err := r.git(ctx, "add", "-A")
	return err
}

// UnstageAll clears the entire index back to HEAD.
func (r *Repository) UnstageAll(ctx context.Context) error {
	_, err := r.git(ctx, "restore", "--staged", ".")
	return err
}

// DiscardFile reverts a tracked file's working-tree changes, or removes it
// if untracked.
func (r *Repository) DiscardFile(ctx context.Context, path string) error {
	if _, err := r.git(ctx, "checkout", "--", path); err != nil {
		_, err := r.git(ctx, "clean", "-f", "--", path)
		return err
	}
	return nil
}

// DiscardAll reverts every tracked change and removes untracked files.
func (r *Repository) DiscardAll(ctx context.Context) error {
	if _, err := r.git(ctx, "checkout", "--", "."); err != nil {
		return err
	}
	_, err := r.git(ctx, "clean", "-fd")
	return err
}

func (r *Repository) headID(ctx context.Context) (vcs.CommitID, error) {
	out, err := r.git(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return vcs.CommitID(strings.TrimSpace(out)), nil
}

// Commit creates a new commit from the index.
func (r *Repository) Commit(ctx context.Context, message string) (vcs.CommitID, error) {
	if _, err := r.git(ctx, "commit", "-m", message); err != nil {
		return "", err
	}
	return r.headID(ctx)
}

// AmendCommit amends HEAD with the index and a new message.
func (r *Repository) AmendCommit(ctx context.Context, message string) (vcs.CommitID, error) {
	if _, err := r.git(ctx, "commit", "--amend", "-m", message); err != nil {
		return "", err
	}
	return r.headID(ctx)
}

// Push pushes the current branch to its upstream.
func (r *Repository) Push(ctx context.Context) error {
	_, err := r.git(ctx, "push")
	return err
}

// Pull fetches and merges from the current branch's upstream, always
// producing a merge commit on divergence (mirrors MergeBranch) so history
// stays honest about the pull in the graph.
func (r *Repository) Pull(ctx context.Context) (vcs.MergeResult, error) {
	out, err := r.git(ctx, "pull", "--no-ff", "--no-edit")
	if err == nil {
		if strings.Contains(out, "Already up to date") {
			return vcs.MergeResult{Outcome: vcs.MergeUpToDate}, nil
		}
		return vcs.MergeResult{Outcome: vcs.MergeSuccess}, nil
	}
	return r.conflictResultAfter(ctx, err)
}

// Fetch fetches from every configured remote.
func (r *Repository) Fetch(ctx context.Context) error {
	_, err := r.git(ctx, "fetch", "--all")
	return err
}

// CherryPick applies the changes of commit id onto HEAD.
func (r *Repository) CherryPick(ctx context.Context, id vcs.CommitID) (vcs.MergeResult, error) {
	_, err := r.git(ctx, "cherry-pick", string(id))
	if err == nil {
		return vcs.MergeResult{Outcome: vcs.MergeSuccess}, nil
	}
	return r.conflictResultAfter(ctx, err)
}

// MergeBranch merges name into the current branch, always producing a
// merge commit even when a fast-forward is possible, matching the
// original tool's behavior so merge history stays visible in the graph.
func (r *Repository) MergeBranch(ctx context.Context, name string) (vcs.MergeResult, error) {
	_, err := r.git(ctx, "merge", "--no-ff", "--no-edit", name)
	if err == nil {
		return vcs.MergeResult{Outcome: vcs.MergeSuccess}, nil
	}
	return r.conflictResultAfter(ctx, err)
}

// conflictResultAfter inspects the working tree after a failed merge,
// cherry-pick or pull and reports whichever conflicted paths git left
// behind, falling back to the original error when none are found.
func (r *Repository) conflictResultAfter(ctx context.Context, opErr error) (vcs.MergeResult, error) {
	entries, statusErr := r.Status(ctx)
	if statusErr != nil {
		return vcs.MergeResult{}, opErr
	}
	var conflicted []string
	for _, e := range entries {
		if e.IsConflicted() {
			conflicted = append(conflicted, e.Path)
		}
	}
	if len(conflicted) > 0 {
		return vcs.MergeResult{Outcome: vcs.MergeConflicts, ConflictedPath: conflicted}, nil
	}
	return vcs.MergeResult{}, opErr
}

// AbortMerge discards an in-progress merge entirely.
func (r *Repository) AbortMerge(ctx context.Context) error {
	_, err := r.git(ctx, "merge", "--abort")
	return err
}

// FinalizeMerge commits the currently staged merge resolution.
func (r *Repository) FinalizeMerge(ctx context.Context, message string) (vcs.CommitID, error) {
	if _, err := r.git(ctx, "commit", "-m", message); err != nil {
		return "", err
	}
	return r.headID(ctx)
}

// WriteResolvedFile writes content to path in the working tree and stages
// it as the conflict resolution.
func (r *Repository) WriteResolvedFile(ctx context.Context, path string, content []byte) error {
	full := filepath.Join(r.root, path)
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return err
	}
	_, err := r.git(ctx, "add", "--", path)
	return err
}

// ConflictedFileContent returns the three stages of a conflicted path:
// ours (stage 2), theirs (stage 3), and the current merged working-tree
// copy with conflict markers.
func (r *Repository) ConflictedFileContent(ctx context.Context, path string) (ours, theirs, merged []byte, err error) {
	oursStr, errOurs := r.git(ctx, "show", ":2:"+path)
	theirsStr, errTheirs := r.git(ctx, "show", ":3:"+path)
	full := filepath.Join(r.root, path)
	mergedBytes, errMerged := os.ReadFile(full)
	if errOurs != nil && errTheirs != nil && errMerged != nil {
		return nil, nil, nil, fmt.Errorf("read conflicted file %s: %v / %v / %v", path, errOurs, errTheirs, errMerged)
	}
	return []byte(oursStr), []byte(theirsStr), mergedBytes, nil
}

// ConflictKind classifies a conflicted path by comparing its presence at
// stage 1 (common ancestor), stage 2 (ours) and stage 3 (theirs) in the
// index, using git ls-files' unmerged listing.
func (r *Repository) ConflictKind(ctx context.Context, path string) (vcs.ConflictKind, error) {
	out, err := r.git(ctx, "ls-files", "-u", "--", path)
	if err != nil {
		return vcs.ConflictBothModified, err
	}
	var haveBase, haveOurs, haveTheirs bool
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		switch fields[2] {
		case "1":
			haveBase = true
		case "2":
			haveOurs = true
		case "3":
			haveTheirs = true
		}
	}
	switch {
	case haveBase && !haveOurs && haveTheirs:
		return vcs.ConflictDeletedByUs, nil
	case haveBase && haveOurs && !haveTheirs:
		return vcs.ConflictDeletedByThem, nil
	case !haveBase && haveOurs && haveTheirs:
		return vcs.ConflictBothAdded, nil
	default:
		return vcs.ConflictBothModified, nil
	}
}

// ResolveSpecialFile resolves a tree-level conflict (deleted-by-us/them,
// both-added) by checking out the chosen side wholesale and staging the
// result, removing the path entirely when the chosen side lacks it.
func (r *Repository) ResolveSpecialFile(ctx context.Context, path string, ours bool) (bool, error) {
	stage := "--theirs"
	if ours {
		stage = "--ours"
	}
	if _, err := r.git(ctx, "checkout", stage, "--", path); err != nil {
		if _, rmErr := r.git(ctx, "rm", "--", path); rmErr != nil {
			return false, err
		}
		return true, nil
	}
	if _, err := r.git(ctx, "add", "--", path); err != nil {
		return false, err
	}
	return false, nil
}

func parseUnifiedDiff(path, raw string) vcs.FileDiff {
	diff := vcs.FileDiff{Path: path, Status: vcs.StatusModified}
	if strings.Contains(raw, "Binary files") {
		diff.Binary = true
		return diff
	}
	var hunk *vcs.DiffHunk
	oldNo, newNo := 0, 0
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			if hunk != nil {
				diff.Hunks = append(diff.Hunks, *hunk)
			}
			hunk = &vcs.DiffHunk{Header: line}
			oldNo, newNo = parseHunkHeader(line)
		case hunk == nil:
			continue
		case strings.HasPrefix(line, "+"):
			hunk.Lines = append(hunk.Lines, vcs.DiffLine{Kind: vcs.DiffAdd, Content: line[1:], NewNo: newNo})
			newNo++
		case strings.HasPrefix(line, "-"):
			hunk.Lines = append(hunk.Lines, vcs.DiffLine{Kind: vcs.DiffRemove, Content: line[1:], OldNo: oldNo})
			oldNo++
		case strings.HasPrefix(line, " "):
			hunk.Lines = append(hunk.Lines, vcs.DiffLine{Kind: vcs.DiffContext, Content: line[1:], OldNo: oldNo, NewNo: newNo})
			oldNo++
			newNo++
		}
	}
	if hunk != nil {
		diff.Hunks = append(diff.Hunks, *hunk)
	}
	return diff
}

func parseHunkHeader(header string) (oldNo, newNo int) {
	// @@ -oldStart,oldLen +newStart,newLen @@
	parts := strings.Fields(header)
	if len(parts) < 3 {
		return 1, 1
	}
	oldNo = firstNumber(parts[1])
	newNo = firstNumber(parts[2])
	return
}

func firstNumber(field string) int {
	field = strings.TrimPrefix(field, "+")
	field = strings.TrimPrefix(field, "-")
	field = strings.SplitN(field, ",", 2)[0]
	n, err := strconv.Atoi(field)
	if err != nil {
		return 1
	}
	return n
}
