// Package conflict implements the three-level (file / hunk / line) merge
// conflict resolver: navigating conflicted files and their hunks, choosing
// ours/theirs/both at whichever granularity is active, and editing the
// merged result by hand before it's staged.
package conflict

import (
	"context"
	"fmt"
	"strings"

	"github.com/polysim/gitkeeper/internal/vcs"
)

// Resolution is the chosen outcome for one conflicted hunk or file.
type Resolution int

const (
	Unresolved Resolution = iota
	Ours
	Theirs
	Both
)

// Type classifies a conflicted file beyond plain content conflicts: a path
// that one side deleted and the other modified needs a special resolution
// (keep or drop the file) rather than a hunk-level merge.
type Type int

const (
	Normal Type = iota
	DeletedByUs
	DeletedByThem
	BothAdded
)

// IsTreeConflict reports whether t requires the special whole-file
// resolution path (block/line mode don't apply): both deletion conflicts
// and the both-added case, where there is no three-way hunk to merge.
func (t Type) IsTreeConflict() bool {
	return t == DeletedByUs || t == DeletedByThem || t == BothAdded
}

// IsDeletion reports whether t is one of the two delete/modify conflict
// kinds, where accepting "ours"/"theirs" may delete the file outright.
func (t Type) IsDeletion() bool { return t == DeletedByUs || t == DeletedByThem }

// Mode is the granularity at which resolutions are being chosen.
type Mode int

const (
	ModeFile Mode = iota
	ModeBlock
	ModeLine
)

// PanelFocus is which part of the three-pane conflict view has the cursor.
type PanelFocus int

const (
	FocusFileList PanelFocus = iota
	FocusOurs
	FocusTheirs
	FocusResult
)

// LineLevelResolution tracks, for one hunk, which individual lines of each
// side are included in the merged result. Created lazily the first time a
// hunk is toggled in line mode.
type LineLevelResolution struct {
	OursLinesIncluded   []bool
	TheirsLinesIncluded []bool
	Touched             bool
}

// NewLineLevelResolution starts with every line excluded.
func NewLineLevelResolution(oursLen, theirsLen int) *LineLevelResolution {
	return &LineLevelResolution{
		OursLinesIncluded:   make([]bool, oursLen),
		TheirsLinesIncluded: make([]bool, theirsLen),
	}
}

// Section is one conflicted hunk within a file: the two candidate bodies,
// their surrounding unchanged context, and whatever resolution has been
// chosen for it so far.
type Section struct {
	ContextBefore []string
	ContextAfter  []string
	Ours          []string
	Theirs        []string
	Resolution    Resolution
	LineLevel     *LineLevelResolution
}

// File is one conflicted path and its hunks.
type File struct {
	Path       string
	Type       Type
	Sections   []Section
	IsResolved bool
}

// AllSectionsResolved reports whether every hunk of f has a Resolution set.
// A line-mode hunk counts only once at least one of its lines is included.
func (f *File) AllSectionsResolved() bool {
	for _, s := range f.Sections {
		if s.Resolution == Unresolved {
			return false
		}
	}
	return true
}

// State is the full in-memory state of the conflict resolver for one
// in-progress merge.
type State struct {
	Files          []File
	FileSelected   int
	SectionSelected int
	LineSelected   int
	ResultScroll   int
	OursScroll     int
	TheirsScroll   int
	PanelFocus     PanelFocus
	Mode           Mode
	IsEditing      bool
	EditBuffer     []string
	EditCursorLine int
	EditCursorCol  int

	// OursBranchName, TheirsBranchName and OperationDescription label the
	// two sides of the conflict and the operation that produced it (merge,
	// cherry-pick, pull), so the resolver view and the eventual merge
	// commit message can describe what's being resolved.
	OursBranchName       string
	TheirsBranchName     string
	OperationDescription string
}

// New builds a fresh State over the given conflicted files, cursor parked
// on the first one.
func New(files []File) *State {
	return &State{Files: files, PanelFocus: FocusFileList}
}

// NewFromOperation builds a fresh State labeled with the branches and
// operation that produced the conflict, for surfacing in the resolver view
// and the eventual merge commit message.
func NewFromOperation(files []File, ours, theirs, operation string) *State {
	s := New(files)
	s.OursBranchName = ours
	s.TheirsBranchName = theirs
	s.OperationDescription = operation
	return s
}

func (s *State) currentFile() *File {
	if s.FileSelected < 0 || s.FileSelected >= len(s.Files) {
		return nil
	}
	return &s.Files[s.FileSelected]
}

func (s *State) currentSection() *Section {
	f := s.currentFile()
	if f == nil || s.SectionSelected < 0 || s.SectionSelected >= len(f.Sections) {
		return nil
	}
	return &f.Sections[s.SectionSelected]
}

func (s *State) resetCursorForNewFile() {
	s.SectionSelected = 0
	s.LineSelected = 0
	s.ResultScroll = 0
	s.OursScroll = 0
	s.TheirsScroll = 0
}

// PreviousFile moves the cursor to the previous conflicted file.
func (s *State) PreviousFile() {
	if s.FileSelected > 0 {
		s.FileSelected--
		s.resetCursorForNewFile()
	}
}

// NextFile moves the cursor to the next conflicted file.
func (s *State) NextFile() {
	if s.FileSelected+1 < len(s.Files) {
		s.FileSelected++
		s.resetCursorForNewFile()
	}
}

// PreviousSection moves within the current file's hunks.
func (s *State) PreviousSection() {
	if s.SectionSelected > 0 {
		s.SectionSelected--
	}
}

// NextSection moves within the current file's hunks.
func (s *State) NextSection() {
	f := s.currentFile()
	if f == nil {
		return
	}
	if max := len(f.Sections) - 1; max > 0 && s.SectionSelected < max {
		s.SectionSelected++
		s.LineSelected = 0
	}
}

// SwitchPanel cycles focus FileList -> Ours -> Theirs -> Result -> FileList.
func (s *State) SwitchPanel() {
	switch s.PanelFocus {
	case FocusFileList:
		s.PanelFocus = FocusOurs
	case FocusOurs:
		s.PanelFocus = FocusTheirs
	case FocusTheirs:
		s.PanelFocus = FocusResult
	default:
		s.PanelFocus = FocusFileList
	}
}

// SwitchPanelReverse cycles focus in the opposite direction.
func (s *State) SwitchPanelReverse() {
	switch s.PanelFocus {
	case FocusFileList:
		s.PanelFocus = FocusResult
	case FocusOurs:
		s.PanelFocus = FocusFileList
	case FocusTheirs:
		s.PanelFocus = FocusOurs
	default:
		s.PanelFocus = FocusTheirs
	}
}

var deletionModeFlash = "block/line mode is unavailable for a tree conflict"

// SetModeFile switches to whole-file resolution mode.
func (s *State) SetModeFile() {
	s.Mode = ModeFile
	s.LineSelected = 0
	s.ResultScroll = 0
}

// SetModeBlock switches to hunk resolution mode, refused for tree conflicts
// (deleted-by-us/them, both-added).
func (s *State) SetModeBlock() (flash string, ok bool) {
	if f := s.currentFile(); f != nil && f.Type.IsTreeConflict() {
		return deletionModeFlash, false
	}
	s.Mode = ModeBlock
	s.LineSelected = 0
	s.ResultScroll = 0
	return "", true
}

// SetModeLine switches to line resolution mode, refused for tree conflicts
// (deleted-by-us/them, both-added).
func (s *State) SetModeLine() (flash string, ok bool) {
	if f := s.currentFile(); f != nil && f.Type.IsTreeConflict() {
		return deletionModeFlash, false
	}
	s.Mode = ModeLine
	s.LineSelected = 0
	s.ResultScroll = 0
	return "", true
}

// ToggleLine flips inclusion of the line under the cursor on whichever side
// (ours/theirs) has focus. A no-op when any other panel has focus.
func (s *State) ToggleLine() {
	if s.PanelFocus != FocusOurs && s.PanelFocus != FocusTheirs {
		return
	}
	sec := s.currentSection()
	if sec == nil {
		return
	}
	if sec.LineLevel == nil {
		sec.LineLevel = NewLineLevelResolution(len(sec.Ours), len(sec.Theirs))
	}
	switch s.PanelFocus {
	case FocusOurs:
		if s.LineSelected >= 0 && s.LineSelected < len(sec.LineLevel.OursLinesIncluded) {
			sec.LineLevel.OursLinesIncluded[s.LineSelected] = !sec.LineLevel.OursLinesIncluded[s.LineSelected]
			sec.LineLevel.Touched = true
		}
	case FocusTheirs:
		if s.LineSelected >= 0 && s.LineSelected < len(sec.LineLevel.TheirsLinesIncluded) {
			sec.LineLevel.TheirsLinesIncluded[s.LineSelected] = !sec.LineLevel.TheirsLinesIncluded[s.LineSelected]
			sec.LineLevel.Touched = true
		}
	}
	sec.Resolution = deriveLineResolution(sec.LineLevel)
}

// deriveLineResolution computes the section-level resolution implied by a
// line-level bitvector: Both if lines are kept from each side, Ours/Theirs
// if only one side contributed, Unresolved if the hunk is untouched or
// every line was excluded.
func deriveLineResolution(ll *LineLevelResolution) Resolution {
	if ll == nil || !ll.Touched {
		return Unresolved
	}
	hasOurs := anyTrue(ll.OursLinesIncluded)
	hasTheirs := anyTrue(ll.TheirsLinesIncluded)
	switch {
	case hasOurs && hasTheirs:
		return Both
	case hasOurs:
		return Ours
	case hasTheirs:
		return Theirs
	default:
		return Unresolved
	}
}

func anyTrue(bits []bool) bool {
	for _, b := range bits {
		if b {
			return true
		}
	}
	return false
}

func (s *State) focusedLineCount(sec *Section) int {
	switch s.PanelFocus {
	case FocusOurs:
		return len(sec.Ours)
	case FocusTheirs:
		return len(sec.Theirs)
	default:
		return 0
	}
}

// LineDown moves the line cursor down within the current hunk, spilling
// into the next hunk once it runs past the last line.
func (s *State) LineDown() {
	f := s.currentFile()
	sec := s.currentSection()
	if f == nil || sec == nil {
		return
	}
	maxLines := s.focusedLineCount(sec)
	if s.LineSelected < maxLines-1 {
		s.LineSelected++
	} else if s.SectionSelected+1 < len(f.Sections) {
		s.SectionSelected++
		s.LineSelected = 0
	}
}

// LineUp moves the line cursor up, spilling into the previous hunk's last
// line once it runs past the first.
func (s *State) LineUp() {
	if s.LineSelected > 0 {
		s.LineSelected--
		return
	}
	f := s.currentFile()
	if f == nil || s.SectionSelected == 0 {
		return
	}
	s.SectionSelected--
	prev := &f.Sections[s.SectionSelected]
	maxLines := s.focusedLineCount(prev)
	s.LineSelected = maxLines - 1
	if s.LineSelected < 0 {
		s.LineSelected = 0
	}
}

// ResultScrollDown scrolls the result panel one line down.
func (s *State) ResultScrollDown() { s.ResultScroll++ }

// ResultScrollUp scrolls the result panel one line up.
func (s *State) ResultScrollUp() {
	if s.ResultScroll > 0 {
		s.ResultScroll--
	}
}

// CancelEdit discards edit mode without saving.
func (s *State) CancelEdit() { s.IsEditing = false }

// EditInsertChar inserts c at the cursor.
func (s *State) EditInsertChar(c rune) {
	if s.EditCursorLine < 0 || s.EditCursorLine >= len(s.EditBuffer) {
		return
	}
	line := []rune(s.EditBuffer[s.EditCursorLine])
	if s.EditCursorCol < 0 || s.EditCursorCol > len(line) {
		return
	}
	line = append(line[:s.EditCursorCol], append([]rune{c}, line[s.EditCursorCol:]...)...)
	s.EditBuffer[s.EditCursorLine] = string(line)
	s.EditCursorCol++
}

// EditBackspace deletes the character before the cursor, merging with the
// previous line at column 0.
func (s *State) EditBackspace() {
	if s.EditCursorLine < 0 || s.EditCursorLine >= len(s.EditBuffer) {
		return
	}
	if s.EditCursorCol > 0 {
		line := []rune(s.EditBuffer[s.EditCursorLine])
		if s.EditCursorCol <= len(line) {
			line = append(line[:s.EditCursorCol-1], line[s.EditCursorCol:]...)
			s.EditBuffer[s.EditCursorLine] = string(line)
			s.EditCursorCol--
		}
		return
	}
	if s.EditCursorLine > 0 {
		current := s.EditBuffer[s.EditCursorLine]
		s.EditBuffer = append(s.EditBuffer[:s.EditCursorLine], s.EditBuffer[s.EditCursorLine+1:]...)
		s.EditCursorLine--
		prevLen := len([]rune(s.EditBuffer[s.EditCursorLine]))
		s.EditBuffer[s.EditCursorLine] += current
		s.EditCursorCol = prevLen
	}
}

// EditDelete deletes the character under the cursor, merging with the
// following line at end-of-line.
func (s *State) EditDelete() {
	if s.EditCursorLine < 0 || s.EditCursorLine >= len(s.EditBuffer) {
		return
	}
	line := []rune(s.EditBuffer[s.EditCursorLine])
	if s.EditCursorCol >= len(line) && s.EditCursorLine+1 < len(s.EditBuffer) {
		next := s.EditBuffer[s.EditCursorLine+1]
		s.EditBuffer[s.EditCursorLine] += next
		s.EditBuffer = append(s.EditBuffer[:s.EditCursorLine+1], s.EditBuffer[s.EditCursorLine+2:]...)
		return
	}
	if s.EditCursorCol < len(line) {
		line = append(line[:s.EditCursorCol], line[s.EditCursorCol+1:]...)
		s.EditBuffer[s.EditCursorLine] = string(line)
	}
}

// EditCursorUp moves the edit cursor up a line, clamping the column.
func (s *State) EditCursorUp() {
	if s.EditCursorLine <= 0 {
		return
	}
	s.EditCursorLine--
	s.clampEditCol()
}

// EditCursorDown moves the edit cursor down a line, clamping the column.
func (s *State) EditCursorDown() {
	if s.EditCursorLine+1 >= len(s.EditBuffer) {
		return
	}
	s.EditCursorLine++
	s.clampEditCol()
}

func (s *State) clampEditCol() {
	if s.EditCursorLine < 0 || s.EditCursorLine >= len(s.EditBuffer) {
		return
	}
	if n := len([]rune(s.EditBuffer[s.EditCursorLine])); s.EditCursorCol > n {
		s.EditCursorCol = n
	}
}

// EditCursorLeft moves left, wrapping to the end of the previous line.
func (s *State) EditCursorLeft() {
	if s.EditCursorCol > 0 {
		s.EditCursorCol--
		return
	}
	if s.EditCursorLine > 0 {
		s.EditCursorLine--
		s.EditCursorCol = len([]rune(s.EditBuffer[s.EditCursorLine]))
	}
}

// EditCursorRight moves right, wrapping to the start of the next line.
func (s *State) EditCursorRight() {
	if s.EditCursorLine < 0 || s.EditCursorLine >= len(s.EditBuffer) {
		return
	}
	n := len([]rune(s.EditBuffer[s.EditCursorLine]))
	if s.EditCursorCol < n {
		s.EditCursorCol++
		return
	}
	if s.EditCursorLine+1 < len(s.EditBuffer) {
		s.EditCursorLine++
		s.EditCursorCol = 0
	}
}

// EditNewline splits the current line at the cursor.
func (s *State) EditNewline() {
	if s.EditCursorLine < 0 || s.EditCursorLine >= len(s.EditBuffer) {
		return
	}
	line := []rune(s.EditBuffer[s.EditCursorLine])
	col := s.EditCursorCol
	if col > len(line) {
		col = len(line)
	}
	before, after := string(line[:col]), string(line[col:])
	s.EditBuffer[s.EditCursorLine] = before
	tail := append([]string{after}, s.EditBuffer[s.EditCursorLine+1:]...)
	s.EditBuffer = append(s.EditBuffer[:s.EditCursorLine+1], tail...)
	s.EditCursorLine++
	s.EditCursorCol = 0
}

// advanceToNextUnresolved moves the file cursor to the next unresolved
// file after the current one, wrapping around; it leaves the cursor in
// place if every file is resolved.
func (s *State) advanceToNextUnresolved() {
	total := len(s.Files)
	for i := s.FileSelected + 1; i < total; i++ {
		if !s.Files[i].IsResolved {
			s.FileSelected = i
			s.SectionSelected = 0
			return
		}
	}
	for i := 0; i < s.FileSelected; i++ {
		if !s.Files[i].IsResolved {
			s.FileSelected = i
			s.SectionSelected = 0
			return
		}
	}
}

// Resolver wires a State to the repository port so whole-file and
// hunk-level choices can actually be written and staged.
type Resolver struct {
	Repo  vcs.Repository
	State *State
}

// GenerateResolvedContent renders the merged body of the current file given
// its hunks' resolutions (and, in line mode, each hunk's per-line
// inclusion), one string per output line. A section with no resolution yet
// (and no touched line-level choice) emits its raw conflict markers, since
// that region is still unresolved.
func GenerateResolvedContent(f *File, mode Mode) []string {
	var out []string
	for _, sec := range f.Sections {
		out = append(out, sec.ContextBefore...)
		out = append(out, generateSectionBody(sec, mode)...)
		out = append(out, sec.ContextAfter...)
	}
	return out
}

func generateSectionBody(sec Section, mode Mode) []string {
	if mode == ModeLine && sec.LineLevel != nil && sec.LineLevel.Touched {
		var body []string
		for i, line := range sec.Ours {
			if i < len(sec.LineLevel.OursLinesIncluded) && sec.LineLevel.OursLinesIncluded[i] {
				body = append(body, line)
			}
		}
		for i, line := range sec.Theirs {
			if i < len(sec.LineLevel.TheirsLinesIncluded) && sec.LineLevel.TheirsLinesIncluded[i] {
				body = append(body, line)
			}
		}
		return body
	}
	switch sec.Resolution {
	case Ours:
		return sec.Ours
	case Theirs:
		return sec.Theirs
	case Both:
		return append(append([]string{}, sec.Ours...), sec.Theirs...)
	default:
		return conflictMarkers(sec)
	}
}

// conflictMarkers reconstructs the raw `<<<<<<<`/`=======`/`>>>>>>>` region
// for a section with no resolution yet, so the edit buffer and any partial
// save still round-trips an untouched hunk byte-for-byte in content.
func conflictMarkers(sec Section) []string {
	out := make([]string, 0, len(sec.Ours)+len(sec.Theirs)+3)
	out = append(out, "<<<<<<< ours")
	out = append(out, sec.Ours...)
	out = append(out, "=======")
	out = append(out, sec.Theirs...)
	out = append(out, ">>>>>>> theirs")
	return out
}

func (r *Resolver) applyResolvedContent(ctx context.Context, f *File) error {
	content := strings.Join(GenerateResolvedContent(f, r.State.Mode), "\n")
	return r.Repo.WriteResolvedFile(ctx, f.Path, []byte(content))
}

// AcceptOursFile resolves the whole current file as "ours" and advances the
// cursor to the next unresolved file.
func (r *Resolver) AcceptOursFile(ctx context.Context) (flash string, err error) {
	return r.acceptWholeFile(ctx, Ours)
}

// AcceptTheirsFile resolves the whole current file as "theirs".
func (r *Resolver) AcceptTheirsFile(ctx context.Context) (flash string, err error) {
	return r.acceptWholeFile(ctx, Theirs)
}

func (r *Resolver) acceptWholeFile(ctx context.Context, res Resolution) (string, error) {
	f := r.State.currentFile()
	if f == nil {
		return "", nil
	}
	if f.Type.IsTreeConflict() {
		if res == Both {
			return fmt.Sprintf("%s: both/ours/theirs only, not applicable to a tree conflict", f.Path), nil
		}
		deleted, err := r.Repo.ResolveSpecialFile(ctx, f.Path, res == Ours)
		if err != nil {
			return fmt.Sprintf("error resolving %s: %v", f.Path, err), err
		}
		f.IsResolved = true
		r.State.advanceToNextUnresolved()
		side := "ours"
		if res == Theirs {
			side = "theirs"
		}
		if deleted {
			return fmt.Sprintf("accepted %s for %s (file deleted)", side, f.Path), nil
		}
		return fmt.Sprintf("accepted %s for %s", side, f.Path), nil
	}
	for i := range f.Sections {
		f.Sections[i].Resolution = res
	}
	if err := r.applyResolvedContent(ctx, f); err != nil {
		return fmt.Sprintf("error resolving %s: %v", f.Path, err), err
	}
	f.IsResolved = true
	r.State.advanceToNextUnresolved()
	side := "ours"
	switch res {
	case Theirs:
		side = "theirs"
	case Both:
		side = "both"
	}
	return fmt.Sprintf("accepted %s for %s", side, f.Path), nil
}

// AcceptOursBlock resolves the focused hunk as "ours"; once every hunk in
// the file is resolved it writes the merged content to disk.
func (r *Resolver) AcceptOursBlock(ctx context.Context) (flash string, err error) {
	return r.acceptBlock(ctx, Ours)
}

// AcceptTheirsBlock resolves the focused hunk as "theirs".
func (r *Resolver) AcceptTheirsBlock(ctx context.Context) (flash string, err error) {
	return r.acceptBlock(ctx, Theirs)
}

// AcceptBoth keeps both sides of the conflict at whichever granularity the
// resolver is currently working at: the whole file in File mode, the
// focused hunk in Block mode, or every line of the focused hunk in Line
// mode (by marking every line of both sides included).
func (r *Resolver) AcceptBoth(ctx context.Context) (flash string, err error) {
	switch r.State.Mode {
	case ModeFile:
		return r.acceptWholeFile(ctx, Both)
	case ModeLine:
		sec := r.State.currentSection()
		if sec == nil {
			return "", nil
		}
		if sec.LineLevel == nil {
			sec.LineLevel = NewLineLevelResolution(len(sec.Ours), len(sec.Theirs))
		}
		for i := range sec.LineLevel.OursLinesIncluded {
			sec.LineLevel.OursLinesIncluded[i] = true
		}
		for i := range sec.LineLevel.TheirsLinesIncluded {
			sec.LineLevel.TheirsLinesIncluded[i] = true
		}
		sec.LineLevel.Touched = true
		sec.Resolution = deriveLineResolution(sec.LineLevel)
		f := r.State.currentFile()
		if f != nil && f.AllSectionsResolved() {
			if err := r.applyResolvedContent(ctx, f); err != nil {
				return fmt.Sprintf("error: %v", err), err
			}
			f.IsResolved = true
			r.State.advanceToNextUnresolved()
			return fmt.Sprintf("%s resolved (both)", f.Path), nil
		}
		return "", nil
	default:
		return r.acceptBlock(ctx, Both)
	}
}

func (r *Resolver) acceptBlock(ctx context.Context, res Resolution) (string, error) {
	f := r.State.currentFile()
	sec := r.State.currentSection()
	if f == nil || sec == nil {
		return "", nil
	}
	sec.Resolution = res
	if !f.AllSectionsResolved() {
		return "", nil
	}
	if err := r.applyResolvedContent(ctx, f); err != nil {
		return fmt.Sprintf("error: %v", err), err
	}
	f.IsResolved = true
	r.State.advanceToNextUnresolved()
	label := map[Resolution]string{Ours: "ours", Theirs: "theirs", Both: "both"}[res]
	return fmt.Sprintf("%s resolved (%s)", f.Path, label), nil
}

// ConfirmEdit writes the hand-edited buffer to disk and marks the file
// resolved.
func (r *Resolver) ConfirmEdit(ctx context.Context) (flash string, err error) {
	f := r.State.currentFile()
	if f == nil {
		return "", nil
	}
	content := strings.Join(r.State.EditBuffer, "\n")
	if err := r.Repo.WriteResolvedFile(ctx, f.Path, []byte(content)); err != nil {
		r.State.IsEditing = false
		return fmt.Sprintf("error writing %s: %v", f.Path, err), err
	}
	f.IsResolved = true
	r.State.IsEditing = false
	return fmt.Sprintf("%s saved and marked resolved", f.Path), nil
}

// StartEdit seeds the edit buffer from the current merged-content preview
// and enters edit mode.
func (r *Resolver) StartEdit() {
	f := r.State.currentFile()
	if f == nil {
		return
	}
	r.State.EditBuffer = GenerateResolvedContent(f, r.State.Mode)
	if len(r.State.EditBuffer) == 0 {
		r.State.EditBuffer = []string{""}
	}
	r.State.EditCursorLine = 0
	r.State.EditCursorCol = 0
	r.State.IsEditing = true
}

// MarkResolved finalizes the current file if every hunk has a resolution,
// writing it to disk; otherwise it flashes that the file still has
// unresolved hunks, without naming them.
func (r *Resolver) MarkResolved(ctx context.Context) (flash string, err error) {
	f := r.State.currentFile()
	if f == nil {
		return "", nil
	}
	if !f.AllSectionsResolved() {
		return fmt.Sprintf("%s: not every hunk is resolved", f.Path), nil
	}
	if err := r.applyResolvedContent(ctx, f); err != nil {
		return fmt.Sprintf("error resolving %s: %v", f.Path, err), err
	}
	f.IsResolved = true
	r.State.advanceToNextUnresolved()
	return fmt.Sprintf("%s resolved and saved", f.Path), nil
}

// FinalizeMerge creates the merge commit through the repository. It does
// not itself check that every file is resolved; the dispatcher refuses to
// call it while any file is still unresolved.
func (r *Resolver) FinalizeMerge(ctx context.Context, message string) (vcs.CommitID, error) {
	return r.Repo.FinalizeMerge(ctx, message)
}

// AbortMerge discards the in-progress merge entirely.
func (r *Resolver) AbortMerge(ctx context.Context) error {
	return r.Repo.AbortMerge(ctx)
}

// Activate implements the mode-dependent "generic enter" action: in file
// mode it applies the ours/theirs choice under the focused panel; in block
// mode it toggles the focused hunk's resolution on/off; in line mode it is
// a no-op (ToggleLine and MarkResolved cover that case directly).
func (r *Resolver) Activate(ctx context.Context) (flash string, err error) {
	switch r.State.Mode {
	case ModeFile:
		switch r.State.PanelFocus {
		case FocusOurs:
			return r.AcceptOursFile(ctx)
		case FocusTheirs:
			return r.AcceptTheirsFile(ctx)
		}
	case ModeBlock:
		sec := r.State.currentSection()
		if sec == nil {
			return "", nil
		}
		switch r.State.PanelFocus {
		case FocusOurs:
			if sec.Resolution == Ours {
				sec.Resolution = Unresolved
			} else {
				sec.Resolution = Ours
			}
		case FocusTheirs:
			if sec.Resolution == Theirs {
				sec.Resolution = Unresolved
			} else {
				sec.Resolution = Theirs
			}
		}
	}
	return "", nil
}
