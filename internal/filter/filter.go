// Package filter implements the pure commit-graph filter predicate and the
// transient popup state used to edit it field by field before it's applied.
package filter

import (
	"strings"
	"time"

	"github.com/polysim/gitkeeper/internal/vcs"
)

// Graph holds the criteria applied to a commit graph. A zero Graph matches
// everything.
type Graph struct {
	Author   string
	HasAuthor bool
	DateFrom  time.Time
	HasDateFrom bool
	DateTo    time.Time
	HasDateTo bool
	Path      string
	HasPath   bool
	Message   string
	HasMessage bool
}

// IsActive reports whether at least one criterion is set.
func (f Graph) IsActive() bool {
	return f.HasAuthor || f.HasDateFrom || f.HasDateTo || f.HasPath || f.HasMessage
}

// Clear resets every criterion.
func (f *Graph) Clear() {
	*f = Graph{}
}

// FilterCommits returns the subset of commits matching f. Path filtering is
// intentionally not applied here: vcs.Commit alone doesn't carry a commit's
// touched-file list, so path matching is the caller's responsibility once it
// has fetched each candidate's file list (see Graph.MatchesPath).
func (f Graph) FilterCommits(commits []vcs.Commit) []vcs.Commit {
	if !f.IsActive() {
		return commits
	}
	out := make([]vcs.Commit, 0, len(commits))
	for _, c := range commits {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Graph) matches(c vcs.Commit) bool {
	if f.HasAuthor && !strings.Contains(strings.ToLower(c.Author), strings.ToLower(f.Author)) {
		return false
	}
	if f.HasDateFrom && c.Timestamp.Before(f.DateFrom) {
		return false
	}
	if f.HasDateTo && c.Timestamp.After(f.DateTo) {
		return false
	}
	if f.HasMessage && !strings.Contains(strings.ToLower(c.Message), strings.ToLower(f.Message)) {
		return false
	}
	return true
}

// MatchesPath reports whether one of touchedFiles matches the path filter.
// Called by the caller once it has resolved a candidate commit's file list.
func (f Graph) MatchesPath(touchedFiles []string) bool {
	if !f.HasPath {
		return true
	}
	for _, p := range touchedFiles {
		if strings.Contains(p, f.Path) {
			return true
		}
	}
	return false
}

// Field identifies one editable field of the filter popup.
type Field int

const (
	FieldAuthor Field = iota
	FieldDateFrom
	FieldDateTo
	FieldPath
	FieldMessage
)

// PopupState is the transient, not-yet-applied state of an open filter
// editor: per-field text inputs plus which field currently has focus.
type PopupState struct {
	IsOpen        bool
	SelectedField Field
	AuthorInput   string
	DateFromInput string // YYYY-MM-DD
	DateToInput   string // YYYY-MM-DD
	PathInput     string
	MessageInput  string
}

// Open populates the popup from the currently applied filter and focuses
// the author field.
func (p *PopupState) Open(current Graph) {
	p.IsOpen = true
	p.SelectedField = FieldAuthor
	p.AuthorInput = current.Author
	if current.HasDateFrom {
		p.DateFromInput = current.DateFrom.Format("2006-01-02")
	} else {
		p.DateFromInput = ""
	}
	if current.HasDateTo {
		p.DateToInput = current.DateTo.Format("2006-01-02")
	} else {
		p.DateToInput = ""
	}
	p.PathInput = current.Path
	p.MessageInput = current.Message
}

// Close dismisses the popup without applying it.
func (p *PopupState) Close() { p.IsOpen = false }

var fieldOrder = []Field{FieldAuthor, FieldDateFrom, FieldDateTo, FieldPath, FieldMessage}

// NextField advances focus, wrapping from Message back to Author.
func (p *PopupState) NextField() {
	for i, f := range fieldOrder {
		if f == p.SelectedField {
			p.SelectedField = fieldOrder[(i+1)%len(fieldOrder)]
			return
		}
	}
}

// PreviousField moves focus back, wrapping from Author to Message.
func (p *PopupState) PreviousField() {
	for i, f := range fieldOrder {
		if f == p.SelectedField {
			p.SelectedField = fieldOrder[(i-1+len(fieldOrder))%len(fieldOrder)]
			return
		}
	}
}

// CurrentInput returns the value of the focused field.
func (p *PopupState) CurrentInput() string {
	switch p.SelectedField {
	case FieldAuthor:
		return p.AuthorInput
	case FieldDateFrom:
		return p.DateFromInput
	case FieldDateTo:
		return p.DateToInput
	case FieldPath:
		return p.PathInput
	default:
		return p.MessageInput
	}
}

// SetCurrentInput overwrites the value of the focused field.
func (p *PopupState) SetCurrentInput(value string) {
	switch p.SelectedField {
	case FieldAuthor:
		p.AuthorInput = value
	case FieldDateFrom:
		p.DateFromInput = value
	case FieldDateTo:
		p.DateToInput = value
	case FieldPath:
		p.PathInput = value
	default:
		p.MessageInput = value
	}
}

// ApplyTo writes the popup's parsed fields into filter. A date-to value
// gets shifted to the end of that calendar day, matching the original
// behavior of including the whole final day in range.
func (p *PopupState) ApplyTo(filter *Graph) {
	filter.Author = p.AuthorInput
	filter.HasAuthor = p.AuthorInput != ""

	if t, ok := parseDate(p.DateFromInput); ok {
		filter.DateFrom = t
		filter.HasDateFrom = true
	} else {
		filter.HasDateFrom = false
	}

	if t, ok := parseDate(p.DateToInput); ok {
		filter.DateTo = t.Add(24*time.Hour - time.Second)
		filter.HasDateTo = true
	} else {
		filter.HasDateTo = false
	}

	filter.Path = p.PathInput
	filter.HasPath = p.PathInput != ""

	filter.Message = p.MessageInput
	filter.HasMessage = p.MessageInput != ""
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
