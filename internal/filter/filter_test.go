package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/polysim/gitkeeper/internal/vcs"
)

func commit(author, message string, ts int64) vcs.Commit {
	return vcs.Commit{Author: author, Message: message, Timestamp: time.Unix(ts, 0)}
}

func TestIsActive(t *testing.T) {
	var f Graph
	assert.False(t, f.IsActive())
	f.Author, f.HasAuthor = "test", true
	assert.True(t, f.IsActive())
	f.Clear()
	assert.False(t, f.IsActive())
}

func TestFilterByAuthor(t *testing.T) {
	commits := []vcs.Commit{
		commit("Alice", "First commit", 1000),
		commit("Bob", "Second commit", 2000),
		commit("Charlie", "Third commit", 3000),
	}
	f := Graph{Author: "ali", HasAuthor: true}
	got := f.FilterCommits(commits)
	assert.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Author)
}

func TestFilterByMessage(t *testing.T) {
	commits := []vcs.Commit{
		commit("Alice", "Fix bug in login", 1000),
		commit("Bob", "Add feature X", 2000),
		commit("Charlie", "Fix another bug", 3000),
	}
	f := Graph{Message: "fix", HasMessage: true}
	assert.Len(t, f.FilterCommits(commits), 2)
}

func TestFilterByDateRange(t *testing.T) {
	commits := []vcs.Commit{
		commit("Alice", "Old commit", 1000),
		commit("Bob", "Middle commit", 5000),
		commit("Charlie", "Recent commit", 10000),
	}
	f := Graph{
		DateFrom: time.Unix(2000, 0), HasDateFrom: true,
		DateTo: time.Unix(8000, 0), HasDateTo: true,
	}
	got := f.FilterCommits(commits)
	assert.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Author)
}

func TestFilterCombined(t *testing.T) {
	commits := []vcs.Commit{
		commit("Alice", "Fix bug", 1000),
		commit("Alice", "Add feature", 2000),
		commit("Bob", "Fix bug", 3000),
	}
	f := Graph{Author: "alice", HasAuthor: true, Message: "fix", HasMessage: true}
	got := f.FilterCommits(commits)
	assert.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Author)
	assert.Equal(t, "Fix bug", got[0].Message)
}

func TestPopupStateNavigation(t *testing.T) {
	var p PopupState
	assert.Equal(t, FieldAuthor, p.SelectedField)
	p.NextField()
	assert.Equal(t, FieldDateFrom, p.SelectedField)
	p.NextField()
	assert.Equal(t, FieldDateTo, p.SelectedField)
	p.PreviousField()
	assert.Equal(t, FieldDateFrom, p.SelectedField)
}

func TestPopupApplyToFilter(t *testing.T) {
	p := PopupState{AuthorInput: "Alice", MessageInput: "fix", DateFromInput: "2024-01-01"}
	var f Graph
	p.ApplyTo(&f)
	assert.True(t, f.HasAuthor)
	assert.Equal(t, "Alice", f.Author)
	assert.True(t, f.HasMessage)
	assert.True(t, f.HasDateFrom)
	assert.False(t, f.HasDateTo)
}

func TestParseDateRejectsInvalid(t *testing.T) {
	_, ok := parseDate("invalid")
	assert.False(t, ok)
	_, ok = parseDate("")
	assert.False(t, ok)
	_, ok = parseDate("2024-01-15")
	assert.True(t, ok)
}
