package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/polysim/gitkeeper/internal/vcs"
)

func TestFormatLogLineUsesSubjectLineOnly(t *testing.T) {
	c := vcs.Commit{
		ID:        "0123456789abcdef",
		Author:    "Jane Doe",
		Message:   "Fix the bug\n\nLonger explanation that must not appear.",
		Timestamp: time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC),
	}
	got := formatLogLine(c)
	assert.Equal(t, "0123456 Fix the bug — Jane Doe (2026-03-05 14:30)", got)
}

func TestFormatLogLineHandlesShortOidAndSingleLineMessage(t *testing.T) {
	c := vcs.Commit{
		ID:        "abc12",
		Author:    "Bob",
		Message:   "Initial commit",
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got := formatLogLine(c)
	assert.Equal(t, "abc12 Initial commit — Bob (2025-01-01 00:00)", got)
}
