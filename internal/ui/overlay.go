// Package ui renders the dimmed-background overlay gitkeeper uses to show
// its confirm dialog on top of whatever view is active underneath.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimStyle fades the view behind the confirm dialog. ANSI codes are
// stripped first since SGR 2 (faint) doesn't reliably combine with
// existing color codes in most terminals.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// maxLineWidth returns the maximum visual width across lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes from a background line and applies dimStyle.
func dimLine(s string) string {
	return dimStyle.Render(ansi.Strip(s))
}

// compositeRow overlays dialogLine onto bgLine at column dialogStartX,
// dimming whatever background remains visible on either side.
func compositeRow(bgLine, dialogLine string, dialogStartX, dialogWidth, totalWidth int) string {
	var result strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if dialogStartX > 0 {
		leftSeg := ansi.Truncate(stripped, dialogStartX, "")
		leftWidth := ansi.StringWidth(leftSeg)
		result.WriteString(dimStyle.Render(leftSeg))
		if leftWidth < dialogStartX {
			result.WriteString(strings.Repeat(" ", dialogStartX-leftWidth))
		}
	}

	result.WriteString(dialogLine)

	rightStartX := dialogStartX + dialogWidth
	if rightStartX < totalWidth && bgWidth > rightStartX {
		rightSeg := ansi.Cut(stripped, rightStartX, bgWidth)
		result.WriteString(dimStyle.Render(rightSeg))
	}

	return result.String()
}

// RenderConfirmOverlay centers the confirm dialog box over the rendered
// background view, dimming everything else so the pending yes/no prompt
// stands out.
func RenderConfirmOverlay(background, dialog string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	dialogLines := strings.Split(dialog, "\n")

	dialogWidth := maxLineWidth(dialogLines)
	dialogHeight := len(dialogLines)
	startX := (width - dialogWidth) / 2
	startY := (height - dialogHeight) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	result := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		dialogRowIdx := y - startY
		if dialogRowIdx >= 0 && dialogRowIdx < dialogHeight {
			result = append(result, compositeRow(bgLine, dialogLines[dialogRowIdx], startX, dialogWidth, width))
		} else {
			result = append(result, dimLine(bgLine))
		}
	}

	return strings.Join(result, "\n")
}
