package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/polysim/gitkeeper/internal/appstate"
	"github.com/polysim/gitkeeper/internal/appview"
	"github.com/polysim/gitkeeper/internal/conflict"
	"github.com/polysim/gitkeeper/internal/selection"
	"github.com/polysim/gitkeeper/internal/styles"
	"github.com/polysim/gitkeeper/internal/ui"
	"github.com/polysim/gitkeeper/internal/vcs"
)

const (
	headerHeight = 2 // tab bar + spacing
	footerHeight = 1
	minWidth     = 60
	minHeight    = 20
)

var tabOrder = []appview.Mode{appview.Graph, appview.Staging, appview.Branches}
var tabLabels = map[appview.Mode]string{
	appview.Graph:    "Graph",
	appview.Staging:  "Staging",
	appview.Branches: "Branches",
}

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.StatusBlocked.Render(msg))
	}

	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody(m.width, contentHeight))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	bg := b.String()
	if m.state.PendingConfirm != nil {
		return ui.RenderConfirmOverlay(bg, m.renderConfirmDialog(), m.width, m.height)
	}
	return bg
}

// renderTabBar renders the Graph/Staging/Branches view switcher.
func (m Model) renderTabBar() string {
	mode := m.state.ViewMode
	if mode == appview.Help {
		mode = appview.Graph // Help has no tab of its own; the Graph tab stays lit
	}
	var tabs []string
	for i, mv := range tabOrder {
		active := mv == mode
		tabs = append(tabs, styles.RenderTab(tabLabels[mv], i, len(tabOrder), active))
	}
	branch := m.state.CurrentBranch
	if branch == "" {
		branch = "(no branch)"
	}
	left := strings.Join(tabs, "")
	right := styles.BarText.Render(branch)
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) renderBody(width, height int) string {
	switch m.state.ViewMode {
	case appview.Staging:
		return m.renderStaging(width, height)
	case appview.Branches:
		return m.renderBranches(width, height)
	case appview.Conflicts:
		return m.renderConflicts(width, height)
	case appview.Help:
		return m.renderHelp(width, height)
	default:
		return m.renderGraph(width, height)
	}
}

func (m Model) renderGraph(width, height int) string {
	leftWidth := width / 2
	rightWidth := width - leftWidth - 1

	var rows strings.Builder
	for _, it := range m.state.Graph.Rows.VisibleItems() {
		row := it.Item
		lane := lipgloss.NewStyle().Foreground(styles.GraphLane(row.Node.ColorIndex)).Render("●")
		text := fmt.Sprintf("%s %s", row.Node.ID.Short(), row.Node.Message)
		style := styles.ListItemNormal
		if it.Index == m.state.Graph.Rows.SelectedIndex() {
			style = styles.ListItemFocused
		}
		textWidth := leftWidth - 4 // lane bullet + separator
		if textWidth < 0 {
			textWidth = 0
		}
		rows.WriteString(lane + " " + style.Width(textWidth).Render(truncate(text, textWidth)))
		rows.WriteString("\n")
	}
	left := styles.PanelActive.Width(leftWidth).Height(height - 2).Render(rows.String())

	var detail string
	if c, ok := m.state.SelectedCommit(); ok {
		detail = fmt.Sprintf("%s\n\n%s\n%s <%s>\n\n%s",
			styles.Title.Render(c.ID.Short()),
			c.Message,
			c.Author, c.Email,
			m.renderCommitFiles())
	} else {
		detail = styles.Muted.Render("No commits")
	}
	right := styles.PanelInactive.Width(rightWidth).Height(height - 2).Render(detail)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderCommitFiles() string {
	var b strings.Builder
	for i, f := range m.state.Graph.CommitFiles {
		style := styles.ListItemNormal
		if i == m.state.Graph.FileSelectedIndex {
			style = styles.ListItemFocused
		}
		counts := fmt.Sprintf("(+%s/-%s)",
			styles.DiffAdd.Render(fmt.Sprintf("%d", f.Additions)),
			styles.DiffRemove.Render(fmt.Sprintf("%d", f.Deletions)))
		b.WriteString(style.Render(f.Path) + " " + counts)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStaging(width, height int) string {
	colWidth := width/2 - 1
	unstaged := renderStatusList("Unstaged", m.state.Staging.Unstaged.VisibleItems(),
		m.state.Staging.Unstaged.SelectedIndex(), m.state.Staging.Focus == appview.FocusUnstaged, colWidth, height)
	staged := renderStatusList("Staged", m.state.Staging.Staged.VisibleItems(),
		m.state.Staging.Staged.SelectedIndex(), m.state.Staging.Focus == appview.FocusStaged, colWidth, height)

	body := lipgloss.JoinHorizontal(lipgloss.Top, unstaged, staged)
	if m.state.Staging.IsCommitting {
		prompt := styles.PanelActive.Width(width - 2).Render(
			"Commit message: " + m.state.Staging.CommitMessage)
		return lipgloss.JoinVertical(lipgloss.Left, body, prompt)
	}
	return body
}

func renderStatusList(title string, items []selection.IndexedItem[vcs.StatusEntry], selected int, focused bool, width, height int) string {
	panel := styles.PanelInactive
	if focused {
		panel = styles.PanelActive
	}
	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render(title))
	b.WriteString("\n")
	for _, it := range items {
		style := styles.ListItemNormal
		if it.Index == selected {
			style = styles.ListItemFocused
		}
		b.WriteString(style.Render(it.Item.Path))
		b.WriteString("\n")
	}
	return panel.Width(width).Height(height - 2).Render(b.String())
}

func (m Model) renderBranches(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render("Branches"))
	b.WriteString("\n")
	list := m.state.BranchesView.LocalBranches
	if m.state.BranchesView.ShowRemote {
		list = m.state.BranchesView.RemoteBranches
	}
	for _, it := range list.VisibleItems() {
		style := styles.ListItemNormal
		if it.Index == list.SelectedIndex() {
			style = styles.ListItemFocused
		}
		marker := "  "
		if it.Item.IsHead {
			marker = "* "
		}
		b.WriteString(style.Render(marker + it.Item.Name))
		b.WriteString("\n")
	}
	if m.state.BranchesView.InputAction != appstate.InputNone {
		b.WriteString("\n")
		b.WriteString(m.state.BranchesView.InputText)
	}
	return styles.PanelActive.Width(width - 2).Height(height - 2).Render(b.String())
}

func (m Model) renderConflicts(width, height int) string {
	cs := m.state.Conflicts
	if cs == nil || len(cs.Files) == 0 {
		return styles.Muted.Render("No conflicts")
	}
	var b strings.Builder
	for i, f := range cs.Files {
		style := styles.ListItemNormal
		if i == cs.FileSelected {
			style = styles.ListItemFocused
		}
		status := "unresolved"
		if f.IsResolved {
			status = "resolved"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s (%s)", f.Path, status)))
		b.WriteString("\n")
	}
	if detail := renderConflictSection(cs); detail != "" {
		b.WriteString("\n")
		b.WriteString(detail)
	}
	return styles.PanelActive.Width(width - 2).Height(height - 2).Render(b.String())
}

// renderConflictSection renders the hunk currently under the cursor,
// tinting each side's lines by who contributed them so ours/theirs/both
// reads at a glance without re-parsing the conflict markers.
func renderConflictSection(cs *conflict.State) string {
	if cs.FileSelected < 0 || cs.FileSelected >= len(cs.Files) {
		return ""
	}
	f := cs.Files[cs.FileSelected]
	if cs.SectionSelected < 0 || cs.SectionSelected >= len(f.Sections) {
		return ""
	}
	sec := f.Sections[cs.SectionSelected]

	oursStyle, theirsStyle := styles.ConflictOurs, styles.ConflictTheirs
	switch sec.Resolution {
	case conflict.Ours:
		theirsStyle = styles.Muted
	case conflict.Theirs:
		oursStyle = styles.Muted
	case conflict.Both:
		oursStyle, theirsStyle = styles.ConflictBoth, styles.ConflictBoth
	}

	var b strings.Builder
	for _, l := range sec.Ours {
		b.WriteString(oursStyle.Render("- " + l))
		b.WriteString("\n")
	}
	for _, l := range sec.Theirs {
		b.WriteString(theirsStyle.Render("+ " + l))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp(width, height int) string {
	lines := []string{
		"1/2/3  switch view    r  refresh    ?  toggle help    q  quit",
		"j/k    move           g/G  top/bottom",
		"Graph:    p push  P pull  f fetch  m merge  b branches  c cherry-pick  B blame",
		"Staging:  tab focus  s/S stage  u/U unstage  c commit  D discard  z stash file",
		"Branches: enter checkout  n new  d delete  R rename  w remote  tab section",
	}
	return styles.PanelActive.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	if m.state.HasFlash {
		return styles.ToastSuccess.Render(m.state.FlashMessage)
	}
	return styles.BarText.Render("? help  q quit")
}

func (m Model) renderConfirmDialog() string {
	p := m.state.PendingConfirm
	body := fmt.Sprintf("%s\n\n[y] confirm   [n] cancel", p.Prompt)
	return styles.PanelActive.Width(50).Render(body)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
