package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme. Updated in place by ApplyTheme /
// ApplyThemeWithGenericOverrides from config at startup.
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary = lipgloss.Color("#F9FAFB")
	TextMuted   = lipgloss.Color("#6B7280")

	BgTertiary = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	// Diff foreground colors for the +added/-removed counts next to a
	// changed file.
	DiffAddFg    = lipgloss.Color("#10B981")
	DiffRemoveFg = lipgloss.Color("#EF4444")

	ToastSuccessTextColor = lipgloss.Color("#000000")

	// Conflict-region tinting: which side of a hunk a line came from, and
	// whether the resolved hunk kept both sides.
	ConflictOursFg   = lipgloss.Color("#10B981")
	ConflictTheirsFg = lipgloss.Color("#3B82F6")
	ConflictBothFg   = lipgloss.Color("#F59E0B")
)

// graphLanes is a fixed rotating palette for the commit graph's DAG lanes.
// It is independent of the active theme so a lane keeps its identity
// across a theme switch instead of being rethemed mid-session.
var graphLanes = []lipgloss.Color{
	lipgloss.Color("#F87171"),
	lipgloss.Color("#34D399"),
	lipgloss.Color("#60A5FA"),
	lipgloss.Color("#FBBF24"),
	lipgloss.Color("#C084FC"),
	lipgloss.Color("#F472B6"),
}

// GraphLane returns the color for DAG column/lane index i, cycling through
// the palette once there are more concurrent branches than colors.
func GraphLane(i int) lipgloss.Color {
	if i < 0 {
		i = 0
	}
	return graphLanes[i%len(graphLanes)]
}

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	// Inactive panel with subtle border
	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	// Panel header
	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// Status indicator styles
var (
	StatusBlocked = lipgloss.NewStyle().
			Foreground(Error)

	// ToastSuccess is the footer's flash-message style.
	ToastSuccess = lipgloss.NewStyle().
			Background(Success).
			Foreground(ToastSuccessTextColor).
			Bold(true).
			Padding(0, 1)
)

// List item styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(TextPrimary)

	ListItemFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary)
)

// BarText renders the status bar's secondary text (current branch, key
// hints).
var BarText = lipgloss.NewStyle().
	Foreground(TextMuted)

// Diff line styles
var (
	DiffAdd = lipgloss.NewStyle().
		Foreground(DiffAddFg)

	DiffRemove = lipgloss.NewStyle().
			Foreground(DiffRemoveFg)
)

// Conflict-region styles tint a hunk's lines by which side they came from,
// so the resolver view reads at a glance without re-parsing markers.
var (
	ConflictOurs = lipgloss.NewStyle().
			Foreground(ConflictOursFg)

	ConflictTheirs = lipgloss.NewStyle().
			Foreground(ConflictTheirsFg)

	ConflictBoth = lipgloss.NewStyle().
			Foreground(ConflictBothFg).
			Bold(true)
)

// RenderTab renders one tab label in the Graph/Staging/Branches switcher:
// highlighted when active, muted otherwise. tabIndex and totalTabs are
// accepted so the call site stays agnostic of how many tabs exist, though
// the current fixed three-tab bar doesn't vary color by position.
func RenderTab(label string, tabIndex, totalTabs int, isActive bool) string {
	padded := "  " + label + "  "
	if isActive {
		return lipgloss.NewStyle().Background(Primary).Foreground(TextPrimary).Bold(true).Render(padded)
	}
	return lipgloss.NewStyle().Background(BgTertiary).Foreground(TextMuted).Render(padded)
}
