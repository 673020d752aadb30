package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects currentTheme and themeRegistry for concurrent access.
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha).
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds the colors gitkeeper themes: panel borders, status
// indicators, diff counts, and conflict-region tinting. This is
// deliberately smaller than a general-purpose TUI's palette - gitkeeper
// has no syntax highlighter, file browser or button rail to theme.
type ColorPalette struct {
	Primary string `json:"primary"`
	Success string `json:"success"`
	Error   string `json:"error"`

	TextPrimary string `json:"textPrimary"`
	TextMuted   string `json:"textMuted"`

	BgTertiary string `json:"bgTertiary"`

	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	DiffAddFg    string `json:"diffAddFg"`
	DiffRemoveFg string `json:"diffRemoveFg"`

	ToastSuccessText string `json:"toastSuccessText"`

	// Conflict-region tinting: ours/theirs/both-accepted hunk coloring in
	// the conflict resolver view.
	ConflictOurs   string `json:"conflictOurs"`
	ConflictTheirs string `json:"conflictTheirs"`
	ConflictBoth   string `json:"conflictBoth"`
}

// Theme represents a complete theme configuration.
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary: "#7C3AED", // Purple
			Success: "#10B981", // Green
			Error:   "#EF4444", // Red

			TextPrimary: "#F9FAFB",
			TextMuted:   "#6B7280",

			BgTertiary: "#374151",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			DiffAddFg:    "#10B981",
			DiffRemoveFg: "#EF4444",

			ToastSuccessText: "#000000", // Black on green

			ConflictOurs:   "#10B981", // Green
			ConflictTheirs: "#3B82F6", // Blue
			ConflictBoth:   "#F59E0B", // Amber
		},
	}

	// DraculaTheme is a Dracula-inspired dark theme with vibrant colors.
	DraculaTheme = Theme{
		Name:        "dracula",
		DisplayName: "Dracula",
		Colors: ColorPalette{
			Primary: "#BD93F9", // Purple
			Success: "#50FA7B", // Green
			Error:   "#FF5555", // Red

			TextPrimary: "#F8F8F2", // Foreground
			TextMuted:   "#6272A4", // Comment

			BgTertiary: "#44475A", // Current Line

			BorderNormal: "#44475A",
			BorderActive: "#BD93F9",

			DiffAddFg:    "#50FA7B",
			DiffRemoveFg: "#FF5555",

			ToastSuccessText: "#282A36", // Dark bg on green

			ConflictOurs:   "#50FA7B", // Green
			ConflictTheirs: "#8BE9FD", // Cyan
			ConflictBoth:   "#FFB86C", // Orange
		},
	}
)

// themeRegistry holds all available themes.
var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
}

// currentTheme tracks the active theme name.
var currentTheme = "default"

// activeTheme is the theme last applied by ApplyThemeColors, overrides
// included.
var activeTheme = DefaultTheme

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or
// #RRGGBBAA).
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the default theme if not found.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if t, ok := themeRegistry[name]; ok {
		return t
	}
	return DefaultTheme
}

// GetCurrentTheme returns the currently active theme, including any color
// overrides applied with it.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return activeTheme
}

// GetCurrentThemeName returns the name of the currently active theme.
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the names of all available themes in sorted order.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds a custom theme to the registry.
func RegisterTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	themeRegistry[theme.Name] = theme
}

// ApplyTheme applies a theme by name, updating all style variables.
func ApplyTheme(name string) {
	themeMu.Lock()
	theme, ok := themeRegistry[name]
	if !ok {
		theme = DefaultTheme
	}
	currentTheme = theme.Name
	themeMu.Unlock()
	ApplyThemeColors(theme)
}

// ApplyThemeWithOverrides applies a theme with color overrides from config.
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	themeMu.Lock()
	theme, ok := themeRegistry[name]
	if !ok {
		theme = DefaultTheme
	}
	applyOverrides(&theme.Colors, overrides)
	currentTheme = theme.Name
	themeMu.Unlock()
	ApplyThemeColors(theme)
}

// applyOverrides applies string-keyed hex-color overrides onto palette.
func applyOverrides(palette *ColorPalette, overrides map[string]string) {
	for key, value := range overrides {
		applySingleOverride(palette, key, value)
	}
}

// ApplyThemeWithGenericOverrides applies a theme with overrides decoded
// from config as interface{} (the shape config.ThemeConfig.Overrides
// arrives in after a JSON unmarshal). Non-string values are ignored -
// gitkeeper's palette has no array or numeric fields left to override.
func ApplyThemeWithGenericOverrides(name string, overrides map[string]interface{}) {
	themeMu.Lock()
	theme, ok := themeRegistry[name]
	if !ok {
		theme = DefaultTheme
	}
	for key, value := range overrides {
		if s, ok := value.(string); ok {
			applySingleOverride(&theme.Colors, key, s)
		}
	}
	currentTheme = theme.Name
	themeMu.Unlock()
	ApplyThemeColors(theme)
}

// applySingleOverride sets one named field on palette if value is a valid
// hex color. Unknown keys and invalid colors are silently ignored so a
// typo in config can't crash the TUI.
func applySingleOverride(palette *ColorPalette, key, value string) {
	if !IsValidHexColor(value) {
		return
	}
	switch key {
	case "primary":
		palette.Primary = value
	case "success":
		palette.Success = value
	case "error":
		palette.Error = value
	case "textPrimary":
		palette.TextPrimary = value
	case "textMuted":
		palette.TextMuted = value
	case "bgTertiary":
		palette.BgTertiary = value
	case "borderNormal":
		palette.BorderNormal = value
	case "borderActive":
		palette.BorderActive = value
	case "diffAddFg":
		palette.DiffAddFg = value
	case "diffRemoveFg":
		palette.DiffRemoveFg = value
	case "toastSuccessText":
		palette.ToastSuccessText = value
	case "conflictOurs":
		palette.ConflictOurs = value
	case "conflictTheirs":
		palette.ConflictTheirs = value
	case "conflictBoth":
		palette.ConflictBoth = value
	}
}

// ApplyThemeColors updates every package-level style variable from theme.
//
// Not thread-safe for concurrent reads: call only during initialization or
// from the single-threaded Bubble Tea update loop.
func ApplyThemeColors(theme Theme) {
	themeMu.Lock()
	activeTheme = theme
	themeMu.Unlock()

	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Success = lipgloss.Color(c.Success)
	Error = lipgloss.Color(c.Error)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextMuted = lipgloss.Color(c.TextMuted)

	BgTertiary = lipgloss.Color(c.BgTertiary)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	DiffAddFg = lipgloss.Color(c.DiffAddFg)
	DiffRemoveFg = lipgloss.Color(c.DiffRemoveFg)

	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)

	ConflictOursFg = lipgloss.Color(c.ConflictOurs)
	ConflictTheirsFg = lipgloss.Color(c.ConflictTheirs)
	ConflictBothFg = lipgloss.Color(c.ConflictBoth)

	rebuildStyles()
}

// rebuildStyles reconstructs every derived style from the current color
// variables. Called once per ApplyThemeColors.
func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	StatusBlocked = lipgloss.NewStyle().
		Foreground(Error)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)

	ListItemNormal = lipgloss.NewStyle().
		Foreground(TextPrimary)

	ListItemFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary)

	BarText = lipgloss.NewStyle().
		Foreground(TextMuted)

	DiffAdd = lipgloss.NewStyle().
		Foreground(DiffAddFg)

	DiffRemove = lipgloss.NewStyle().
		Foreground(DiffRemoveFg)

	ConflictOurs = lipgloss.NewStyle().
		Foreground(ConflictOursFg)

	ConflictTheirs = lipgloss.NewStyle().
		Foreground(ConflictTheirsFg)

	ConflictBoth = lipgloss.NewStyle().
		Foreground(ConflictBothFg).
		Bold(true)
}
