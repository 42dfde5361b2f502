package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the TUI.
// Inspired by the Tokyo Night color scheme.
type Theme struct {
	// Backgrounds
	BgDark  lipgloss.Color // Deep background
	BgPanel lipgloss.Color // Panel/box background

	// Text
	TextPrimary lipgloss.Color // Main text
	TextDim     lipgloss.Color // Secondary/dim text
	TextMuted   lipgloss.Color // Very dim text

	// Borders
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	// Semantic colors
	Accent  lipgloss.Color // Primary accent (blue)
	Success lipgloss.Color // Prices, copied links (green)
	Warning lipgloss.Color // Empty states (amber)
	Error   lipgloss.Color // Load failure (red/pink)
	Purple  lipgloss.Color // Titles
	Cyan    lipgloss.Color // Links
}

// DefaultTheme is a dark theme in deep blue-black tones.
var DefaultTheme = Theme{
	BgDark:  lipgloss.Color("#1a1b26"),
	BgPanel: lipgloss.Color("#24283b"),

	TextPrimary: lipgloss.Color("#c0caf5"),
	TextDim:     lipgloss.Color("#565f89"),
	TextMuted:   lipgloss.Color("#414868"),

	Border:        lipgloss.Color("#414868"),
	BorderFocused: lipgloss.Color("#7aa2f7"),

	Accent:  lipgloss.Color("#7aa2f7"),
	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Purple:  lipgloss.Color("#bb9af7"),
	Cyan:    lipgloss.Color("#7dcfff"),
}

// Styles provides pre-configured lipgloss styles using the theme.
type Styles struct {
	Base  lipgloss.Style
	Dim   lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Headers
	Title       lipgloss.Style
	Header      lipgloss.Style
	SectionName lipgloss.Style
	Breadcrumb  lipgloss.Style

	// Status
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Interactive elements
	Selected   lipgloss.Style
	Cursor     lipgloss.Style
	KeyBinding lipgloss.Style
	KeyHint    lipgloss.Style

	// Catalogue content
	Code  lipgloss.Style
	Price lipgloss.Style
	Link  lipgloss.Style
	Box   lipgloss.Style

	// Search box
	SearchLabel  lipgloss.Style
	SearchActive lipgloss.Style

	Footer lipgloss.Style
}

// NewStyles creates a new Styles instance from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Base:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		Dim:   lipgloss.NewStyle().Foreground(t.TextDim),
		Muted: lipgloss.NewStyle().Foreground(t.TextMuted),
		Bold:  lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(t.Purple).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		SectionName: lipgloss.NewStyle().
			Foreground(t.TextDim).
			Bold(true),
		Breadcrumb: lipgloss.NewStyle().
			Foreground(t.Accent).
			Underline(true),

		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(t.BgDark).
			Background(t.Accent),
		KeyBinding: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.TextDim),

		Code:  lipgloss.NewStyle().Foreground(t.Cyan),
		Price: lipgloss.NewStyle().Foreground(t.Success),
		Link:  lipgloss.NewStyle().Foreground(t.Cyan).Underline(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		SearchLabel: lipgloss.NewStyle().
			Foreground(t.TextDim).
			Bold(true),
		SearchActive: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextDim),
	}
}

// DefaultStyles returns styles using the default theme.
var DefaultStyles = NewStyles(DefaultTheme)
