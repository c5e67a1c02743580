package ui

import "charm.land/lipgloss/v2"

// Hex values kept as strings for the header gradient interpolation.
const (
	hexPrimary = "#007ACC"
	hexBg      = "#1E1E1E"
)

// Color palette - dark editor theme
var (
	ColorPrimary     = lipgloss.Color(hexPrimary) // Accent blue (status bar, focus)
	ColorBg          = lipgloss.Color(hexBg)      // Editor background
	ColorBgLight     = lipgloss.Color("#252526")  // Sidebar / tab strip background
	ColorCurrentLine = lipgloss.Color("#2D2D30")  // Current line highlight
	ColorBorder      = lipgloss.Color("#3C3C3C")  // Panel borders
	ColorBorderFocus = lipgloss.Color("#007ACC")  // Border of the active pane
	ColorText        = lipgloss.Color("#D4D4D4")  // Main text
	ColorTextBright  = lipgloss.Color("#FFFFFF")  // Active tab text
	ColorTextMuted   = lipgloss.Color("#858585")  // Muted text, inactive tabs
	ColorTextInverse = lipgloss.Color("#1E1E1E")  // Dark text on light backgrounds
	ColorWarning     = lipgloss.Color("#CCA700")  // Unsaved markers, prompts
	ColorError       = lipgloss.Color("#F48771")  // Errors
	ColorSuccess     = lipgloss.Color("#89D185")  // Saved confirmation
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextBright).
		Background(ColorPrimary).
		Padding(0, 1)
)

// Footer (status bar) styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorPrimary).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextBright).
			Background(ColorPrimary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorPrimary)
)

// Tab bar styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorTextBright).
			Background(ColorBg).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Background(ColorBgLight).
				Padding(0, 1)

	TabModifiedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Background(ColorBg)

	TabCloseStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(ColorBgLight)

	TabBarFillStyle = lipgloss.NewStyle().
			Background(ColorBgLight)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBorderFocus)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)

// Sidebar styles
var (
	SidebarHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorTextMuted).
				Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(ColorCurrentLine).
				Foreground(ColorTextBright).
				Bold(true).
				Padding(0, 1)

	SidebarDirStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Editor styles
var (
	CurrentLineStyle = lipgloss.NewStyle().
				Background(ColorCurrentLine)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
