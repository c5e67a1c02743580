package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom status bar: contextual keybindings on the
// left, cursor position and file information on the right.
type Footer struct {
	width          int
	bindings       []KeyBinding
	line           int
	col            int
	language       string
	hasDocument    bool
	sidebarFocused bool
	modalOpen      bool
	message        string // transient message, shown instead of bindings
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		line:     1,
		col:      1,
		language: "Plain Text",
		bindings: []KeyBinding{
			{Key: "ctrl+s", Desc: "save"},
			{Key: "ctrl+n", Desc: "new tab"},
			{Key: "ctrl+w", Desc: "close tab"},
			{Key: "ctrl+e", Desc: "split"},
			{Key: "ctrl+f", Desc: "find"},
			{Key: "ctrl+b", Desc: "sidebar"},
			{Key: "ctrl+q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasDocument, sidebarFocused, modalOpen bool) {
	f.hasDocument = hasDocument
	f.sidebarFocused = sidebarFocused
	f.modalOpen = modalOpen
}

// SetStatus updates the cursor position and language shown on the right
func (f *Footer) SetStatus(line, col int, language string) {
	f.line = line
	f.col = col
	f.language = language
}

// SetMessage shows a transient message in place of the keybindings.
// Pass empty string to clear it.
func (f *Footer) SetMessage(msg string) {
	f.message = msg
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	left := f.renderLeft()
	right := f.renderRight()

	pad := f.width - runewidth.StringWidth(stripForWidth(left)) - runewidth.StringWidth(right) - 2
	if pad < 1 {
		pad = 1
	}

	content := left + strings.Repeat(" ", pad) + right
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderLeft() string {
	if f.message != "" {
		return f.message
	}

	var parts []string
	switch {
	case f.modalOpen:
		for _, b := range []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		} {
			parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
		}
	case f.sidebarFocused:
		for _, b := range []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "ctrl+t", Desc: "new folder"},
			{Key: "ctrl+b", Desc: "hide"},
			{Key: "tab", Desc: "editor"},
		} {
			parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
		}
	default:
		for _, b := range f.bindings {
			// Document-specific bindings make no sense with no tab open
			if (b.Key == "ctrl+s" || b.Key == "ctrl+w" || b.Key == "ctrl+f") && !f.hasDocument {
				continue
			}
			parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
		}
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorTextMuted).Background(ColorPrimary).Render("|") + "  "
	return strings.Join(parts, sep)
}

func (f *Footer) renderRight() string {
	if f.sidebarFocused || !f.hasDocument {
		return ""
	}
	return fmt.Sprintf("Ln %d, Col %d | UTF-8 | %s", f.line, f.col, f.language)
}

// stripForWidth removes CSI sequences so the padding math sees only the
// visible characters.
func stripForWidth(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
