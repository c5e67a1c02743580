package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top title bar
type Header struct {
	width       int
	currentFile string
	modified    bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetCurrentFile sets the file path shown on the right side of the bar.
// modified adds the unsaved-changes marker to the title.
func (h *Header) SetCurrentFile(path string, modified bool) {
	h.currentFile = path
	h.modified = modified
}

// View renders the header
func (h *Header) View() string {
	titleText := " trine"
	var rightText string
	if h.currentFile != "" {
		rightText = h.currentFile
		if h.modified {
			rightText += " *"
		}
		rightText += " "
	}

	paddingLen := h.width - len(titleText) - len(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#007ACC") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a background fading from the
// accent color into the editor background.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(hexPrimary)
	endR, endG, endB := parseHexColor(hexBg)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(ColorTextBright).
			Bold(i < 6) // Bold for the "trine" title
		if h.modified && i >= width-2 {
			style = style.Foreground(ColorWarning)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
