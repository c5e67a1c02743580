package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Tab is a single entry in a pane's tab row.
type Tab struct {
	Label    string
	Modified bool
}

// tabBounds records the cell range a rendered tab occupies, used for
// mouse hit testing.
type tabBounds struct {
	start    int // inclusive
	end      int // exclusive
	closeCol int // column of the close glyph, -1 if truncated away
}

// TabBar renders a pane's row of tabs and answers mouse hit tests
// against the most recent render.
type TabBar struct {
	width   int
	tabs    []Tab
	current int
	focused bool
	bounds  []tabBounds
}

// NewTabBar creates an empty tab bar
func NewTabBar() *TabBar {
	return &TabBar{current: -1}
}

// SetWidth sets the bar width in cells
func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// SetTabs replaces the tabs and the selected index
func (t *TabBar) SetTabs(tabs []Tab, current int) {
	t.tabs = tabs
	t.current = current
}

// SetFocused marks whether the owning pane has focus
func (t *TabBar) SetFocused(focused bool) {
	t.focused = focused
}

// TabAt resolves a column from the latest render to a tab index.
// closeHit reports whether the column lands on the tab's close glyph.
func (t *TabBar) TabAt(x int) (index int, closeHit bool, ok bool) {
	for i, b := range t.bounds {
		if x >= b.start && x < b.end {
			return i, b.closeCol >= 0 && x == b.closeCol, true
		}
	}
	return 0, false, false
}

// View renders the tab row and records hit-test bounds
func (t *TabBar) View() string {
	t.bounds = t.bounds[:0]

	var sb strings.Builder
	col := 0

	for i, tab := range t.tabs {
		label := truncateLabel(tab.Label, MaxTabLabelWidth)

		// padding + label + space + close glyph + padding
		cellWidth := runewidth.StringWidth(label) + 4
		if col+cellWidth > t.width {
			// No room for this tab; stop laying out and let the fill
			// cover the rest. Bounds for hidden tabs are not recorded.
			break
		}

		style := TabInactiveStyle
		closeStyle := TabCloseStyle
		if i == t.current {
			style = TabActiveStyle
			closeStyle = closeStyle.Background(ColorBg)
			if t.focused {
				style = style.Bold(true)
			}
		}

		rendered := label
		if tab.Modified {
			modStyle := TabModifiedStyle
			if i != t.current {
				modStyle = modStyle.Background(ColorBgLight)
			}
			rendered = style.Padding(0).Render(label) + modStyle.Render(" *")
			cellWidth += 2
			if col+cellWidth > t.width {
				break
			}
			sb.WriteString(style.Padding(0).Render(" "))
			sb.WriteString(rendered)
			sb.WriteString(closeStyle.Render(" ×"))
			sb.WriteString(style.Padding(0).Render(" "))
		} else {
			sb.WriteString(style.Render(rendered + " ×"))
		}

		t.bounds = append(t.bounds, tabBounds{
			start:    col,
			end:      col + cellWidth,
			closeCol: col + cellWidth - 2,
		})
		col += cellWidth
	}

	if col < t.width {
		sb.WriteString(TabBarFillStyle.Render(strings.Repeat(" ", t.width-col)))
	}

	return sb.String()
}

// truncateLabel shortens s to at most max cells, ellipsizing if needed
func truncateLabel(s string, max int) string {
	if max < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max-1, "…")
}
