package modals

import (
	"strings"
)

// RenderSelectableList renders a simple list with selection highlighting.
// Returns the rendered list string. selectedIndex indicates which item is selected.
func RenderSelectableList(items []string, selectedIndex int) string {
	var result strings.Builder
	for i, item := range items {
		style := SidebarItemStyle
		prefix := "  "
		if i == selectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		result.WriteString(style.Render(prefix+item) + "\n")
	}
	return result.String()
}

// TruncatePath truncates a path from the beginning with ellipsis
func TruncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// TruncateString truncates a string from the end with ellipsis
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
