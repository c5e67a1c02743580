package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trine-editor/trine/internal/keys"
	"github.com/trine-editor/trine/internal/logger"
)

// FileSelectedMsg is sent when the user opens a file from the sidebar
type FileSelectedMsg struct {
	Path string
}

// sidebarEntry is one visible row of the file tree.
type sidebarEntry struct {
	Path  string
	Name  string
	IsDir bool
	Depth int
}

// Sidebar represents the left panel with the folder file tree
type Sidebar struct {
	root         string
	entries      []sidebarEntry
	expanded     map[string]bool
	selectedIdx  int
	scrollOffset int
	width        int
	height       int
	focused      bool
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{
		expanded: make(map[string]bool),
	}
}

// SetRoot points the sidebar at a folder and rebuilds the tree
func (s *Sidebar) SetRoot(root string) {
	s.root = root
	s.expanded = make(map[string]bool)
	s.selectedIdx = 0
	s.scrollOffset = 0
	s.Refresh()
}

// Root returns the current folder, empty if none is open
func (s *Sidebar) Root() string {
	return s.root
}

// Refresh re-reads the folder tree from disk
func (s *Sidebar) Refresh() {
	s.entries = s.entries[:0]
	if s.root == "" {
		return
	}
	s.appendDir(s.root, 0)
	if s.selectedIdx >= len(s.entries) {
		s.selectedIdx = len(s.entries) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// appendDir lists dir and recurses into expanded subdirectories,
// directories first, each group alphabetical.
func (s *Sidebar) appendDir(dir string, depth int) {
	items, err := os.ReadDir(dir)
	if err != nil {
		logger.ComponentLogger("sidebar").Warn("Failed to read directory", "dir", dir, "error", err)
		return
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].IsDir() != items[j].IsDir() {
			return items[i].IsDir()
		}
		return items[i].Name() < items[j].Name()
	})

	for _, item := range items {
		if strings.HasPrefix(item.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, item.Name())
		s.entries = append(s.entries, sidebarEntry{
			Path:  path,
			Name:  item.Name(),
			IsDir: item.IsDir(),
			Depth: depth,
		})
		if item.IsDir() && s.expanded[path] {
			s.appendDir(path, depth+1)
		}
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SelectedEntry returns the highlighted entry, nil when the tree is empty
func (s *Sidebar) SelectedEntry() *sidebarEntry {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.entries) {
		return nil
	}
	return &s.entries[s.selectedIdx]
}

// Update handles keyboard and mouse input
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up:
			if s.selectedIdx > 0 {
				s.selectedIdx--
				s.ensureVisible()
			}
		case keys.Down:
			if s.selectedIdx < len(s.entries)-1 {
				s.selectedIdx++
				s.ensureVisible()
			}
		case keys.Home:
			s.selectedIdx = 0
			s.ensureVisible()
		case keys.End:
			s.selectedIdx = len(s.entries) - 1
			s.ensureVisible()
		case keys.Enter, keys.Space:
			return s, s.openSelected()
		}
	case tea.MouseClickMsg:
		row := msg.Y - 1 // header line
		idx := s.scrollOffset + row
		if idx >= 0 && idx < len(s.entries) {
			if s.selectedIdx == idx {
				return s, s.openSelected()
			}
			s.selectedIdx = idx
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp && s.scrollOffset > 0 {
			s.scrollOffset--
		}
		if msg.Button == tea.MouseWheelDown && s.scrollOffset < len(s.entries)-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

// openSelected toggles a directory or emits FileSelectedMsg for a file
func (s *Sidebar) openSelected() tea.Cmd {
	entry := s.SelectedEntry()
	if entry == nil {
		return nil
	}
	if entry.IsDir {
		s.expanded[entry.Path] = !s.expanded[entry.Path]
		s.Refresh()
		return nil
	}
	path := entry.Path
	return func() tea.Msg {
		return FileSelectedMsg{Path: path}
	}
}

// ensureVisible adjusts the scroll offset to keep the selection on screen
func (s *Sidebar) ensureVisible() {
	visible := s.visibleRows()
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	} else if s.selectedIdx >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedIdx - visible + 1
	}
}

// visibleRows is the number of tree rows that fit under the header
func (s *Sidebar) visibleRows() int {
	ctx := GetViewContext()
	rows := ctx.InnerHeight(s.height) - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)

	header := "EXPLORER"
	if s.root != "" {
		header = strings.ToUpper(filepath.Base(s.root))
	}
	lines := []string{SidebarHeaderStyle.Render(truncateLabel(header, innerWidth-2))}

	if len(s.entries) == 0 {
		lines = append(lines, PlaceholderStyle.Padding(0, 1).Render("No folder open."))
	}

	visible := s.visibleRows()
	end := s.scrollOffset + visible
	if end > len(s.entries) {
		end = len(s.entries)
	}

	for i := s.scrollOffset; i < end; i++ {
		entry := s.entries[i]

		name := entry.Name
		if entry.IsDir {
			marker := "▸ "
			if s.expanded[entry.Path] {
				marker = "▾ "
			}
			name = marker + name
		}
		name = strings.Repeat("  ", entry.Depth) + name
		name = truncateLabel(name, innerWidth-2)

		itemStyle := SidebarItemStyle
		if i == s.selectedIdx {
			itemStyle = SidebarSelectedStyle
		} else if entry.IsDir {
			itemStyle = itemStyle.Foreground(ColorPrimary)
		}
		lines = append(lines, itemStyle.Width(innerWidth).Render(name))
	}

	content := strings.Join(lines, "\n")

	return style.
		Width(s.width).
		Height(s.height).
		Render(lipgloss.NewStyle().MaxHeight(ctx.InnerHeight(s.height)).Render(content))
}
