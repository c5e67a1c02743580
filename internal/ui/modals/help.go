package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// HelpState - State for the Help modal with keyboard shortcuts (bubbles list)
// =============================================================================

// helpShortcutItem wraps a HelpShortcut for use in a bubbles list.
type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem represents a section header in the list.
// It is not selectable and not filterable.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

// helpDelegate renders help list items with the existing styling.
type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		title := lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Render(i.title)
		fmt.Fprint(w, title)

	case helpShortcutItem:
		isSelected := index == m.Index()
		var key, desc string
		if isSelected {
			key = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Bold(true).
				Width(16).
				Render(i.shortcut.Key)
			desc = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Render(i.shortcut.Desc)
			fmt.Fprint(w, "> "+key+desc)
		} else {
			key = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(16).
				Render(i.shortcut.Key)
			desc = lipgloss.NewStyle().
				Foreground(ColorText).
				Render(i.shortcut.Desc)
			fmt.Fprint(w, "  "+key+desc)
		}
	}
}

// HelpState wraps a bubbles list.Model for the help modal.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	return "up/down to browse, Esc to close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.list.View(), help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// NewHelpState creates a help modal from shortcut sections
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: shortcut})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth-4, 18)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)

	return &HelpState{list: l}
}
