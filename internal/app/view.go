package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trine-editor/trine/internal/highlight"
	"github.com/trine-editor/trine/internal/ui"
	"github.com/trine-editor/trine/internal/workspace"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, m.sidebarVisible)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	ctx := ui.GetViewContext()

	// Update footer context for conditional bindings and the status segment
	doc := m.activeDoc()
	m.footer.SetContext(doc != nil, m.focus == FocusSidebar, m.modal.IsVisible())
	if doc != nil {
		line, col := m.editorFor(doc).CursorLineCol()
		m.footer.SetStatus(line, col, highlight.LanguageForPath(doc.Path()))
	}

	// Header shows the resolved current file, falling back to the active
	// tab's label for untitled documents
	title := m.workspace.CurrentFile()
	modified := false
	if doc != nil {
		if title == "" {
			title = doc.BaseName()
		}
		modified = doc.Modified()
	}
	m.header.SetCurrentFile(title, modified)

	panes := m.workspace.Panes()
	columns := make([]string, 0, len(panes)+1)
	if m.sidebarVisible {
		columns = append(columns, m.sidebar.View())
	}
	for i, pane := range panes {
		columns = append(columns, m.renderPane(pane, ctx.PaneWidth(len(panes), i)))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	// Modal replaces the content area entirely
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)
}

// renderPane renders one pane column: its tab row above a bordered body
// holding the current tab's editor, or a placeholder when the pane is empty.
func (m *Model) renderPane(pane *workspace.Pane, width int) string {
	ctx := ui.GetViewContext()
	paneFocused := pane.ID() == m.workspace.ActivePaneID() && m.focus == FocusEditor

	tabs := make([]ui.Tab, pane.TabCount())
	for i, tab := range pane.Tabs() {
		tabs[i] = ui.Tab{Label: tab.Doc.BaseName(), Modified: tab.Doc.Modified()}
	}
	tabBar := m.tabBarFor(pane.ID())
	tabBar.SetWidth(width)
	tabBar.SetTabs(tabs, pane.CurrentIndex())
	tabBar.SetFocused(paneFocused)

	innerWidth := ctx.InnerWidth(width)
	innerHeight := ctx.InnerHeight(ctx.ContentHeight - ui.TabBarHeight)

	var body string
	if tab := pane.CurrentTab(); tab != nil {
		ed := m.editorFor(tab.Doc)
		ed.SetSize(innerWidth, innerHeight)
		body = ed.View()
	} else {
		body = lipgloss.Place(
			innerWidth, innerHeight,
			lipgloss.Center, lipgloss.Center,
			ui.PlaceholderStyle.Render("no open documents"),
		)
	}

	panel := ui.PanelStyle
	if paneFocused {
		panel = ui.PanelFocusedStyle
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tabBar.View(),
		panel.Width(width).Height(ctx.ContentHeight-ui.TabBarHeight).Render(body),
	)
}
