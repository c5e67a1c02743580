package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trine-editor/trine/internal/ui"
	"github.com/trine-editor/trine/internal/workspace"
)

// handleMouse routes mouse events by screen region
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	if m.modal.IsVisible() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleMouseClick(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		if m.sidebarVisible && msg.X < m.sidebar.Width() {
			sidebar, cmd := m.sidebar.Update(msg)
			m.sidebar = sidebar
			return cmd
		}
		if ed := m.activeEditor(); ed != nil {
			return ed.Update(msg)
		}
	}
	return nil
}

// handleMouseClick focuses what was clicked: a sidebar row, a tab (which
// also starts a potential drag), a tab's close glyph, or a pane body.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	ctx := ui.GetViewContext()
	if msg.Y < ui.HeaderHeight || msg.Y >= ui.HeaderHeight+ctx.ContentHeight {
		return nil
	}

	if m.sidebarVisible && msg.X < m.sidebar.Width() {
		m.focus = FocusSidebar
		m.sidebar.SetFocused(true)
		adjusted := tea.MouseClickMsg{X: msg.X, Y: msg.Y - ui.HeaderHeight, Button: msg.Button}
		sidebar, cmd := m.sidebar.Update(adjusted)
		m.sidebar = sidebar
		return tea.Batch(cmd, m.focusActiveEditor())
	}

	pane, localX, ok := m.paneAt(msg.X)
	if !ok {
		return nil
	}

	// Tab row: select, close, or start dragging a tab
	if msg.Y == ui.HeaderHeight {
		idx, closeHit, hit := m.tabBarFor(pane.ID()).TabAt(localX)
		if !hit {
			return nil
		}
		if closeHit && pane.CloseVisible() {
			m.focus = FocusEditor
			m.sidebar.SetFocused(false)
			return m.beginCloseTab(workspace.Location{PaneID: pane.ID(), TabIndex: idx})
		}
		m.workspace.SelectTab(pane.ID(), idx)
		m.dragToken = workspace.Token{TabIndex: idx, PaneID: pane.ID()}.String()
		m.focus = FocusEditor
		m.sidebar.SetFocused(false)
		return m.focusActiveEditor()
	}

	// Pane body: focus the pane
	m.workspace.SetActivePane(pane.ID())
	m.focus = FocusEditor
	m.sidebar.SetFocused(false)
	return m.focusActiveEditor()
}

// handleMouseRelease completes a tab drag: dropping on another pane
// transfers the tab, dropping elsewhere on the source tab row reorders it.
func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if m.dragToken == "" {
		return nil
	}
	raw := m.dragToken
	m.dragToken = ""

	pane, localX, ok := m.paneAt(msg.X)
	if !ok {
		return nil
	}

	token, valid := workspace.ParseToken(raw)
	if !valid {
		return nil
	}

	if pane.ID() == token.PaneID {
		if msg.Y != ui.HeaderHeight {
			return nil
		}
		destIdx, _, hit := m.tabBarFor(pane.ID()).TabAt(localX)
		if hit && destIdx != token.TabIndex {
			m.workspace.ReorderTab(pane.ID(), token.TabIndex, destIdx)
		}
		return m.focusActiveEditor()
	}

	paneCount := m.workspace.PaneCount()
	if m.workspace.ApplyTransferToken(raw, pane.ID()) {
		if m.workspace.PaneCount() < paneCount {
			// The transfer emptied the source pane and cascade-closed it
			delete(m.tabBars, token.PaneID)
			m.updateSizes()
		}
		return m.focusActiveEditor()
	}
	return nil
}

// paneAt maps a terminal column to the pane under it and the column local
// to that pane.
func (m *Model) paneAt(x int) (*workspace.Pane, int, bool) {
	ctx := ui.GetViewContext()
	offset := 0
	if m.sidebarVisible {
		offset = ctx.SidebarWidth
	}
	if x < offset {
		return nil, 0, false
	}

	panes := m.workspace.Panes()
	for i, pane := range panes {
		w := ctx.PaneWidth(len(panes), i)
		if x < offset+w {
			return pane, x - offset, true
		}
		offset += w
	}
	return nil, 0, false
}
