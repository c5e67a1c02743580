package app

import (
	"github.com/trine-editor/trine/internal/config"
	"github.com/trine-editor/trine/internal/logger"
)

// restoreSession rebuilds the previous run's pane layout from config.
// Files that no longer open cleanly are skipped; untitled tabs were never
// persisted. A broken or missing session leaves the fresh workspace as is.
func (m *Model) restoreSession() {
	session := m.config.GetSession()
	if session == nil {
		return
	}

	for i, layout := range session.Panes {
		pane := m.workspace.Panes()[0]
		if i > 0 {
			pane = m.workspace.AddSplitPane()
			if pane == nil {
				logger.Log("App: session restore hit pane cap, dropping remaining panes")
				break
			}
		}
		m.workspace.SetActivePane(pane.ID())

		opened := 0
		for _, path := range layout.Files {
			if _, err := m.workspace.OpenFile(path); err != nil {
				logger.Log("App: session restore skipped %s: %v", path, err)
				continue
			}
			opened++
		}

		// Each pane starts with one untitled tab at index 0; drop it once
		// real files are in so indices line up with the saved layout.
		if opened > 0 {
			m.workspace.RemoveTab(pane.ID(), 0)
		}

		if layout.CurrentTab >= 0 && layout.CurrentTab < pane.TabCount() {
			m.workspace.SelectTab(pane.ID(), layout.CurrentTab)
		}
	}

	if session.ActivePane >= 0 && session.ActivePane < m.workspace.PaneCount() {
		m.workspace.SetActivePane(m.workspace.Panes()[session.ActivePane].ID())
	}
}

// persistSession snapshots the current layout into config and saves it.
// Untitled tabs are skipped; the current-tab cursor is remapped onto the
// surviving file list.
func (m *Model) persistSession() {
	session := &config.Session{}

	panes := m.workspace.Panes()
	for i, pane := range panes {
		layout := config.PaneLayout{Files: []string{}, CurrentTab: -1}

		for idx, tab := range pane.Tabs() {
			if tab.Doc.IsUntitled() {
				continue
			}
			if idx == pane.CurrentIndex() {
				layout.CurrentTab = len(layout.Files)
			}
			layout.Files = append(layout.Files, tab.Doc.Path())
		}
		if layout.CurrentTab == -1 && len(layout.Files) > 0 {
			layout.CurrentTab = 0
		}

		session.Panes = append(session.Panes, layout)
		if pane.ID() == m.workspace.ActivePaneID() {
			session.ActivePane = i
		}
	}

	m.config.SetSession(session)
	m.config.SetSidebarVisible(m.sidebarVisible)
	m.config.SetLastFolder(m.sidebar.Root())
	if err := m.config.Save(); err != nil {
		logger.Log("App: failed to save config: %v", err)
	}
}
