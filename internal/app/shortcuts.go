package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/trine-editor/trine/internal/clipboard"
	"github.com/trine-editor/trine/internal/fileio"
	"github.com/trine-editor/trine/internal/keys"
	"github.com/trine-editor/trine/internal/logger"
	"github.com/trine-editor/trine/internal/search"
	"github.com/trine-editor/trine/internal/ui/modals"
	"github.com/trine-editor/trine/internal/workspace"
)

// handleKeyPress dispatches global shortcuts. Returns handled=false for
// keys that should fall through to the focused panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlQ:
		return true, m, m.beginQuit()

	case keys.CtrlB:
		return true, m, m.cycleSidebar()

	case keys.CtrlO:
		m.modal.Show(modals.NewOpenPathState("", false))
		return true, m, nil

	case keys.CtrlT:
		if m.focus == FocusSidebar && m.sidebar.Root() != "" {
			m.modal.Show(modals.NewCreateFolderState())
		} else {
			m.modal.Show(modals.NewOpenPathState(m.sidebar.Root(), true))
		}
		return true, m, nil

	case keys.Alt1, keys.Alt2, keys.Alt3:
		return true, m, m.focusPaneByOrdinal(int(msg.String()[len(msg.String())-1] - '1'))

	case keys.CtrlE:
		return true, m, m.splitPane()

	case keys.CtrlN:
		m.workspace.NewTab(m.workspace.ActivePaneID())
		m.focus = FocusEditor
		m.sidebar.SetFocused(false)
		return true, m, m.focusActiveEditor()

	case keys.F1:
		m.modal.Show(modals.NewHelpState(helpSections()))
		return true, m, nil

	case keys.Escape:
		if m.focus == FocusSidebar {
			m.focus = FocusEditor
			m.sidebar.SetFocused(false)
			return true, m, m.focusActiveEditor()
		}
		return true, m, nil
	}

	if m.focus == FocusSidebar {
		return false, m, nil
	}

	// Editor-focused shortcuts
	switch msg.String() {
	case keys.CtrlS:
		return true, m, m.saveCurrent()

	case keys.CtrlShiftS:
		pane := m.workspace.ActivePane()
		doc := m.activeDoc()
		if doc == nil {
			return true, m, nil
		}
		m.syncActiveDocument()
		m.promptSlot = workspace.Location{PaneID: pane.ID(), TabIndex: pane.CurrentIndex()}
		m.modal.Show(modals.NewSaveAsState(doc.Path()))
		return true, m, nil

	case keys.CtrlW:
		pane := m.workspace.ActivePane()
		if pane == nil || pane.Empty() {
			return true, m, nil
		}
		slot := workspace.Location{PaneID: pane.ID(), TabIndex: pane.CurrentIndex()}
		return true, m, m.beginCloseTab(slot)

	case keys.CtrlShiftW:
		return true, m, m.beginClosePane(m.workspace.ActivePaneID())

	case keys.CtrlF:
		return true, m, m.openFind(false)

	case keys.CtrlH:
		return true, m, m.openFind(true)

	case keys.F3:
		return true, m, m.findNext()

	case keys.CtrlTab, keys.CtrlPgDown:
		return true, m, m.cycleTab(1)

	case keys.CtrlPgUp:
		return true, m, m.cycleTab(-1)

	case keys.CtrlC:
		return true, m, m.copyCurrentLine(false)

	case keys.CtrlX:
		return true, m, m.copyCurrentLine(true)

	case keys.CtrlV:
		return true, m, m.pasteClipboard()
	}

	return false, m, nil
}

// cycleSidebar rotates ctrl+b through show-and-focus, focus, and hide
func (m *Model) cycleSidebar() tea.Cmd {
	switch {
	case !m.sidebarVisible:
		m.sidebarVisible = true
		m.focus = FocusSidebar
		m.sidebar.SetFocused(true)
	case m.focus == FocusEditor:
		m.focus = FocusSidebar
		m.sidebar.SetFocused(true)
	default:
		m.sidebarVisible = false
		m.focus = FocusEditor
		m.sidebar.SetFocused(false)
	}
	m.updateSizes()
	return m.focusActiveEditor()
}

// focusPaneByOrdinal activates the nth pane in display order
func (m *Model) focusPaneByOrdinal(n int) tea.Cmd {
	panes := m.workspace.Panes()
	if n < 0 || n >= len(panes) {
		return nil
	}
	m.workspace.SetActivePane(panes[n].ID())
	m.focus = FocusEditor
	m.sidebar.SetFocused(false)
	return m.focusActiveEditor()
}

// splitPane adds a pane, up to the cap
func (m *Model) splitPane() tea.Cmd {
	if m.workspace.AddSplitPane() == nil {
		return m.setStatus("Cannot split further")
	}
	m.focus = FocusEditor
	m.sidebar.SetFocused(false)
	m.updateSizes()
	return m.focusActiveEditor()
}

// cycleTab moves the active pane's current tab by delta with wrap-around
func (m *Model) cycleTab(delta int) tea.Cmd {
	pane := m.workspace.ActivePane()
	if pane == nil || pane.TabCount() < 2 {
		return nil
	}
	next := (pane.CurrentIndex() + delta + pane.TabCount()) % pane.TabCount()
	m.workspace.SelectTab(pane.ID(), next)
	return m.focusActiveEditor()
}

// saveCurrent saves the active document, routing untitled documents
// through the Save As modal.
func (m *Model) saveCurrent() tea.Cmd {
	doc := m.activeDoc()
	if doc == nil {
		return nil
	}
	m.syncActiveDocument()
	pane := m.workspace.ActivePane()
	slot := workspace.Location{PaneID: pane.ID(), TabIndex: pane.CurrentIndex()}
	if doc.IsUntitled() {
		m.promptSlot = slot
		m.modal.Show(modals.NewSaveAsState(""))
		return nil
	}
	if !m.saveAt(slot) {
		return m.setStatus("Could not save " + doc.BaseName())
	}
	return m.setStatus("Saved " + doc.BaseName())
}

// beginCloseTab starts the close flow for one tab. Unmodified tabs close
// immediately; modified ones go through the save prompt.
func (m *Model) beginCloseTab(slot workspace.Location) tea.Cmd {
	doc := m.docAt(slot)
	if doc == nil {
		return nil
	}
	m.syncActiveDocument()
	if !doc.Modified() {
		return m.removeTabAt(slot)
	}
	m.pending = pendingCloseTab
	m.pendingSlot = slot
	m.queue = []workspace.Location{slot}
	return m.advancePending()
}

// beginClosePane starts the close flow for a whole pane. Every modified
// tab is prompted before anything is removed; Cancel aborts with zero
// mutation.
func (m *Model) beginClosePane(paneID int) tea.Cmd {
	if m.workspace.PaneCount() <= 1 {
		return m.setStatus("Cannot close the only pane")
	}
	m.syncActiveDocument()
	m.pending = pendingClosePane
	m.pendingPaneID = paneID
	m.queue = nil
	for _, idx := range m.workspace.ModifiedTabIndices(paneID) {
		m.queue = append(m.queue, workspace.Location{PaneID: paneID, TabIndex: idx})
	}
	return m.advancePending()
}

// beginQuit starts the quit flow, prompting per modified tab across all
// panes. Cancel aborts the quit with the registry untouched.
func (m *Model) beginQuit() tea.Cmd {
	m.syncActiveDocument()
	m.pending = pendingQuit
	m.queue = nil
	for _, pane := range m.workspace.Panes() {
		for _, idx := range m.workspace.ModifiedTabIndices(pane.ID()) {
			m.queue = append(m.queue, workspace.Location{PaneID: pane.ID(), TabIndex: idx})
		}
	}
	return m.advancePending()
}

// advancePending shows the next save prompt in the queue, or performs the
// pending action once the queue is drained.
func (m *Model) advancePending() tea.Cmd {
	for len(m.queue) > 0 {
		slot := m.queue[0]
		m.queue = m.queue[1:]
		doc := m.docAt(slot)
		if doc == nil || !doc.Modified() {
			continue
		}
		m.promptSlot = slot
		m.modal.Show(modals.NewSavePromptState(doc.BaseName(), len(m.queue)))
		return nil
	}
	return m.finishPending()
}

// finishPending performs the queued destructive action. Every prompt has
// been resolved by now; the mutation itself never prompts.
func (m *Model) finishPending() tea.Cmd {
	action := m.pending
	m.pending = pendingNone
	m.modal.Hide()

	switch action {
	case pendingCloseTab:
		return m.removeTabAt(m.pendingSlot)

	case pendingClosePane:
		pane := m.workspace.PaneByID(m.pendingPaneID)
		if pane == nil {
			return nil
		}
		for _, tab := range pane.Tabs() {
			m.dropEditor(tab.Doc)
		}
		if err := m.workspace.ClosePane(m.pendingPaneID); err != nil {
			logger.Log("App: close pane failed: %v", err)
			return nil
		}
		delete(m.tabBars, m.pendingPaneID)
		m.updateSizes()
		return m.focusActiveEditor()

	case pendingQuit:
		m.persistSession()
		return tea.Quit
	}
	return nil
}

// removeTabAt removes a tab whose prompts are all resolved, releasing its
// editor widget and following any pane cascade.
func (m *Model) removeTabAt(slot workspace.Location) tea.Cmd {
	paneCount := m.workspace.PaneCount()
	doc := m.workspace.RemoveTab(slot.PaneID, slot.TabIndex)
	m.dropEditor(doc)
	if m.workspace.PaneCount() < paneCount {
		// Cascade closed the pane
		delete(m.tabBars, slot.PaneID)
		m.updateSizes()
	}
	return m.focusActiveEditor()
}

// saveAt saves the document at slot to its existing path. Returns false on
// failure (which aborts close flows). A save that recreates a file deleted
// behind the editor's back triggers a notification.
func (m *Model) saveAt(slot workspace.Location) bool {
	doc := m.docAt(slot)
	if doc == nil {
		return false
	}
	recreating := !doc.IsUntitled() && !fileio.Exists(doc.Path())
	if err := doc.Save(); err != nil {
		logger.Log("App: save failed for %s: %v", doc.Path(), err)
		m.notifySaveFailed(doc.BaseName())
		return false
	}
	if recreating {
		m.notifyFileRecreated(doc.BaseName())
	}
	return true
}

// openFind opens the find (or find & replace) modal seeded with the last
// query.
func (m *Model) openFind(replaceMode bool) tea.Cmd {
	if m.activeDoc() == nil {
		return nil
	}
	m.syncActiveDocument()
	m.searchFrom = 0
	m.modal.Show(modals.NewFindState(m.searchQuery, replaceMode))
	return nil
}

// findNext jumps to the next match of the stored query, wrapping around
func (m *Model) findNext() tea.Cmd {
	doc := m.activeDoc()
	if doc == nil || m.searchQuery == "" {
		return nil
	}
	m.syncActiveDocument()
	match, ok := search.FindNext(doc.Content(), m.searchQuery, m.searchFrom)
	if !ok {
		return m.setStatus("No matches for \"" + m.searchQuery + "\"")
	}
	m.searchFrom = match.End
	line, col := search.LineColumn(doc.Content(), match.Start)
	return m.setStatus(matchStatus(doc.Content(), m.searchQuery, line, col))
}

// copyCurrentLine copies (and with cut, removes) the focused editor's
// current line to the system clipboard.
func (m *Model) copyCurrentLine(cut bool) tea.Cmd {
	doc := m.activeDoc()
	if doc == nil {
		return nil
	}
	ed := m.editorFor(doc)
	m.syncActiveDocument()

	lines := strings.Split(doc.Content(), "\n")
	row, _ := ed.CursorLineCol()
	if row < 1 || row > len(lines) {
		return nil
	}
	if err := clipboard.WriteText(lines[row-1]); err != nil {
		logger.Log("App: clipboard write failed: %v", err)
		return m.setStatus("Clipboard unavailable")
	}
	if !cut {
		return nil
	}
	lines = append(lines[:row-1], lines[row:]...)
	content := strings.Join(lines, "\n")
	doc.SetContent(content)
	ed.SetContent(content)
	return nil
}

// pasteClipboard inserts the system clipboard at the cursor
func (m *Model) pasteClipboard() tea.Cmd {
	doc := m.activeDoc()
	if doc == nil {
		return nil
	}
	text, err := clipboard.ReadText()
	if err != nil {
		logger.Log("App: clipboard read failed: %v", err)
		return m.setStatus("Clipboard unavailable")
	}
	if text == "" {
		return nil
	}
	ed := m.editorFor(doc)
	ed.InsertText(text)
	m.syncActiveDocument()
	return nil
}
