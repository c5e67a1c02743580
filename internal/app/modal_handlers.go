package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/trine-editor/trine/internal/document"
	"github.com/trine-editor/trine/internal/fileio"
	"github.com/trine-editor/trine/internal/keys"
	"github.com/trine-editor/trine/internal/search"
	"github.com/trine-editor/trine/internal/ui/modals"
)

// handleModalKey routes key presses while a modal is on screen
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.SavePromptState:
		return m.handleSavePromptModal(key, msg, s)
	case *modals.SaveAsState:
		return m.handleSaveAsModal(key, msg, s)
	case *modals.OpenPathState:
		return m.handleOpenPathModal(key, msg, s)
	case *modals.CreateFolderState:
		return m.handleCreateFolderModal(key, msg, s)
	case *modals.FindState:
		return m.handleFindModal(key, msg, s)
	case *modals.HelpState:
		if key == keys.Escape {
			m.modal.Hide()
			return m, nil
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSavePromptModal resolves one queued Save/Don't Save/Cancel decision
func (m *Model) handleSavePromptModal(key string, msg tea.KeyPressMsg, s *modals.SavePromptState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		switch s.Choice() {
		case modals.SaveChoiceSave:
			doc := m.docAt(m.promptSlot)
			if doc == nil {
				return m, m.advancePending()
			}
			if doc.IsUntitled() {
				// Route through Save As, keeping the pending flow alive
				m.modal.Show(modals.NewSaveAsState(""))
				return m, nil
			}
			if !m.saveAt(m.promptSlot) {
				// A failed save aborts the close, same as Cancel
				m.abortPending()
				return m, m.setStatus("Could not save " + doc.BaseName())
			}
			return m, m.advancePending()

		case modals.SaveChoiceDiscard:
			return m, m.advancePending()

		default:
			m.abortPending()
			return m, nil
		}

	case keys.Escape:
		m.abortPending()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSaveAsModal commits or cancels a Save As path prompt
func (m *Model) handleSaveAsModal(key string, msg tea.KeyPressMsg, s *modals.SaveAsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		path := strings.TrimSpace(s.Path)
		if path == "" {
			s.Error = "Enter a file path"
			return m, nil
		}
		doc := m.docAt(m.promptSlot)
		if doc == nil {
			m.abortPending()
			return m, nil
		}
		if err := doc.SaveAs(path); err != nil {
			s.Error = "Could not save: " + err.Error()
			m.notifySaveFailed(doc.BaseName())
			return m, nil
		}
		m.workspace.RegisterSavedPath(m.promptSlot.PaneID, m.promptSlot.TabIndex)
		m.config.AddRecentFile(doc.Path())
		m.editorFor(doc).SetPath(doc.Path())
		m.sidebar.Refresh()

		if m.pending != pendingNone {
			return m, m.advancePending()
		}
		m.modal.Hide()
		return m, m.setStatus("Saved " + doc.BaseName())

	case keys.Escape:
		if m.pending != pendingNone {
			m.abortPending()
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleOpenPathModal opens a file in the active pane or points the
// sidebar at a folder.
func (m *Model) handleOpenPathModal(key string, msg tea.KeyPressMsg, s *modals.OpenPathState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		path := strings.TrimSpace(s.Path)
		if path == "" {
			s.Error = "Enter a path"
			return m, nil
		}

		if s.Folder {
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				s.Error = "Not a folder: " + path
				return m, nil
			}
			m.sidebar.SetRoot(path)
			m.sidebarVisible = true
			m.config.SetLastFolder(path)
			m.config.AddRecentFolder(path)
			m.updateSizes()
			m.modal.Hide()
			m.focus = FocusSidebar
			m.sidebar.SetFocused(true)
			return m, m.focusActiveEditor()
		}

		if _, err := m.workspace.OpenFile(path); err != nil {
			s.Error = "Could not open: " + err.Error()
			return m, nil
		}
		m.config.AddRecentFile(path)
		m.modal.Hide()
		m.focus = FocusEditor
		m.sidebar.SetFocused(false)
		return m, m.focusActiveEditor()

	case keys.Escape:
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleCreateFolderModal creates a folder under the sidebar root
func (m *Model) handleCreateFolderModal(key string, msg tea.KeyPressMsg, s *modals.CreateFolderState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		name := strings.TrimSpace(s.Name)
		if name == "" {
			s.Error = "Enter a folder name"
			return m, nil
		}
		if err := fileio.CreateFolder(m.sidebar.Root(), name); err != nil {
			s.Error = "Could not create: " + err.Error()
			return m, nil
		}
		m.sidebar.Refresh()
		m.modal.Hide()
		return m, nil

	case keys.Escape:
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleFindModal drives find-next, replace, and replace-all
func (m *Model) handleFindModal(key string, msg tea.KeyPressMsg, s *modals.FindState) (tea.Model, tea.Cmd) {
	doc := m.activeDoc()
	if doc == nil {
		m.modal.Hide()
		return m, nil
	}

	switch key {
	case keys.Enter, keys.F3:
		if s.Query == "" {
			s.Status = "Enter a search term"
			return m, nil
		}
		if s.Query != m.searchQuery {
			m.searchQuery = s.Query
			m.searchFrom = 0
		}

		if s.ReplaceMode && key == keys.Enter {
			content, match, ok := search.Replace(doc.Content(), s.Query, s.Replacement, m.searchFrom)
			if !ok {
				s.Status = "No matches"
				return m, nil
			}
			m.applyContent(doc, content)
			m.searchFrom = match.Start + len(s.Replacement)
			s.Status = fmt.Sprintf("Replaced (%d remaining)", search.Count(content, s.Query))
			return m, nil
		}

		match, ok := search.FindNext(doc.Content(), s.Query, m.searchFrom)
		if !ok {
			s.Status = "No matches"
			return m, nil
		}
		m.searchFrom = match.End
		line, col := search.LineColumn(doc.Content(), match.Start)
		s.Status = matchStatus(doc.Content(), s.Query, line, col)
		return m, nil

	case keys.AltEnter:
		if !s.ReplaceMode || s.Query == "" {
			return m, nil
		}
		content, n := search.ReplaceAll(doc.Content(), s.Query, s.Replacement)
		if n == 0 {
			s.Status = "No matches"
			return m, nil
		}
		m.applyContent(doc, content)
		m.searchQuery = s.Query
		m.searchFrom = 0
		s.Status = fmt.Sprintf("Replaced %d occurrences", n)
		return m, nil

	case keys.Escape:
		m.searchQuery = s.Query
		m.modal.Hide()
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// applyContent pushes replaced text into both the document and its editor
func (m *Model) applyContent(doc *document.Document, content string) {
	doc.SetContent(content)
	if ed, ok := m.editors[doc.ID()]; ok {
		ed.SetContent(content)
	}
}
