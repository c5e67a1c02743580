package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trine-editor/trine/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		if handled, model, cmd := m.handleKeyPress(msg); handled {
			return model, cmd
		}
		// Not a shortcut: fall through to the focused panel

	case ui.FileSelectedMsg:
		return m, m.openFile(msg.Path)

	case statusClearMsg:
		m.footer.SetMessage("")
		return m, nil

	case tea.MouseClickMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)
	}

	// Modal consumes everything else while visible (cursor blink and
	// form messages included)
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	// Route remaining messages to the focused panel
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	} else if ed := m.activeEditor(); ed != nil {
		cmds = append(cmds, ed.Update(msg))
		m.syncActiveDocument()
	}

	return m, tea.Batch(cmds...)
}

// openFile opens path in the active pane, routing through the
// single-location policy, and records it in the recent list.
func (m *Model) openFile(path string) tea.Cmd {
	if _, err := m.workspace.OpenFile(path); err != nil {
		return m.setStatus("Could not open " + path)
	}
	m.config.AddRecentFile(path)
	m.focus = FocusEditor
	m.sidebar.SetFocused(false)
	return m.focusActiveEditor()
}
