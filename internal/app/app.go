package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trine-editor/trine/internal/config"
	"github.com/trine-editor/trine/internal/document"
	"github.com/trine-editor/trine/internal/logger"
	"github.com/trine-editor/trine/internal/ui"
	"github.com/trine-editor/trine/internal/workspace"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusEditor Focus = iota
	FocusSidebar
)

// pendingAction is the destructive operation waiting on save prompts.
// The operation runs only after every prompt in the queue is resolved;
// a single Cancel aborts it with the registry untouched.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingCloseTab
	pendingClosePane
	pendingQuit
)

// statusClearMsg clears the transient footer message
type statusClearMsg struct{}

// statusMessageTimeout is how long transient footer messages stay visible
const statusMessageTimeout = 3 * time.Second

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	workspace *workspace.Workspace
	editors   map[string]*ui.Editor // document ID -> editor, survives tab transfers
	tabBars   map[int]*ui.TabBar    // pane ID -> tab bar

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	modal   *ui.Modal

	width          int
	height         int
	focus          Focus
	sidebarVisible bool

	// Save-prompt queue driving close/quit flows. promptSlot is the slot
	// currently showing a prompt; queue holds the slots still to prompt.
	pending       pendingAction
	pendingPaneID int                  // pane being closed for pendingClosePane
	pendingSlot   workspace.Location   // tab being closed for pendingCloseTab
	promptSlot    workspace.Location   // slot of the prompt on screen
	queue         []workspace.Location // slots not yet prompted

	// In-flight tab drag, empty when no drag is active
	dragToken string

	// Find state carried between find-next invocations
	searchQuery string
	searchFrom  int
}

// New creates a new app model. paths are files to open at startup, after
// the previous session (if any) is restored.
func New(cfg *config.Config, version string, paths []string) *Model {
	ui.RefreshModalStyles()

	m := &Model{
		config:    cfg,
		version:   version,
		workspace: workspace.New(),
		editors:   make(map[string]*ui.Editor),
		tabBars:   make(map[int]*ui.TabBar),
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		sidebar:   ui.NewSidebar(),
		modal:     ui.NewModal(),
		focus:     FocusEditor,
	}

	m.sidebarVisible = cfg.GetSidebarVisible()
	if folder := cfg.GetLastFolder(); folder != "" {
		m.sidebar.SetRoot(folder)
	}

	m.restoreSession()

	for _, path := range paths {
		if _, err := m.workspace.OpenFile(path); err != nil {
			logger.Log("App: failed to open %s at startup: %v", path, err)
			continue
		}
		cfg.AddRecentFile(path)
	}

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.focusActiveEditor()
}

// editorFor returns the editor widget for a document, creating it on first
// use. Widgets are keyed by document id so a tab keeps its editor (cursor,
// scroll) when it moves between panes.
func (m *Model) editorFor(doc *document.Document) *ui.Editor {
	if ed, ok := m.editors[doc.ID()]; ok {
		return ed
	}
	ed := ui.NewEditor(doc.Path())
	ed.SetContent(doc.Content())
	m.editors[doc.ID()] = ed
	return ed
}

// tabBarFor returns the tab bar for a pane, creating it on first use
func (m *Model) tabBarFor(paneID int) *ui.TabBar {
	if tb, ok := m.tabBars[paneID]; ok {
		return tb
	}
	tb := ui.NewTabBar()
	m.tabBars[paneID] = tb
	return tb
}

// activeDoc returns the document of the active pane's current tab, or nil
func (m *Model) activeDoc() *document.Document {
	pane := m.workspace.ActivePane()
	if pane == nil {
		return nil
	}
	tab := pane.CurrentTab()
	if tab == nil {
		return nil
	}
	return tab.Doc
}

// activeEditor returns the editor for the active document, or nil
func (m *Model) activeEditor() *ui.Editor {
	doc := m.activeDoc()
	if doc == nil {
		return nil
	}
	return m.editorFor(doc)
}

// docAt returns the document at a workspace slot, or nil
func (m *Model) docAt(slot workspace.Location) *document.Document {
	pane := m.workspace.PaneByID(slot.PaneID)
	if pane == nil {
		return nil
	}
	tab := pane.Tab(slot.TabIndex)
	if tab == nil {
		return nil
	}
	return tab.Doc
}

// focusActiveEditor blurs every editor except the active document's and
// focuses that one. Returns the textarea focus command.
func (m *Model) focusActiveEditor() tea.Cmd {
	active := m.activeDoc()
	var cmd tea.Cmd
	for id, ed := range m.editors {
		if active != nil && id == active.ID() && m.focus == FocusEditor {
			cmd = ed.Focus()
		} else if ed.Focused() {
			ed.Blur()
		}
	}
	if active != nil && m.focus == FocusEditor {
		cmd = m.editorFor(active).Focus()
	}
	return cmd
}

// syncActiveDocument copies the focused editor's buffer into its document
// so the modified flag tracks edits (including net-zero round trips).
func (m *Model) syncActiveDocument() {
	doc := m.activeDoc()
	if doc == nil {
		return
	}
	ed := m.editorFor(doc)
	if ed.Content() != doc.Content() {
		doc.SetContent(ed.Content())
	}
}

// dropEditor releases the editor widget of a removed document
func (m *Model) dropEditor(doc *document.Document) {
	if doc != nil {
		delete(m.editors, doc.ID())
	}
}

// setStatus shows a transient footer message
func (m *Model) setStatus(msg string) tea.Cmd {
	m.footer.SetMessage(msg)
	return tea.Tick(statusMessageTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// abortPending clears a save-prompt queue without performing the action
func (m *Model) abortPending() {
	m.pending = pendingNone
	m.queue = nil
	m.modal.Hide()
}
