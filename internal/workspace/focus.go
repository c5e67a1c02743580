package workspace

// Session focus: the active pane and the current file derived from it.
// Every operation that changes either the active pane or any current-tab
// cursor recomputes the current file before returning, so the two can never
// be observed out of sync.

// ActivePaneID returns the id of the active pane.
func (w *Workspace) ActivePaneID() int { return w.activePaneID }

// ActivePane returns the active pane.
func (w *Workspace) ActivePane() *Pane {
	return w.panes.ByID(w.activePaneID)
}

// CurrentFile returns the path registered for the active pane's current
// tab, or "" when that slot is untitled or the pane is empty.
func (w *Workspace) CurrentFile() string { return w.currentFile }

// SetActivePane makes the pane with the given id active and recomputes the
// current file. Returns false for unknown pane ids (no mutation).
func (w *Workspace) SetActivePane(paneID int) bool {
	if w.panes.ByID(paneID) == nil {
		return false
	}
	w.activePaneID = paneID
	w.recomputeCurrentFile()
	return true
}

// SelectTab focuses the pane with the given id and moves its current-tab
// cursor to index. Clicking any tab focuses its pane, so selection and
// activation are one operation. Returns false if the pane or index does
// not exist (no mutation).
func (w *Workspace) SelectTab(paneID, index int) bool {
	pane := w.panes.ByID(paneID)
	if pane == nil || !pane.setCurrent(index) {
		return false
	}
	w.activePaneID = paneID
	w.recomputeCurrentFile()
	return true
}

// recomputeCurrentFile re-derives the current file from the registry. The
// FileLocationIndex is the source of truth: a slot holding an untitled or
// otherwise unregistered document yields no current file.
func (w *Workspace) recomputeCurrentFile() {
	w.currentFile = ""
	pane := w.panes.ByID(w.activePaneID)
	if pane == nil || pane.Empty() {
		return
	}
	if path, ok := w.index.PathAt(pane.id, pane.currentIndex); ok {
		w.currentFile = path
	}
}
