package workspace

import (
	"fmt"
	"log/slog"

	"github.com/trine-editor/trine/internal/document"
	"github.com/trine-editor/trine/internal/errors"
	"github.com/trine-editor/trine/internal/logger"
)

// Workspace owns the pane set, the file location index, and the session
// focus, and keeps them consistent under every mutation. All methods take
// explicit pane ids; there is no implicit "current collection" that
// operations swap in and out.
type Workspace struct {
	panes        *PaneSet
	index        *FileLocationIndex
	activePaneID int
	currentFile  string // "" = none
	log          *slog.Logger
}

// New returns a workspace with a single pane holding one untitled tab,
// which is active.
func New() *Workspace {
	w := &Workspace{
		panes: NewPaneSet(),
		index: NewFileLocationIndex(),
		log:   logger.ComponentLogger("Workspace"),
	}
	first := w.panes.First()
	first.appendTab(document.New())
	w.activePaneID = first.ID()
	w.recomputeCurrentFile()
	return w
}

// Panes returns the panes in display order.
func (w *Workspace) Panes() []*Pane { return w.panes.Panes() }

// PaneByID resolves a pane strictly by id; nil for unknown ids.
func (w *Workspace) PaneByID(id int) *Pane { return w.panes.ByID(id) }

// PaneCount returns the number of panes.
func (w *Workspace) PaneCount() int { return w.panes.Count() }

// Index exposes the file location index (read paths only; mutations go
// through workspace operations).
func (w *Workspace) Index() *FileLocationIndex { return w.index }

// CanSplit reports whether another pane may be created.
func (w *Workspace) CanSplit() bool { return w.panes.CanSplit() }

// TotalTabs returns the tab count summed over all panes. Transfers conserve
// it; only opens and closes change it.
func (w *Workspace) TotalTabs() int {
	total := 0
	for _, p := range w.panes.Panes() {
		total += p.TabCount()
	}
	return total
}

// NewTab opens a fresh untitled tab at the end of the pane with the given
// id, focuses it, and returns its document. Returns nil for unknown panes.
func (w *Workspace) NewTab(paneID int) *document.Document {
	pane := w.panes.ByID(paneID)
	if pane == nil {
		return nil
	}
	doc := document.New()
	pane.appendTab(doc)
	w.activePaneID = paneID
	w.recomputeCurrentFile()
	w.log.Debug("new untitled tab", "paneID", paneID, "index", pane.CurrentIndex())
	return doc
}

// OpenFile opens path in the active pane. If the file is already open
// anywhere, its existing tab is focused instead of opening a second copy
// (single-location policy). Returns the document now showing the file.
func (w *Workspace) OpenFile(path string) (*document.Document, error) {
	if loc, ok := w.index.Lookup(path); ok {
		if w.SelectTab(loc.PaneID, loc.TabIndex) {
			w.log.Debug("focused existing location", "path", path, "paneID", loc.PaneID, "index", loc.TabIndex)
			return w.panes.ByID(loc.PaneID).Tab(loc.TabIndex).Doc, nil
		}
		// A location pointing at a missing slot is a defect; recover by
		// dropping the entry and opening fresh.
		w.index.Unregister(path)
	}

	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}

	pane := w.ActivePane()
	index := pane.appendTab(doc)
	w.index.ReindexAfterInsertion(pane.ID(), index)
	w.index.Register(path, pane.ID(), index)
	w.recomputeCurrentFile()
	w.log.Info("opened file", "path", path, "paneID", pane.ID(), "index", index)
	return doc, nil
}

// RegisterSavedPath records the location of a document that just gained a
// path through save-as, replacing any stale entry for that path.
func (w *Workspace) RegisterSavedPath(paneID, tabIndex int) {
	pane := w.panes.ByID(paneID)
	if pane == nil {
		return
	}
	tab := pane.Tab(tabIndex)
	if tab == nil || tab.Doc.IsUntitled() {
		return
	}
	w.index.Register(tab.Doc.Path(), paneID, tabIndex)
	w.recomputeCurrentFile()
}

// RemoveTab deletes the tab at (paneID, index) with no prompting: the
// document is dropped, its index entry (if any) is removed, and remaining
// entries on the pane are reindexed — all as one step. If the pane becomes
// empty and other panes exist, the pane itself is closed (cascade); the
// sole remaining pane is instead left empty, showing the no-document
// placeholder. Returns the removed document, or nil if the slot does not
// exist.
func (w *Workspace) RemoveTab(paneID, index int) *document.Document {
	pane := w.panes.ByID(paneID)
	if pane == nil {
		return nil
	}
	removed := pane.removeTab(index)
	if removed == nil {
		return nil
	}
	if path := removed.Doc.Path(); path != "" {
		w.index.Unregister(path)
	}
	w.index.ReindexAfterRemoval(paneID, index)

	if pane.Empty() && w.panes.Count() > 1 {
		// Cascade: the pane was already unprompted (its tabs are gone).
		w.closePane(paneID)
	} else {
		w.recomputeCurrentFile()
	}
	w.log.Debug("removed tab", "paneID", paneID, "index", index, "path", removed.Doc.Path())
	return removed.Doc
}

// AddSplitPane creates a new pane holding one fresh untitled tab and makes
// it active. At MaxPanes this is a no-op returning nil.
func (w *Workspace) AddSplitPane() *Pane {
	pane := w.panes.Create()
	if pane == nil {
		w.log.Debug("split rejected: at pane cap", "count", w.panes.Count())
		return nil
	}
	pane.appendTab(document.New())
	w.activePaneID = pane.ID()
	w.recomputeCurrentFile()
	w.log.Info("created pane", "paneID", pane.ID(), "count", w.panes.Count())
	return pane
}

// ClosePane closes the pane with the given id, dropping all of its tabs
// and index entries. Closing the only pane is rejected. Callers must have
// resolved every save prompt for the pane's modified tabs before calling;
// this method never prompts and never partially closes.
func (w *Workspace) ClosePane(paneID int) error {
	if w.panes.Count() <= 1 {
		return errors.E(errors.Op("workspace.ClosePane"), errors.KindInvalid, "cannot close the only pane")
	}
	if w.panes.ByID(paneID) == nil {
		return errors.PaneNotFound(paneID)
	}
	w.closePane(paneID)
	return nil
}

// closePane removes the pane and its index entries, reassigning focus to
// the first remaining pane when the active one goes away. Callers have
// already verified the pane exists and is not the last one.
func (w *Workspace) closePane(paneID int) {
	w.panes.Remove(paneID)
	w.index.DropPane(paneID)
	if w.activePaneID == paneID {
		w.activePaneID = w.panes.First().ID()
	}
	w.recomputeCurrentFile()
	w.log.Info("closed pane", "paneID", paneID, "remaining", w.panes.Count())
}

// ReorderTab moves a tab within one pane from one position to another,
// updating index entries as an atomic remove+insert. The current-tab cursor
// follows the tab it pointed at.
func (w *Workspace) ReorderTab(paneID, from, to int) bool {
	pane := w.panes.ByID(paneID)
	if pane == nil {
		return false
	}
	tab := pane.Tab(from)
	if tab == nil || !pane.moveTab(from, to) {
		return false
	}
	if path := tab.Doc.Path(); path != "" {
		w.index.Unregister(path)
		w.index.ReindexAfterRemoval(paneID, from)
		w.index.ReindexAfterInsertion(paneID, to)
		w.index.Register(path, paneID, to)
	} else {
		w.index.ReindexAfterRemoval(paneID, from)
		w.index.ReindexAfterInsertion(paneID, to)
	}
	w.recomputeCurrentFile()
	return true
}

// ApplyTransfer executes a drag-and-drop transfer described by token onto
// the pane with id destPaneID. Same-pane drops are a no-op for this
// protocol: in-pane reordering is the tab bar's own business and the
// cross-pane removal/insertion logic must not run against a single pane.
// Unresolvable tokens (unknown source pane, index out of range for that
// specific pane) are silently ignored. Returns whether a transfer happened.
func (w *Workspace) ApplyTransfer(token Token, destPaneID int) bool {
	if token.PaneID == destPaneID {
		return false
	}
	source := w.panes.ByID(token.PaneID)
	dest := w.panes.ByID(destPaneID)
	if source == nil || dest == nil {
		return false
	}
	if token.TabIndex < 0 || token.TabIndex >= source.TabCount() {
		return false
	}

	// Capture before any removal. The same document value moves — its
	// modified flag and saved snapshot travel with it untouched.
	doc := source.Tab(token.TabIndex).Doc

	w.RemoveTab(token.PaneID, token.TabIndex)

	index := dest.appendTab(doc)
	w.index.ReindexAfterInsertion(dest.ID(), index)
	if path := doc.Path(); path != "" {
		w.index.Register(path, dest.ID(), index)
	}
	w.activePaneID = dest.ID()
	w.recomputeCurrentFile()
	w.log.Info("transferred tab", "from", token.PaneID, "to", dest.ID(), "index", index, "path", doc.Path())
	return true
}

// ApplyTransferToken parses a wire-format drag token and applies it.
// Malformed tokens are ignored without mutation.
func (w *Workspace) ApplyTransferToken(raw string, destPaneID int) bool {
	token, ok := ParseToken(raw)
	if !ok {
		w.log.Debug("ignored malformed transfer token", "token", raw)
		return false
	}
	return w.ApplyTransfer(token, destPaneID)
}

// ModifiedTabIndices returns the indices of modified tabs in the pane, in
// order. The app layer prompts for each of these before a pane close; a
// single Cancel aborts the whole close before any removal starts.
func (w *Workspace) ModifiedTabIndices(paneID int) []int {
	pane := w.panes.ByID(paneID)
	if pane == nil {
		return nil
	}
	var out []int
	for i, tab := range pane.Tabs() {
		if tab.Doc.Modified() {
			out = append(out, i)
		}
	}
	return out
}

// Validate checks the registry invariants. It is used by tests and debug
// assertions; a non-nil result is a defect, not a runtime condition.
func (w *Workspace) Validate() error {
	if n := w.panes.Count(); n < 1 || n > MaxPanes {
		return fmt.Errorf("pane count %d outside 1..%d", n, MaxPanes)
	}
	if w.panes.ByID(w.activePaneID) == nil {
		return fmt.Errorf("active pane %d does not exist", w.activePaneID)
	}
	for _, pane := range w.panes.Panes() {
		if pane.Empty() {
			if pane.CurrentIndex() != -1 {
				return fmt.Errorf("empty pane %d has currentIndex %d", pane.ID(), pane.CurrentIndex())
			}
			continue
		}
		if ci := pane.CurrentIndex(); ci < 0 || ci >= pane.TabCount() {
			return fmt.Errorf("pane %d currentIndex %d outside 0..%d", pane.ID(), ci, pane.TabCount()-1)
		}
	}
	seen := make(map[Location]string)
	for path, loc := range w.index.byPath {
		pane := w.panes.ByID(loc.PaneID)
		if pane == nil {
			return fmt.Errorf("index entry %s references missing pane %d", path, loc.PaneID)
		}
		tab := pane.Tab(loc.TabIndex)
		if tab == nil {
			return fmt.Errorf("index entry %s references missing slot (%d,%d)", path, loc.PaneID, loc.TabIndex)
		}
		if tab.Doc.Path() != path {
			return fmt.Errorf("index entry %s points at slot holding %q", path, tab.Doc.Path())
		}
		if prev, dup := seen[loc]; dup {
			return fmt.Errorf("slot (%d,%d) registered for both %s and %s", loc.PaneID, loc.TabIndex, prev, path)
		}
		seen[loc] = path
	}
	expected := ""
	if pane := w.ActivePane(); pane != nil && !pane.Empty() {
		if path, ok := w.index.PathAt(pane.ID(), pane.CurrentIndex()); ok {
			expected = path
		}
	}
	if w.currentFile != expected {
		return fmt.Errorf("currentFile %q lags active slot path %q", w.currentFile, expected)
	}
	return nil
}
