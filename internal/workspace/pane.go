package workspace

import "github.com/trine-editor/trine/internal/document"

// Tab is one slot in a pane holding a document. The display label is
// derived from the document so the modified suffix can never go stale.
type Tab struct {
	Doc *document.Document
}

// Label returns the tab's display label, including the modified suffix.
func (t *Tab) Label() string {
	return t.Doc.Label()
}

// Pane is one split view: an ordered row of tabs plus a current-tab cursor.
// Pane ids are session-scoped monotonic ints handed out by the PaneSet;
// they are never reused and never persisted across processes.
type Pane struct {
	id            int
	tabs          []*Tab
	currentIndex  int // -1 when the pane has no tabs
	headerVisible bool
	closeVisible  bool
}

func newPane(id int) *Pane {
	return &Pane{
		id:            id,
		currentIndex:  -1,
		headerVisible: true,
		closeVisible:  true,
	}
}

// ID returns the pane's session-scoped id.
func (p *Pane) ID() int { return p.id }

// TabCount returns the number of tabs in the pane.
func (p *Pane) TabCount() int { return len(p.tabs) }

// Tabs returns the pane's tab slots in order.
func (p *Pane) Tabs() []*Tab { return p.tabs }

// Tab returns the tab at index, or nil if index is out of range.
func (p *Pane) Tab(index int) *Tab {
	if index < 0 || index >= len(p.tabs) {
		return nil
	}
	return p.tabs[index]
}

// CurrentIndex returns the index of the current tab, or -1 if the pane is
// empty. Whenever the pane has tabs, 0 <= CurrentIndex < TabCount.
func (p *Pane) CurrentIndex() int { return p.currentIndex }

// CurrentTab returns the current tab, or nil if the pane is empty.
func (p *Pane) CurrentTab() *Tab {
	return p.Tab(p.currentIndex)
}

// Empty reports whether the pane holds no tabs. A sole remaining pane is
// allowed to become empty; it then shows the no-document placeholder.
func (p *Pane) Empty() bool { return len(p.tabs) == 0 }

// HeaderVisible reports whether the tab header row is shown.
func (p *Pane) HeaderVisible() bool { return p.headerVisible }

// SetHeaderVisible toggles the tab header row.
func (p *Pane) SetHeaderVisible(v bool) { p.headerVisible = v }

// CloseVisible reports whether per-tab close affordances are shown.
func (p *Pane) CloseVisible() bool { return p.closeVisible }

// SetCloseVisible toggles per-tab close affordances.
func (p *Pane) SetCloseVisible(v bool) { p.closeVisible = v }

// setCurrent moves the current-tab cursor. Returns false if index is out of
// range for the pane.
func (p *Pane) setCurrent(index int) bool {
	if index < 0 || index >= len(p.tabs) {
		return false
	}
	p.currentIndex = index
	return true
}

// appendTab adds a tab at the end of the row, makes it current, and returns
// its index.
func (p *Pane) appendTab(doc *document.Document) int {
	p.tabs = append(p.tabs, &Tab{Doc: doc})
	p.currentIndex = len(p.tabs) - 1
	return p.currentIndex
}

// removeTab deletes the slot at index and returns the removed tab. The
// current-tab cursor is clamped to the nearest remaining tab, or -1 when
// the pane becomes empty. Returns nil if index is out of range.
func (p *Pane) removeTab(index int) *Tab {
	if index < 0 || index >= len(p.tabs) {
		return nil
	}
	removed := p.tabs[index]
	p.tabs = append(p.tabs[:index], p.tabs[index+1:]...)

	switch {
	case len(p.tabs) == 0:
		p.currentIndex = -1
	case p.currentIndex > index:
		p.currentIndex--
	case p.currentIndex >= len(p.tabs):
		p.currentIndex = len(p.tabs) - 1
	}
	return removed
}

// moveTab reorders a tab within this pane, keeping the current-tab cursor
// on the tab it pointed at before the move. Returns false if either index
// is out of range.
func (p *Pane) moveTab(from, to int) bool {
	if from < 0 || from >= len(p.tabs) || to < 0 || to >= len(p.tabs) {
		return false
	}
	if from == to {
		return true
	}
	current := p.tabs[p.currentIndex]
	tab := p.tabs[from]
	p.tabs = append(p.tabs[:from], p.tabs[from+1:]...)
	p.tabs = append(p.tabs[:to], append([]*Tab{tab}, p.tabs[to:]...)...)
	for i, t := range p.tabs {
		if t == current {
			p.currentIndex = i
			break
		}
	}
	return true
}
