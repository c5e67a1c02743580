package app

import (
	"testing"

	"github.com/trine-editor/trine/internal/ui/modals"
)

// renderedModel builds a model, opens the given files, and renders once so
// tab-bar hit-test bounds exist.
func renderedModel(t *testing.T, files ...string) *Model {
	t.Helper()
	m := testModelWithSize(testConfig(), 120, 40)
	for _, f := range files {
		openFile(t, m, f)
	}
	m.View()
	return m
}

func TestMouse_ClickTabSelects(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.go", "a")
	b := writeFile(t, dir, "b.go", "b")
	m := renderedModel(t, a, b)

	pane := m.workspace.ActivePane()
	if pane.CurrentIndex() != 2 {
		t.Fatalf("Expected last tab current, got %d", pane.CurrentIndex())
	}

	// Tab row is the first content row. The untitled tab occupies the
	// first cells; a.go follows it.
	idx, _, ok := m.tabBarFor(pane.ID()).TabAt(0)
	if !ok || idx != 0 {
		t.Fatalf("Expected tab 0 at column 0, got %d (%v)", idx, ok)
	}

	mouseClick(m, 0, 1)

	if pane.CurrentIndex() != 0 {
		t.Errorf("Expected clicked tab selected, got %d", pane.CurrentIndex())
	}
	if m.dragToken == "" {
		t.Error("Expected a drag token from the tab press")
	}
}

func TestMouse_ReleaseOnSamePaneClearsDrag(t *testing.T) {
	dir := t.TempDir()
	m := renderedModel(t, writeFile(t, dir, "a.go", "a"))

	mouseClick(m, 0, 1)
	if m.dragToken == "" {
		t.Fatal("Expected drag token")
	}

	mouseRelease(m, 0, 1)
	if m.dragToken != "" {
		t.Error("Expected drag token cleared on release")
	}
}

func TestMouse_DragTabToOtherPaneTransfers(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.go", "a")
	m := renderedModel(t, a)
	press(m, "ctrl+e")
	m.View()

	panes := m.workspace.Panes()
	source, dest := panes[0], panes[1]
	if source.TabCount() != 2 || dest.TabCount() != 1 {
		t.Fatalf("Unexpected setup: %d/%d tabs", source.TabCount(), dest.TabCount())
	}

	// Press on a.go's tab in the source pane (second tab, after Untitled-1)
	bounds := m.tabBarFor(source.ID())
	var tabStart int
	for x := 0; x < 60; x++ {
		if idx, _, ok := bounds.TabAt(x); ok && idx == 1 {
			tabStart = x
			break
		}
	}
	mouseClick(m, tabStart, 1)

	// Release over the second pane's body (panes split 120 at x=60)
	mouseRelease(m, 90, 10)

	if source.TabCount() != 1 {
		t.Errorf("Expected source pane down to 1 tab, got %d", source.TabCount())
	}
	if dest.TabCount() != 2 {
		t.Errorf("Expected dest pane up to 2 tabs, got %d", dest.TabCount())
	}

	// The moved document keeps its identity and lands selected
	cur := dest.CurrentTab()
	if cur == nil || cur.Doc.Path() != a {
		t.Error("Expected the dragged document selected in the dest pane")
	}
}

func TestMouse_DragThatEmptiesPaneReleasesItsTabBar(t *testing.T) {
	dir := t.TempDir()
	m := renderedModel(t, writeFile(t, dir, "a.go", "a"))
	press(m, "ctrl+e")
	m.View()

	source := m.workspace.Panes()[1]
	sourceID := source.ID()
	if source.TabCount() != 1 {
		t.Fatalf("Unexpected setup: %d tabs in the new pane", source.TabCount())
	}

	// Press on the new pane's only tab (panes split 120 at x=60)
	tabX := -1
	for x := 60; x < 120; x++ {
		pane, localX, ok := m.paneAt(x)
		if !ok || pane.ID() != sourceID {
			continue
		}
		if idx, _, hit := m.tabBarFor(sourceID).TabAt(localX); hit && idx == 0 {
			tabX = x
			break
		}
	}
	if tabX < 0 {
		t.Fatal("Tab not found in the second pane's bounds")
	}
	mouseClick(m, tabX, 1)

	// Drop on the first pane's body: the emptied source pane cascade-closes
	mouseRelease(m, 10, 10)

	if m.workspace.PaneCount() != 1 {
		t.Fatalf("Expected the emptied pane closed, got %d panes", m.workspace.PaneCount())
	}
	if _, ok := m.tabBars[sourceID]; ok {
		t.Error("Expected the closed pane's tab bar released")
	}
}

func TestMouse_DragWithinPaneReorders(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.go", "a")
	b := writeFile(t, dir, "b.go", "b")
	m := renderedModel(t, a, b)

	pane := m.workspace.ActivePane()
	bounds := m.tabBarFor(pane.ID())

	// Press on b.go (index 2), release over the untitled tab (index 0)
	var from, to int
	for x := 0; x < 120; x++ {
		if idx, _, ok := bounds.TabAt(x); ok {
			if idx == 2 && from == 0 {
				from = x
			}
			if idx == 0 {
				to = x
			}
		}
	}
	mouseClick(m, from, 1)
	mouseRelease(m, to, 1)

	if got := pane.Tab(0).Doc.Path(); got != b {
		t.Errorf("Expected b.go moved to index 0, got %q", got)
	}
}

func TestMouse_CloseGlyphBeginsClose(t *testing.T) {
	dir := t.TempDir()
	m := renderedModel(t, writeFile(t, dir, "a.go", "a"))

	pane := m.workspace.ActivePane()
	bounds := m.tabBarFor(pane.ID())

	var closeX int
	for x := 0; x < 120; x++ {
		if idx, closeHit, ok := bounds.TabAt(x); ok && idx == 1 && closeHit {
			closeX = x
			break
		}
	}
	if closeX == 0 {
		t.Fatal("Close glyph not found in tab bounds")
	}

	mouseClick(m, closeX, 1)

	if pane.TabCount() != 1 {
		t.Errorf("Expected unmodified tab closed, got %d tabs", pane.TabCount())
	}
}

func TestMouse_ClickPaneBodyFocuses(t *testing.T) {
	dir := t.TempDir()
	m := renderedModel(t, writeFile(t, dir, "a.go", "a"))
	press(m, "ctrl+e")
	m.View()

	panes := m.workspace.Panes()
	if m.workspace.ActivePaneID() != panes[1].ID() {
		t.Fatal("Expected the new pane active after split")
	}

	// Click inside the first pane's body
	mouseClick(m, 10, 10)

	if m.workspace.ActivePaneID() != panes[0].ID() {
		t.Errorf("Expected first pane focused, got %d", m.workspace.ActivePaneID())
	}
}

func TestMouse_IgnoredWhileModalOpen(t *testing.T) {
	dir := t.TempDir()
	m := renderedModel(t, writeFile(t, dir, "a.go", "a"))

	press(m, "f1")
	if _, ok := m.modal.State.(*modals.HelpState); !ok {
		t.Fatalf("Expected help modal, got %T", m.modal.State)
	}

	pane := m.workspace.ActivePane()
	before := pane.CurrentIndex()
	mouseClick(m, 0, 1)

	if pane.CurrentIndex() != before {
		t.Error("Expected clicks ignored while a modal is open")
	}
}
