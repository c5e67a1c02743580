package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trine-editor/trine/internal/document"
)

// openTestFile writes a file with content to a temp dir and opens it in the
// workspace's active pane.
func openTestFile(t *testing.T, w *Workspace, name, content string) (string, *document.Document) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	doc, err := w.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile(%s) failed: %v", name, err)
	}
	return path, doc
}

// mustValidate fails the test if any registry invariant is broken.
func mustValidate(t *testing.T, w *Workspace) {
	t.Helper()
	if err := w.Validate(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func TestNew(t *testing.T) {
	w := New()

	if w.PaneCount() != 1 {
		t.Errorf("PaneCount = %d, want 1", w.PaneCount())
	}
	pane := w.ActivePane()
	if pane == nil {
		t.Fatal("workspace should start with an active pane")
	}
	if pane.TabCount() != 1 {
		t.Errorf("initial pane TabCount = %d, want 1", pane.TabCount())
	}
	if !pane.CurrentTab().Doc.IsUntitled() {
		t.Error("initial tab should be untitled")
	}
	if w.CurrentFile() != "" {
		t.Errorf("CurrentFile = %q, want none", w.CurrentFile())
	}
	mustValidate(t, w)
}

func TestOpenFile_RegistersLocation(t *testing.T) {
	w := New()
	path, doc := openTestFile(t, w, "a.txt", "hello")

	loc, ok := w.Index().Lookup(path)
	if !ok {
		t.Fatal("opened file should be registered")
	}
	if loc.PaneID != w.ActivePaneID() {
		t.Errorf("registered pane = %d, want active pane %d", loc.PaneID, w.ActivePaneID())
	}
	if w.CurrentFile() != path {
		t.Errorf("CurrentFile = %q, want %q", w.CurrentFile(), path)
	}
	if doc.Modified() {
		t.Error("freshly opened document should not be modified")
	}
	mustValidate(t, w)
}

func TestOpenFile_SecondOpenFocusesExisting(t *testing.T) {
	w := New()
	path, first := openTestFile(t, w, "a.txt", "hello")

	// Move focus elsewhere, then open the same file again
	w.NewTab(w.ActivePaneID())
	if w.CurrentFile() != "" {
		t.Fatalf("CurrentFile = %q, want none on a fresh tab", w.CurrentFile())
	}

	again, err := w.OpenFile(path)
	if err != nil {
		t.Fatalf("second OpenFile failed: %v", err)
	}
	if again != first {
		t.Error("second open should return the existing document, not a copy")
	}
	if w.TotalTabs() != 3 { // initial untitled + a.txt + new untitled
		t.Errorf("TotalTabs = %d, want 3 (no duplicate tab)", w.TotalTabs())
	}
	if w.CurrentFile() != path {
		t.Errorf("CurrentFile = %q, want %q after focusing existing tab", w.CurrentFile(), path)
	}
	mustValidate(t, w)
}

func TestAddSplitPane(t *testing.T) {
	w := New()
	first := w.ActivePaneID()

	pane := w.AddSplitPane()
	if pane == nil {
		t.Fatal("AddSplitPane should succeed below the cap")
	}
	if w.ActivePaneID() != pane.ID() {
		t.Error("new pane should become active")
	}
	if pane.ID() == first {
		t.Error("new pane should have a fresh id")
	}
	if pane.TabCount() != 1 || !pane.CurrentTab().Doc.IsUntitled() {
		t.Error("new pane should start with exactly one untitled tab")
	}
	if w.CurrentFile() != "" {
		t.Errorf("CurrentFile = %q, want none after split", w.CurrentFile())
	}
	mustValidate(t, w)
}

func TestAddSplitPane_CapAtMaxPanes(t *testing.T) {
	// Scenario: with MAX_PANES already reached, a 4th split is a no-op.
	w := New()
	w.AddSplitPane()
	w.AddSplitPane()

	if w.PaneCount() != MaxPanes {
		t.Fatalf("PaneCount = %d, want %d", w.PaneCount(), MaxPanes)
	}
	if w.CanSplit() {
		t.Error("CanSplit should be false exactly at the cap")
	}
	if pane := w.AddSplitPane(); pane != nil {
		t.Error("split past the cap should be a no-op")
	}
	if w.PaneCount() != MaxPanes {
		t.Errorf("PaneCount = %d after no-op split, want %d", w.PaneCount(), MaxPanes)
	}

	// Closing any pane re-enables splitting
	if err := w.ClosePane(w.Panes()[2].ID()); err != nil {
		t.Fatalf("ClosePane failed: %v", err)
	}
	if !w.CanSplit() {
		t.Error("CanSplit should be true again after a pane closes")
	}
	mustValidate(t, w)
}

func TestClosePane_SolePaneRejected(t *testing.T) {
	w := New()
	if err := w.ClosePane(w.ActivePaneID()); err == nil {
		t.Error("closing the only pane must be rejected")
	}
	if w.PaneCount() != 1 {
		t.Errorf("PaneCount = %d, want 1", w.PaneCount())
	}
	mustValidate(t, w)
}

func TestClosePane_DropsIndexAndReassignsFocus(t *testing.T) {
	w := New()
	firstID := w.ActivePaneID()
	pathA, _ := openTestFile(t, w, "a.txt", "a")

	second := w.AddSplitPane()
	pathB, _ := openTestFile(t, w, "b.txt", "b")

	// Second pane is active and holds b.txt; close it.
	if err := w.ClosePane(second.ID()); err != nil {
		t.Fatalf("ClosePane failed: %v", err)
	}
	if _, ok := w.Index().Lookup(pathB); ok {
		t.Error("closed pane's entries should be dropped")
	}
	if _, ok := w.Index().Lookup(pathA); !ok {
		t.Error("other panes' entries should survive")
	}
	if w.ActivePaneID() != firstID {
		t.Errorf("active pane = %d, want first remaining pane %d", w.ActivePaneID(), firstID)
	}
	if w.CurrentFile() != pathA {
		t.Errorf("CurrentFile = %q, want %q after focus reassignment", w.CurrentFile(), pathA)
	}
	mustValidate(t, w)
}

func TestRemoveTab_ShiftsIndexEntries(t *testing.T) {
	// Scenario: pane has [a.txt, b.txt]; closing index 0 leaves b.txt at (pane, 0).
	w := New()
	paneID := w.ActivePaneID()
	w.RemoveTab(paneID, 0) // drop the initial untitled tab
	_, _ = openTestFile(t, w, "a.txt", "a")
	pathB, _ := openTestFile(t, w, "b.txt", "b")

	w.RemoveTab(paneID, 0)

	loc, ok := w.Index().Lookup(pathB)
	if !ok {
		t.Fatal("b.txt should still be registered")
	}
	if loc.PaneID != paneID || loc.TabIndex != 0 {
		t.Errorf("b.txt location = %+v, want (%d, 0)", loc, paneID)
	}
	if w.CurrentFile() != pathB {
		t.Errorf("CurrentFile = %q, want %q", w.CurrentFile(), pathB)
	}
	mustValidate(t, w)
}

func TestRemoveTab_UntitledSlotStillShiftsOthers(t *testing.T) {
	w := New()
	paneID := w.ActivePaneID()
	// Pane now: [untitled, a.txt]
	pathA, _ := openTestFile(t, w, "a.txt", "a")

	// Removing the untitled slot at 0 must still shift a.txt's raw index
	w.RemoveTab(paneID, 0)

	loc, _ := w.Index().Lookup(pathA)
	if loc.TabIndex != 0 {
		t.Errorf("a.txt index = %d, want 0", loc.TabIndex)
	}
	mustValidate(t, w)
}

func TestRemoveTab_SolePaneLeftEmpty(t *testing.T) {
	w := New()
	paneID := w.ActivePaneID()

	w.RemoveTab(paneID, 0)

	if w.PaneCount() != 1 {
		t.Errorf("PaneCount = %d, want 1 (sole pane is never destroyed)", w.PaneCount())
	}
	pane := w.ActivePane()
	if !pane.Empty() {
		t.Error("sole pane should be left empty")
	}
	if pane.CurrentIndex() != -1 {
		t.Errorf("empty pane CurrentIndex = %d, want -1", pane.CurrentIndex())
	}
	if w.CurrentFile() != "" {
		t.Errorf("CurrentFile = %q, want none for the placeholder state", w.CurrentFile())
	}
	mustValidate(t, w)
}

func TestRemoveTab_CascadesIntoPaneClose(t *testing.T) {
	w := New()
	firstID := w.ActivePaneID()

	second := w.AddSplitPane()
	// Remove the second pane's only tab: the pane itself must go away.
	w.RemoveTab(second.ID(), 0)

	if w.PaneCount() != 1 {
		t.Errorf("PaneCount = %d, want 1 after cascade", w.PaneCount())
	}
	if w.PaneByID(second.ID()) != nil {
		t.Error("emptied pane should be closed when other panes exist")
	}
	if w.ActivePaneID() != firstID {
		t.Errorf("active pane = %d, want %d", w.ActivePaneID(), firstID)
	}
	mustValidate(t, w)
}

func TestRemoveTab_InvalidSlotIgnored(t *testing.T) {
	w := New()
	if doc := w.RemoveTab(99, 0); doc != nil {
		t.Error("removing from an unknown pane should be a no-op")
	}
	if doc := w.RemoveTab(w.ActivePaneID(), 5); doc != nil {
		t.Error("removing an out-of-range index should be a no-op")
	}
	if w.TotalTabs() != 1 {
		t.Errorf("TotalTabs = %d, want 1", w.TotalTabs())
	}
	mustValidate(t, w)
}

func TestSelectTab_FocusesPaneAndRecomputes(t *testing.T) {
	w := New()
	firstID := w.ActivePaneID()
	pathA, _ := openTestFile(t, w, "a.txt", "a")

	w.AddSplitPane()
	if w.CurrentFile() != "" {
		t.Fatalf("CurrentFile = %q, want none on the fresh split", w.CurrentFile())
	}

	// Clicking a tab in the first pane focuses that pane.
	if !w.SelectTab(firstID, 1) {
		t.Fatal("SelectTab should succeed")
	}
	if w.ActivePaneID() != firstID {
		t.Error("selecting a tab should activate its pane")
	}
	if w.CurrentFile() != pathA {
		t.Errorf("CurrentFile = %q, want %q immediately after selection", w.CurrentFile(), pathA)
	}
	mustValidate(t, w)
}

func TestSelectTab_InvalidIgnored(t *testing.T) {
	w := New()
	if w.SelectTab(99, 0) {
		t.Error("SelectTab on unknown pane should fail")
	}
	if w.SelectTab(w.ActivePaneID(), 7) {
		t.Error("SelectTab with out-of-range index should fail")
	}
	mustValidate(t, w)
}

func TestSetActivePane(t *testing.T) {
	w := New()
	firstID := w.ActivePaneID()
	pathA, _ := openTestFile(t, w, "a.txt", "a")
	w.AddSplitPane()

	if !w.SetActivePane(firstID) {
		t.Fatal("SetActivePane should succeed for a known pane")
	}
	if w.CurrentFile() != pathA {
		t.Errorf("CurrentFile = %q, want %q", w.CurrentFile(), pathA)
	}
	if w.SetActivePane(42) {
		t.Error("SetActivePane should fail for unknown ids")
	}
	mustValidate(t, w)
}

func TestReorderTab_UpdatesIndexEntries(t *testing.T) {
	w := New()
	paneID := w.ActivePaneID()
	w.RemoveTab(paneID, 0)
	pathA, _ := openTestFile(t, w, "a.txt", "a")
	pathB, _ := openTestFile(t, w, "b.txt", "b")
	pathC, _ := openTestFile(t, w, "c.txt", "c")

	// [a b c] -> move a to the end -> [b c a]
	if !w.ReorderTab(paneID, 0, 2) {
		t.Fatal("ReorderTab should succeed")
	}

	wantIndex := map[string]int{pathB: 0, pathC: 1, pathA: 2}
	for path, want := range wantIndex {
		loc, ok := w.Index().Lookup(path)
		if !ok || loc.TabIndex != want {
			t.Errorf("%s at index %d, want %d", filepath.Base(path), loc.TabIndex, want)
		}
	}
	// c.txt was current before the move and must still be current
	if w.CurrentFile() != pathC {
		t.Errorf("CurrentFile = %q, want %q", w.CurrentFile(), pathC)
	}
	mustValidate(t, w)
}

func TestRegisterSavedPath(t *testing.T) {
	w := New()
	paneID := w.ActivePaneID()
	doc := w.ActivePane().CurrentTab().Doc

	// Simulate save-as adopting a path
	path := filepath.Join(t.TempDir(), "saved.txt")
	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	w.RegisterSavedPath(paneID, 0)

	loc, ok := w.Index().Lookup(path)
	if !ok || loc.PaneID != paneID || loc.TabIndex != 0 {
		t.Errorf("saved path location = %+v,%v, want (%d,0)", loc, ok, paneID)
	}
	if w.CurrentFile() != path {
		t.Errorf("CurrentFile = %q, want %q after save-as", w.CurrentFile(), path)
	}
	mustValidate(t, w)
}
