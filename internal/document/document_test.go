package document

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file with content in a temp dir and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestNew_Untitled(t *testing.T) {
	doc := New()

	if !doc.IsUntitled() {
		t.Error("new document should be untitled")
	}
	if doc.Modified() {
		t.Error("new document should not be modified")
	}
	if doc.Label() != "Untitled" {
		t.Errorf("Label = %q, want %q", doc.Label(), "Untitled")
	}
	if doc.ID() == "" {
		t.Error("document should have an ID")
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a, b := New(), New()
	if a.ID() == b.ID() {
		t.Error("documents should have unique IDs")
	}
}

func TestLoad(t *testing.T) {
	path := writeTestFile(t, "a.txt", "saved content")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Content() != "saved content" {
		t.Errorf("Content = %q, want %q", doc.Content(), "saved content")
	}
	if doc.Modified() {
		t.Error("freshly loaded document should not be modified")
	}
	if doc.Path() != path {
		t.Errorf("Path = %q, want %q", doc.Path(), path)
	}
	if doc.Label() != "a.txt" {
		t.Errorf("Label = %q, want %q", doc.Label(), "a.txt")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("Load of a missing file should fail")
	}
}

func TestSetContent_MarksModified(t *testing.T) {
	doc := New()

	doc.SetContent("X")
	if !doc.Modified() {
		t.Error("document should be modified after edit")
	}
	if doc.Label() != "Untitled *" {
		t.Errorf("Label = %q, want %q", doc.Label(), "Untitled *")
	}
}

func TestSetContent_NetZeroEditClearsFlag(t *testing.T) {
	// Scenario: type "X" into a fresh untitled tab, then undo back to empty.
	doc := New()

	doc.SetContent("X")
	doc.SetContent("")

	if doc.Modified() {
		t.Error("content equal to snapshot should force modified=false")
	}
	if doc.Label() != "Untitled" {
		t.Errorf("Label = %q, want no modified suffix", doc.Label())
	}
}

func TestSetContent_RetypeRemovedText(t *testing.T) {
	path := writeTestFile(t, "a.txt", "alpha beta")
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	doc.SetContent("alpha")
	if !doc.Modified() {
		t.Error("document should be modified after deletion")
	}

	// Manually retyping the removed text nets out to the saved content
	doc.SetContent("alpha beta")
	if doc.Modified() {
		t.Error("retyping removed text should clear the modified flag")
	}
}

func TestSave_UpdatesSnapshot(t *testing.T) {
	path := writeTestFile(t, "a.txt", "one")
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	doc.SetContent("two")
	if err := doc.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if doc.Modified() {
		t.Error("save should clear the modified flag")
	}

	// The snapshot moved: reverting to the pre-save content now counts as an edit
	doc.SetContent("one")
	if !doc.Modified() {
		t.Error("content differing from the new snapshot should be modified")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(onDisk) != "two" {
		t.Errorf("on-disk content = %q, want %q", onDisk, "two")
	}
}

func TestSaveAs_AdoptsPath(t *testing.T) {
	doc := New()
	doc.SetContent("fresh")

	path := filepath.Join(t.TempDir(), "fresh.txt")
	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	if doc.IsUntitled() {
		t.Error("document should have a path after SaveAs")
	}
	if doc.Modified() {
		t.Error("SaveAs should clear the modified flag")
	}
	if doc.Label() != "fresh.txt" {
		t.Errorf("Label = %q, want %q", doc.Label(), "fresh.txt")
	}
}

func TestSaveAs_FailureLeavesStateUntouched(t *testing.T) {
	doc := New()
	doc.SetContent("data")

	badPath := filepath.Join(t.TempDir(), "missing-dir", "f.txt")
	if err := doc.SaveAs(badPath); err == nil {
		t.Fatal("SaveAs into a missing directory should fail")
	}

	if !doc.IsUntitled() {
		t.Error("failed SaveAs must not adopt the path")
	}
	if !doc.Modified() {
		t.Error("failed SaveAs must not clear the modified flag")
	}
}

func TestSave_RecreatesDeletedFile(t *testing.T) {
	path := writeTestFile(t, "a.txt", "content")
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// File vanishes behind the open tab; the next save recreates it.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}
	doc.SetContent("content v2")
	if err := doc.Save(); err != nil {
		t.Fatalf("Save should recreate a vanished file: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read recreated file: %v", err)
	}
	if string(onDisk) != "content v2" {
		t.Errorf("on-disk content = %q, want %q", onDisk, "content v2")
	}
}

func TestOnChange(t *testing.T) {
	doc := New()
	fired := 0
	doc.OnChange(func() { fired++ })

	doc.SetContent("a")
	doc.SetContent("a") // no-op, content unchanged
	doc.SetContent("b")

	if fired != 2 {
		t.Errorf("onChange fired %d times, want 2", fired)
	}
}

func TestSetModified_Override(t *testing.T) {
	doc := New()
	doc.SetModified(true)
	if !doc.Modified() {
		t.Error("SetModified(true) should mark the document modified")
	}
	doc.SetModified(false)
	if doc.Modified() {
		t.Error("SetModified(false) should clear the flag")
	}
}
