package ui

import (
	"strings"
	"testing"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}

	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}

	if footer.line != 1 || footer.col != 1 {
		t.Errorf("Expected initial cursor (1,1), got (%d,%d)", footer.line, footer.col)
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_SetStatus(t *testing.T) {
	footer := NewFooter()

	footer.SetStatus(12, 4, "Go")

	if footer.line != 12 || footer.col != 4 {
		t.Errorf("Expected cursor (12,4), got (%d,%d)", footer.line, footer.col)
	}
	if footer.language != "Go" {
		t.Errorf("Expected language Go, got %q", footer.language)
	}
}

func TestFooter_StatusSegment(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, false)
	footer.SetStatus(3, 7, "Go")

	view := footer.View()

	if !strings.Contains(view, "Ln 3, Col 7") {
		t.Errorf("Expected cursor position in footer, got %q", view)
	}
	if !strings.Contains(view, "UTF-8") {
		t.Error("Expected encoding in footer")
	}
	if !strings.Contains(view, "Go") {
		t.Error("Expected language in footer")
	}
}

func TestFooter_StatusHiddenWithoutDocument(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(false, false, false)

	view := footer.View()

	if strings.Contains(view, "Ln 1, Col 1") {
		t.Error("Expected no status segment with no document open")
	}
}

func TestFooter_DocumentBindingsHidden(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)

	footer.SetContext(false, false, false)
	withoutDoc := footer.View()

	footer.SetContext(true, false, false)
	withDoc := footer.View()

	if strings.Contains(withoutDoc, "save") {
		t.Error("Expected save binding hidden with no document")
	}
	if !strings.Contains(withDoc, "save") {
		t.Error("Expected save binding shown with a document")
	}
}

func TestFooter_SidebarBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)
	footer.SetContext(true, true, false)

	view := footer.View()

	if !strings.Contains(view, "navigate") {
		t.Error("Expected sidebar navigation bindings when sidebar is focused")
	}
	if strings.Contains(view, "Ln ") {
		t.Error("Expected status segment hidden when sidebar is focused")
	}
}

func TestFooter_ModalBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)
	footer.SetContext(true, false, true)

	view := footer.View()

	if !strings.Contains(view, "confirm") {
		t.Error("Expected modal bindings when a modal is open")
	}
}

func TestFooter_Message(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, false)

	footer.SetMessage("Saved main.go")
	view := footer.View()
	if !strings.Contains(view, "Saved main.go") {
		t.Error("Expected transient message in footer")
	}
	if strings.Contains(view, "save:") {
		t.Error("Expected bindings replaced by the message")
	}

	footer.SetMessage("")
	view = footer.View()
	if strings.Contains(view, "Saved main.go") {
		t.Error("Expected message cleared")
	}
}

func TestStripForWidth(t *testing.T) {
	styled := "\x1b[38;5;12mhello\x1b[0m world"

	got := stripForWidth(styled)

	if got != "hello world" {
		t.Errorf("stripForWidth = %q, want %q", got, "hello world")
	}
}
