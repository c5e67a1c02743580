package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trine-editor/trine/internal/errors"
)

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")

	if err := Write(path, "Hello, World!"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "Hello, World!" {
		t.Errorf("Read = %q, want %q", content, "Hello, World!")
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Read of missing file should fail")
	}
	if errors.GetKind(err) != errors.KindIO {
		t.Errorf("error kind = %v, want KindIO", errors.GetKind(err))
	}
}

func TestWrite_MissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "a.txt"), "x")
	if err == nil {
		t.Fatal("Write into a missing directory should fail")
	}
	if errors.GetKind(err) != errors.KindIO {
		t.Errorf("error kind = %v, want KindIO", errors.GetKind(err))
	}
}

func TestWrite_Unicode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u.txt")
	content := "héllo wörld 日本語 🎉"

	if err := Write(path, content); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != content {
		t.Errorf("Read = %q, want %q", got, content)
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if Exists(path) {
		t.Error("Exists should be false before write")
	}
	if err := Write(path, ""); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !Exists(path) {
		t.Error("Exists should be true after write")
	}
}

func TestCreateFolder(t *testing.T) {
	parent := t.TempDir()

	if err := CreateFolder(parent, "notes"); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	info, err := os.Stat(filepath.Join(parent, "notes"))
	if err != nil || !info.IsDir() {
		t.Fatal("expected folder to exist")
	}

	// Creating the same folder again must fail
	if err := CreateFolder(parent, "notes"); err == nil {
		t.Error("CreateFolder should fail for an existing folder")
	}
}
