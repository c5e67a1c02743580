// Package document holds the in-memory state of one open file: its text
// buffer, optional path, modified flag, and the snapshot of the content as
// of the last load or save. The snapshot is what makes the modified flag
// honest — an edit that nets out to the saved content clears the flag
// instead of leaving a stale " *" on the tab.
package document

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/trine-editor/trine/internal/fileio"
	"github.com/trine-editor/trine/internal/logger"
)

// UntitledLabel is the display name for documents without a path.
const UntitledLabel = "Untitled"

// ModifiedSuffix is appended to labels of modified documents.
const ModifiedSuffix = " *"

// Document is one open text buffer. Documents are created when a tab is
// opened and discarded when the tab is removed; moving a tab between panes
// moves the same Document value, never a copy.
type Document struct {
	id            string
	path          string // empty = untitled
	content       string
	savedSnapshot string // content as of last load/save
	modified      bool
	onChange      func()
}

// New creates an empty untitled document. Its saved snapshot is the empty
// string, so typing and deleting everything again leaves it unmodified.
func New() *Document {
	return &Document{id: uuid.New().String()}
}

// Load reads path from disk and returns a document tracking it.
func Load(path string) (*Document, error) {
	content, err := fileio.Read(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("document: loaded %s (%d bytes)", path, len(content))
	return &Document{
		id:            uuid.New().String(),
		path:          path,
		content:       content,
		savedSnapshot: content,
	}, nil
}

// ID returns the stable identity of this document. It survives tab
// transfers between panes; the UI layer keys editor widgets by it.
func (d *Document) ID() string { return d.id }

// Path returns the file path, or "" for untitled documents.
func (d *Document) Path() string { return d.path }

// IsUntitled reports whether the document has no backing path.
func (d *Document) IsUntitled() bool { return d.path == "" }

// Content returns the current buffer text.
func (d *Document) Content() string { return d.content }

// Modified reports whether the buffer differs from the saved snapshot.
func (d *Document) Modified() bool { return d.modified }

// SetModified overrides the modified flag. This exists for the editor
// widget collaborator; SetContent keeps the flag in sync on its own.
func (d *Document) SetModified(modified bool) {
	d.modified = modified
}

// SetContent replaces the buffer text and re-derives the modified flag by
// comparing against the saved snapshot. Equal content forces the flag off,
// clearing spurious modification after net-zero edits (undo back to the
// saved state, or retyping removed text).
func (d *Document) SetContent(content string) {
	if d.content == content {
		return
	}
	d.content = content
	d.modified = content != d.savedSnapshot
	if d.onChange != nil {
		d.onChange()
	}
}

// OnChange registers a callback fired after every content mutation.
func (d *Document) OnChange(fn func()) {
	d.onChange = fn
}

// Save writes the buffer to the document's path, then records the new
// snapshot and clears the modified flag. Untitled documents must go through
// SaveAs. On write failure nothing changes.
func (d *Document) Save() error {
	return d.SaveAs(d.path)
}

// SaveAs writes the buffer to path, adopts the path, records the snapshot,
// and clears the modified flag. On write failure the document keeps its
// previous path, snapshot, and modified state.
func (d *Document) SaveAs(path string) error {
	if err := fileio.Write(path, d.content); err != nil {
		return err
	}
	d.path = path
	d.savedSnapshot = d.content
	d.modified = false
	logger.Debug("document: saved %s", path)
	return nil
}

// BaseName returns the display name without the modified suffix.
func (d *Document) BaseName() string {
	if d.path == "" {
		return UntitledLabel
	}
	return filepath.Base(d.path)
}

// Label returns the tab display label: the base name with exactly
// ModifiedSuffix appended iff the document is modified.
func (d *Document) Label() string {
	if d.modified {
		return d.BaseName() + ModifiedSuffix
	}
	return d.BaseName()
}
