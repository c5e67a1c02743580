package workspace

// Location names the slot where a path is open: one pane id and one tab
// index. It is the single location-entry shape used everywhere; a path that
// is not open simply has no entry (the comma-ok result from Lookup), never
// a differently-shaped value.
type Location struct {
	PaneID   int
	TabIndex int
}

// FileLocationIndex maps a file path to the (pane, tab index) slot where it
// is open. It is the single source of truth for "where is file X open".
// Untitled tabs are not keyed here, but they still occupy a tab index that
// registered entries must account for, so the reindex operations work on
// raw positional indices regardless of whether a key exists at a position.
//
// The index holds at most one location per path (single-location policy:
// opening an already-open file focuses its existing slot).
type FileLocationIndex struct {
	byPath map[string]Location
}

// NewFileLocationIndex returns an empty index.
func NewFileLocationIndex() *FileLocationIndex {
	return &FileLocationIndex{byPath: make(map[string]Location)}
}

// Register records that path is open at (paneID, tabIndex), replacing any
// stale entry for that path.
func (ix *FileLocationIndex) Register(path string, paneID, tabIndex int) {
	ix.byPath[path] = Location{PaneID: paneID, TabIndex: tabIndex}
}

// Lookup returns the location of path, if it is open.
func (ix *FileLocationIndex) Lookup(path string) (Location, bool) {
	loc, ok := ix.byPath[path]
	return loc, ok
}

// Unregister removes the entry for path, if any.
func (ix *FileLocationIndex) Unregister(path string) {
	delete(ix.byPath, path)
}

// PathAt returns the path registered for the (paneID, tabIndex) slot.
// Returns ok=false for untitled or unregistered slots.
func (ix *FileLocationIndex) PathAt(paneID, tabIndex int) (string, bool) {
	for path, loc := range ix.byPath {
		if loc.PaneID == paneID && loc.TabIndex == tabIndex {
			return path, true
		}
	}
	return "", false
}

// ReindexAfterRemoval shifts entries on paneID down by one for every index
// greater than removedIndex. Callers must invoke this in the same step as
// the tab-list removal itself; no caller may observe the state in between.
func (ix *FileLocationIndex) ReindexAfterRemoval(paneID, removedIndex int) {
	for path, loc := range ix.byPath {
		if loc.PaneID == paneID && loc.TabIndex > removedIndex {
			loc.TabIndex--
			ix.byPath[path] = loc
		}
	}
}

// ReindexAfterInsertion shifts entries on paneID up by one for every index
// at or above insertedIndex. Same atomicity contract as ReindexAfterRemoval.
func (ix *FileLocationIndex) ReindexAfterInsertion(paneID, insertedIndex int) {
	for path, loc := range ix.byPath {
		if loc.PaneID == paneID && loc.TabIndex >= insertedIndex {
			loc.TabIndex++
			ix.byPath[path] = loc
		}
	}
}

// DropPane removes every entry referencing paneID. Used when a pane closes.
func (ix *FileLocationIndex) DropPane(paneID int) {
	for path, loc := range ix.byPath {
		if loc.PaneID == paneID {
			delete(ix.byPath, path)
		}
	}
}

// Len returns the number of registered paths.
func (ix *FileLocationIndex) Len() int { return len(ix.byPath) }

// PathsForPane returns every registered path on paneID, keyed by tab index.
func (ix *FileLocationIndex) PathsForPane(paneID int) map[int]string {
	out := make(map[int]string)
	for path, loc := range ix.byPath {
		if loc.PaneID == paneID {
			out[loc.TabIndex] = path
		}
	}
	return out
}
