package workspace

// MaxPanes is the maximum number of side-by-side split panes.
const MaxPanes = 3

// PaneSet is the bounded, ordered collection of panes. It owns pane
// identity: ids are monotonic ints that are never reused within a session,
// so a stale transfer token can never resolve to the wrong pane.
type PaneSet struct {
	panes  []*Pane
	nextID int
}

// NewPaneSet returns a pane set holding a single empty pane.
func NewPaneSet() *PaneSet {
	ps := &PaneSet{nextID: 1}
	ps.panes = append(ps.panes, newPane(ps.allocID()))
	return ps
}

func (ps *PaneSet) allocID() int {
	id := ps.nextID
	ps.nextID++
	return id
}

// Count returns the number of panes.
func (ps *PaneSet) Count() int { return len(ps.panes) }

// Panes returns the panes in display order.
func (ps *PaneSet) Panes() []*Pane { return ps.panes }

// First returns the first pane in display order.
func (ps *PaneSet) First() *Pane { return ps.panes[0] }

// ByID resolves a pane strictly by id. Returns nil for unknown ids,
// including ids of panes that have since been closed.
func (ps *PaneSet) ByID(id int) *Pane {
	for _, p := range ps.panes {
		if p.id == id {
			return p
		}
	}
	return nil
}

// CanSplit reports whether another pane may be created. It is false exactly
// when the pane count is at MaxPanes.
func (ps *PaneSet) CanSplit() bool {
	return len(ps.panes) < MaxPanes
}

// Create adds a new empty pane at the end of the display order and returns
// it. Returns nil when the set is at MaxPanes; creating past the cap is a
// no-op.
func (ps *PaneSet) Create() *Pane {
	if !ps.CanSplit() {
		return nil
	}
	p := newPane(ps.allocID())
	ps.panes = append(ps.panes, p)
	return p
}

// Remove deletes the pane with the given id. Removing the only pane is
// rejected. Returns false if the id is unknown or the pane is the last one.
func (ps *PaneSet) Remove(id int) bool {
	if len(ps.panes) <= 1 {
		return false
	}
	for i, p := range ps.panes {
		if p.id == id {
			ps.panes = append(ps.panes[:i], ps.panes[i+1:]...)
			return true
		}
	}
	return false
}
