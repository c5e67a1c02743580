package config

import "fmt"

// Session is the persisted window layout: which files were open in which
// pane, the current tab of each pane, and which pane was active. Untitled
// tabs are not persisted; a pane whose files were all untitled is saved as
// an empty pane.
type Session struct {
	Panes      []PaneLayout `json:"panes"`
	ActivePane int          `json:"active_pane"` // index into Panes
}

// PaneLayout is the saved state of one pane.
type PaneLayout struct {
	Files      []string `json:"files"`       // absolute paths, in tab order
	CurrentTab int      `json:"current_tab"` // index into Files, -1 if empty
}

func (s *Session) clone() *Session {
	out := &Session{
		Panes:      make([]PaneLayout, len(s.Panes)),
		ActivePane: s.ActivePane,
	}
	for i, p := range s.Panes {
		files := make([]string, len(p.Files))
		copy(files, p.Files)
		out.Panes[i] = PaneLayout{Files: files, CurrentTab: p.CurrentTab}
	}
	return out
}

func (s *Session) validate() error {
	if len(s.Panes) == 0 {
		return fmt.Errorf("saved session has no panes")
	}
	if s.ActivePane < 0 || s.ActivePane >= len(s.Panes) {
		return fmt.Errorf("saved session active pane %d outside 0..%d", s.ActivePane, len(s.Panes)-1)
	}
	for i, p := range s.Panes {
		for _, f := range p.Files {
			if f == "" {
				return fmt.Errorf("saved session pane %d has an empty file path", i)
			}
		}
		if len(p.Files) == 0 {
			if p.CurrentTab != -1 {
				return fmt.Errorf("saved session pane %d is empty but has current tab %d", i, p.CurrentTab)
			}
			continue
		}
		if p.CurrentTab < 0 || p.CurrentTab >= len(p.Files) {
			return fmt.Errorf("saved session pane %d current tab %d outside 0..%d", i, p.CurrentTab, len(p.Files)-1)
		}
	}
	return nil
}
