package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SaveAsState - State for the Save As path prompt
// =============================================================================

type SaveAsState struct {
	Path  string
	Error string

	form *huh.Form
}

func (*SaveAsState) modalState() {}

func (s *SaveAsState) Title() string { return "Save As" }

func (s *SaveAsState) Help() string {
	return "Enter to save, Esc to cancel"
}

func (s *SaveAsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	parts := []string{title, s.form.View()}
	if s.Error != "" {
		parts = append(parts, StatusErrorStyle.Render(s.Error))
	}
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *SaveAsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// NewSaveAsState creates a Save As prompt, prefilled with the document's
// current path when it has one.
func NewSaveAsState(initialPath string) *SaveAsState {
	s := &SaveAsState{Path: initialPath}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Placeholder("path/to/file.txt").
				CharLimit(ModalInputCharLimit).
				Value(&s.Path),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
