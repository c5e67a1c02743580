package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// CreateFolderState - State for the sidebar's new-folder prompt
// =============================================================================

type CreateFolderState struct {
	Name  string
	Error string

	form *huh.Form
}

func (*CreateFolderState) modalState() {}

func (s *CreateFolderState) Title() string { return "New Folder" }

func (s *CreateFolderState) Help() string {
	return "Enter to create, Esc to cancel"
}

func (s *CreateFolderState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	parts := []string{title, s.form.View()}
	if s.Error != "" {
		parts = append(parts, StatusErrorStyle.Render(s.Error))
	}
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *CreateFolderState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// NewCreateFolderState creates the prompt for a new folder name under the
// sidebar's current root.
func NewCreateFolderState() *CreateFolderState {
	s := &CreateFolderState{}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Folder name").
				Placeholder("new-folder").
				CharLimit(ModalInputCharLimit).
				Value(&s.Name),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
