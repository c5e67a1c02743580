package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// OpenPathState - State for the Open File / Open Folder path prompt
// =============================================================================

type OpenPathState struct {
	Path   string
	Error  string
	Folder bool // true when opening a folder for the sidebar

	form *huh.Form
}

func (*OpenPathState) modalState() {}

func (s *OpenPathState) Title() string {
	if s.Folder {
		return "Open Folder"
	}
	return "Open File"
}

func (s *OpenPathState) Help() string {
	return "Enter to open, Esc to cancel"
}

func (s *OpenPathState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	parts := []string{title, s.form.View()}
	if s.Error != "" {
		parts = append(parts, StatusErrorStyle.Render(s.Error))
	}
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *OpenPathState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// NewOpenPathState creates an open prompt. folder selects the folder
// variant used by the sidebar; initialPath prefills the input.
func NewOpenPathState(initialPath string, folder bool) *OpenPathState {
	s := &OpenPathState{Path: initialPath, Folder: folder}

	placeholder := "path/to/file.txt"
	if folder {
		placeholder = "path/to/folder"
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path").
				Placeholder(placeholder).
				CharLimit(ModalInputCharLimit).
				Value(&s.Path),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
