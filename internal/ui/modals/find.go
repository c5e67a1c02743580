package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// FindState - State for the Find / Find & Replace modal
// =============================================================================

type FindState struct {
	Query       string
	Replacement string
	ReplaceMode bool
	Status      string // match count / position, set by the app layer

	form *huh.Form
}

func (*FindState) modalState() {}

func (s *FindState) Title() string {
	if s.ReplaceMode {
		return "Find & Replace"
	}
	return "Find"
}

func (s *FindState) Help() string {
	if s.ReplaceMode {
		return "Enter: replace  alt+enter: replace all  Tab: next field  Esc: close"
	}
	return "Enter/f3: find next  Esc: close"
}

func (s *FindState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	parts := []string{title, s.form.View()}
	if s.Status != "" {
		status := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(s.Status)
		parts = append(parts, status)
	}
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *FindState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// NewFindState creates a find prompt. replaceMode adds the replacement
// field; initialQuery prefills the search input.
func NewFindState(initialQuery string, replaceMode bool) *FindState {
	s := &FindState{Query: initialQuery, ReplaceMode: replaceMode}

	fields := []huh.Field{
		huh.NewInput().
			Title("Find").
			Placeholder("text to find").
			CharLimit(ModalInputCharLimit).
			Value(&s.Query),
	}
	if replaceMode {
		fields = append(fields,
			huh.NewInput().
				Title("Replace with").
				CharLimit(ModalInputCharLimit).
				Value(&s.Replacement),
		)
	}

	s.form = huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
