package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trine-editor/trine/internal/keys"
)

// =============================================================================
// SavePromptState - State for the unsaved-changes prompt
// =============================================================================

// SaveChoice is the outcome of a save prompt
type SaveChoice int

const (
	SaveChoiceSave SaveChoice = iota
	SaveChoiceDiscard
	SaveChoiceCancel
)

var saveOptions = []string{"Save", "Don't Save", "Cancel"}

// SavePromptState asks what to do with a modified document before it is
// closed. When several documents are closing at once (pane close, quit)
// the prompts are queued and Remaining shows how many follow this one.
type SavePromptState struct {
	DocumentLabel string
	Remaining     int
	SelectedIndex int
}

func (*SavePromptState) modalState() {}

func (s *SavePromptState) Title() string { return "Unsaved Changes" }

func (s *SavePromptState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

func (s *SavePromptState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	contentWidth := ModalWidth - 4

	question := lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true).
		MarginBottom(1).
		Width(contentWidth).
		Render(fmt.Sprintf("%s has unsaved changes.", s.DocumentLabel))

	optionList := RenderSelectableList(saveOptions, s.SelectedIndex)

	if s.Remaining > 0 {
		note := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Width(contentWidth).
			Render(fmt.Sprintf("(%d more with unsaved changes)", s.Remaining))
		optionList += "\n" + note
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, question, optionList, help)
}

func (s *SavePromptState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(saveOptions)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Choice returns the selected outcome
func (s *SavePromptState) Choice() SaveChoice {
	switch s.SelectedIndex {
	case 0:
		return SaveChoiceSave
	case 1:
		return SaveChoiceDiscard
	default:
		return SaveChoiceCancel
	}
}

// NewSavePromptState creates a save prompt for the named document.
// remaining is the count of further modified documents queued behind it.
func NewSavePromptState(documentLabel string, remaining int) *SavePromptState {
	return &SavePromptState{
		DocumentLabel: documentLabel,
		Remaining:     remaining,
	}
}
