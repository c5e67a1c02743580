package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/trine-editor/trine/internal/highlight"
)

// Editor is the text editing surface for a single document. While focused
// it is a live textarea; while blurred it renders a syntax-highlighted,
// read-only snapshot of the document.
type Editor struct {
	input   textarea.Model
	width   int
	height  int
	path    string
	focused bool

	// scroll offset of the blurred snapshot, tracked so an unfocused
	// pane keeps showing the region the user was working in
	blurLine int
}

// NewEditor creates an editor for the document at path. Untitled
// documents pass an empty path.
func NewEditor(path string) *Editor {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	applyEditorStyles(&ta)

	return &Editor{input: ta, path: path}
}

// applyEditorStyles configures the textarea for the dark editor theme,
// including the current line background.
func applyEditorStyles(ta *textarea.Model) {
	styles := ta.Styles()

	base := lipgloss.NewStyle()
	text := lipgloss.NewStyle().Foreground(ColorText)

	styles.Focused.Base = base
	styles.Focused.Text = text
	styles.Focused.Prompt = text
	styles.Focused.CursorLine = lipgloss.NewStyle().Background(ColorCurrentLine)
	styles.Focused.LineNumber = LineNumberStyle
	styles.Focused.CursorLineNumber = lipgloss.NewStyle().
		Foreground(ColorTextBright).
		Background(ColorCurrentLine)

	styles.Blurred.Base = base
	styles.Blurred.Text = text
	styles.Blurred.Prompt = text
	styles.Blurred.CursorLine = text
	styles.Blurred.LineNumber = LineNumberStyle

	ta.SetStyles(styles)
}

// SetPath updates the path used for language detection (after save-as)
func (e *Editor) SetPath(path string) {
	e.path = path
}

// SetSize sets the editor dimensions in cells
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.input.SetWidth(width)
	e.input.SetHeight(height)
}

// SetContent replaces the buffer content
func (e *Editor) SetContent(content string) {
	e.input.SetValue(content)
}

// Content returns the current buffer content
func (e *Editor) Content() string {
	return e.input.Value()
}

// Focus gives the editor keyboard focus
func (e *Editor) Focus() tea.Cmd {
	e.focused = true
	return e.input.Focus()
}

// Blur removes keyboard focus, remembering the cursor line so the
// snapshot view stays anchored there.
func (e *Editor) Blur() {
	e.focused = false
	e.blurLine = e.input.Line()
	e.input.Blur()
}

// Focused reports whether the editor has keyboard focus
func (e *Editor) Focused() bool {
	return e.focused
}

// CursorLineCol returns the 1-based cursor position for the status bar
func (e *Editor) CursorLineCol() (line, col int) {
	return e.input.Line() + 1, e.input.LineInfo().ColumnOffset + 1
}

// InsertText inserts text at the cursor position (paste)
func (e *Editor) InsertText(text string) {
	e.input.InsertString(text)
}

// Update forwards messages to the underlying textarea
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// View renders the editor
func (e *Editor) View() string {
	if e.width <= 0 || e.height <= 0 {
		return ""
	}
	if e.focused {
		return e.input.View()
	}
	return e.snapshotView()
}

// snapshotView renders a syntax-highlighted window of the document for
// unfocused panes, with the last cursor line still marked.
func (e *Editor) snapshotView() string {
	lines := highlight.HighlightLines(e.input.Value(), e.path)

	// Window the lines around where the cursor last was
	top := 0
	if e.blurLine >= e.height {
		top = e.blurLine - e.height + 1
	}
	end := top + e.height
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[top:end]

	area := uv.Rect(0, 0, e.width, e.height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(strings.Join(window, "\n")).Draw(scr, area)

	cursorRow := e.blurLine - top
	if cursorRow >= 0 && cursorRow < e.height {
		for x := 0; x < e.width; x++ {
			cell := scr.CellAt(x, cursorRow)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = ColorCurrentLine
				scr.SetCell(x, cursorRow, cell)
			}
		}
	}

	return scr.Render()
}
