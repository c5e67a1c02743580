package ui

import (
	"sync"

	"github.com/trine-editor/trine/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	EditorWidth   int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when the terminal resizes.
// sidebarVisible controls whether the sidebar column is allotted space.
func (v *ViewContext) UpdateTerminalSize(width, height int, sidebarVisible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	if sidebarVisible {
		v.SidebarWidth = width / SidebarWidthRatio
	} else {
		v.SidebarWidth = 0
	}
	v.EditorWidth = width - v.SidebarWidth

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"editorWidth", v.EditorWidth,
	)
}

// PaneWidth splits the editor column across count panes; the first pane
// absorbs the remainder so the widths always sum to EditorWidth.
func (v *ViewContext) PaneWidth(count, index int) int {
	if count < 1 {
		count = 1
	}
	w := v.EditorWidth / count
	if index == 0 {
		w += v.EditorWidth % count
	}
	return w
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
