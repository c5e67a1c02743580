// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the title bar in lines
	HeaderHeight = 1

	// FooterHeight is the height of the status bar in lines
	FooterHeight = 1

	// TabBarHeight is the height of each pane's tab row in lines
	TabBarHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/5 of total width)
	SidebarWidthRatio = 5

	// MinTerminalWidth is the smallest width layout calculations accept
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest height layout calculations accept
	MinTerminalHeight = 10

	// MaxTabLabelWidth caps the cells a single tab label may occupy
	MaxTabLabelWidth = 24
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
