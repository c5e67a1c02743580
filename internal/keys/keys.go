// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "a", "y", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                   // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
	F1        = tea.KeyPressMsg{Code: tea.KeyF1}.String()                       // "f1"
	F3        = tea.KeyPressMsg{Code: tea.KeyF3}.String()                       // "f3"
	AltEnter  = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String() // "alt+enter"
)

// Ctrl combinations
var (
	CtrlQ      = (tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}).String()                // "ctrl+q"
	CtrlC      = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()                // "ctrl+c"
	CtrlV      = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String()                // "ctrl+v"
	CtrlX      = (tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}).String()                // "ctrl+x"
	CtrlS      = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String()                // "ctrl+s"
	CtrlO      = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String()                // "ctrl+o"
	CtrlN      = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String()                // "ctrl+n"
	CtrlW      = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}).String()                // "ctrl+w"
	CtrlF      = (tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl}).String()                // "ctrl+f"
	CtrlH      = (tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}).String()                // "ctrl+h"
	CtrlB      = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String()                // "ctrl+b"
	CtrlE      = (tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}).String()                // "ctrl+e"
	CtrlT      = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()                // "ctrl+t"
	CtrlShiftS = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+s"
	CtrlShiftW = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+w"
	CtrlTab    = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModCtrl}).String()         // "ctrl+tab"
	CtrlPgUp   = (tea.KeyPressMsg{Code: tea.KeyPgUp, Mod: tea.ModCtrl}).String()        // "ctrl+pgup"
	CtrlPgDown = (tea.KeyPressMsg{Code: tea.KeyPgDown, Mod: tea.ModCtrl}).String()      // "ctrl+pgdown"
)

// Alt combinations cycle pane focus
var (
	Alt1 = (tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}).String() // "alt+1"
	Alt2 = (tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt}).String() // "alt+2"
	Alt3 = (tea.KeyPressMsg{Code: '3', Mod: tea.ModAlt}).String() // "alt+3"
)
