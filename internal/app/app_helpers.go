package app

import (
	"fmt"

	"github.com/trine-editor/trine/internal/logger"
	"github.com/trine-editor/trine/internal/notification"
	"github.com/trine-editor/trine/internal/search"
	"github.com/trine-editor/trine/internal/ui/modals"
)

// notifySaveFailed sends a desktop notification for a failed save, if
// notifications are enabled.
func (m *Model) notifySaveFailed(name string) {
	if !m.config.GetNotificationsEnabled() {
		return
	}
	if err := notification.SaveFailed(name); err != nil {
		logger.Log("App: notification failed: %v", err)
	}
}

// notifyFileRecreated sends a desktop notification when a save recreated a
// file that vanished from disk, if notifications are enabled.
func (m *Model) notifyFileRecreated(name string) {
	if !m.config.GetNotificationsEnabled() {
		return
	}
	if err := notification.FileRecreated(name); err != nil {
		logger.Log("App: notification failed: %v", err)
	}
}

// matchStatus formats the footer message for a find hit
func matchStatus(content, query string, line, col int) string {
	return fmt.Sprintf("Match at Ln %d, Col %d (%d total)", line, col, search.Count(content, query))
}

// helpSections lists every keyboard shortcut for the help modal
func helpSections() []modals.HelpSection {
	return []modals.HelpSection{
		{
			Title: "Files",
			Shortcuts: []modals.HelpShortcut{
				{Key: "ctrl+n", Desc: "New tab"},
				{Key: "ctrl+o", Desc: "Open file"},
				{Key: "ctrl+s", Desc: "Save"},
				{Key: "ctrl+shift+s", Desc: "Save as"},
				{Key: "ctrl+w", Desc: "Close tab"},
			},
		},
		{
			Title: "Panes",
			Shortcuts: []modals.HelpShortcut{
				{Key: "ctrl+e", Desc: "Split pane"},
				{Key: "ctrl+shift+w", Desc: "Close pane"},
				{Key: "alt+1..3", Desc: "Focus pane"},
				{Key: "ctrl+tab", Desc: "Next tab"},
				{Key: "ctrl+pgup/pgdown", Desc: "Previous/next tab"},
			},
		},
		{
			Title: "Editing",
			Shortcuts: []modals.HelpShortcut{
				{Key: "ctrl+c", Desc: "Copy line"},
				{Key: "ctrl+x", Desc: "Cut line"},
				{Key: "ctrl+v", Desc: "Paste"},
				{Key: "ctrl+f", Desc: "Find"},
				{Key: "ctrl+h", Desc: "Find and replace"},
				{Key: "f3", Desc: "Find next"},
			},
		},
		{
			Title: "Workspace",
			Shortcuts: []modals.HelpShortcut{
				{Key: "ctrl+b", Desc: "Sidebar focus/toggle"},
				{Key: "ctrl+t", Desc: "Open folder / new folder"},
				{Key: "f1", Desc: "This help"},
				{Key: "ctrl+q", Desc: "Quit"},
			},
		},
	}
}
