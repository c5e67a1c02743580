// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/trine-editor/trine/internal/logger"
)

// notifyFunc is the function used to deliver notifications. Tests replace
// it to avoid sending real notifications.
type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the delivery function. Intended for tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the default delivery function.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Log("Notification: Failed to send notification: %v", err)
	}
	return err
}

// SaveFailed sends a notification that saving a file failed.
func SaveFailed(name string) error {
	return Send("Trine", "Could not save "+name)
}

// FileRecreated sends a notification that a file deleted outside the
// editor was written back to disk by a save.
func FileRecreated(name string) error {
	return Send("Trine", name+" was recreated on disk")
}
