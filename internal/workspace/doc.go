// Package workspace is the multi-pane document session registry: it tracks
// which document lives in which pane/tab slot, keeps that mapping correct as
// tabs are opened, closed, reordered, and dragged between panes, and
// maintains the single active-pane / current-file focus for the editor
// window.
//
// The package is pure state — it never touches the terminal and performs no
// file IO beyond loading documents on open. All operations execute
// synchronously on the UI event loop. Confirmation prompts (save / discard /
// cancel) are resolved by the app layer before any destructive operation
// here is invoked, so every mutation in this package either happens in full
// or not at all.
package workspace
