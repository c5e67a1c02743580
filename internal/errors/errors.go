// Package errors provides structured error types for the Trine editor.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Trine.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ErrCancelled is returned when the user cancels an operation from a prompt.
// Cancelled operations must leave the editor state untouched.
var ErrCancelled = E(KindCancelled, "operation cancelled")

// Cancelled reports whether err represents a user cancellation.
func Cancelled(err error) bool {
	return err != nil && (errors.Is(err, ErrCancelled) || Is(err, KindCancelled))
}

// File errors

// FileReadFailed wraps a failed file load.
func FileReadFailed(path string, err error) error {
	return E(Op("fileio.Read"), KindIO, fmt.Sprintf("could not open file %s", path), err)
}

// FileWriteFailed wraps a failed file save.
func FileWriteFailed(path string, err error) error {
	return E(Op("fileio.Write"), KindIO, fmt.Sprintf("could not save file %s", path), err)
}

// Config errors

// ConfigLoadFailed wraps a failed config load.
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

// ConfigSaveFailed wraps a failed config save.
func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

// Workspace errors

// PaneNotFound reports a pane id that is not present in the pane set.
func PaneNotFound(id int) error {
	return E(Op("workspace.Pane"), KindNotFound, fmt.Sprintf("pane %d not found", id))
}

// TabOutOfRange reports a tab index outside a pane's tab list.
func TabOutOfRange(paneID, index int) error {
	return E(Op("workspace.Tab"), KindInvalid, fmt.Sprintf("tab index %d out of range for pane %d", index, paneID))
}
