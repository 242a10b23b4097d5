package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilController is returned when a session is built without a form
	// controller.
	ErrNilController = errors.New("tui: form controller is nil")
)
