// Package window locates the target application window and resolves its
// absolute screen bounds. The bounds are recomputed every tick because the
// window may move or resize between ticks.
package window

import "errors"

// ErrNotFound reports that the target window does not exist (or no longer
// exists). It marks the recoverable-absence error kind: callers stop
// gracefully instead of treating it as a runtime failure.
var ErrNotFound = errors.New("window: target window not found")

// Handle identifies a located top-level window.
type Handle struct {
	hwnd  uintptr
	title string
}

// Title returns the window title captured when the handle was located.
func (h Handle) Title() string { return h.title }
