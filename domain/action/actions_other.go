//go:build !windows

package action

import "github.com/go-vgo/robotgo"

// MoveCursor moves the OS mouse pointer to the absolute screen point (x, y).
func MoveCursor(x, y int) {
	robotgo.Move(x, y)
}

// ClickLeft sends a primary mouse button click at the current pointer
// position.
func ClickLeft() {
	robotgo.Click("left", false)
}
