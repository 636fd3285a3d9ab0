//go:build windows

package action

import (
	"time"

	"golang.org/x/sys/windows"
)

// MoveCursor moves the OS mouse pointer to the absolute screen point (x, y).
// Windows implementation using SetCursorPos.
func MoveCursor(x, y int) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	setCursorPos := user32.NewProc("SetCursorPos")
	_, _, _ = setCursorPos.Call(uintptr(x), uintptr(y))
}

// ClickLeft sends a primary mouse button click (down then up) at the
// current pointer position. Windows implementation using the Win32 API.
func ClickLeft() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	mouseEvent := user32.NewProc("mouse_event")
	const MOUSEEVENTF_LEFTDOWN = 0x0002
	const MOUSEEVENTF_LEFTUP = 0x0004
	_, _, _ = mouseEvent.Call(MOUSEEVENTF_LEFTDOWN, 0, 0, 0, 0)
	time.Sleep(30 * time.Millisecond)
	_, _, _ = mouseEvent.Call(MOUSEEVENTF_LEFTUP, 0, 0, 0, 0)
}
