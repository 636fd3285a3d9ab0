//go:build windows

package window

import (
	"fmt"
	"image"
	"strings"
	"syscall"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Find returns the first visible top-level window whose title contains
// titlePart (case-insensitive). Returns ErrNotFound when no window matches.
func Find(titlePart string) (Handle, error) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	enumWindows := user32.NewProc("EnumWindows")
	isWindowVisible := user32.NewProc("IsWindowVisible")

	want := strings.ToLower(strings.TrimSpace(titlePart))
	var found Handle
	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		// Skip invisible windows
		vis, _, _ := isWindowVisible.Call(hwnd)
		if vis == 0 {
			return 1 // continue
		}
		title := windowText(hwnd)
		if title == "" {
			return 1
		}
		if strings.Contains(strings.ToLower(title), want) {
			found = Handle{hwnd: hwnd, title: title}
			return 0 // stop enumeration
		}
		return 1 // continue enumeration
	})

	// EnumWindows returns 0 when the callback stopped it, so the error
	// value alone does not distinguish success from failure here.
	_, _, _ = enumWindows.Call(cb, 0)
	if found.hwnd == 0 {
		return Handle{}, fmt.Errorf("%w: title %q", ErrNotFound, titlePart)
	}
	return found, nil
}

// Rect returns the current absolute screen bounds of h. A window that has
// been closed since Find yields ErrNotFound.
func Rect(h Handle) (image.Rectangle, error) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	isWindow := user32.NewProc("IsWindow")
	getWindowRect := user32.NewProc("GetWindowRect")

	if alive, _, _ := isWindow.Call(h.hwnd); alive == 0 {
		return image.Rectangle{}, fmt.Errorf("%w: window closed", ErrNotFound)
	}
	var r struct{ Left, Top, Right, Bottom int32 }
	ok, _, _ := getWindowRect.Call(h.hwnd, uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return image.Rectangle{}, fmt.Errorf("%w: GetWindowRect failed", ErrNotFound)
	}
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}

// windowText reads the title of hwnd, empty when the window has none.
func windowText(hwnd uintptr) string {
	user32 := windows.NewLazySystemDLL("user32.dll")
	getWindowTextW := user32.NewProc("GetWindowTextW")
	const maxChars = 256
	buf := make([]uint16, maxChars)
	r, _, _ := getWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return ""
	}
	var end int
	for i, v := range buf {
		if v == 0 {
			end = i
			break
		}
	}
	if end == 0 {
		end = int(r)
	}
	return strings.TrimSpace(string(utf16.Decode(buf[:end])))
}
