//go:build !windows

package window

import (
	"fmt"
	"image"
	"runtime"
)

// Find is not implemented outside Windows; the detectors and the loop are
// still testable through the Deps seams.
func Find(titlePart string) (Handle, error) {
	return Handle{}, fmt.Errorf("window: locating windows is not supported on %s", runtime.GOOS)
}

// Rect is not implemented outside Windows.
func Rect(h Handle) (image.Rectangle, error) {
	return image.Rectangle{}, fmt.Errorf("window: resolving window bounds is not supported on %s", runtime.GOOS)
}
