//go:build !windows

package capture

import (
	"image"

	"github.com/vova616/screenshot"
)

// GrabRect captures the absolute screen rectangle r.
func GrabRect(r image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}
