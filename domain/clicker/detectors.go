package clicker

import (
	"image"

	"github.com/blum-tools/clicker-go/capture"
)

// gridStep is the coarse sampling stride of the marker detectors. Sampling
// every 20th pixel trades recall for speed: a marker smaller than the grid
// cell can be missed, which the next tick usually corrects.
const gridStep = 20

// Detectors are pure functions of a snapshot and the window rectangle it
// was captured from. They report where to click in absolute screen
// coordinates; the dispatcher performs the click.

// DetectGreen finds the first green marker on the coarse grid. Scan order
// is column by column, top to bottom inside each column. The exact shade
// (196,247,94) is a known background false positive and is skipped.
func DetectGreen(snap capture.Snapshot, rect image.Rectangle) (int, int, bool) {
	w, h := snap.Size()
	for x := 0; x < w; x += gridStep {
		for y := 0; y < h; y += gridStep {
			r, g, b := snap.RGBAt(x, y)
			if r == 196 && g == 247 && b == 94 {
				continue
			}
			if b < 125 && r >= 102 && r < 220 && g >= 200 && g < 255 {
				return rect.Min.X + x, rect.Min.Y + y, true
			}
		}
	}
	return 0, 0, false
}

// DetectFreeze finds the first freeze marker on the same coarse grid and in
// the same scan order as DetectGreen.
func DetectFreeze(snap capture.Snapshot, rect image.Rectangle) (int, int, bool) {
	w, h := snap.Size()
	for x := 0; x < w; x += gridStep {
		for y := 0; y < h; y += gridStep {
			r, g, b := snap.RGBAt(x, y)
			if b > 215 && b < 255 && r >= 100 && r < 166 && g >= 220 && g < 254 {
				return rect.Min.X + x, rect.Min.Y + y, true
			}
		}
	}
	return 0, 0, false
}
