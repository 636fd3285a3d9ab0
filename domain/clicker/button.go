package clicker

import (
	"image"

	"github.com/blum-tools/clicker-go/capture"
)

// Button detector parameters. The white button with black text sits in the
// lower quarter of the window; a candidate pixel must head a vertical run
// of pure white tall enough to be a button body rather than an anti-aliased
// edge, with black text directly beside it.
const (
	buttonRunLength = 10 // candidate pixel plus the 9 below it
	buttonClickOffX = 10 // nudge the click inside the button body
	buttonClickOffY = 5
)

// DetectButton scans the lower quarter of the snapshot exhaustively, row by
// row. Unlike the marker detectors this is a per-pixel scan: the text
// heuristic needs exact pixel adjacency, so the coarse grid would miss it.
// The loop stops at the first hit.
func DetectButton(snap capture.Snapshot, rect image.Rectangle) (int, int, bool) {
	w, h := snap.Size()
	for y := h * 3 / 4; y < h; y++ {
		for x := 0; x < w; x++ {
			if !isWhite(snap, x, y) {
				continue
			}
			// A run reaching past the bottom edge cannot be a button.
			if y+buttonRunLength > h {
				continue
			}
			run := true
			for off := 1; off < buttonRunLength; off++ {
				if !isWhite(snap, x, y+off) {
					run = false
					break
				}
			}
			if !run {
				continue
			}
			// Black text evidence: prefer the right neighbor, fall back to
			// the left one on the last column.
			if x < w-1 && isBlack(snap, x+1, y) || x == w-1 && x > 0 && isBlack(snap, x-1, y) {
				cx := x + buttonClickOffX
				if cx > w-1 {
					cx = w - 1
				}
				cy := y + buttonClickOffY
				if cy > h-1 {
					cy = h - 1
				}
				return rect.Min.X + cx, rect.Min.Y + cy, true
			}
		}
	}
	return 0, 0, false
}

func isWhite(snap capture.Snapshot, x, y int) bool {
	r, g, b := snap.RGBAt(x, y)
	return r == 255 && g == 255 && b == 255
}

func isBlack(snap capture.Snapshot, x, y int) bool {
	r, g, b := snap.RGBAt(x, y)
	return r == 0 && g == 0 && b == 0
}
