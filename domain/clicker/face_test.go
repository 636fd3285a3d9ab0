package clicker

import (
	"image"
	"testing"
)

func TestDetectFaceAreaFilter(t *testing.T) {
	rect := image.Rect(0, 0, 200, 200)

	// 20x20 = 400 pixels: below the lower bound.
	snap := synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 10, 30, 30, 255, 255, 255)
	})
	if _, _, ok := DetectFace(snap, rect); ok {
		t.Error("area 400 must be rejected")
	}

	// 50x70 = 3500 pixels: above the upper bound.
	snap = synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 10, 60, 80, 255, 255, 255)
	})
	if _, _, ok := DetectFace(snap, rect); ok {
		t.Error("area 3500 must be rejected")
	}

	// 25x40 = 1000 pixels: accepted, reported at the bounding box center.
	snap = synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 20, 35, 60, 255, 255, 255)
	})
	x, y, ok := DetectFace(snap, rect)
	if !ok {
		t.Fatal("area 1000 must be accepted")
	}
	if x != 22 || y != 40 {
		t.Errorf("center = (%d,%d), want (22,40)", x, y)
	}
}

func TestDetectFaceCoordinateMapping(t *testing.T) {
	rect := image.Rect(300, 100, 500, 300)
	snap := synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 20, 35, 60, 255, 255, 255)
	})
	x, y, ok := DetectFace(snap, rect)
	if !ok || x != 322 || y != 140 {
		t.Fatalf("got (%d,%d,%v), want (322,140,true)", x, y, ok)
	}
}

func TestDetectFaceColorThresholds(t *testing.T) {
	rect := image.Rect(0, 0, 200, 200)

	// Saturated bright red: value passes, saturation fails.
	snap := synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 20, 35, 60, 255, 0, 0)
	})
	if _, _, ok := DetectFace(snap, rect); ok {
		t.Error("saturated region must not match the near-white mask")
	}

	// Dim gray: saturation passes, value fails.
	snap = synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 20, 35, 60, 120, 120, 120)
	})
	if _, _, ok := DetectFace(snap, rect); ok {
		t.Error("dim region must not match the near-white mask")
	}

	// Light gray within both thresholds.
	snap = synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 20, 35, 60, 230, 225, 220)
	})
	if _, _, ok := DetectFace(snap, rect); !ok {
		t.Error("light gray region must match the near-white mask")
	}
}

func TestDetectFacePicksFirstComponentInRowMajorOrder(t *testing.T) {
	rect := image.Rect(0, 0, 200, 200)
	// Two qualifying components; the one whose first pixel appears earlier
	// in row-major order wins.
	snap := synthSnap(200, 200, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 100, 10, 125, 50, 255, 255, 255) // first by row
		fillRect(img, 10, 100, 35, 140, 255, 255, 255)
	})
	x, y, ok := DetectFace(snap, rect)
	if !ok || x != 112 || y != 30 {
		t.Fatalf("got (%d,%d,%v), want (112,30,true)", x, y, ok)
	}
}

func TestDetectFaceSeparatesDiagonalComponents(t *testing.T) {
	rect := image.Rect(0, 0, 100, 100)
	// Two 20x20 blocks touching only at a corner: 4-connectivity keeps
	// them separate, so each stays below the area threshold.
	snap := synthSnap(100, 100, 0, 0, 0, func(img *image.RGBA) {
		fillRect(img, 10, 10, 30, 30, 255, 255, 255)
		fillRect(img, 30, 30, 50, 50, 255, 255, 255)
	})
	if _, _, ok := DetectFace(snap, rect); ok {
		t.Error("diagonally touching blocks must not merge into one component")
	}
}

func TestSaturationValue(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		s, v    uint8
	}{
		{255, 255, 255, 0, 255},
		{0, 0, 0, 0, 0},
		{255, 0, 0, 255, 255},
		{200, 200, 200, 0, 200},
		{200, 150, 100, 127, 200},
	}
	for _, tc := range cases {
		s, v := saturationValue(tc.r, tc.g, tc.b)
		if s != tc.s || v != tc.v {
			t.Errorf("saturationValue(%d,%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.g, tc.b, s, v, tc.s, tc.v)
		}
	}
}
