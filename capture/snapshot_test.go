package capture

import (
	"image"
	"testing"
	"time"
)

func TestSnapshotSizeAndPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	i := img.PixOffset(2, 1)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 10, 20, 30, 255

	snap := NewSnapshot(img)
	w, h := snap.Size()
	if w != 3 || h != 2 {
		t.Fatalf("Size() = %dx%d, want 3x2", w, h)
	}
	if r, g, b := snap.RGBAt(2, 1); r != 10 || g != 20 || b != 30 {
		t.Fatalf("RGBAt(2,1) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	if r, g, b := snap.RGBAt(0, 0); r != 0 || g != 0 || b != 0 {
		t.Fatalf("RGBAt(0,0) = (%d,%d,%d), want zero", r, g, b)
	}
}

func TestSnapshotHandlesNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 7, 8, 10))
	i := img.PixOffset(5, 7)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 1, 2, 3

	snap := NewSnapshot(img)
	if w, h := snap.Size(); w != 3 || h != 3 {
		t.Fatalf("Size() = %dx%d, want 3x3", w, h)
	}
	if r, g, b := snap.RGBAt(0, 0); r != 1 || g != 2 || b != 3 {
		t.Fatalf("RGBAt(0,0) = (%d,%d,%d), want (1,2,3)", r, g, b)
	}
}

func TestZeroSnapshotIsEmpty(t *testing.T) {
	var snap Snapshot
	if w, h := snap.Size(); w != 0 || h != 0 {
		t.Fatalf("zero snapshot Size() = %dx%d", w, h)
	}
}

func TestRecorderAverages(t *testing.T) {
	var rec Recorder
	at := time.Unix(100, 0)
	rec.Record(10*time.Millisecond, at)
	rec.Record(30*time.Millisecond, at.Add(time.Second))

	s := rec.Stats()
	if s.Captures != 2 {
		t.Fatalf("Captures = %d, want 2", s.Captures)
	}
	if s.AvgCapture != 20*time.Millisecond {
		t.Fatalf("AvgCapture = %v, want 20ms", s.AvgCapture)
	}
	if !s.LastCapture.Equal(at.Add(time.Second)) {
		t.Fatalf("LastCapture = %v", s.LastCapture)
	}
}

func TestRecorderZeroValue(t *testing.T) {
	var rec Recorder
	s := rec.Stats()
	if s.Captures != 0 || s.AvgCapture != 0 || !s.LastCapture.IsZero() {
		t.Fatalf("zero recorder stats = %+v", s)
	}
}
