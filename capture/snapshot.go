package capture

import (
	"image"
	"sync/atomic"
	"time"
)

// Snapshot is a read-only view over one captured frame. It is produced
// fresh for every tick and discarded afterwards; nothing mutates the
// underlying pixels after construction.
type Snapshot struct {
	img *image.RGBA
}

// NewSnapshot wraps img. The caller must not modify img afterwards.
func NewSnapshot(img *image.RGBA) Snapshot {
	return Snapshot{img: img}
}

// Size returns the snapshot dimensions in pixels.
func (s Snapshot) Size() (w, h int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// RGBAt returns the color channels of the pixel at (x, y) relative to the
// snapshot origin. O(1); coordinates must lie inside Size().
func (s Snapshot) RGBAt(x, y int) (r, g, b uint8) {
	i := s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	return s.img.Pix[i], s.img.Pix[i+1], s.img.Pix[i+2]
}

// Stats summarises capture behaviour for instrumentation.
type Stats struct {
	Captures         uint64
	AvgCapture       time.Duration
	AvgCaptureMicros float64
	LastCapture      time.Time
}

// Recorder accumulates capture timings. Safe for concurrent use.
type Recorder struct {
	captures     atomic.Uint64
	captureNanos atomic.Uint64
	last         atomic.Int64 // unix nanos of the most recent capture
}

// Record accounts one completed capture that took elapsed.
func (r *Recorder) Record(elapsed time.Duration, at time.Time) {
	r.captures.Add(1)
	r.captureNanos.Add(uint64(elapsed.Nanoseconds()))
	r.last.Store(at.UnixNano())
}

// Stats returns a point-in-time view of the accumulated counters.
func (r *Recorder) Stats() Stats {
	captures := r.captures.Load()
	total := r.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	var last time.Time
	if n := r.last.Load(); n > 0 {
		last = time.Unix(0, n)
	}
	return Stats{
		Captures:         captures,
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      last,
	}
}
