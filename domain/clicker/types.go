package clicker

import (
	"image"
	"time"

	"github.com/blum-tools/clicker-go/capture"
)

// KeySource reports whether a named key is currently held. Polled,
// non-blocking.
type KeySource interface {
	Pressed(key string) bool
}

// ActionCallbacks externalize pointer synthesis so the loop can run against
// fakes in tests.
type ActionCallbacks struct {
	MoveCursor func(x, y int)
	ClickLeft  func()
}

// Deps bundles the external collaborators of the loop: window location,
// rectangle resolution, frame capture, key state and pointer actions.
// Sleep and Now default to the real clock when nil.
type Deps struct {
	// FindWindow locates the target window once at startup and returns its
	// title for the attach log line.
	FindWindow func() (string, error)
	// WindowRect resolves the window's current absolute bounds. Called
	// every tick; the window may move or resize between ticks.
	WindowRect func() (image.Rectangle, error)
	// Capture grabs a snapshot of the given absolute rectangle.
	Capture func(image.Rectangle) (capture.Snapshot, error)

	Keys    KeySource
	Actions ActionCallbacks

	Sleep func(time.Duration)
	Now   func() time.Time
}

func (d *Deps) fillDefaults() {
	if d.Sleep == nil {
		d.Sleep = time.Sleep
	}
	if d.Now == nil {
		d.Now = time.Now
	}
}
