// Package keystate exposes a polled is-pressed view over the global
// keyboard. A background goroutine folds gohook key events into a
// pressed-key set so callers can sample key state without blocking.
package keystate

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	gohook "github.com/robotn/gohook"
)

// Listener tracks which keys are currently held.
type Listener struct {
	mu      sync.RWMutex
	pressed map[uint16]bool
	running atomic.Bool
	logger  *slog.Logger
}

// NewListener returns a stopped Listener.
func NewListener(logger *slog.Logger) *Listener {
	return &Listener{pressed: make(map[uint16]bool), logger: logger}
}

// Start launches the hook goroutine. Calling Start on a running listener is
// a no-op.
func (l *Listener) Start() {
	if l.running.Swap(true) {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if l.logger != nil {
					l.logger.Error("keystate hook panic", "error", r, "stack", string(debug.Stack()))
				}
			}
		}()
		l.consume(gohook.Start())
	}()
}

// Stop shuts the hook down. Pending state is cleared so a later Start
// begins from all-released.
func (l *Listener) Stop() {
	if !l.running.Swap(false) {
		return
	}
	gohook.End()
	l.mu.Lock()
	l.pressed = make(map[uint16]bool)
	l.mu.Unlock()
}

// Pressed reports whether any rawcode variant of the named key is held.
// Unknown key names are never pressed.
func (l *Listener) Pressed(key string) bool {
	codes := Rawcodes(key)
	if len(codes) == 0 {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, code := range codes {
		if l.pressed[code] {
			return true
		}
	}
	return false
}

func (l *Listener) consume(events chan gohook.Event) {
	if events == nil {
		if l.logger != nil {
			l.logger.Error("keystate: gohook returned no event channel")
		}
		l.running.Store(false)
		return
	}
	for ev := range events {
		switch ev.Kind {
		case gohook.KeyDown, gohook.KeyHold:
			l.set(ev.Rawcode, true)
		case gohook.KeyUp:
			l.set(ev.Rawcode, false)
		}
		if !l.running.Load() {
			return
		}
	}
}

func (l *Listener) set(code uint16, down bool) {
	l.mu.Lock()
	if down {
		l.pressed[code] = true
	} else {
		delete(l.pressed, code)
	}
	l.mu.Unlock()
}
