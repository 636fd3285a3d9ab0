package clicker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blum-tools/clicker-go/capture"
	"github.com/blum-tools/clicker-go/config"
	"github.com/blum-tools/clicker-go/locale"
	"github.com/blum-tools/clicker-go/window"
)

const statsLogInterval = 5 * time.Second

// Clicker drives the capture/detect/click cycle for one target window.
// All mutable state (the pause flag, tick throttling, capture stats) lives
// on the instance so concurrent test instances never share anything.
type Clicker struct {
	cfg    *config.Config
	logger *slog.Logger
	msgs   *locale.Messages
	deps   Deps

	pause *PauseState
	stats capture.Recorder

	lastStatsLog time.Time
}

// New builds a Clicker. deps.FindWindow, deps.WindowRect, deps.Capture,
// deps.Keys and deps.Actions must be set.
func New(cfg *config.Config, logger *slog.Logger, msgs *locale.Messages, deps Deps) *Clicker {
	deps.fillDefaults()
	return &Clicker{
		cfg:    cfg,
		logger: logger,
		msgs:   msgs,
		deps:   deps,
		pause:  NewPauseState(cfg.StartKey, cfg.ToggleKey, cfg.Debounce(), deps.Keys, deps.Sleep, deps.Now, logger, msgs),
	}
}

// Run locates the target window and loops until the window disappears or a
// capture/detection failure occurs. The returned error carries the kind:
// errors.Is(err, window.ErrNotFound) marks recoverable absence, anything
// else is an unrecoverable runtime failure. A nil return never happens from
// the loop itself; the process stops by window loss or failure, as the tool
// is a single-operator foreground agent with no other shutdown path.
func (c *Clicker) Run() error {
	title, err := c.deps.FindWindow()
	if err != nil {
		c.logger.Error(c.msgs.T("window_not_found"), "error", err)
		return err
	}

	c.logger.Info(c.msgs.T("clicker_initialized"))
	c.logger.Info(c.msgs.TF("window_attached", map[string]any{"Title": title}))
	c.logger.Info(c.msgs.TF("press_start", map[string]any{"Key": c.cfg.StartKey}))

	for {
		tickStart := c.deps.Now()
		if c.pause.Poll() {
			c.throttle(tickStart)
			continue
		}

		if err := c.tick(); err != nil {
			c.logger.Error(c.msgs.T("window_closed"), "error", err)
			return err
		}
		c.throttle(tickStart)
	}
}

// tick runs one capture/detect/click cycle: resolve the window rectangle,
// grab a snapshot, then run the detectors in priority order. The freeze
// detector always runs; the face detector runs when enabled; the expensive
// button scan is skipped when the green detector already clicked this tick.
func (c *Clicker) tick() error {
	rect, err := c.deps.WindowRect()
	if err != nil {
		return err
	}

	captureStart := c.deps.Now()
	snap, err := c.deps.Capture(rect)
	if err != nil {
		return fmt.Errorf("capture %v: %w", rect, err)
	}
	c.recordCapture(captureStart)

	if w, h := snap.Size(); w != rect.Dx() || h != rect.Dy() {
		return fmt.Errorf("capture: snapshot %dx%d does not match rect %v", w, h, rect)
	}

	isGreen := c.dispatch(DetectGreen(snap, rect))
	c.dispatch(DetectFreeze(snap, rect))
	if c.cfg.CollectDogs {
		c.dispatch(DetectFace(snap, rect))
	}
	if !isGreen {
		c.dispatch(DetectButton(snap, rect))
	}
	return nil
}

// dispatch performs the pointer action for one detection result and reports
// whether a target was found. At most one click per detector per tick.
func (c *Clicker) dispatch(x, y int, found bool) bool {
	if !found {
		return false
	}
	c.deps.Actions.MoveCursor(x, y)
	c.deps.Actions.ClickLeft()
	c.logger.Debug("clicked", "x", x, "y", y)
	return true
}

// throttle enforces the minimum tick interval so cheap ticks do not peg a
// CPU core. The natural cadence stays detector-cost bound when detectors
// are slower than the floor.
func (c *Clicker) throttle(tickStart time.Time) {
	floor := c.cfg.MinTickInterval()
	if floor <= 0 {
		return
	}
	if elapsed := c.deps.Now().Sub(tickStart); elapsed < floor {
		c.deps.Sleep(floor - elapsed)
	}
}

func (c *Clicker) recordCapture(start time.Time) {
	now := c.deps.Now()
	c.stats.Record(now.Sub(start), now)
	if c.lastStatsLog.IsZero() {
		c.lastStatsLog = now
		return
	}
	if now.Sub(c.lastStatsLog) >= statsLogInterval {
		s := c.stats.Stats()
		c.logger.Debug("capture.stats", "captures", s.Captures, "avg_capture", s.AvgCapture)
		c.lastStatsLog = now
	}
}

// IsWindowLost reports whether err is the recoverable-absence kind.
func IsWindowLost(err error) bool {
	return errors.Is(err, window.ErrNotFound)
}
