package clicker

import (
	"log/slog"
	"time"

	"github.com/blum-tools/clicker-go/locale"
)

// PauseState tracks the paused flag of the loop. The clicker starts idle;
// the start key resumes it the first time and the toggle key flips the flag
// afterwards. Every recognized transition is followed by a debounce
// suspension so one physical key press, sampled at high frequency, is not
// interpreted as dozens of toggles.
//
// Single-owner state: only Poll mutates paused, everyone else reads it.
type PauseState struct {
	paused    bool
	startKey  string
	toggleKey string
	debounce  time.Duration
	until     time.Time // no key sampling before this instant

	keys   KeySource
	sleep  func(time.Duration)
	now    func() time.Time
	logger *slog.Logger
	msgs   *locale.Messages
}

// NewPauseState returns a machine in the initial paused state.
func NewPauseState(startKey, toggleKey string, debounce time.Duration, keys KeySource, sleep func(time.Duration), now func() time.Time, logger *slog.Logger, msgs *locale.Messages) *PauseState {
	if sleep == nil {
		sleep = time.Sleep
	}
	if now == nil {
		now = time.Now
	}
	return &PauseState{
		paused:    true,
		startKey:  startKey,
		toggleKey: toggleKey,
		debounce:  debounce,
		keys:      keys,
		sleep:     sleep,
		now:       now,
		logger:    logger,
		msgs:      msgs,
	}
}

// Paused returns the current flag without sampling the keyboard.
func (p *PauseState) Paused() bool { return p.paused }

// Poll samples the two control keys, applies at most one transition and
// returns the resulting paused flag. After a transition the machine
// suspends cooperatively for the debounce interval; key events inside that
// window are not sampled, so a held key flips the flag exactly once.
func (p *PauseState) Poll() bool {
	if p.now().Before(p.until) {
		return p.paused
	}
	switch {
	case p.keys.Pressed(p.startKey) && p.paused:
		p.paused = false
		p.logger.Info(p.msgs.TF("press_pause_hint", map[string]any{"Key": p.toggleKey}))
		p.debounceNow()
	case p.keys.Pressed(p.toggleKey):
		p.paused = !p.paused
		if p.paused {
			p.logger.Info(p.msgs.T("program_paused"))
		} else {
			p.logger.Info(p.msgs.T("program_resumed"))
		}
		p.debounceNow()
	}
	return p.paused
}

func (p *PauseState) debounceNow() {
	p.until = p.now().Add(p.debounce)
	p.sleep(p.debounce)
}
