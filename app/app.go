package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/blum-tools/clicker-go/capture"
	"github.com/blum-tools/clicker-go/config"
	"github.com/blum-tools/clicker-go/debug"
	"github.com/blum-tools/clicker-go/domain/action"
	"github.com/blum-tools/clicker-go/domain/clicker"
	"github.com/blum-tools/clicker-go/keystate"
	"github.com/blum-tools/clicker-go/locale"
	"github.com/blum-tools/clicker-go/window"
)

// App assembles the clicker from its collaborators: configuration, message
// catalog, key-state listener, window/capture adapters and the pointer
// driver.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Msgs    *locale.Messages
	Keys    *keystate.Listener
	Clicker *clicker.Clicker
}

// New wires all components. Side effects are limited to parsing the
// embedded message catalogs.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	msgs, err := locale.New(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{Config: cfg, Logger: logger, Msgs: msgs}
	a.Keys = keystate.NewListener(logger)

	// The window handle is located once; its rectangle is re-resolved every
	// tick because the window may move or resize.
	var handle window.Handle
	a.Clicker = clicker.New(cfg, logger, msgs, clicker.Deps{
		FindWindow: func() (string, error) {
			h, err := window.Find(cfg.WindowTitle)
			if err != nil {
				return "", err
			}
			handle = h
			return h.Title(), nil
		},
		WindowRect: func() (image.Rectangle, error) {
			return window.Rect(handle)
		},
		Capture: func(r image.Rectangle) (capture.Snapshot, error) {
			img, err := capture.GrabRect(r)
			if err != nil {
				return capture.Snapshot{}, err
			}
			return capture.NewSnapshot(img), nil
		},
		Keys: a.Keys,
		Actions: clicker.ActionCallbacks{
			MoveCursor: action.MoveCursor,
			ClickLeft:  action.ClickLeft,
		},
	})
	return a, nil
}

// Run starts the key listener and drives the loop until the target window
// disappears or a runtime failure occurs.
func (a *App) Run() error {
	if a.Config.Debug {
		debug.StartGoroutineLogger(5*time.Second, a.Logger)
		startPlatformDebug(a.Logger)
	}
	a.Keys.Start()
	defer a.Keys.Stop()
	return a.Clicker.Run()
}
