package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/blum-tools/clicker-go/app"
	"github.com/blum-tools/clicker-go/config"
	"github.com/blum-tools/clicker-go/domain/clicker"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON configuration file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and diagnostics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// Broken config files fall back to defaults but are worth a notice.
		NewLogger(slog.LevelInfo).Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	cfg.ApplyEnv()
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		if clicker.IsWindowLost(err) {
			// Recoverable absence: the operator restarts when ready.
			os.Exit(0)
		}
		os.Exit(1)
	}
}
