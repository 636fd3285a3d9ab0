//go:build windows

package app

import (
	"log/slog"
	"time"

	"github.com/blum-tools/clicker-go/debug"
)

// startPlatformDebug wires the RSS logger, which needs psapi.
func startPlatformDebug(logger *slog.Logger) {
	debug.StartMemLogger(5*time.Second, logger)
}
