//go:build !windows

package app

import "log/slog"

// startPlatformDebug is a no-op where no RSS counter is wired.
func startPlatformDebug(*slog.Logger) {}
