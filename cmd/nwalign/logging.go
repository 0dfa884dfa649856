// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger returns a text slog.Logger on w at the named level.
// Unknown names fall back to warn; the config validator rejects them earlier.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
