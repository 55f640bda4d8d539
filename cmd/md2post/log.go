package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Verbose enables debug records;
// quiet keeps warnings and errors only.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printfLogger adapts logger to the printf-style callbacks used by automaxprocs.
func printfLogger(logger *slog.Logger) func(string, ...any) {
	return func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}
