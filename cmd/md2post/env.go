package main

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// defaultWidth is the preview width when the terminal size is unknown.
const defaultWidth = 80

// Environment holds injectable dependencies for testability.
// Includes I/O and terminal probing.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdoutIsTerminal reports whether Stdout is an interactive terminal.
	StdoutIsTerminal func() bool
	// TerminalWidth returns the column count used to wrap previews.
	TerminalWidth func() int
}

// DefaultEnv returns the production environment bound to the process streams.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		StdoutIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		TerminalWidth: func() int {
			return terminalWidth(defaultWidth)
		},
	}
}

// terminalWidth returns the stdout terminal width, then $COLUMNS, then fallback.
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
