package main

import (
	"io"

	"github.com/fatih/color"
)

// cliLogger implements svgcomp.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func newCLILogger(w io.Writer) *cliLogger {
	return &cliLogger{w: w}
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgCyan).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
