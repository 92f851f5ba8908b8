// Package clog wraps the standard logger with the color/TTY-detection
// convention of this repository's logging: color output when stderr is a
// terminal, plain text otherwise. CAMUS's own main.go logs straight through
// the standard library logger (log.SetFlags, log.Printf, log.Fatalf); this
// package keeps that same call shape (Printf/Fatalf, timestamp+microsecond
// flags) and layers colorized level prefixes on top via fatih/color,
// routed through mattn/go-colorable so ANSI codes degrade correctly on
// Windows consoles, gated by mattn/go-isatty so redirected output
// (CI logs, files) stays plain.
package clog

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var (
	infoPrefix  = color.New(color.FgCyan, color.Bold).SprintFunc()
	warnPrefix  = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Logger is a leveled logger over a single *log.Logger destination.
type Logger struct {
	out   io.Writer
	std   *log.Logger
	color bool
}

// New builds a Logger writing to stderr, colorized iff stderr is a
// terminal.
func New() *Logger {
	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	out := io.Writer(os.Stderr)
	if isTerminal {
		out = colorable.NewColorableStderr()
	}
	return &Logger{
		out:   out,
		std:   log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		color: isTerminal,
	}
}

func (l *Logger) prefix(colorFn func(a ...interface{}) string, plain string) string {
	if l.color {
		return colorFn(plain)
	}
	return plain
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.std.Printf("%s %s", l.prefix(infoPrefix, "[INFO]"), fmt.Sprintf(format, args...))
}

// Warnf logs a warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.std.Printf("%s %s", l.prefix(warnPrefix, "[WARN]"), fmt.Sprintf(format, args...))
}

// Fatalf logs an error and exits with status 1, mirroring CAMUS's
// `log.Fatalf("%s %s\n", ErrMessage, err)` convention.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.std.Printf("%s %s", l.prefix(errorPrefix, "[ERROR]"), fmt.Sprintf(format, args...))
	os.Exit(1)
}
