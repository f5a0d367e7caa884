// Package logging provides a small leveled logger with optional ANSI colors.
// It is safe for concurrent use; pipeline workers log completion lines from
// multiple goroutines.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// palette holds the ANSI color codes for one Logger. The zero value renders
// plain text.
type palette struct {
	red    string
	green  string
	yellow string
	blue   string
	cyan   string
	reset  string
}

var colorPalette = palette{
	red:    "\033[1;91m",
	green:  "\033[1;92m",
	yellow: "\033[1;93m",
	blue:   "\033[1;94m",
	cyan:   "\033[1;96m",
	reset:  "\033[0m",
}

// Logger writes timestamped, leveled lines to stdout (errors to stderr).
// Color state is per instance, so loggers with different settings can
// coexist.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	pal     palette
	verbose bool
}

// New creates a Logger. Colors are enabled only when noColor is false, stdout
// is a terminal, NO_COLOR is unset, and TERM is not dumb.
func New(verbose, noColor bool) *Logger {
	l := &Logger{out: os.Stdout, errOut: os.Stderr, verbose: verbose}

	enable := !noColor &&
		isTerminal(os.Stdout) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
	if enable {
		l.pal = colorPalette
	}
	return l
}

// NewWithOutput creates a Logger writing to the given destinations with
// colors disabled. Used by tests and by callers that capture log output.
func NewWithOutput(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{out: out, errOut: errOut, verbose: verbose}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (l *Logger) line(w io.Writer, level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	if color != "" {
		_, _ = io.WriteString(w, ts+" "+color+"["+level+"]"+l.pal.reset+" "+text+"\n")
	} else {
		_, _ = io.WriteString(w, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, "INFO", l.pal.blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(l.out, "SUCCESS", l.pal.green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, "WARN", l.pal.yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.errOut, "ERROR", l.pal.red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose mode is on.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(l.out, "DEBUG", l.pal.cyan, fmt.Sprintf(format, args...))
}
