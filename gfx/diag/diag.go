// Package diag is the diagnostics context shared by the renderer and its host.
//
// A Context bundles a structured logger (log/slog), an optional line sink such
// as the HAL logger, and a set of named instrumentation counters. Everything is
// optional: a nil *Context accepts every call and does nothing, so rendering
// never depends on diagnostics being configured.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// Color tags a diagnostic line.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
)

var colorNames = [...]string{"none", "red", "green", "yellow", "blue"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (c Color) sgr() string {
	switch c {
	case ColorRed:
		return "\x1b[31m"
	case ColorGreen:
		return "\x1b[32m"
	case ColorYellow:
		return "\x1b[33m"
	case ColorBlue:
		return "\x1b[34m"
	default:
		return ""
	}
}

// LineWriter receives plain text lines. hal.Logger satisfies it.
type LineWriter interface {
	WriteLineString(s string)
}

// Options configures a Context.
type Options struct {
	// Level is the minimum slog level. Zero is Info.
	Level slog.Level
	// Writer receives slog records. Nil discards them.
	Writer io.Writer
	// Sink receives colored lines written with Line. Nil drops them.
	Sink LineWriter
	// Color enables ANSI escapes on Sink lines.
	Color bool
}

// Context is the diagnostics facility.
type Context struct {
	log   *slog.Logger
	sink  LineWriter
	color bool

	mu       sync.Mutex
	counters map[string]int
}

// New returns a Context configured by opts.
func New(opts Options) *Context {
	w := opts.Writer
	if w == nil {
		w = io.Discard
	}
	return &Context{
		log:      slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level})),
		sink:     opts.Sink,
		color:    opts.Color,
		counters: make(map[string]int),
	}
}

// ForStderr logs to stderr and enables color when stderr is a terminal.
func ForStderr(level slog.Level, sink LineWriter) *Context {
	return New(Options{
		Level:  level,
		Writer: os.Stderr,
		Sink:   sink,
		Color:  term.IsTerminal(int(os.Stderr.Fd())),
	})
}

var process atomic.Pointer[Context]

// Init installs c as the process-wide context and returns it.
func Init(c *Context) *Context {
	process.Store(c)
	return c
}

// Default returns the process-wide context, or nil before Init.
func Default() *Context { return process.Load() }

// Logger returns the underlying slog logger. A nil Context returns a logger
// that discards everything.
func (c *Context) Logger() *slog.Logger {
	if c == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.log
}

func (c *Context) Debug(msg string, args ...any) { c.emit(slog.LevelDebug, msg, args) }
func (c *Context) Info(msg string, args ...any)  { c.emit(slog.LevelInfo, msg, args) }
func (c *Context) Warn(msg string, args ...any)  { c.emit(slog.LevelWarn, msg, args) }
func (c *Context) Error(msg string, args ...any) { c.emit(slog.LevelError, msg, args) }

func (c *Context) emit(level slog.Level, msg string, args []any) {
	if c == nil {
		return
	}
	c.log.Log(context.Background(), level, msg, args...)
}

// Enabled reports whether records at level would be written.
func (c *Context) Enabled(level slog.Level) bool {
	if c == nil {
		return false
	}
	return c.log.Enabled(context.Background(), level)
}

// Line writes a colored text line to the sink and a debug record to the log.
func (c *Context) Line(col Color, text string) {
	if c == nil {
		return
	}
	c.log.Debug(text, "color", col.String())
	if c.sink == nil {
		return
	}
	if c.color && col != ColorNone {
		c.sink.WriteLineString(col.sgr() + text + "\x1b[0m")
		return
	}
	c.sink.WriteLineString(text)
}

// Dump logs values at debug level, one attribute per value.
// Formatting only happens when debug records are enabled.
func (c *Context) Dump(msg string, values ...any) {
	if !c.Enabled(slog.LevelDebug) {
		return
	}
	attrs := make([]any, 0, len(values))
	for i, v := range values {
		attrs = append(attrs, slog.String(fmt.Sprintf("v%d", i), fmt.Sprintf("%+v", v)))
	}
	c.log.Debug(msg, attrs...)
}

// Count increments the named counter and returns its new value.
func (c *Context) Count(name string) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[name]++
	return c.counters[name]
}

// Counter returns the current value of the named counter.
func (c *Context) Counter(name string) int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[name]
}

// Counters formats every counter as "name=value" sorted by name.
func (c *Context) Counters() string {
	if c == nil {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.counters))
	for k := range c.counters {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, k := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", k, c.counters[k]))
	}
	return strings.Join(parts, " ")
}
