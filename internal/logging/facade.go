package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-colorable"
)

// ErrHandlerNotInitialized is returned by every logging call made before a
// sink has been registered.
var ErrHandlerNotInitialized = errors.New("failed to log message - handler not initialized yet")

// Sink receives every finalized log record. stack is nil for DEBUG and INFO.
// Errors are returned to the caller of the logger method unchanged.
type Sink func(channel, level string, stack *StackTrace, args ...any) error

// Flags are the runtime switches consumed by the facade. An absent flag is
// false.
type Flags struct {
	LogToConsole              bool
	LogDebug                  bool
	MachineReadableStacktrace bool
}

// LogFlags lets a fixed Flags value act as its own source.
func (f Flags) LogFlags() Flags { return f }

// FlagSource supplies the current flags. It is read on every call and never
// written by this package.
type FlagSource interface {
	LogFlags() Flags
}

// Options configures a Facade.
type Options struct {
	// Flags defaults to all flags off.
	Flags FlagSource
	// Console is the operator console used for main-process echo and the
	// handler-not-ready diagnostics. Defaults to stdout.
	Console io.Writer
	// WorkerSinks are the rank-mapped console sinks used by worker loggers.
	// Missing ranks fall back to a charmbracelet logger on stderr.
	WorkerSinks map[Rank]ConsoleFunc
	// Colorize enables ANSI styling on both renderers.
	Colorize bool
	// Start is the process start used for elapsed time. Defaults to now.
	Start time.Time
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// Facade owns the handler slot and the console renderers for one process.
type Facade struct {
	sink  atomic.Pointer[Sink]
	flags FlagSource

	console io.Writer
	mu      sync.Mutex

	main   *MainConsoleRenderer
	worker *WorkerConsoleRenderer
}

// NewFacade constructs a facade with an empty handler slot.
func NewFacade(opts Options) *Facade {
	console := opts.Console
	if console == nil {
		console = colorable.NewColorableStdout()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	start := opts.Start
	if start.IsZero() {
		start = now()
	}

	f := &Facade{flags: opts.Flags, console: console}
	f.main = newMainConsoleRenderer(&lockedWriter{mu: &f.mu, w: console}, start, now, opts.Colorize)
	f.worker = newWorkerConsoleRenderer(opts.WorkerSinks, opts.Colorize)
	return f
}

// SetLogHandler replaces the sink for all subsequent calls. A nil sink is
// ignored; the slot is never unset once bound.
func (f *Facade) SetLogHandler(sink Sink) {
	if sink == nil {
		return
	}
	f.sink.Store(&sink)
}

// HandlerReady reports whether a sink has been registered.
func (f *Facade) HandlerReady() bool {
	return f.sink.Load() != nil
}

// GetLogger returns a handle for channel. It does not touch the handler slot.
func (f *Facade) GetLogger(channel string, role Role) *Logger {
	var renderer ConsoleRenderer = f.worker
	if role == RoleMain {
		renderer = f.main
	}
	return &Logger{
		facade:   f,
		identity: Identity{Channel: channel, Role: role},
		renderer: renderer,
	}
}

func (f *Facade) currentFlags() Flags {
	if f.flags == nil {
		return Flags{}
	}
	return f.flags.LogFlags()
}

// dispatch forwards one record to the sink and then, when enabled, to the
// console. The console echo runs even when the sink returns an error.
func (f *Facade) dispatch(l *Logger, rank Rank, stack *StackTrace, args []any) error {
	level, err := LevelAt(rank)
	if err != nil {
		return err
	}

	sink := f.sink.Load()
	if sink == nil {
		f.writeNotReady(l.identity.Channel, rank, args)
		return fmt.Errorf("%w (channel %q)", ErrHandlerNotInitialized, l.identity.Channel)
	}

	sinkErr := (*sink)(l.identity.Channel, level.Name, stack, args...)

	if f.currentFlags().LogToConsole {
		l.renderer.Render(l.identity, level, stack, args)
	}
	return sinkErr
}

func (f *Facade) writeNotReady(channel string, rank Rank, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintln(f.console, "Failed to log message - handler not initialized yet")
	fmt.Fprintf(f.console, "Log message: %s %d %s\n", channel, int(rank), joinArgs(args))
}

func joinArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, " ")
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
