package logging

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

type sinkCall struct {
	channel string
	level   string
	stack   *StackTrace
	args    []any
}

type recordingSink struct {
	mu    sync.Mutex
	calls []sinkCall
	err   error
}

func (r *recordingSink) Sink() Sink {
	return func(channel, level string, stack *StackTrace, args ...any) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, sinkCall{channel: channel, level: level, stack: stack, args: args})
		return r.err
	}
}

func (r *recordingSink) Calls() []sinkCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sinkCall(nil), r.calls...)
}

type mutableFlags struct {
	mu    sync.Mutex
	flags Flags
}

func (m *mutableFlags) LogFlags() Flags {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags
}

func (m *mutableFlags) set(f Flags) {
	m.mu.Lock()
	m.flags = f
	m.mu.Unlock()
}

func newTestFacade(flags FlagSource, console *bytes.Buffer) *Facade {
	return NewFacade(Options{
		Flags:       flags,
		Console:     console,
		WorkerSinks: discardWorkerSinks(),
	})
}

func discardWorkerSinks() map[Rank]ConsoleFunc {
	noop := func(any, ...any) {}
	return map[Rank]ConsoleFunc{
		RankDebug: noop, RankInfo: noop, RankWarning: noop, RankError: noop, RankCritical: noop,
	}
}

func TestLoggingBeforeHandlerFails(t *testing.T) {
	var console bytes.Buffer
	f := newTestFacade(Flags{LogDebug: true}, &console)
	logger := f.GetLogger("net", RoleMain)

	calls := map[string]func(...any) error{
		"debug":    logger.Debug,
		"info":     logger.Info,
		"warn":     logger.Warn,
		"error":    logger.Error,
		"critical": logger.Critical,
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			console.Reset()
			err := call("hello", 42)
			if !errors.Is(err, ErrHandlerNotInitialized) {
				t.Fatalf("expected ErrHandlerNotInitialized, got %v", err)
			}

			lines := strings.Split(strings.TrimRight(console.String(), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("expected two diagnostic lines, got %q", console.String())
			}
			if lines[0] != "Failed to log message - handler not initialized yet" {
				t.Errorf("unexpected first line %q", lines[0])
			}
			if !strings.HasPrefix(lines[1], "Log message: net ") || !strings.HasSuffix(lines[1], "hello 42") {
				t.Errorf("unexpected second line %q", lines[1])
			}
		})
	}
}

func TestDebugGating(t *testing.T) {
	var console bytes.Buffer
	flags := &mutableFlags{flags: Flags{LogToConsole: true}}
	f := newTestFacade(flags, &console)
	rec := &recordingSink{}
	f.SetLogHandler(rec.Sink())
	logger := f.GetLogger("db", RoleMain)

	mustLog(t, logger.Debug("x"))
	if len(rec.Calls()) != 0 || console.Len() != 0 {
		t.Fatalf("expected debug to be dropped, got %d calls and %q", len(rec.Calls()), console.String())
	}

	flags.set(Flags{LogToConsole: true, LogDebug: true})
	mustLog(t, logger.Debug("x"))
	calls := rec.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 sink call, got %d", len(calls))
	}
	if calls[0].level != "DEBUG" || calls[0].stack != nil {
		t.Errorf("unexpected debug call %+v", calls[0])
	}
	if !strings.Contains(console.String(), "[D]db: x") {
		t.Errorf("expected console echo, got %q", console.String())
	}
}

func TestStacktracePresenceByLevel(t *testing.T) {
	var console bytes.Buffer
	f := newTestFacade(Flags{LogDebug: true}, &console)
	rec := &recordingSink{}
	f.SetLogHandler(rec.Sink())
	logger := f.GetLogger("core", RoleOther)

	mustLog(t, logger.Debug("d"))
	mustLog(t, logger.Info("i"))
	mustLog(t, logger.Warn("w"))
	mustLog(t, logger.Error("e"))
	mustLog(t, logger.Critical("c"))

	calls := rec.Calls()
	if len(calls) != 5 {
		t.Fatalf("expected 5 sink calls, got %d", len(calls))
	}
	wantLevels := []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	for i, call := range calls {
		if call.level != wantLevels[i] || call.channel != "core" {
			t.Errorf("call %d = %s/%s", i, call.channel, call.level)
		}
		if withStack := call.stack != nil; withStack != (i > int(RankInfo)) {
			t.Errorf("level %s: stack present = %v", call.level, withStack)
		}
	}
	if console.Len() != 0 {
		t.Errorf("console echo is off, got %q", console.String())
	}
}

func TestWarnScenarioForwardsArgsVerbatim(t *testing.T) {
	var console bytes.Buffer
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFacade(Options{
		Flags:   Flags{LogToConsole: true},
		Console: &console,
		Start:   start,
		Now:     func() time.Time { return start.Add(12340 * time.Millisecond) },
	})
	rec := &recordingSink{}
	f.SetLogHandler(rec.Sink())

	mustLog(t, f.GetLogger("net", RoleMain).Warn("retrying", 3))

	calls := rec.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 sink call, got %d", len(calls))
	}
	call := calls[0]
	if call.channel != "net" || call.level != "WARNING" {
		t.Errorf("unexpected call %s/%s", call.channel, call.level)
	}
	if want := []any{"retrying", 3}; !reflect.DeepEqual(call.args, want) {
		t.Errorf("args = %#v, want %#v", call.args, want)
	}
	if call.stack == nil || call.stack.Text == "" {
		t.Fatalf("expected a text stack trace, got %+v", call.stack)
	}

	out := console.String()
	if !strings.HasPrefix(out, "12.3s [w]net: retrying 3 ") {
		t.Errorf("unexpected console line %q", out)
	}
	if !strings.Contains(out, "TestWarnScenarioForwardsArgsVerbatim") {
		t.Errorf("expected caller in console stack, got %q", out)
	}
}

func TestSinkErrorIsReturnedAndConsoleStillEchoes(t *testing.T) {
	var console bytes.Buffer
	f := newTestFacade(Flags{LogToConsole: true}, &console)
	diskFull := errors.New("disk full")
	f.SetLogHandler((&recordingSink{err: diskFull}).Sink())

	if err := f.GetLogger("store", RoleMain).Info("saved"); !errors.Is(err, diskFull) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if !strings.Contains(console.String(), "store: saved") {
		t.Fatalf("expected console echo, got %q", console.String())
	}
}

func TestSetLogHandlerReplacesSink(t *testing.T) {
	f := newTestFacade(nil, &bytes.Buffer{})
	first, second := &recordingSink{}, &recordingSink{}
	logger := f.GetLogger("ui", RoleOther)

	f.SetLogHandler(first.Sink())
	mustLog(t, logger.Info("one"))
	f.SetLogHandler(second.Sink())
	mustLog(t, logger.Info("two"))
	f.SetLogHandler(nil)
	mustLog(t, logger.Info("three"))

	if len(first.Calls()) != 1 || len(second.Calls()) != 2 {
		t.Fatalf("calls = %d/%d, want 1/2", len(first.Calls()), len(second.Calls()))
	}
	if !f.HandlerReady() {
		t.Fatal("expected handler to stay bound")
	}
}

func TestConcurrentRegistrationAndDispatch(t *testing.T) {
	f := newTestFacade(Flags{LogToConsole: true}, &bytes.Buffer{})
	rec := &recordingSink{}
	f.SetLogHandler(rec.Sink())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.SetLogHandler(rec.Sink())
		}()
		go func(n int) {
			defer wg.Done()
			_ = f.GetLogger("worker", Role(n%2)).Error("tick", n)
		}(i)
	}
	wg.Wait()

	if got := len(rec.Calls()); got != 8 {
		t.Fatalf("expected 8 sink calls, got %d", got)
	}
}

func TestDefaultFacadeFunctions(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var console bytes.Buffer
	SetDefault(newTestFacade(nil, &console))
	logger := GetLogger("boot", RoleMain)
	if err := logger.Info("early"); !errors.Is(err, ErrHandlerNotInitialized) {
		t.Fatalf("expected ErrHandlerNotInitialized, got %v", err)
	}

	rec := &recordingSink{}
	SetLogHandler(rec.Sink())
	mustLog(t, logger.Info("late"))
	if len(rec.Calls()) != 1 {
		t.Fatalf("expected 1 sink call, got %d", len(rec.Calls()))
	}

	console.Reset()
	PrintProcessLogLevelInfo()
	if !strings.Contains(console.String(), "CRITICAL") {
		t.Errorf("expected level table on the console, got %q", console.String())
	}

	SetDefault(nil)
	if Default() == nil {
		t.Fatal("SetDefault(nil) must keep the current facade")
	}
}
