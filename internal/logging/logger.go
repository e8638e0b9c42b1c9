package logging

// Role selects the console presentation of a logger.
type Role int

const (
	// RoleOther is a worker or any process other than the main one.
	RoleOther Role = iota
	// RoleMain is the orchestrating main process.
	RoleMain
)

func (r Role) String() string {
	if r == RoleMain {
		return "main"
	}
	return "other"
}

// Identity names the source of a record.
type Identity struct {
	Channel string
	Role    Role
}

// Logger is a per-channel handle with one method per level. Arguments are
// opaque and forwarded verbatim to the sink and the console.
type Logger struct {
	facade   *Facade
	identity Identity
	renderer ConsoleRenderer
}

// Identity returns the channel and role of the logger.
func (l *Logger) Identity() Identity { return l.identity }

// Debug logs at DEBUG. It does nothing unless log-debug is on.
func (l *Logger) Debug(args ...any) error {
	if !l.facade.currentFlags().LogDebug {
		return nil
	}
	return l.facade.dispatch(l, RankDebug, nil, args)
}

// Info logs at INFO without a stack trace.
func (l *Logger) Info(args ...any) error {
	return l.facade.dispatch(l, RankInfo, nil, args)
}

// Warn logs at WARNING with the caller's stack trace.
func (l *Logger) Warn(args ...any) error {
	return l.facade.dispatch(l, RankWarning, captureStack(l.machineStacks()), args)
}

// Error logs at ERROR with the caller's stack trace.
func (l *Logger) Error(args ...any) error {
	return l.facade.dispatch(l, RankError, captureStack(l.machineStacks()), args)
}

// Critical logs at CRITICAL with the caller's stack trace.
func (l *Logger) Critical(args ...any) error {
	return l.facade.dispatch(l, RankCritical, captureStack(l.machineStacks()), args)
}

func (l *Logger) machineStacks() bool {
	return l.facade.currentFlags().MachineReadableStacktrace
}
