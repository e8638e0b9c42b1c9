package logging

import "sync/atomic"

var defaultFacade atomic.Pointer[Facade]

func init() {
	defaultFacade.Store(NewFacade(Options{}))
}

// Default returns the process-wide facade.
func Default() *Facade { return defaultFacade.Load() }

// SetDefault replaces the process-wide facade. Loggers obtained earlier keep
// the facade they were created from.
func SetDefault(f *Facade) {
	if f == nil {
		return
	}
	defaultFacade.Store(f)
}

// SetLogHandler registers sink on the default facade.
func SetLogHandler(sink Sink) { Default().SetLogHandler(sink) }

// GetLogger returns a logger bound to the default facade.
func GetLogger(channel string, role Role) *Logger { return Default().GetLogger(channel, role) }
