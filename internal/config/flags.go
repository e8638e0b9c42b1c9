package config

import "logrelay/internal/logging"

// LogFlags exposes the facade switches. Config is read-only from the
// facade's side, so a loaded *Config can be passed directly as a
// logging.FlagSource.
func (c *Config) LogFlags() logging.Flags {
	if c == nil {
		return logging.Flags{}
	}
	return logging.Flags{
		LogToConsole:              c.LogToConsole,
		LogDebug:                  c.LogDebug,
		MachineReadableStacktrace: c.MachineReadableStacktrace,
	}
}
