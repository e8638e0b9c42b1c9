// Package config loads, normalizes, and validates logrelay configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours LOGRELAY_* environment overrides
// for the logging switches and the sink backend. The three facade switches
// keep the key names used by every process sharing the file
// (log-to-console, log-debug, machine-readable-stacktrace).
//
// Always obtain settings through this package so the facade and the sink
// receive canonical formats and clear validation errors.
package config
