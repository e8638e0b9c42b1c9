// Package logsink is the slog-backed sink registered with the logging facade.
//
// It turns each facade record (channel, level name, optional stack trace and
// the raw arguments) into a slog record and writes it through a console or
// JSON handler. Every record carries the process session id and pid, and
// channels can be given their own minimum level.
//
// Use NewFromConfig in binaries and New with an explicit Options value in
// tests.
package logsink
