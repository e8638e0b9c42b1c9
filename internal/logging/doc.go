// Package logging is the leveled logging facade shared by the main process and
// its worker processes.
//
// Every component obtains a Logger for its channel and calls one method per
// level. Each call is forwarded to the process-wide Sink registered with
// SetLogHandler and, when the log-to-console flag is on, echoed to the
// operator console. Main-process loggers print a compact single line with the
// elapsed time and a coloured badge; worker loggers go through rank-mapped
// console sinks with an emoji prefix.
//
// Warnings and above carry a stack trace of the logging call site, rendered as
// text or kept as structured frames depending on the
// machine-readable-stacktrace flag.
//
// Logging before a sink is registered is a startup-ordering bug and returns
// ErrHandlerNotInitialized.
package logging
