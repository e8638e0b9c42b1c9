// Package main hosts the logrelay CLI.
//
// The command tree loads configuration once, wires the slog-backed sink into
// a logging facade and emits records through it, so the whole dispatch path
// (stack capture, sink, console echo) can be driven from a shell. It also
// prints the level table and scaffolds configuration files.
package main
