package logsink

import (
	"context"
	"log/slog"
	"os"
)

const (
	// FieldSessionID identifies one process run across all of its records.
	FieldSessionID = "session_id"
	// FieldPID is the emitting process id. Main and worker processes may
	// share one output stream, so records carry it to tell them apart.
	FieldPID = "pid"
)

// processHandler stamps session_id and pid on every record at Handle time so
// they trail the record's own attributes.
type processHandler struct {
	base      slog.Handler
	sessionID string
	pid       int
}

func newProcessHandler(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &processHandler{base: base, sessionID: sessionID, pid: os.Getpid()}
}

func (h *processHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *processHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String(FieldSessionID, h.sessionID), slog.Int(FieldPID, h.pid))
	return h.base.Handle(ctx, record)
}

func (h *processHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &processHandler{base: h.base.WithAttrs(attrs), sessionID: h.sessionID, pid: h.pid}
}

func (h *processHandler) WithGroup(name string) slog.Handler {
	return &processHandler{base: h.base.WithGroup(name), sessionID: h.sessionID, pid: h.pid}
}
