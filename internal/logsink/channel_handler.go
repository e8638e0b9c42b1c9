package logsink

import (
	"context"
	"log/slog"
)

// channelHandler scopes the backend to one facade channel. It stamps the
// channel on every record and, when the channel has an override, drops
// records below that minimum before they reach the shared handler.
type channelHandler struct {
	next    slog.Handler
	channel string
	min     slog.Level
	limited bool
}

func newChannelHandler(next slog.Handler, channel string) *channelHandler {
	return &channelHandler{next: next.WithAttrs([]slog.Attr{slog.String(FieldChannel, channel)}), channel: channel}
}

// withMinimum returns a copy that filters records below level.
func (h *channelHandler) withMinimum(level slog.Level) *channelHandler {
	clone := *h
	clone.min = level
	clone.limited = true
	return &clone
}

func (h *channelHandler) admits(level slog.Level) bool {
	return !h.limited || level >= h.min
}

func (h *channelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.admits(level) && h.next.Enabled(ctx, level)
}

func (h *channelHandler) Handle(ctx context.Context, record slog.Record) error {
	if !h.admits(record.Level) {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *channelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.next = h.next.WithAttrs(attrs)
	return &clone
}

func (h *channelHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.next = h.next.WithGroup(name)
	return &clone
}
