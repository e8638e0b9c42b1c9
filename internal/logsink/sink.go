package logsink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"logrelay/internal/logging"
)

const (
	// FieldChannel is the structured key for the facade channel.
	FieldChannel = "channel"
	// FieldStacktrace holds a text stack trace.
	FieldStacktrace = "stacktrace"
	// FieldStack holds structured stack frames.
	FieldStack = "stack"
)

// Sink writes facade records through a slog logger. Channels listed in the
// override map get their own minimum level.
type Sink struct {
	base      *slog.Logger
	overrides map[string]slog.Level

	mu       sync.Mutex
	channels map[string]*slog.Logger
}

// NewSink wraps base. A nil base discards everything.
func NewSink(base *slog.Logger, overrides map[string]slog.Level) *Sink {
	if base == nil {
		base = NewNop()
	}
	cp := make(map[string]slog.Level, len(overrides))
	for channel, level := range overrides {
		cp[channel] = level
	}
	return &Sink{base: base, overrides: cp, channels: make(map[string]*slog.Logger)}
}

// Func adapts the sink to the facade's handler contract.
func (s *Sink) Func() logging.Sink {
	return s.Handle
}

// Handle records one facade call. slog.Attr arguments become attributes; all
// other arguments are joined with spaces into the message.
func (s *Sink) Handle(channel, level string, stack *logging.StackTrace, args ...any) error {
	ctx := context.Background()
	lvl := levelFromName(level)
	logger := s.channelLogger(channel)
	if !logger.Enabled(ctx, lvl) {
		return nil
	}

	var attrs []slog.Attr
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if attr, ok := arg.(slog.Attr); ok {
			attrs = append(attrs, attr)
			continue
		}
		parts = append(parts, fmt.Sprint(arg))
	}
	switch {
	case stack.MachineReadable():
		attrs = append(attrs, slog.Any(FieldStack, stack.Frames))
	case stack != nil:
		attrs = append(attrs, slog.String(FieldStacktrace, stack.String()))
	}

	record := slog.NewRecord(time.Now(), lvl, strings.Join(parts, " "), 0)
	record.AddAttrs(attrs...)
	return logger.Handler().Handle(ctx, record)
}

func (s *Sink) channelLogger(channel string) *slog.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if logger, ok := s.channels[channel]; ok {
		return logger
	}
	handler := newChannelHandler(s.base.Handler(), channel)
	if level, ok := s.overrides[channel]; ok {
		handler = handler.withMinimum(level)
	}
	logger := slog.New(handler)
	s.channels[channel] = logger
	return logger
}
