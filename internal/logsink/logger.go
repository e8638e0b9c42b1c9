package logsink

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"logrelay/internal/config"
)

// LevelCritical sits above slog.LevelError for CRITICAL records.
const LevelCritical = slog.Level(12)

// Options describes sink logger construction parameters.
type Options struct {
	Level  string
	Format string
	Output string
	// SessionID is stamped on every record together with the pid. Empty
	// disables stamping.
	SessionID string
	// Writer overrides Output when set.
	Writer io.Writer
}

// New constructs the slog logger that backs the sink.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	writer := opts.Writer
	if writer == nil {
		var err error
		writer, err = openOutput(opts.Output)
		if err != nil {
			return nil, err
		}
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(writer, levelVar)
	case "console":
		handler = newPrettyHandler(writer, levelVar)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if opts.SessionID != "" {
		handler = newProcessHandler(handler, opts.SessionID)
	}
	return slog.New(handler), nil
}

// NewFromConfig builds a Sink from the [sink] section of cfg with a fresh
// session id. A non-nil w replaces the configured output stream.
func NewFromConfig(cfg *config.Config, w io.Writer) (*Sink, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	logger, err := New(Options{
		Level:     cfg.Sink.Level,
		Format:    cfg.Sink.Format,
		Output:    cfg.Sink.Output,
		SessionID: uuid.NewString(),
		Writer:    w,
	})
	if err != nil {
		return nil, err
	}
	overrides := make(map[string]slog.Level, len(cfg.Sink.ChannelLevels))
	for channel, level := range cfg.Sink.ChannelLevels {
		overrides[channel] = parseLevel(level)
	}
	return NewSink(logger, overrides), nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical", "fatal":
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

// levelFromName maps facade level names onto slog levels.
func levelFromName(name string) slog.Level {
	switch name {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "CRITICAL":
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= LevelCritical:
		return "CRITICAL"
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func openOutput(output string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("log output: unsupported value %q", output)
	}
}
