package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"logrelay/internal/config"
	"logrelay/internal/logging"
	"logrelay/internal/logsink"
)

type emitOptions struct {
	channel  string
	level    string
	mainRole bool
	attrs    []string
	noSink   bool

	console bool
	debug   bool
	machine bool
}

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var opts emitOptions

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Send one record through the logging facade",
		Long: "Send one record through the logging facade.\n\n" +
			"The record goes to the configured sink and, when log-to-console is on,\n" +
			"is echoed in the main-process or worker format depending on --main.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			settings := applyFlagOverrides(cmd, *cfg, opts)

			level, err := parseLevelName(opts.level)
			if err != nil {
				return err
			}
			values, err := recordArgs(args, opts.attrs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			facade := logging.NewFacade(logging.Options{
				Flags:       &settings,
				Console:     out,
				WorkerSinks: logging.DefaultWorkerSinks(cmd.ErrOrStderr()),
				Colorize:    colorEnabled(settings.Color, out),
			})
			logging.SetDefault(facade)

			if !opts.noSink {
				sink, err := logsink.NewFromConfig(&settings, sinkWriter(cmd, settings.Sink.Output))
				if err != nil {
					return fmt.Errorf("build sink: %w", err)
				}
				logging.SetLogHandler(sink.Func())
			}

			role := logging.RoleOther
			if opts.mainRole {
				role = logging.RoleMain
			}
			return emitAt(logging.GetLogger(opts.channel, role), level.Rank, values...)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.channel, "channel", "cli", "Channel name attached to the record")
	flags.StringVarP(&opts.level, "level", "l", "info", "Level name (debug, info, warning, error, critical)")
	flags.BoolVar(&opts.mainRole, "main", false, "Render console echo in the main-process format")
	flags.StringArrayVar(&opts.attrs, "attr", nil, "Structured attribute as key=value (repeatable)")
	flags.BoolVar(&opts.noSink, "no-sink", false, "Emit without registering a sink")
	flags.BoolVar(&opts.console, "console", false, "Override log-to-console")
	flags.BoolVar(&opts.debug, "debug", false, "Override log-debug")
	flags.BoolVar(&opts.machine, "machine-stacktrace", false, "Override machine-readable-stacktrace")
	return cmd
}

func applyFlagOverrides(cmd *cobra.Command, cfg config.Config, opts emitOptions) config.Config {
	flags := cmd.Flags()
	if flags.Changed("console") {
		cfg.LogToConsole = opts.console
	}
	if flags.Changed("debug") {
		cfg.LogDebug = opts.debug
	}
	if flags.Changed("machine-stacktrace") {
		cfg.MachineReadableStacktrace = opts.machine
	}
	return cfg
}

func parseLevelName(name string) (logging.Level, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "warn") {
		name = "warning"
	}
	for _, level := range logging.Levels() {
		if strings.EqualFold(level.Name, name) {
			return level, nil
		}
	}
	return logging.Level{}, fmt.Errorf("unknown level %q", name)
}

func recordArgs(words, attrs []string) ([]any, error) {
	values := make([]any, 0, len(words)+len(attrs))
	for _, word := range words {
		values = append(values, word)
	}
	for _, raw := range attrs {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("attribute %q must be key=value", raw)
		}
		values = append(values, slog.String(key, value))
	}
	return values, nil
}

func sinkWriter(cmd *cobra.Command, output string) io.Writer {
	if output == "stdout" {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}

func emitAt(logger *logging.Logger, rank logging.Rank, args ...any) error {
	switch rank {
	case logging.RankDebug:
		return logger.Debug(args...)
	case logging.RankInfo:
		return logger.Info(args...)
	case logging.RankWarning:
		return logger.Warn(args...)
	case logging.RankError:
		return logger.Error(args...)
	default:
		return logger.Critical(args...)
	}
}
