package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override the file.
const (
	EnvLogToConsole              = "LOGRELAY_LOG_TO_CONSOLE"
	EnvLogDebug                  = "LOGRELAY_LOG_DEBUG"
	EnvMachineReadableStacktrace = "LOGRELAY_MACHINE_READABLE_STACKTRACE"
	EnvSinkFormat                = "LOGRELAY_SINK_FORMAT"
	EnvSinkLevel                 = "LOGRELAY_SINK_LEVEL"
)

func (c *Config) normalize() error {
	if err := c.normalizeFlags(); err != nil {
		return err
	}
	c.normalizeColor()
	c.normalizeSink()
	return nil
}

func (c *Config) normalizeFlags() error {
	overrides := []struct {
		env    string
		target *bool
	}{
		{EnvLogToConsole, &c.LogToConsole},
		{EnvLogDebug, &c.LogDebug},
		{EnvMachineReadableStacktrace, &c.MachineReadableStacktrace},
	}
	for _, o := range overrides {
		value, ok := os.LookupEnv(o.env)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", o.env, err)
		}
		*o.target = parsed
	}
	return nil
}

func (c *Config) normalizeColor() {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = defaultColor
	}
}

func (c *Config) normalizeSink() {
	if value, ok := os.LookupEnv(EnvSinkFormat); ok && strings.TrimSpace(value) != "" {
		c.Sink.Format = value
	}
	if value, ok := os.LookupEnv(EnvSinkLevel); ok && strings.TrimSpace(value) != "" {
		c.Sink.Level = value
	}

	c.Sink.Format = strings.ToLower(strings.TrimSpace(c.Sink.Format))
	if c.Sink.Format == "" {
		c.Sink.Format = defaultSinkFormat
	}
	c.Sink.Level = strings.ToLower(strings.TrimSpace(c.Sink.Level))
	if c.Sink.Level == "" {
		c.Sink.Level = defaultSinkLevel
	}
	c.Sink.Output = strings.ToLower(strings.TrimSpace(c.Sink.Output))
	if c.Sink.Output == "" {
		c.Sink.Output = defaultSinkOutput
	}

	if len(c.Sink.ChannelLevels) == 0 {
		c.Sink.ChannelLevels = map[string]string{}
		return
	}
	normalized := make(map[string]string, len(c.Sink.ChannelLevels))
	for channel, level := range c.Sink.ChannelLevels {
		channel = strings.TrimSpace(channel)
		if channel == "" {
			continue
		}
		normalized[channel] = strings.ToLower(strings.TrimSpace(level))
	}
	c.Sink.ChannelLevels = normalized
}
