package config

import (
	"fmt"
	"sort"
)

var validSinkLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warning": {}, "warn": {}, "error": {}, "critical": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateColor(); err != nil {
		return err
	}
	if err := c.validateSink(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateColor() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", c.Color)
	}
}

func (c *Config) validateSink() error {
	switch c.Sink.Format {
	case "console", "json":
	default:
		return fmt.Errorf("sink.format must be console or json (got %q)", c.Sink.Format)
	}
	switch c.Sink.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("sink.output must be stdout or stderr (got %q)", c.Sink.Output)
	}
	if _, ok := validSinkLevels[c.Sink.Level]; !ok {
		return fmt.Errorf("sink.level: unsupported value %q", c.Sink.Level)
	}

	channels := make([]string, 0, len(c.Sink.ChannelLevels))
	for channel := range c.Sink.ChannelLevels {
		channels = append(channels, channel)
	}
	sort.Strings(channels)
	for _, channel := range channels {
		if _, ok := validSinkLevels[c.Sink.ChannelLevels[channel]]; !ok {
			return fmt.Errorf("sink.channel_levels.%s: unsupported value %q", channel, c.Sink.ChannelLevels[channel])
		}
	}
	return nil
}
