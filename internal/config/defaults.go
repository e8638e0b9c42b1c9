package config

const (
	defaultConfigPath = "~/.config/logrelay/config.toml"
	projectConfigName = "logrelay.toml"
	defaultColor      = ColorAuto
	defaultSinkFormat = "console"
	defaultSinkLevel  = "debug"
	defaultSinkOutput = "stderr"
)

// Color modes for console echo.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults. All three
// facade switches start off.
func Default() Config {
	return Config{
		Color: defaultColor,
		Sink: Sink{
			Format:        defaultSinkFormat,
			Level:         defaultSinkLevel,
			Output:        defaultSinkOutput,
			ChannelLevels: map[string]string{},
		},
	}
}
