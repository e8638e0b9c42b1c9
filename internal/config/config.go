package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Sink configures the slog-backed sink that receives every log record.
type Sink struct {
	Format        string            `toml:"format"`
	Level         string            `toml:"level"`
	Output        string            `toml:"output"`
	ChannelLevels map[string]string `toml:"channel_levels"`
}

// Config encapsulates all configuration values for logrelay.
//
// The three top-level switches keep the names used by the processes that
// share this file. They are read by the logging facade and never written by
// it:
//   - log-to-console: echo every record to the operator console
//   - log-debug: emit DEBUG records at all
//   - machine-readable-stacktrace: keep stack traces as structured frames
type Config struct {
	LogToConsole              bool   `toml:"log-to-console"`
	LogDebug                  bool   `toml:"log-debug"`
	MachineReadableStacktrace bool   `toml:"machine-readable-stacktrace"`
	Color                     string `toml:"color"`
	Sink                      Sink   `toml:"sink"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. Unknown keys are
// rejected. Environment overrides are applied after the file is decoded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config %s: %s", path, strict.String())
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// searchPaths lists the locations tried, in order, when no path is given.
func searchPaths() ([]string, error) {
	user, err := expandPath(defaultConfigPath)
	if err != nil {
		return nil, err
	}
	project, err := filepath.Abs(projectConfigName)
	if err != nil {
		return nil, err
	}
	return []string{user, project}, nil
}

// resolveConfigPath returns the file Load should read and whether it exists.
// With nothing found it falls back to the user path so callers can report
// where a config would be created.
func resolveConfigPath(explicit string) (string, bool, error) {
	if explicit != "" {
		path, err := expandPath(explicit)
		if err != nil {
			return "", false, err
		}
		exists, err := isRegularFile(path)
		return path, exists, err
	}

	candidates, err := searchPaths()
	if err != nil {
		return "", false, err
	}
	for _, candidate := range candidates {
		if ok, _ := isRegularFile(candidate); ok {
			return candidate, true, nil
		}
	}
	return candidates[0], false, nil
}

func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat config: %w", err)
	}
	return !info.IsDir(), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the embedded sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
