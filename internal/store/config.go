package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "dude.yaml"

type Config struct {
	DataFile string `yaml:"data_file"`
	LogLevel string `yaml:"log_level"` // debug|info|warn|error
}

func DefaultConfig() Config {
	return Config{
		DataFile: DefaultDataFile,
		LogLevel: "warn",
	}
}

// LoadConfig reads path, filling unset keys from DefaultConfig. A missing
// file is not an error; a file that does not parse is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(expandHome(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	var loaded Config
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if strings.TrimSpace(loaded.DataFile) != "" {
		cfg.DataFile = strings.TrimSpace(loaded.DataFile)
	}
	if strings.TrimSpace(loaded.LogLevel) != "" {
		if _, ok := parseLevel(loaded.LogLevel); !ok {
			return cfg, fmt.Errorf("config %s: unknown log_level %q", path, loaded.LogLevel)
		}
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(loaded.LogLevel))
	}
	return cfg, nil
}

// Level maps LogLevel onto slog, defaulting to warn.
func (c Config) Level() slog.Level {
	if lvl, ok := parseLevel(c.LogLevel); ok {
		return lvl
	}
	return slog.LevelWarn
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
