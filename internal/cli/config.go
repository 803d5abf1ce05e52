package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config the configuration file of the CLI
type Config struct {
	Driver string       `yaml:"driver"`
	DSN    string       `yaml:"dsn"`
	Logger LoggerConfig `yaml:"logger"`
}

// LoggerConfig selects and configures the logger statements are traced to
type LoggerConfig struct {
	Backend       string        `yaml:"backend"`
	Level         string        `yaml:"level"`
	Colorful      bool          `yaml:"colorful"`
	SlowThreshold time.Duration `yaml:"slow_threshold"`
	Parameterized bool          `yaml:"parameterized"`
}

// DefaultConfig a sqlite database in the working directory, warnings only
func DefaultConfig() Config {
	return Config{
		Driver: "sqlite",
		DSN:    "orm.db",
		Logger: LoggerConfig{
			Backend:       "default",
			Level:         "warn",
			SlowThreshold: 200 * time.Millisecond,
		},
	}
}

// LoadConfig reads path over the defaults, a missing file is not an error
// unless required is set
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
