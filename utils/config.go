package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the optional file-based settings for a bootstrap run.
// Command-line flags override anything set here.
type Config struct {
	StopOnError bool   `yaml:"stop_on_error"` // propagate a failing installer's exit code
	Mode        string `yaml:"mode"`          // "add" or "sync"
	UVPath      string `yaml:"uv_path"`       // path to the uv binary
	LogDir      string `yaml:"log_dir"`       // file logging directory, console only when empty
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Mode:   "add",
		UVPath: "uv",
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error and
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}

	if cfg.Mode == "" {
		cfg.Mode = "add"
	}
	if cfg.UVPath == "" {
		cfg.UVPath = "uv"
	}
	return cfg, nil
}
