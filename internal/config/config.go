// Package config loads plotgrid settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/wesen/plotgrid/internal/plane"
)

// DefaultPath is read when no --config flag or PLOTGRID_CONFIG is given.
// It may be absent.
const DefaultPath = "plotgrid.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Plane struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"plane"`
	Quiz struct {
		// Seed fixes the target sequence; 0 picks a random seed.
		Seed uint64 `yaml:"seed"`
	} `yaml:"quiz"`
	Snapshot struct {
		Size int `yaml:"size"`
	} `yaml:"snapshot"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	var cfg Config
	cfg.Plane.Min = plane.DefaultMin
	cfg.Plane.Max = plane.DefaultMax
	cfg.Snapshot.Size = 600
	cfg.Log.Level = "info"
	return cfg
}

// Load reads YAML config from path over the defaults. A missing file at
// DefaultPath is not an error; a missing file anywhere else is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("%w: plane: %v", ErrInvalid, err)
	}
	if c.Snapshot.Size < 50 {
		return fmt.Errorf("%w: snapshot.size %d is below 50", ErrInvalid, c.Snapshot.Size)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// Range is the configured logical range.
func (c Config) Range() plane.Range {
	return plane.Range{Min: c.Plane.Min, Max: c.Plane.Max}
}

// PathFromEnv returns PLOTGRID_CONFIG or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv("PLOTGRID_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// LogFileFromEnv returns PLOTGRID_LOG, which may be empty.
func LogFileFromEnv() string {
	return os.Getenv("PLOTGRID_LOG")
}
