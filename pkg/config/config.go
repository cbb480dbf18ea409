// Package config loads the YAML settings used by the olc command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kass/go-olc/pkg/olc"
	"gopkg.in/yaml.v3"
)

// Files tried, in order, when no path is given.
var defaultFiles = []string{"olc.yaml", "olc.yaml.example"}

// Reference is a location used to shorten and recover codes
type Reference struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Config holds command defaults. Flags given on the command line win.
type Config struct {
	Encode struct {
		Length int `yaml:"length"`
	} `yaml:"encode"`
	Reference *Reference `yaml:"reference"`
	Bench     struct {
		Points  int `yaml:"points"`
		Workers int `yaml:"workers"`
	} `yaml:"bench"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the built-in settings
func Default() *Config {
	cfg := &Config{}
	cfg.Encode.Length = olc.DefaultCodeLength
	cfg.Bench.Points = 1000000
	return cfg
}

// Load reads path, or the first default file that exists when path is
// empty. Missing default files are not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		return load(path)
	}

	for _, name := range defaultFiles {
		cfg, err := load(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Encode.Length < 2 || c.Encode.Length > olc.MaxDigitCount {
		return fmt.Errorf("encode.length must be between 2 and %d, got %d", olc.MaxDigitCount, c.Encode.Length)
	}
	if c.Reference != nil && (c.Reference.Lat < -90 || c.Reference.Lat > 90) {
		return fmt.Errorf("reference.lat must be between -90 and 90, got %v", c.Reference.Lat)
	}
	if c.Bench.Points < 0 || c.Bench.Workers < 0 {
		return errors.New("bench.points and bench.workers must not be negative")
	}
	return nil
}
