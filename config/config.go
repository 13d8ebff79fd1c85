// Package config loads the settings of the rainbow command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
)

const (
	// BackendMemory keeps the map on the heap and dumps it once the walk ends.
	BackendMemory = "memory"
	// BackendMmap maps the output file and fills it in place.
	BackendMmap = "mmap"
)

// Config holds every setting of a run. Zero fields in a file keep their
// defaults.
type Config struct {
	// Ranks per suit; 8 is the real game, smaller values give fixtures.
	Ranks int `yaml:"ranks"`
	// Output is the reachability map file.
	Output string `yaml:"output"`
	// Backend is "memory" (heap array dumped at the end) or "mmap"
	// (the output file is mapped and filled in place).
	Backend  string `yaml:"backend"`
	LogLevel string `yaml:"log_level"`
	// MetricsTextfile, when set, receives the run metrics in Prometheus
	// text format.
	MetricsTextfile string `yaml:"metrics_textfile"`
	SampleSeed      string `yaml:"sample_seed"`
	SampleSize      int    `yaml:"sample_size"`
}

// Default returns the settings of a full-size run.
func Default() Config {
	return Config{
		Ranks:      card.MaxRanks,
		Output:     "reachability.bin",
		Backend:    BackendMemory,
		LogLevel:   "info",
		SampleSeed: "mu-rainbow",
		SampleSize: 1000,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

// Geometry returns the deck geometry of the run.
func (c Config) Geometry() card.Geometry {
	return card.Geometry{Ranks: c.Ranks}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return err
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	switch c.Backend {
	case BackendMemory, BackendMmap:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("sample size must not be negative, got %d", c.SampleSize)
	}
	return nil
}
