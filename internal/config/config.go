// Package config holds pipeline settings read from an optional TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config controls pipeline behavior that is not a per-run path argument.
type Config struct {
	Stopwords         string `toml:"stopwords"`           // stopword file path
	TopTerms          int    `toml:"top_terms"`           // top-N terms in the summary
	HighFreqThreshold int    `toml:"high_freq_threshold"` // "high frequency" cutoff (strictly greater than)
	Workers           int    `toml:"workers"`             // map-phase workers; 0 means NumCPU
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TopTerms:          20,
		HighFreqThreshold: 10,
		Workers:           0,
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.TopTerms < 0 {
		return fmt.Errorf("top_terms must not be negative, got %d", c.TopTerms)
	}
	if c.HighFreqThreshold < 0 {
		return fmt.Errorf("high_freq_threshold must not be negative, got %d", c.HighFreqThreshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
