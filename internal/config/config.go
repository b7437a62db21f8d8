// Package config holds process configuration for gradecast. Storage
// paths, the parameter default, and the weight table are explicit
// inputs here rather than globals baked into the model.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/gradecast/internal/subject"
)

// Config contains process configuration.
type Config struct {
	// ParamsFile is the JSON file holding the confirmed parameters.
	ParamsFile string `koanf:"params_file"`

	// HistoryDB is the SQLite file holding the score event log.
	HistoryDB string `koanf:"history_db"`

	// DefaultValue seeds parameters and backfills imported fields.
	DefaultValue int `koanf:"default_value"`

	// Weights maps parameter names to scoring weights. Partial
	// overrides merge over the built-in table.
	Weights map[string]float64 `koanf:"weights"`
}

// New returns a Config with built-in defaults. Paths resolve under the
// XDG data dir ($XDG_DATA_HOME/gradecast, falling back to
// ~/.local/share/gradecast).
func New() (*Config, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		ParamsFile:   filepath.Join(dataDir, "subject_parameters.json"),
		HistoryDB:    filepath.Join(dataDir, "gradecast.db"),
		DefaultValue: subject.DefaultValue,
		Weights:      subject.DefaultWeights(),
	}, nil
}

// Validate checks a loaded configuration.
func (c *Config) Validate() error {
	if c.ParamsFile == "" {
		return fmt.Errorf("params_file must not be empty")
	}
	if c.HistoryDB == "" {
		return fmt.Errorf("history_db must not be empty")
	}
	if c.DefaultValue < subject.MinValue || c.DefaultValue > subject.MaxValue {
		return fmt.Errorf("default_value %d outside [%d,%d]", c.DefaultValue, subject.MinValue, subject.MaxValue)
	}
	for name := range c.Weights {
		if !subject.Recognized(name) {
			return fmt.Errorf("weight for unrecognized parameter %q", name)
		}
	}
	return nil
}

// ModelWeights returns the effective weight table: the built-in table
// with any configured overrides merged on top.
func (c *Config) ModelWeights() subject.Weights {
	weights := subject.DefaultWeights()
	for name, w := range c.Weights {
		weights[name] = w
	}
	return weights
}

// defaultDataDir resolves the XDG data directory for gradecast.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gradecast"), nil
}
