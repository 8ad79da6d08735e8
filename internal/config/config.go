// SPDX-License-Identifier: MIT

// Package config holds the ministl command configuration. Files are YAML
// (.yaml, .yml) or TOML (.toml), chosen by extension; missing keys keep
// their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ministl/internal/logutil"
)

// Demo sizes used when the config file leaves them unset.
const (
	DefaultVectorCount = 100
	DefaultGrowthCount = 1000
	DefaultMatrixRows  = 3
	DefaultMatrixCols  = 4
)

var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a value that fails Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the ministl CLI configuration: logging plus demo sizes.
type Config struct {
	Log  logutil.LogConfig `toml:"log" yaml:"log"`
	Demo DemoConfig        `toml:"demo" yaml:"demo"`
}

// DemoConfig sizes the demo scenarios.
type DemoConfig struct {
	VectorCount int `toml:"vector-count" yaml:"vector_count"`
	GrowthCount int `toml:"growth-count" yaml:"growth_count"`
	MatrixRows  int `toml:"matrix-rows" yaml:"matrix_rows"`
	MatrixCols  int `toml:"matrix-cols" yaml:"matrix_cols"`
}

// DefaultConfig returns a Config with info-level console logging to stderr
// and the Default* demo sizes.
func DefaultConfig() *Config {
	return &Config{
		Log: logutil.DefaultLogConfig(),
		Demo: DemoConfig{
			VectorCount: DefaultVectorCount,
			GrowthCount: DefaultGrowthCount,
			MatrixRows:  DefaultMatrixRows,
			MatrixCols:  DefaultMatrixCols,
		},
	}
}

// Validate checks the log settings and that every demo size is positive.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	sizes := []struct {
		name string
		v    int
	}{
		{"vector_count", c.Demo.VectorCount},
		{"growth_count", c.Demo.GrowthCount},
		{"matrix_rows", c.Demo.MatrixRows},
		{"matrix_cols", c.Demo.MatrixCols},
	}
	// First invalid size in declaration order wins.
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("demo.%s = %d: %w", s.name, s.v, ErrInvalid)
		}
	}

	return nil
}

// Load reads path over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path in the format implied by its extension.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// YAML renders cfg as YAML text.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
