// Package config loads editor settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// EnvPrefix prefixes the environment variables that override file values,
// e.g. GOSKETCH_LOG_LEVEL.
const EnvPrefix = "GOSKETCH_"

// ErrInvalidConfig is wrapped by validation failures
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the editor settings
type Config struct {
	LogLevel    string  `mapstructure:"log_level"`
	Tolerance   float64 `mapstructure:"tolerance"`
	Keymap      string  `mapstructure:"keymap"`
	WatchKeymap bool    `mapstructure:"watch_keymap"`
	MetricsAddr string  `mapstructure:"metrics_addr"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		LogLevel:  "info",
		Tolerance: geometry.DefaultTolerance,
	}
}

var keys = []string{"log_level", "tolerance", "keymap", "watch_keymap", "metrics_addr"}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path loads only defaults and environment.
func Load(path string) (Config, error) {
	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return decode(raw, os.LookupEnv)
}

func decode(raw map[string]any, lookup func(string) (string, bool)) (Config, error) {
	if raw == nil {
		raw = map[string]any{}
	}
	for _, k := range keys {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(k)); ok {
			raw[k] = v
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges
func (c Config) Validate() error {
	var errs []error
	if !(c.Tolerance > 0) || !geometry.IsFinite(c.Tolerance) {
		errs = append(errs, fmt.Errorf("%w: tolerance must be a positive number, got %v", ErrInvalidConfig, c.Tolerance))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	if c.WatchKeymap && c.Keymap == "" {
		errs = append(errs, fmt.Errorf("%w: watch_keymap needs a keymap file", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
