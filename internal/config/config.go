// Package config loads service configuration in layers: built-in
// defaults, then an optional yaml file, then ENROLLMENT_-prefixed
// environment variables, then command-line flags. Later layers win.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "ENROLLMENT_"

type Config struct {
	Port               int `koanf:"port"`
	ReadTimeoutSeconds int `koanf:"read_timeout_seconds"`
	DefaultClassSize   int `koanf:"default_class_size"`
	MaxProjectionYears int `koanf:"max_projection_years"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"port":                 8080,
		"read_timeout_seconds": 10,
		"default_class_size":   25,
		"max_projection_years": 10,
	}
}

// findConfigFile returns the config file to use, or "" when none exists.
// Priority: explicit path > enrollment-engine.yaml > enrollment-engine.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"enrollment-engine.yaml", "enrollment-engine.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the effective configuration. flags may be nil; only changed
// flags override the lower layers.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(configFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ReadTimeoutSeconds <= 0 {
		return fmt.Errorf("read_timeout_seconds must be positive, got %d", c.ReadTimeoutSeconds)
	}
	if c.DefaultClassSize <= 0 {
		return fmt.Errorf("default_class_size must be positive, got %d", c.DefaultClassSize)
	}
	if c.MaxProjectionYears <= 0 || c.MaxProjectionYears > 10 {
		return fmt.Errorf("max_projection_years must be between 1 and 10, got %d", c.MaxProjectionYears)
	}
	return nil
}
