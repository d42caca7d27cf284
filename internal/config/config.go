// Package config loads and validates the .docver.yml gateway configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCVER_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DOCVER_PORT -> port, etc.
	if err := k.Load(env.Provider("DOCVER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DOCVER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.CurrentVersion == "" {
		return fmt.Errorf("current_version is required")
	}
	if strings.Contains(c.CurrentVersion, "/") {
		return fmt.Errorf("current_version %q must be a bare version token", c.CurrentVersion)
	}
	if c.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}
	if c.BasePath != "" {
		if !strings.HasPrefix(c.BasePath, "/") {
			return fmt.Errorf("base_path %q must start with /", c.BasePath)
		}
		if strings.HasSuffix(c.BasePath, "/") {
			return fmt.Errorf("base_path %q must not end with /", c.BasePath)
		}
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("fetch_timeout_seconds must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if len(c.Versions) > 0 {
		if err := c.Manifest().Validate(); err != nil {
			return fmt.Errorf("versions: %w", err)
		}
	}
	return nil
}
