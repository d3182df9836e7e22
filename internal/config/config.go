// Package config loads acfgen defaults from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".acfgen.yaml"

// Config holds the settings that can be given in a config file.
type Config struct {
	Dir  string `yaml:"dir"`
	Dest string `yaml:"dest"`
	Ext  string `yaml:"ext"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dir:  ".",
		Dest: "./acf-json",
		Ext:  ".vue",
	}
}

// Parse parses YAML and merges it over the defaults.
func Parse(data []byte) (Config, error) {
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg := Default()
	cfg.merge(loaded)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile loads a config file. A missing file is only an error when
// required is set; otherwise the defaults are returned.
func LoadFile(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}
	if c.Dest == "" {
		return errors.New("dest must not be empty")
	}
	if !strings.HasPrefix(c.Ext, ".") {
		return fmt.Errorf("ext %q must start with a dot", c.Ext)
	}
	return nil
}

// ToYAML encodes c.
func (c Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) merge(loaded Config) {
	if loaded.Dir != "" {
		c.Dir = strings.TrimRight(loaded.Dir, "/")
		if c.Dir == "" {
			c.Dir = "/"
		}
	}
	if loaded.Dest != "" {
		c.Dest = strings.TrimRight(loaded.Dest, "/")
		if c.Dest == "" {
			c.Dest = "/"
		}
	}
	if loaded.Ext != "" {
		c.Ext = loaded.Ext
	}
}
