package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chrismerck/struct-lint/analyze"
)

// DefaultFileName is the config file looked up in the user's home directory
// when no explicit path is given.
const DefaultFileName = ".structlint.yaml"

// envConfig overrides the config file location.
const envConfig = "STRUCTLINT_CONFIG"

// Config holds the file-configurable settings. Pointer fields distinguish
// "unset" from an explicit false.
type Config struct {
	Pattern        string   `yaml:"pattern"`
	Extensions     []string `yaml:"extensions"`
	AlignmentCheck *bool    `yaml:"alignment_check"`
	PackedCheck    *bool    `yaml:"packed_check"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pattern:    analyze.DefaultPatternExpr,
		Extensions: []string{".o", ".elf"},
	}
}

// DefaultPath resolves the config file location: the STRUCTLINT_CONFIG
// environment variable if set, otherwise DefaultFileName in the user's home
// directory. An empty string means no config file is available.
func DefaultPath() string {
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads the config file at path, layering it over the defaults.
// A missing file (or empty path) yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Pattern == "" {
		cfg.Pattern = analyze.DefaultPatternExpr
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = Default().Extensions
	}
	return cfg, nil
}

// Alignment reports whether the alignment check is enabled (default true).
func (c Config) Alignment() bool {
	return c.AlignmentCheck == nil || *c.AlignmentCheck
}

// Packed reports whether the packed check is enabled (default true).
func (c Config) Packed() bool {
	return c.PackedCheck == nil || *c.PackedCheck
}
