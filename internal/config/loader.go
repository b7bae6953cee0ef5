package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a lint configuration from the given YAML file path.
// After parsing, it fills in the tool, standard and checks when unset.
func Load(path string) (*LintConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg LintConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault searches for a config in standard locations and loads the first
// one found. Search order: ./lintsweep.yaml, ~/.lintsweep/config.yaml.
// With no config file present it returns Default().
func LoadDefault() (*LintConfig, error) {
	candidates := []string{"lintsweep.yaml"}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, ".lintsweep", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return Default(), nil
}

// applyDefaults fills in the tool, standard and rule selectors. The file list
// is never defaulted: a config that names no files is a validation error.
func applyDefaults(cfg *LintConfig) {
	l := &cfg.Lint

	if l.Tool == "" {
		l.Tool = DefaultTool
	}
	if l.Std == "" {
		l.Std = DefaultStd
	}
	if len(l.Checks) == 0 {
		l.Checks = append([]string(nil), DefaultChecks...)
	}
}

// TimeoutDuration parses Timeout. An empty value means no timeout.
func (l Lint) TimeoutDuration() (time.Duration, error) {
	if l.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse timeout %q: %w", l.Timeout, err)
	}
	return d, nil
}
