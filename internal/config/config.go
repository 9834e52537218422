// Package config loads tool settings from regolab.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Linter configures the external lint pipeline.
type Linter struct {
	// Bin is the linter binary, "regal" by default.
	Bin string `toml:"bin"`
	// DebounceMs is the edit-settle window for interactive linting.
	DebounceMs int `toml:"debounce_ms"`
	// MinLength gates lint runs on near-empty buffers.
	MinLength int `toml:"min_length"`
	// SuppressedRules replaces the built-in suppression list when set.
	SuppressedRules []string `toml:"suppressed_rules"`
	// Jobs bounds bulk lint parallelism; 0 means NumCPU.
	Jobs int `toml:"jobs"`
	// NoCache disables the on-disk lint report cache.
	NoCache bool `toml:"no_cache"`
}

// Evaluator configures the external policy evaluation engine.
type Evaluator struct {
	// Bin is the evaluator binary, "opa" by default.
	Bin string `toml:"bin"`
	// Query is the evaluated expression, "data" by default.
	Query string `toml:"query"`
}

type Config struct {
	Linter    Linter    `toml:"linter"`
	Evaluator Evaluator `toml:"evaluator"`
}

// Default returns the built-in settings used when no manifest exists.
func Default() *Config {
	return &Config{
		Linter:    Linter{Bin: "regal", DebounceMs: 750, MinLength: 3},
		Evaluator: Evaluator{Bin: "opa", Query: "data"},
	}
}

// Load parses one regolab.toml. Missing sections keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// FindManifest walks up from startDir to locate regolab.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "regolab.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadOrDefault finds and loads the nearest manifest, falling back to the
// built-in defaults when none exists.
func LoadOrDefault(startDir string) (*Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
