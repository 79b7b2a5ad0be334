// Package config loads the optional NVM tuning file: a small TOML
// document decoded over a set of built-in defaults.
package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Config tunes the scheduler away from its architectural default; the
// only tunable is the quantum, and the process-table sizes are not
// configurable. Every field keeps its default when absent from the
// file, or when no file is given at all.
type Config struct {
	Quantum int `toml:"quantum"` // instructions per scheduler tick
}

// Default returns the built-in configuration: quantum 10.
func Default() Config {
	return Config{Quantum: 10}
}

// Load decodes a TOML document from r over top of Default(), so an
// absent field keeps its architectural default rather than zeroing
// out.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: could not decode: %w", err)
	}
	return cfg, nil
}
