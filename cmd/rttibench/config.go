// ABOUTME: Benchmark configuration loaded from an optional TOML file
// ABOUTME: Command-line flags override values from the file

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls the size and selection of benchmark scenarios
type Config struct {
	Iterations int      `toml:"iterations"` // Objects created per constructor
	Loops      int      `toml:"loops"`      // Passes over the object vector
	Parallel   int      `toml:"parallel"`   // Vectors prepared concurrently
	Scenarios  []string `toml:"scenarios"`  // Scenario names; empty runs all
}

// DefaultConfig runs a million objects per constructor over ten loops
func DefaultConfig() Config {
	return Config{
		Iterations: 1000000,
		Loops:      10,
		Parallel:   1,
	}
}

// LoadConfig reads path over the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warningf("unknown config key %q in %s", key.String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for unusable values
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Loops <= 0 {
		return fmt.Errorf("loops must be positive, got %d", c.Loops)
	}
	if c.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, got %d", c.Parallel)
	}
	for _, name := range c.Scenarios {
		if findScenario(name) == nil {
			return fmt.Errorf("unknown scenario %q", name)
		}
	}
	return nil
}

// Selected returns the scenarios to run in suite order
func (c Config) Selected() []Scenario {
	if len(c.Scenarios) == 0 {
		return Scenarios()
	}
	var out []Scenario
	for _, s := range Scenarios() {
		for _, name := range c.Scenarios {
			if s.Name == name {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
