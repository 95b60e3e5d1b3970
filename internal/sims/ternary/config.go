package ternary

import (
	"fmt"
	"strconv"
)

// Init selects how Reset seeds the first row.
type Init string

const (
	// InitRandom draws every cell uniformly from {0,1,2}.
	InitRandom Init = "random"
	// InitSingle sets the centre cell to 1 and everything else to 0.
	InitSingle Init = "single"
)

// Config holds parameters for the three-state automaton.
type Config struct {
	// Width is the lattice length.
	Width int
	// Height is how many rows of history the render window shows.
	Height int
	Rule   int
	Seed   int64
	Init   Init
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 100, Height: 100, Rule: 110, Seed: 42, Init: InitRandom}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if err := ValidateRule(c.Rule); err != nil {
		return err
	}
	if c.Width < 1 {
		return fmt.Errorf("%w: width %d, need at least 1 cell", ErrInvalidState, c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("height %d must be positive", c.Height)
	}
	switch c.Init {
	case InitRandom, InitSingle:
	default:
		return fmt.Errorf("unknown init mode %q", c.Init)
	}
	return nil
}

// InitialConfiguration builds the starting row for the given seed.
func (c Config) InitialConfiguration(seed int64) (Configuration, error) {
	if c.Init == InitSingle {
		if c.Width < 1 {
			return nil, fmt.Errorf("%w: width %d, need at least 1 cell", ErrInvalidState, c.Width)
		}
		row := make(Configuration, c.Width)
		row[c.Width/2] = 1
		return row, nil
	}
	return RandomConfiguration(c.Width, seed)
}

// FromMap populates a Config from a string map. Values that fail to parse
// or validate are ignored and the default is kept.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["init"]; ok {
		if mode := Init(v); mode == InitRandom || mode == InitSingle {
			c.Init = mode
		}
	}
	return c
}

// FromMapStrict is like FromMap but reports the first bad value instead of
// silently keeping the default.
func FromMapStrict(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	for key, v := range cfg {
		switch key {
		case "w", "h":
			n, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("parse %s: %w", key, err)
			}
			if key == "w" {
				c.Width = n
			} else {
				c.Height = n
			}
		case "rule":
			rule, err := ParseRule(v)
			if err != nil {
				return c, err
			}
			c.Rule = rule
		case "seed":
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return c, fmt.Errorf("parse seed: %w", err)
			}
			c.Seed = seed
		case "init":
			c.Init = Init(v)
		default:
			return c, fmt.Errorf("unknown key %q", key)
		}
	}
	return c, c.Validate()
}
