// Package config loads settings shared by the command-line tools.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the environment defaults for a run. Command-line flags are
// parsed after ParseEnv and override these.
type Settings struct {
	Rule   int    `env:"TERNARY_CA_RULE" envDefault:"110"`
	Length int    `env:"TERNARY_CA_LENGTH" envDefault:"100"`
	Steps  int    `env:"TERNARY_CA_STEPS" envDefault:"100"`
	Seed   int64  `env:"TERNARY_CA_SEED" envDefault:"42"`
	Init   string `env:"TERNARY_CA_INIT" envDefault:"random"`
	Scale  int    `env:"TERNARY_CA_SCALE" envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings returns Settings populated from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
