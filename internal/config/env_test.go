package config

import (
	"strings"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	want := Settings{Rule: 110, Length: 100, Steps: 100, Seed: 42, Init: "random", Scale: 4}
	if s != want {
		t.Fatalf("settings = %+v, want %+v", s, want)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	t.Setenv("TERNARY_CA_RULE", "2510")
	t.Setenv("TERNARY_CA_LENGTH", "64")
	t.Setenv("TERNARY_CA_SEED", "-9")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.Rule != 2510 || s.Length != 64 || s.Seed != -9 {
		t.Fatalf("overrides not applied: %+v", s)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("TERNARY_CA_STEPS", "not-an-int")

	_, err := LoadSettings()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
