package app

import (
	"flag"
	"testing"

	"ternary-ca/internal/config"
)

func TestConfigFlagsOverrideSettings(t *testing.T) {
	cfg := NewConfig()
	cfg.ApplySettings(config.Settings{Rule: 2510, Length: 64, Seed: 9, Init: "single", Scale: 2})

	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rule", "7", "-h", "30"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	opts := cfg.SimOptions()
	want := map[string]string{"rule": "7", "w": "64", "h": "30", "seed": "9", "init": "single"}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("option %s = %q, want %q", k, opts[k], v)
		}
	}
	if cfg.Scale != 2 {
		t.Fatalf("scale = %d, want 2", cfg.Scale)
	}
}
