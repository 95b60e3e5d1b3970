package app

import (
	"flag"
	"strconv"

	"ternary-ca/internal/config"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim            string
	Scale          int
	TPS            int
	StepsPerSecond int
	PanelWidth     int
	Seed           int64

	Rule   int
	Width  int
	Height int
	Init   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim: "ternary", Scale: 4, TPS: 60, StepsPerSecond: 20, PanelWidth: 220, Seed: 42,
		Rule: 110, Width: 200, Height: 150, Init: "random",
	}
}

// ApplySettings copies environment defaults into c. Call it before Bind so
// flags still override the environment.
func (c *Config) ApplySettings(s config.Settings) {
	c.Rule = s.Rule
	c.Width = s.Length
	c.Seed = s.Seed
	c.Init = s.Init
	c.Scale = s.Scale
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.StepsPerSecond, "sps", c.StepsPerSecond, "automaton steps per second")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels, 0 hides it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Rule, "rule", c.Rule, "rule number in [0, 19682]")
	fs.IntVar(&c.Width, "w", c.Width, "lattice length")
	fs.IntVar(&c.Height, "h", c.Height, "visible history rows")
	fs.StringVar(&c.Init, "init", c.Init, "initial row: random or single")
}

// SimOptions renders the automaton settings as a factory configuration map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"rule": strconv.Itoa(c.Rule),
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
		"init": c.Init,
	}
}
