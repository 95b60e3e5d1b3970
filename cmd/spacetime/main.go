// Command spacetime evolves the three-state automaton and writes the
// space-time field as a PNG image, as text, or opens an interactive viewer.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"ternary-ca/internal/config"
	"ternary-ca/internal/render"
	"ternary-ca/internal/sims/ternary"
	"ternary-ca/internal/view"
)

type options struct {
	rule        int
	length      int
	steps       int
	seed        int64
	init        string
	out         string
	format      string
	color       bool
	scale       int
	interactive bool
	interval    time.Duration
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("spacetime: ")

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	o := options{
		rule:     settings.Rule,
		length:   settings.Length,
		steps:    settings.Steps,
		seed:     settings.Seed,
		init:     settings.Init,
		scale:    settings.Scale,
		out:      "spacetime.png",
		format:   "png",
		interval: 100 * time.Millisecond,
	}

	flaggy.SetName("spacetime")
	flaggy.SetDescription("Evolve a 3-state, 2-neighbor cellular automaton on a circular lattice")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.rule, "r", "rule", "Rule number in [0, 19682]")
	flaggy.Int(&o.length, "l", "length", "Lattice length")
	flaggy.Int(&o.steps, "t", "steps", "Number of time steps to evolve")
	flaggy.Int64(&o.seed, "s", "seed", "Seed for the random initial row")
	flaggy.String(&o.init, "i", "init", "Initial row: random or single")
	flaggy.String(&o.out, "o", "out", "Output path, - for stdout")
	flaggy.String(&o.format, "f", "format", "Output format [png|text|digits]")
	flaggy.Bool(&o.color, "c", "color", "Colour text output")
	flaggy.Int(&o.scale, "x", "scale", "Pixels per cell for png output")
	flaggy.Bool(&o.interactive, "n", "interactive", "Open the interactive terminal viewer")
	flaggy.Duration(&o.interval, "d", "interval", "Delay between steps in the viewer, e.g. 150ms")
	flaggy.Parse()

	if o.interactive {
		if err := interactive(o); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func simConfig(o options) ternary.Config {
	return ternary.Config{
		Width:  o.length,
		Height: o.steps + 1,
		Rule:   o.rule,
		Seed:   o.seed,
		Init:   ternary.Init(o.init),
	}
}

func run(o options) error {
	cfg := simConfig(o)
	if err := cfg.Validate(); err != nil {
		return err
	}
	initial, err := cfg.InitialConfiguration(o.seed)
	if err != nil {
		return err
	}
	a, err := ternary.New(o.rule, initial)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := a.Evolve(o.steps); err != nil {
		return err
	}
	log.Printf("rule %d [%v], %d cells, %d steps in %v",
		a.Rule(), a.Table(), a.Length(), a.Steps(), time.Since(start).Round(time.Microsecond))

	out, closeOut, err := openOutput(o.out)
	if err != nil {
		return err
	}
	defer closeOut()

	rows := a.Spacetime()
	switch o.format {
	case "png":
		err = render.WritePNG(out, rows, render.Options{Scale: o.scale})
	case "text":
		err = render.WriteText(out, rows, o.color)
	case "digits":
		err = render.WriteDigits(out, rows)
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
	if err != nil {
		return err
	}
	if o.out != "-" {
		log.Printf("wrote %s", o.out)
	}
	return nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("close %s: %v", path, err)
		}
	}, nil
}

func interactive(o options) error {
	cfg := simConfig(o)
	sim, err := ternary.NewSim(cfg)
	if err != nil {
		return err
	}
	return view.NewConsole(sim, o.interval).Start()
}
