package ternary

import (
	"strconv"

	"ternary-ca/internal/core"
)

// Name is the registry key of the simulation.
const Name = "ternary"

// Sim projects an Automaton onto a fixed-size window for the render loop.
// Row 0 of the window is the oldest visible step; once the history is taller
// than the window it scrolls upwards.
type Sim struct {
	cfg    Config
	auto   *Automaton
	window *core.ByteGrid
	dirty  bool
}

// NewSim builds a Sim from cfg and resets it with cfg.Seed.
func NewSim(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, window: core.NewByteGrid(cfg.Width, cfg.Height)}
	if err := s.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return Name }

// Size returns the window dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Automaton exposes the engine behind the window.
func (s *Sim) Automaton() *Automaton { return s.auto }

// Reset discards the history and starts again from a fresh initial row.
func (s *Sim) Reset(seed int64) {
	if err := s.reset(seed); err != nil {
		// cfg was validated in NewSim, so this only fires on a broken invariant.
		panic(err)
	}
}

func (s *Sim) reset(seed int64) error {
	initial, err := s.cfg.InitialConfiguration(seed)
	if err != nil {
		return err
	}
	auto, err := New(s.cfg.Rule, initial)
	if err != nil {
		return err
	}
	s.cfg.Seed = seed
	s.auto = auto
	s.dirty = true
	return nil
}

// Step advances the automaton by one generation.
func (s *Sim) Step() {
	if err := s.auto.Evolve(1); err != nil {
		panic(err)
	}
	s.dirty = true
}

// Cells returns the render window, rebuilding it when the history changed.
func (s *Sim) Cells() []uint8 {
	if s.dirty {
		s.fillWindow()
		s.dirty = false
	}
	return s.window.Cells()
}

func (s *Sim) fillWindow() {
	s.window.Clear()
	rows := s.auto.Steps() + 1
	first := rows - s.window.H
	if first < 0 {
		first = 0
	}
	for y, t := 0, first; t < rows; y, t = y+1, t+1 {
		s.auto.Row(t).Bytes(s.window.Row(y))
	}
}

// Parameters reports the values shown on the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: strconv.Itoa(s.auto.Rule()), Description: "base-3 rule number"},
			{Key: "table", Label: "Table", Type: core.ParamTypeString, Value: s.auto.Table().String()},
			{Key: "length", Label: "Length", Type: core.ParamTypeInt, Value: strconv.Itoa(s.auto.Length())},
			{Key: "step", Label: "Step", Type: core.ParamTypeInt, Value: strconv.Itoa(s.auto.Steps())},
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
		},
	}}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "rule", Label: "Rule", Step: 1,
		Min: 0, Max: MaxRule, HasMin: true, HasMax: true,
	}}
}

// SetIntParameter changes the rule. The rule table of an Automaton is fixed,
// so a new one is started from the current configuration and the visible
// history restarts there.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "rule" {
		return false
	}
	auto, err := New(value, s.auto.Current())
	if err != nil {
		return false
	}
	s.cfg.Rule = value
	s.auto = auto
	s.dirty = true
	return true
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Sim {
		sim, err := NewSim(FromMap(cfg))
		if err != nil {
			panic(err)
		}
		return sim
	})
}
