package ternary

import (
	"fmt"
	"slices"

	"ternary-ca/internal/core"
)

// Configuration is the lattice at one time step. Configurations stored in an
// Automaton's history are never modified after they are appended.
type Configuration []Symbol

// Clone returns an independent copy of c.
func (c Configuration) Clone() Configuration { return slices.Clone(c) }

// Validate checks that c is non-empty and holds only legal symbols.
func (c Configuration) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty configuration", ErrInvalidState)
	}
	for i, s := range c {
		if !s.Valid() {
			return fmt.Errorf("%w: value %d at index %d", ErrInvalidState, s, i)
		}
	}
	return nil
}

// Bytes copies c into dst as raw cell values and returns dst.
func (c Configuration) Bytes(dst []uint8) []uint8 {
	dst = slices.Grow(dst[:0], len(c))[:len(c)]
	for i, s := range c {
		dst[i] = uint8(s)
	}
	return dst
}

// FromInts validates and converts plain integers into a Configuration.
func FromInts(vals []int) (Configuration, error) {
	c := make(Configuration, len(vals))
	for i, v := range vals {
		if v < 0 || v >= States {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrInvalidState, v, i)
		}
		c[i] = Symbol(v)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RandomConfiguration draws a configuration of the given length with every
// cell uniform over {0,1,2}. The same seed always yields the same result.
func RandomConfiguration(length int, seed int64) (Configuration, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d, need at least 1 cell", ErrInvalidState, length)
	}
	buf := make([]uint8, length)
	core.FillStates(core.NewRNG(seed).Source(), buf, States)
	c := make(Configuration, length)
	for i, v := range buf {
		c[i] = Symbol(v)
	}
	return c, nil
}

// LeftNeighbor returns the index of the cell to the left of i on a circular
// lattice of the given length. Index 0 wraps to length-1.
func LeftNeighbor(i, length int) int {
	return core.WrapIndex(i-1, length)
}

// Automaton evolves a circular lattice under a fixed rule table and keeps
// the full space-time history. It is not safe for concurrent use; separate
// instances share nothing and may run in parallel.
type Automaton struct {
	table   RuleTable
	rule    int
	current Configuration
	// history is append-only and owned by the Automaton. history[0] is the
	// initial configuration and history[t] the state after t steps.
	history []Configuration
}

// New decodes rule and builds an Automaton starting from initial. The
// initial configuration is copied.
func New(rule int, initial Configuration) (*Automaton, error) {
	table, err := DecodeRule(rule)
	if err != nil {
		return nil, err
	}
	return NewWithTable(table, initial)
}

// NewWithTable builds an Automaton from an already decoded table.
func NewWithTable(table RuleTable, initial Configuration) (*Automaton, error) {
	if !table.Valid() {
		return nil, fmt.Errorf("%w: table %v has outputs outside {0,1,2}", ErrInvalidRule, [NeighborhoodCount]Symbol(table))
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	start := initial.Clone()
	return &Automaton{
		table:   table,
		rule:    table.Encode(),
		current: start,
		history: []Configuration{start},
	}, nil
}

// Rule returns the rule number driving the automaton.
func (a *Automaton) Rule() int { return a.rule }

// Table returns the decoded rule table.
func (a *Automaton) Table() RuleTable { return a.table }

// Length returns the number of cells in the lattice.
func (a *Automaton) Length() int { return len(a.current) }

// Steps returns how many steps have been evolved so far.
func (a *Automaton) Steps() int { return len(a.history) - 1 }

// Initial returns the configuration the automaton started from.
func (a *Automaton) Initial() Configuration { return a.history[0] }

// Current returns the most recent configuration. Callers must not modify it.
func (a *Automaton) Current() Configuration { return a.current }

// Row returns the configuration after t steps.
func (a *Automaton) Row(t int) Configuration { return a.history[t] }

// Spacetime returns the history, oldest first. The outer slice is a copy;
// the rows are shared and must be treated as read-only.
func (a *Automaton) Spacetime() []Configuration {
	return slices.Clone(a.history)
}

// Evolve advances the lattice by steps synchronous updates, appending one
// configuration per step. A negative count fails before anything changes.
// Successive calls continue from where the previous one stopped.
func (a *Automaton) Evolve(steps int) error {
	if steps < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}
	a.history = slices.Grow(a.history, steps)
	for s := 0; s < steps; s++ {
		next := a.table.Apply(a.current, nil)
		a.current = next
		a.history = append(a.history, next)
	}
	return nil
}

// Apply computes one synchronous update of cur into dst and returns it.
// Every new value is read from cur only; dst must not alias cur. A nil or
// short dst is reallocated.
func (t RuleTable) Apply(cur, dst Configuration) Configuration {
	n := len(cur)
	if cap(dst) < n {
		dst = make(Configuration, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = t.Lookup(cur[LeftNeighbor(i, n)], cur[i])
	}
	return dst
}
