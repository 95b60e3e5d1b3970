// Package sweep runs one automaton per rule over a shared initial row and
// summarises how each rule behaves.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ternary-ca/internal/sims/ternary"
)

// Request describes a sweep over the closed rule range [From, To].
type Request struct {
	From, To int
	Length   int
	Steps    int
	Seed     int64
	// Workers bounds the number of automata evolving at once. Zero means
	// runtime.NumCPU().
	Workers int
}

// Cycle records the first repeated configuration in a history: row
// Start+Period equals row Start.
type Cycle struct {
	Found  bool
	Start  int
	Period int
}

// Result summarises one rule.
type Result struct {
	Rule int
	// Counts holds how many cells of the final row hold each symbol.
	Counts [ternary.States]int
	Cycle  Cycle
}

// Class labels a result for quick reading.
func (r Result) Class() string {
	switch {
	case r.Cycle.Found && r.Cycle.Period == 1:
		return "fixed"
	case r.Cycle.Found:
		return "periodic"
	default:
		return "aperiodic"
	}
}

// Density returns the share of cells holding s in the final row.
func (r Result) Density(s ternary.Symbol) float64 {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	if total == 0 || !s.Valid() {
		return 0
	}
	return float64(r.Counts[s]) / float64(total)
}

func (r Request) validate() error {
	if err := ternary.ValidateRule(r.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := ternary.ValidateRule(r.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if r.From > r.To {
		return fmt.Errorf("%w: range [%d, %d] is empty", ternary.ErrInvalidRule, r.From, r.To)
	}
	if r.Steps < 0 {
		return fmt.Errorf("%w: %d", ternary.ErrInvalidSteps, r.Steps)
	}
	return nil
}

// Run evolves every rule in the request and returns the results ordered by
// rule number. Each rule gets its own Automaton, so they run in parallel
// without sharing state. Cancelling ctx stops scheduling further rules.
func Run(parent context.Context, req Request) ([]Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	initial, err := ternary.RandomConfiguration(req.Length, req.Seed)
	if err != nil {
		return nil, err
	}
	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, req.To-req.From+1)
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)
	for rule := req.From; rule <= req.To; rule++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(rule, initial, req.Steps)
			if err != nil {
				return err
			}
			results[rule-req.From] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is always done after Wait, so check the caller's.
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Evaluate evolves a single rule from initial for the given number of steps.
func Evaluate(rule int, initial ternary.Configuration, steps int) (Result, error) {
	a, err := ternary.New(rule, initial)
	if err != nil {
		return Result{}, err
	}
	if err := a.Evolve(steps); err != nil {
		return Result{}, err
	}
	res := Result{Rule: rule, Cycle: FindCycle(a.Spacetime())}
	for _, s := range a.Current() {
		res.Counts[s]++
	}
	return res, nil
}

// FindCycle reports the first row that repeats an earlier one.
func FindCycle(rows []ternary.Configuration) Cycle {
	seen := make(map[string]int, len(rows))
	var key []uint8
	for t, row := range rows {
		key = row.Bytes(key)
		if first, ok := seen[string(key)]; ok {
			return Cycle{Found: true, Start: first, Period: t - first}
		}
		seen[string(key)] = t
	}
	return Cycle{}
}
