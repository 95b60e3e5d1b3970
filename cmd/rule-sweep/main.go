// Command rule-sweep evolves a range of rules from one shared random row and
// reports which settle, which cycle and which keep changing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"ternary-ca/internal/sims/ternary"
	"ternary-ca/internal/sweep"
)

func main() {
	from := flag.Int("from", 0, "first rule number")
	to := flag.Int("to", 255, "last rule number")
	length := flag.Int("length", 64, "lattice length")
	steps := flag.Int("steps", 256, "steps to evolve per rule")
	seed := flag.Int64("seed", 42, "seed for the shared initial row")
	workers := flag.Int("workers", runtime.NumCPU(), "number of rules evolved at once")
	top := flag.Int("top", 10, "how many aperiodic rules to list")
	verbose := flag.Bool("v", false, "print every rule")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := sweep.Request{From: *from, To: *to, Length: *length, Steps: *steps, Seed: *seed, Workers: *workers}
	fmt.Printf("Sweeping rules %d..%d (%d workers, %d cells, %d steps)\n", req.From, req.To, req.Workers, req.Length, req.Steps)

	start := time.Now()
	results, err := sweep.Run(ctx, req)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	classes := map[string]int{}
	var aperiodic []sweep.Result
	for _, res := range results {
		classes[res.Class()]++
		if res.Class() == "aperiodic" {
			aperiodic = append(aperiodic, res)
		}
		if *verbose {
			printResult(res)
		}
	}

	fmt.Printf("\nDone in %s: fixed=%d periodic=%d aperiodic=%d\n",
		elapsed.Round(time.Millisecond), classes["fixed"], classes["periodic"], classes["aperiodic"])

	// Rules that stay busy with a balanced final row are the interesting ones.
	sort.Slice(aperiodic, func(i, j int) bool { return balance(aperiodic[i]) > balance(aperiodic[j]) })
	if len(aperiodic) > 0 {
		fmt.Printf("\nTop %d aperiodic rules by symbol balance:\n", min(*top, len(aperiodic)))
	}
	for i := 0; i < len(aperiodic) && i < *top; i++ {
		fmt.Printf("%2d) ", i+1)
		printResult(aperiodic[i])
	}
}

func printResult(res sweep.Result) {
	cycle := "-"
	if res.Cycle.Found {
		cycle = fmt.Sprintf("t=%d p=%d", res.Cycle.Start, res.Cycle.Period)
	}
	fmt.Printf("rule=%5d class=%-9s density=[%.2f %.2f %.2f] cycle=%s\n",
		res.Rule, res.Class(), res.Density(0), res.Density(1), res.Density(2), cycle)
}

// balance is 1 when all three symbols are equally common and 0 when one
// symbol fills the row.
func balance(res sweep.Result) float64 {
	worst := 0.0
	for s := ternary.Symbol(0); s < ternary.States; s++ {
		d := res.Density(s) - 1.0/ternary.States
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return 1 - worst/(1-1.0/ternary.States)
}
