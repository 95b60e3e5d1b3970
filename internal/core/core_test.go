package core

import (
	"slices"
	"testing"
	"time"
)

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{i: -1, n: 5, want: 4},
		{i: 0, n: 5, want: 0},
		{i: 4, n: 5, want: 4},
		{i: 5, n: 5, want: 0},
		{i: -6, n: 5, want: 4},
		{i: -1, n: 1, want: 0},
	}
	for _, tt := range tests {
		if got := WrapIndex(tt.i, tt.n); got != tt.want {
			t.Fatalf("WrapIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestByteGridRows(t *testing.T) {
	g := NewByteGrid(3, 2)
	copy(g.Row(1), []uint8{1, 2, 0})
	if want := []uint8{0, 0, 0, 1, 2, 0}; !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
	g.Clear()
	if !slices.Equal(g.Cells(), make([]uint8, 6)) {
		t.Fatalf("Clear left %v", g.Cells())
	}

	empty := NewByteGrid(0, -4)
	if empty.W != 1 || empty.H != 1 {
		t.Fatalf("degenerate grid = %dx%d, want 1x1", empty.W, empty.H)
	}
}

func TestFillStatesDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillStates(NewRNG(7).Source(), a, 3)
	FillStates(NewRNG(7).Source(), b, 3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	seen := map[uint8]bool{}
	for _, v := range a {
		if v > 2 {
			t.Fatalf("value %d outside [0, 3)", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three states in 256 draws, saw %v", seen)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after a full interval")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", fs.Interval())
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Key: "rule", Min: 0, Max: 10, HasMin: true, HasMax: true}
	if got := c.Clamp(-3); got != 0 {
		t.Fatalf("Clamp(-3) = %d", got)
	}
	if got := c.Clamp(12); got != 10 {
		t.Fatalf("Clamp(12) = %d", got)
	}
	snap := ParameterSnapshot{Groups: []ParameterGroup{{Name: "g", Params: []Parameter{{Key: "rule", Value: "5"}}}}}
	if p, ok := snap.Lookup("rule"); !ok || p.Value != "5" {
		t.Fatalf("Lookup(rule) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
