package ui

import (
	"slices"
	"testing"

	"ternary-ca/internal/core"
)

func TestAdjustTarget(t *testing.T) {
	ctrl := core.ParameterControl{Key: "rule", Step: 1, Min: 0, Max: 19682, HasMin: true, HasMax: true}
	tests := []struct {
		value, steps int
		want         int
		ok           bool
	}{
		{value: 110, steps: 1, want: 111, ok: true},
		{value: 110, steps: -100, want: 10, ok: true},
		{value: 0, steps: -1, want: 0, ok: false},
		{value: 19682, steps: 100, want: 19682, ok: false},
		{value: 19600, steps: 100, want: 19682, ok: true},
	}
	for _, tt := range tests {
		got, ok := adjustTarget(ctrl, tt.value, tt.steps)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("adjustTarget(%d, %d) = %d, %v; want %d, %v", tt.value, tt.steps, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTableRows(t *testing.T) {
	got := tableRows("22:0 21:0 20:0 12:0 11:1 10:1 02:0 01:0 00:2")
	want := []string{
		"  22:0  21:0  20:0",
		"  12:0  11:1  10:1",
		"  02:0  01:0  00:2",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("tableRows = %q, want %q", got, want)
	}
	if rows := tableRows(""); len(rows) != 0 {
		t.Fatalf("empty table gave %q", rows)
	}
}
