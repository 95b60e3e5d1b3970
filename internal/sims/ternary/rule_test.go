package ternary

import (
	"errors"
	"testing"
)

func TestDecodeRuleCoversEveryNeighborhood(t *testing.T) {
	for rule := 0; rule <= MaxRule; rule++ {
		table, err := DecodeRule(rule)
		if err != nil {
			t.Fatalf("DecodeRule(%d): %v", rule, err)
		}
		if !table.Valid() {
			t.Fatalf("rule %d produced out-of-range outputs %v", rule, table)
		}
		if got := table.Encode(); got != rule {
			t.Fatalf("rule %d round-tripped to %d", rule, got)
		}
	}
}

func TestDecodeRuleExtremes(t *testing.T) {
	zero := MustDecodeRule(0)
	full := MustDecodeRule(MaxRule)
	for _, n := range Neighborhoods() {
		if got := zero.Get(n); got != 0 {
			t.Fatalf("rule 0 maps %v to %d, want 0", n, got)
		}
		if got := full.Get(n); got != 2 {
			t.Fatalf("rule %d maps %v to %d, want 2", MaxRule, n, got)
		}
	}
}

func TestDecodeRuleDigitPlacement(t *testing.T) {
	// 3^k sets exactly one digit, which lands on the neighborhood with index k:
	// (0,0) takes the least significant digit and (2,2) the most significant.
	weight := 1
	for k := 0; k < NeighborhoodCount; k++ {
		table := MustDecodeRule(weight)
		for _, n := range Neighborhoods() {
			want := Symbol(0)
			if n.Index() == k {
				want = 1
			}
			if got := table.Get(n); got != want {
				t.Fatalf("rule %d: %v -> %d, want %d", weight, n, got, want)
			}
		}
		weight *= States
	}
}

func TestDecodeRuleKnownTables(t *testing.T) {
	tests := []struct {
		rule int
		want map[Neighborhood]Symbol
	}{
		{
			rule: 110,
			want: map[Neighborhood]Symbol{
				{1, 1}: 1, {1, 0}: 1, {0, 0}: 2,
			},
		},
		{
			rule: 2510,
			want: map[Neighborhood]Symbol{
				{2, 1}: 1, {1, 2}: 1, {1, 0}: 2, {0, 2}: 2, {0, 1}: 2, {0, 0}: 2,
			},
		},
	}
	for _, tt := range tests {
		table := MustDecodeRule(tt.rule)
		for _, n := range Neighborhoods() {
			if got, want := table.Get(n), tt.want[n]; got != want {
				t.Fatalf("rule %d: %v -> %d, want %d", tt.rule, n, got, want)
			}
		}
	}
}

func TestDecodeRuleRejectsOutOfRange(t *testing.T) {
	for _, rule := range []int{-1, MaxRule + 1, 1 << 20} {
		if _, err := DecodeRule(rule); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("DecodeRule(%d) err = %v, want ErrInvalidRule", rule, err)
		}
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{in: "110", want: 110},
		{in: " 19682 ", want: MaxRule},
		{in: "0", want: 0},
		{in: "19683", wantErr: ErrInvalidRule},
		{in: "-4", wantErr: ErrInvalidRule},
		{in: "1.5", wantErr: ErrInvalidRule},
		{in: "rule", wantErr: ErrInvalidRule},
		{in: "", wantErr: ErrInvalidRule},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRule(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseRule(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Fatalf("ParseRule(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNeighborhoodOrder(t *testing.T) {
	lex := Neighborhoods()
	for i, n := range lex {
		if n.Index() != i {
			t.Fatalf("neighborhood %v at position %d has index %d", n, i, n.Index())
		}
	}
	order := decodeOrder()
	if order[0] != (Neighborhood{2, 2}) || order[NeighborhoodCount-1] != (Neighborhood{0, 0}) {
		t.Fatalf("decode order = %v, want (2,2) first and (0,0) last", order)
	}
	if w := placeValues(); w[0] != 6561 || w[NeighborhoodCount-1] != 1 {
		t.Fatalf("place values = %v", w)
	}
}

func TestRuleTableString(t *testing.T) {
	want := "22:0 21:0 20:0 12:0 11:1 10:1 02:0 01:0 00:2"
	if got := MustDecodeRule(110).String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
