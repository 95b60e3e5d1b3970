package ternary

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// States is the size of the cell alphabet.
	States = 3
	// NeighborhoodCount is the number of distinct (left, self) pairs.
	NeighborhoodCount = States * States
	// MaxRule is the largest valid rule number, 3^9 - 1.
	MaxRule = 19682
)

// Symbol is a cell state. Only 0, 1 and 2 are legal.
type Symbol uint8

// Valid reports whether s is inside the alphabet.
func (s Symbol) Valid() bool { return s < States }

// Neighborhood is the pair of cells consulted to compute a cell's next value.
type Neighborhood struct {
	Left Symbol
	Self Symbol
}

// Index returns the table slot for n, left*3+self.
func (n Neighborhood) Index() int { return int(n.Left)*States + int(n.Self) }

// Neighborhoods returns all nine neighborhoods in lexicographic order,
// (0,0), (0,1), ... (2,2).
func Neighborhoods() [NeighborhoodCount]Neighborhood {
	var out [NeighborhoodCount]Neighborhood
	for i := range out {
		out[i] = Neighborhood{Left: Symbol(i / States), Self: Symbol(i % States)}
	}
	return out
}

// decodeOrder is the lexicographic order reversed: (2,2) first, (0,0) last.
// Digit k of the rule number (most significant first) belongs to
// decodeOrder[k].
func decodeOrder() [NeighborhoodCount]Neighborhood {
	lex := Neighborhoods()
	var out [NeighborhoodCount]Neighborhood
	for i := range lex {
		out[i] = lex[NeighborhoodCount-1-i]
	}
	return out
}

// placeValues returns 3^8, 3^7, ... 3^0.
func placeValues() [NeighborhoodCount]int {
	var out [NeighborhoodCount]int
	w := 1
	for i := NeighborhoodCount - 1; i >= 0; i-- {
		out[i] = w
		w *= States
	}
	return out
}

// RuleTable maps every neighborhood to the symbol it produces. Slots are
// indexed by Neighborhood.Index.
type RuleTable [NeighborhoodCount]Symbol

// ValidateRule checks that rule is inside [0, MaxRule].
func ValidateRule(rule int) error {
	if rule < 0 || rule > MaxRule {
		return fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidRule, rule, MaxRule)
	}
	return nil
}

// ParseRule converts decimal text into a validated rule number.
func ParseRule(s string) (int, error) {
	rule, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidRule, s)
	}
	if err := ValidateRule(rule); err != nil {
		return 0, err
	}
	return rule, nil
}

// DecodeRule expands a rule number into its lookup table. The number is
// written in base 3 with exactly nine digits, most significant first, and
// digit k is assigned to the k-th neighborhood of the reversed lexicographic
// order. Rule 0 maps everything to 0 and MaxRule maps everything to 2.
func DecodeRule(rule int) (RuleTable, error) {
	var t RuleTable
	if err := ValidateRule(rule); err != nil {
		return t, err
	}
	order := decodeOrder()
	weights := placeValues()
	rest := rule
	for k, w := range weights {
		t[order[k].Index()] = Symbol(rest / w)
		rest %= w
	}
	return t, nil
}

// MustDecodeRule is DecodeRule for rule numbers known to be valid.
func MustDecodeRule(rule int) RuleTable {
	t, err := DecodeRule(rule)
	if err != nil {
		panic(err)
	}
	return t
}

// Encode folds the table back into its rule number.
func (t RuleTable) Encode() int {
	order := decodeOrder()
	weights := placeValues()
	rule := 0
	for k, w := range weights {
		rule += int(t[order[k].Index()]) * w
	}
	return rule
}

// Valid reports whether every output of the table is a legal symbol.
func (t RuleTable) Valid() bool {
	for _, s := range t {
		if !s.Valid() {
			return false
		}
	}
	return true
}

// Lookup returns the next state for a cell with the given left neighbor.
func (t RuleTable) Lookup(left, self Symbol) Symbol {
	return t[int(left)*States+int(self)]
}

// Get returns the output assigned to n.
func (t RuleTable) Get(n Neighborhood) Symbol { return t[n.Index()] }

// String lists the table in decode order, e.g. "22:0 21:0 ... 00:2".
func (t RuleTable) String() string {
	var b strings.Builder
	for i, n := range decodeOrder() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d%d:%d", n.Left, n.Self, t.Get(n))
	}
	return b.String()
}
