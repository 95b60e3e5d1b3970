package ui

import (
	"strings"

	"ternary-ca/internal/core"
)

// adjustTarget moves value by steps control steps, clamped to the bounds.
// It reports false when the clamped value would not change.
func adjustTarget(ctrl core.ParameterControl, value, steps int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(value + steps*step)
	return target, target != value
}

// tableRows splits a rule table string into rows of three entries.
func tableRows(v string) []string {
	entries := strings.Fields(v)
	var rows []string
	for len(entries) > 0 {
		n := min(3, len(entries))
		rows = append(rows, "  "+strings.Join(entries[:n], "  "))
		entries = entries[n:]
	}
	return rows
}
