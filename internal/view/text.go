package view

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"ternary-ca/internal/core"
)

var cellGlyphs = [...]string{"░", aurora.Cyan("▒").String(), aurora.Magenta("█").String()}

// fieldText renders a row-major cell window, cropped to maxW x maxH
// characters. The last line is replaced by a warning when rows are cut.
func fieldText(cells []uint8, size core.Size, maxW, maxH int) string {
	if maxW <= 0 || maxH <= 0 || size.W <= 0 {
		return ""
	}
	rows := size.H
	crop := size.W > maxW || size.H > maxH
	var b strings.Builder
	for y := 0; y < rows && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("field larger than the view").String())
			break
		}
		row := cells[y*size.W : (y+1)*size.W]
		for x, v := range row {
			if x >= maxW {
				break
			}
			if int(v) >= len(cellGlyphs) {
				v = uint8(len(cellGlyphs) - 1)
			}
			b.WriteString(cellGlyphs[v])
		}
	}
	return b.String()
}

// statusLines lists the sim's parameters, one "Label: value" per line.
func statusLines(sim core.Sim, running bool) []string {
	mode := aurora.Blue("paused").String()
	if running {
		mode = aurora.Cyan("running").String()
	}
	lines := []string{prop("Sim", sim.Name()), prop("Mode", mode)}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			if p.Key == "table" {
				continue
			}
			lines = append(lines, prop(p.Label, p.Value))
		}
	}
	return lines
}

func prop(name, value string) string {
	return fmt.Sprintf(" %s: %s", aurora.Green(name), value)
}
