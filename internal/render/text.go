package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

var glyphs = [...]string{" ", "▒", "█"}

// grey levels on the 24-step ANSI ramp, light to dark.
var greyLevels = [...]uint8{23, 12, 2}

// WriteText prints rows one line per time step. With colour enabled each cell
// is a block shaded along the grey ramp; otherwise the glyph alone carries
// the value.
func WriteText[R ~[]S, S ~uint8](out io.Writer, rows []R, colors bool) error {
	au := aurora.NewAurora(colors)
	bw := bufio.NewWriter(out)
	for _, row := range rows {
		for _, s := range row {
			v := int(s)
			if v >= len(glyphs) {
				v = len(glyphs) - 1
			}
			if colors {
				bw.WriteString(au.Gray(greyLevels[v], glyphs[len(glyphs)-1]).String())
				continue
			}
			bw.WriteString(glyphs[v])
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// WriteDigits prints rows as plain digit strings, e.g. "10210".
func WriteDigits[R ~[]S, S ~uint8](out io.Writer, rows []R) error {
	bw := bufio.NewWriter(out)
	for _, row := range rows {
		for _, s := range row {
			bw.WriteByte('0' + byte(s))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write digits: %w", err)
	}
	return nil
}
