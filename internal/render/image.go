package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ErrEmptyField is returned when there is nothing to draw.
var ErrEmptyField = errors.New("empty space-time field")

// Options controls how a space-time field is drawn.
type Options struct {
	// Scale is the edge length of one cell in pixels. Zero means 1.
	Scale int
	// Palette maps cell values to colours. Nil means Greys.
	Palette []color.RGBA
}

func (o Options) scale() int {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

func (o Options) palette() []color.RGBA {
	if o.Palette == nil {
		return Greys
	}
	return o.Palette
}

// Image draws rows as an image with time running downwards and lattice
// position running left to right. All rows must have the same length. The
// rows are only read.
func Image[R ~[]S, S ~uint8](rows []R, opts Options) (*image.RGBA, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyField
	}
	w := len(rows[0])
	for t, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has length %d, want %d", t, len(row), w)
		}
	}

	scale := opts.scale()
	palette := opts.palette()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, len(rows)*scale))

	cells := make([]uint8, w)
	line := make([]byte, 4*w)
	for t, row := range rows {
		for i, s := range row {
			cells[i] = uint8(s)
		}
		fillPaletteRGBA(line, cells, palette)
		for dy := 0; dy < scale; dy++ {
			off := img.PixOffset(0, t*scale+dy)
			dst := img.Pix[off : off+4*w*scale]
			for x := 0; x < w; x++ {
				px := line[4*x : 4*x+4]
				for dx := 0; dx < scale; dx++ {
					copy(dst[4*(x*scale+dx):], px)
				}
			}
		}
	}
	return img, nil
}

// WritePNG encodes rows as a PNG image.
func WritePNG[R ~[]S, S ~uint8](out io.Writer, rows []R, opts Options) error {
	img, err := Image(rows, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
