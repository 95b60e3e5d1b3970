package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

type symbol uint8

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 2, 7}, Greys)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255, 0, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !bytes.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}

func TestImageLayout(t *testing.T) {
	rows := [][]symbol{{0, 1, 2}, {2, 1, 0}}
	img, err := Image(rows, Options{Scale: 2})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 6x4", b)
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, Greys[0]},
		{1, 1, Greys[0]},
		{2, 0, Greys[1]},
		{5, 1, Greys[2]},
		{0, 2, Greys[2]},
		{5, 3, Greys[0]},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestImageErrors(t *testing.T) {
	if _, err := Image([][]symbol{}, Options{}); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("empty err = %v", err)
	}
	if _, err := Image([][]symbol{{0, 1}, {0}}, Options{}); err == nil {
		t.Fatal("ragged rows should fail")
	}
}

func TestWritePNGDecodes(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]symbol{{0, 1, 2, 0}, {1, 1, 1, 1}, {2, 2, 0, 0}}
	if err := WritePNG(&buf, rows, Options{}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestWriteTextPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, [][]symbol{{0, 1, 2}, {2, 2, 0}}, false); err != nil {
		t.Fatal(err)
	}
	want := " ▒█\n██ \n"
	if buf.String() != want {
		t.Fatalf("text = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextColored(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, [][]symbol{{0, 2}}, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestWriteDigits(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDigits(&buf, [][]symbol{{1, 0, 2, 1, 0}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "10210\n" {
		t.Fatalf("digits = %q", buf.String())
	}
}
