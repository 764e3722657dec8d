package main

import (
	"image/color"

	"github.com/sheikhrachel/torus-gol/model"
)

var (
	aliveColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	deadColor  = color.RGBA{A: 0xff}
)

// fillRGBA writes one RGBA pixel per cell of v into buf, row-major.
// buf must hold 4*width*height bytes.
func fillRGBA(buf []byte, v model.View) {
	w, h := v.Width(), v.Height()
	for y := range h {
		for x := range w {
			col := deadColor
			if c, _ := v.Get(x, y); c == model.Alive {
				col = aliveColor
			}
			base := 4 * (y*w + x)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// cellAt maps a cursor position in screen pixels to board coordinates. The
// result may be outside the board; the controller reports that.
func cellAt(px, py, cellSize int) (int, int) {
	return floorDiv(px, cellSize), floorDiv(py, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
